// Package chapters splits a single markdown document into per-chapter texts.
//
// A document is cut on every level-1 heading that starts a line after the
// first one. The text before the first such heading is the front matter and
// never becomes a chapter.
package chapters

import (
	"strings"
)

// Delimiter separates chapters inside the source document.
const Delimiter = "\n# "

// headingMarker is re-added to every written chapter because the split
// consumes it.
const headingMarker = "# "

// Segment is one delimiter-separated piece of the document.
type Segment struct {
	// Header is the first line of the segment.
	Header string
	// Text is the segment content without the consumed heading marker.
	Text string
}

// Chapter is a segment selected for output.
type Chapter struct {
	Header   string
	Filename string
	// Body is the full file content, starting with "# " and the header line.
	Body string
}

// SkipReason explains why a segment produced no chapter.
type SkipReason int

const (
	// NotSkipped marks a segment that becomes a chapter.
	NotSkipped SkipReason = iota
	// SkipImage marks a header containing '[', i.e. the opening image.
	SkipImage
	// SkipTitle marks a header equal to the product title.
	SkipTitle
	// SkipFrontMatter marks the text preceding the first delimiter.
	SkipFrontMatter
)

func (r SkipReason) String() string {
	switch r {
	case NotSkipped:
		return "none"
	case SkipImage:
		return "opening image"
	case SkipTitle:
		return "title"
	case SkipFrontMatter:
		return "front matter"
	default:
		return "unknown"
	}
}

// Skipped records a segment excluded from the output.
type Skipped struct {
	Header string
	Reason SkipReason
}

// Collision records two chapters whose headers map to the same file.
// The later chapter overwrites the earlier one on disk.
type Collision struct {
	Filename string
	First    string
	Second   string
}

// Options controls chapter selection and naming.
type Options struct {
	// Dir is the chapter directory, used as filename prefix and link target.
	Dir string
	// Title is the product name; a segment headed by exactly this is skipped.
	Title string
}

// Result is the outcome of splitting a document.
type Result struct {
	// Segments is the number of raw segments, before any filtering.
	Segments   int
	Chapters   []Chapter
	Skipped    []Skipped
	Collisions []Collision
}

// Split cuts doc into chapters in document order.
func Split(doc string, opts Options) Result {
	segments := Segments(doc)
	result := Result{Segments: len(segments)}
	owners := make(map[string]string)

	for i, seg := range segments {
		text := RewriteAssets(seg.Text)

		reason := Classify(seg.Header, opts.Title)
		if i == 0 && reason == NotSkipped {
			reason = SkipFrontMatter
		}
		if reason != NotSkipped {
			result.Skipped = append(result.Skipped, Skipped{Header: seg.Header, Reason: reason})
			continue
		}

		filename := Filename(opts.Dir, seg.Header)
		if first, ok := owners[filename]; ok {
			result.Collisions = append(result.Collisions, Collision{
				Filename: filename,
				First:    first,
				Second:   seg.Header,
			})
		}
		owners[filename] = seg.Header

		result.Chapters = append(result.Chapters, Chapter{
			Header:   seg.Header,
			Filename: filename,
			Body:     headingMarker + text,
		})
	}

	return result
}

// Segments splits doc on Delimiter. Every segment but the last gets back the
// line break the delimiter consumed.
func Segments(doc string) []Segment {
	parts := strings.Split(doc, Delimiter)
	segments := make([]Segment, 0, len(parts))
	for i, part := range parts {
		if i < len(parts)-1 {
			part += "\n"
		}
		segments = append(segments, Segment{
			Header: Header(part),
			Text:   part,
		})
	}
	return segments
}

// Header returns the first line of a segment.
func Header(segment string) string {
	header, _, _ := strings.Cut(segment, "\n")
	return strings.TrimSuffix(header, "\r")
}

// RewriteAssets moves relative asset links one directory up, since chapter
// files live one level below the source document.
func RewriteAssets(text string) string {
	return strings.ReplaceAll(text, "(assets/", "(../assets/")
}

// Classify applies the front matter heuristics to a header.
func Classify(header, title string) SkipReason {
	if strings.Contains(header, "[") {
		return SkipImage
	}
	if header == title {
		return SkipTitle
	}
	return NotSkipped
}

// Filename derives the chapter file path for a header. The result uses
// forward slashes since it doubles as the link target in the index.
func Filename(dir, header string) string {
	name := strings.ReplaceAll(strings.ToLower(header), " ", "_") + ".md"
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
