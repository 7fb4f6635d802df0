// Package verify checks that a generated table of contents still matches the
// chapter files on disk.
package verify

import (
	"fmt"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/d-kuro/readme-chapters/internal/errors"
)

// Files answers whether a slash-separated path exists.
type Files interface {
	Exists(path string) bool
}

// Link is a markdown link found in the index.
type Link struct {
	Text        string
	Destination string
}

// Report is the outcome of checking an index.
type Report struct {
	// Links are the chapter links in document order.
	Links []Link
	// Broken are the chapter links whose target does not exist.
	Broken []Link
}

// Err returns ErrBrokenLinks listing every broken link, or nil.
func (r Report) Err() error {
	if len(r.Broken) == 0 {
		return nil
	}
	targets := make([]string, 0, len(r.Broken))
	for _, l := range r.Broken {
		targets = append(targets, l.Destination)
	}
	return fmt.Errorf("%w: %s", errors.ErrBrokenLinks, strings.Join(targets, ", "))
}

// Links returns every link of a markdown document in order. Images are not
// links and are left out.
func Links(doc []byte) []Link {
	root := goldmark.New().Parser().Parse(text.NewReader(doc))

	var links []Link
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Image:
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			links = append(links, Link{
				Text:        nodeText(node, doc),
				Destination: string(node.Destination),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return links
}

// Index checks every link of index pointing into chaptersDir. Both the
// directory and the link destinations are compared in cleaned form, so
// "./chapters" and "chapters/" select the same links.
func Index(index []byte, chaptersDir string, files Files) Report {
	prefix := path.Clean(chaptersDir) + "/"
	if prefix == "./" {
		prefix = ""
	}

	var report Report
	for _, link := range Links(index) {
		dest := path.Clean(link.Destination)
		if !strings.HasPrefix(dest, prefix) || strings.HasPrefix(dest, "../") {
			continue
		}
		report.Links = append(report.Links, link)
		if !files.Exists(dest) {
			report.Broken = append(report.Broken, link)
		}
	}
	return report
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(util.UnescapePunctuations(t.Segment.Value(source)))
			continue
		}
		b.WriteString(nodeText(c, source))
	}
	return b.String()
}
