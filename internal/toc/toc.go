// Package toc renders the table of contents that links to every chapter file.
package toc

import (
	"fmt"
	"strings"
)

// placeholder is replaced by the link list in the page layout.
const placeholder = "__toc__"

const layout = `![{title}]({logo} "{title}")

# {title}

**{tagline}**

## Table Of Contents

` + placeholder + `

Or read the whole readme file in one chunk [here]({source}).
`

// Entry is one line of the table of contents.
type Entry struct {
	Header   string
	Filename string
}

// Page describes the fixed parts of the index document.
type Page struct {
	Title   string
	Tagline string
	Logo    string
	// Source is the full document, linked at the bottom of the page.
	Source string
}

// Links renders one markdown link per entry, each followed by a blank line.
// A ']' in a header would end the link text early and is escaped.
func Links(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s](%s)\n\n", linkText.Replace(e.Header), e.Filename)
	}
	return b.String()
}

var linkText = strings.NewReplacer("]", `\]`)

// Render returns the full index document for entries, in the given order.
func (p Page) Render(entries []Entry) string {
	head := strings.NewReplacer(
		"{title}", p.Title,
		"{tagline}", p.Tagline,
		"{logo}", p.Logo,
		"{source}", p.Source,
	).Replace(layout)

	// The link list is substituted last so chapter headers are never
	// mistaken for layout fields.
	return strings.Replace(head, placeholder, Links(entries), 1)
}
