package chapters

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CountHeadings returns the number of level-1 headings goldmark finds in doc.
//
// The delimiter split is purely textual, so a "# " line inside a fenced code
// block still starts a chapter. Comparing this count against the segment
// count exposes such cases.
func CountHeadings(doc []byte) int {
	root := goldmark.New().Parser().Parse(text.NewReader(doc))

	count := 0
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok {
			if heading.Level == 1 {
				count++
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return count
}

// HiddenDelimiters returns how many chapter delimiters in doc do not start a
// real level-1 heading. A heading at the very start of doc is not preceded
// by a line break and so is not a delimiter; it is left out of the count.
func HiddenDelimiters(doc string) int {
	delimiters := strings.Count(doc, Delimiter)
	headings := CountHeadings([]byte(doc))
	if strings.HasPrefix(doc, headingMarker) {
		headings--
	}
	if hidden := delimiters - headings; hidden > 0 {
		return hidden
	}
	return 0
}
