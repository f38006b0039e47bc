package etree

import "strconv"

// UnwrapTitles folds a lone wrapping paragraph into its parent's text. In
// the reference ElementTree-based pipeline, Markdown wraps heading/list-item
// text in a nested `<p>` and leaves the parent node's own text as the
// newline between tags; here the same situation shows up as an element with
// empty text and a single childless `p` child. Depth-first so nested
// wrapping collapses from the leaves up.
func UnwrapTitles(root *Element) {
	for _, c := range root.Children {
		UnwrapTitles(c)
	}
	if root.Text == "" && len(root.Children) == 1 {
		p := root.Children[0]
		if p.Tag == TagP && len(p.Children) == 0 {
			root.Text = p.Text
			root.Children = nil
		}
	}
}

// LiftHeadings renumbers every heading one level shallower when the
// document has exactly one top-level `h1` whose text is not
// "Data Structures" - i.e. the document over-nested everything beneath its
// single title heading. Traversal stops at a literal "Data Structures"
// heading, which is never renumbered and whose subtree is left untouched.
func LiftHeadings(root *Element) {
	titleCount := 0
	for _, c := range root.Children {
		level, ok := c.HeaderLevel()
		if ok && level == 1 && c.Text != "Data Structures" {
			titleCount++
		}
	}
	if titleCount != 1 {
		return
	}
	for _, c := range root.Children {
		level, ok := c.HeaderLevel()
		if !ok {
			continue
		}
		if level == 1 && c.Text == "Data Structures" {
			return
		}
		if level > 1 {
			c.Tag = "h" + strconv.Itoa(level-1)
		}
	}
}
