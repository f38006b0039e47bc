package blueprint

import (
	"strings"

	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

// selectPos returns the smallest non-negative position among positions, or
// -1 if every position given was negative. Ports the reference parser's
// select_pos helper, used throughout to find "whichever separator comes
// first" among a set of candidate byte offsets.
func selectPos(positions ...int) int {
	best := -1
	for _, p := range positions {
		if p < 0 {
			continue
		}
		if best < 0 || p < best {
			best = p
		}
	}
	return best
}

// sectionKeyword extracts the leading keyword token of a bullet line's text
// — the word before the first space, tab or colon — which is what the
// section registry dispatches on ("Headers", "Body", "Request 200", ...).
func sectionKeyword(text string) string {
	if text == "" {
		return ""
	}
	sep := selectPos(strings.IndexByte(text, ' '), strings.IndexByte(text, '\t'), strings.IndexByte(text, ':'))
	if sep < 0 {
		return text
	}
	return text[:sep]
}

// parseDescription renders every leading child of children whose tag is not
// in stopTags back to an HTML fragment, joining them with newlines. Returns
// the rendered description (empty if there was none) and the index of the
// first child that stopped the scan.
func parseDescription(children []*etree.Element, stopTags ...string) (string, int) {
	var b strings.Builder
	index := 0
	for index < len(children) && !tagIn(children[index].Tag, stopTags) {
		b.WriteString(etree.SerializeToHTML(children[index]))
		b.WriteByte('\n')
		index++
	}
	return strings.TrimSpace(b.String()), index
}

// parseLeadingDescription renders every leading child back to an HTML
// fragment, stopping at the first h1..h6 heading or bullet list — the
// boundary between a group/resource's free-text description and its first
// nested bullet list (Parameters/Attributes/Model) or child heading.
func parseLeadingDescription(children []*etree.Element) (string, int) {
	var b strings.Builder
	index := 0
	for index < len(children) && !children[index].IsHeader() &&
		children[index].Tag != etree.TagUL && children[index].Tag != etree.TagOL {
		b.WriteString(etree.SerializeToHTML(children[index]))
		b.WriteByte('\n')
		index++
	}
	return strings.TrimSpace(b.String()), index
}

func tagIn(tag string, tags []string) bool {
	for _, t := range tags {
		if tag == t {
			return true
		}
	}
	return false
}

// splitOnFirstSpaceOrTab splits txt at its first space or tab, trimming the
// remainder. Returns (txt, "") if txt has neither.
func splitOnFirstSpaceOrTab(txt string) (head, rest string) {
	sep := selectPos(strings.IndexByte(txt, ' '), strings.IndexByte(txt, '\t'))
	if sep < 0 {
		return txt, ""
	}
	return txt[:sep], strings.TrimSpace(txt[sep+1:])
}

// isBracketed reports whether txt ends with close and has a matching open
// rune somewhere before it, returning the text between the last open and
// the final close.
func isBracketed(txt string, open byte, close byte) (inner string, ok bool) {
	if txt == "" || txt[len(txt)-1] != close {
		return "", false
	}
	pos := strings.LastIndexByte(txt, open)
	if pos < 0 {
		return "", false
	}
	return txt[pos+1 : len(txt)-1], true
}
