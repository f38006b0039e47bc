package etree

import "strings"

// StripBackquotes removes every back-quote character from every line. API
// Blueprint uses back-ticks as cosmetic emphasis within section headers that
// would otherwise corrupt tokenisation; this runs before the Markdown engine
// ever sees the source.
//
// This intentionally also strips back-ticks inside fenced code blocks -
// same as the original Python preprocessor, which ran unconditionally over
// every line before the Markdown parser had a chance to recognise fences.
// Blueprint documents that embed back-ticks inside fenced code will lose
// them. That is a deliberate compatibility choice, not an oversight.
func StripBackquotes(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.ReplaceAll(line, "`", "")
	}
	return out
}

// AlignIndentation pads each non-empty line's leading spaces to the next
// multiple of 4, preserving Markdown list-nesting when authors used 2- or
// 3-space indents.
func AlignIndentation(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = alignLine(line)
	}
	return out
}

func alignLine(line string) string {
	if line == "" {
		return line
	}
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	if indent == 0 || indent%4 == 0 {
		return line
	}
	pad := indent + (4 - indent%4)
	return strings.Repeat(" ", pad) + line[indent:]
}
