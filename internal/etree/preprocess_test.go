package etree

import "testing"

func TestStripBackquotes(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"no backticks", []string{"GET /ping"}, []string{"GET /ping"}},
		{"cosmetic emphasis", []string{"## `GET` /ping"}, []string{"## GET /ping"}},
		{"inside an indented code line", []string{"    `pong`"}, []string{"    pong"}},
		{"multiple per line", []string{"`a` `b` `c`"}, []string{"a b c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripBackquotes(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAlignIndentation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty line untouched", "", ""},
		{"already aligned", "    item", "    item"},
		{"zero indent untouched", "item", "item"},
		{"2-space bumped to 4", "  item", "    item"},
		{"3-space bumped to 4", "   item", "    item"},
		{"6-space bumped to 8", "      item", "        item"},
		{"8-space untouched", "        item", "        item"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := alignLine(tt.in)
			if got != tt.want {
				t.Errorf("alignLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
