package etree

import "testing"

func TestUnwrapTitles(t *testing.T) {
	root := &Element{
		Tag: "h2",
		Children: []*Element{
			{Tag: TagP, Text: "Users"},
		},
	}
	UnwrapTitles(root)
	if root.Text != "Users" {
		t.Errorf("Text = %q, want %q", root.Text, "Users")
	}
	if len(root.Children) != 0 {
		t.Errorf("expected the wrapping <p> to be removed, got %d children", len(root.Children))
	}
}

func TestUnwrapTitlesLeavesRealContentAlone(t *testing.T) {
	root := &Element{
		Tag:  "h2",
		Text: "Users",
		Children: []*Element{
			{Tag: TagP, Text: "description"},
		},
	}
	UnwrapTitles(root)
	if root.Text != "Users" || len(root.Children) != 1 {
		t.Errorf("an already-named heading with real content must be untouched, got %+v", root)
	}
}

func TestLiftHeadingsSingleTopHeading(t *testing.T) {
	root := &Element{
		Children: []*Element{
			{Tag: "h1", Text: "My API"},
			{Tag: "h3", Text: "Group Users"},
			{Tag: "h4", Text: "/users"},
		},
	}
	LiftHeadings(root)
	if root.Children[0].Tag != "h1" {
		t.Errorf("the single title heading must stay h1, got %s", root.Children[0].Tag)
	}
	if root.Children[1].Tag != "h2" {
		t.Errorf("over-nested h3 should lift to h2, got %s", root.Children[1].Tag)
	}
	if root.Children[2].Tag != "h3" {
		t.Errorf("over-nested h4 should lift to h3, got %s", root.Children[2].Tag)
	}
}

func TestLiftHeadingsStopsAtDataStructures(t *testing.T) {
	root := &Element{
		Children: []*Element{
			{Tag: "h1", Text: "My API"},
			{Tag: "h3", Text: "Group Users"},
			{Tag: "h1", Text: "Data Structures"},
			{Tag: "h2", Text: "Coord"},
		},
	}
	LiftHeadings(root)
	if root.Children[1].Tag != "h2" {
		t.Errorf("content before Data Structures should still lift, got %s", root.Children[1].Tag)
	}
	if root.Children[2].Tag != "h1" || root.Children[2].Text != "Data Structures" {
		t.Errorf("Data Structures heading must be untouched, got %+v", root.Children[2])
	}
	if root.Children[3].Tag != "h2" {
		t.Errorf("content after Data Structures must be untouched, got %s", root.Children[3].Tag)
	}
}

func TestLiftHeadingsNoopWithMultipleTopHeadings(t *testing.T) {
	root := &Element{
		Children: []*Element{
			{Tag: "h1", Text: "My API"},
			{Tag: "h1", Text: "Another Title"},
			{Tag: "h3", Text: "Group Users"},
		},
	}
	LiftHeadings(root)
	if root.Children[2].Tag != "h3" {
		t.Errorf("with >1 top heading nothing should be renumbered, got %s", root.Children[2].Tag)
	}
}
