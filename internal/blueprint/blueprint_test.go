package blueprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmarkovtsev/apiblueprint/internal/blueprint"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

const sampleDoc = `FORMAT: 1A
HOST: https://api.example.com

# Polls

A simple polling API.

# Group Questions

Resources related to polling questions.

## Question [/questions/{id}]

+ Parameters
    + id (string, optional) - the question id

        + Default: 1

### View a Question [GET]

+ Response 200 (application/json)

    + Attributes
        + id: 1 (number)
        + question: Favourite programming language? (string)

### Delete a Question [DELETE]

+ Response 204
`

func parseSample(t *testing.T) *blueprint.Blueprint {
	t.Helper()
	root := etree.Parse([]byte(sampleDoc))
	bp, err := blueprint.Parse(root)
	require.NoError(t, err)
	return bp
}

func TestParseTopLevel(t *testing.T) {
	bp := parseSample(t)
	assert.Equal(t, "Polls", bp.Name())
	assert.Equal(t, "A simple polling API.", bp.Overview())
	format, ok := bp.Format()
	assert.True(t, ok)
	assert.Equal(t, "1A", format)
	assert.Equal(t, 1, bp.CountResources())
	assert.Equal(t, 2, bp.CountActions())
}

func TestParseGroupsAndResources(t *testing.T) {
	bp := parseSample(t)
	groups := bp.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, "Questions", groups[0].Name())

	resources := bp.Resources()
	require.Len(t, resources, 1)
	question := resources[0]
	assert.Equal(t, "Question", question.Name())
	require.NotNil(t, question.Parameters())
	_, ok := question.Parameters().Get("id")
	assert.True(t, ok)
}

func TestParseActionsAndResponses(t *testing.T) {
	bp := parseSample(t)
	actions := bp.Actions()
	require.Len(t, actions, 2)

	var view, del *blueprint.Action
	for _, a := range actions {
		switch a.RequestMethod() {
		case "GET":
			view = a
		case "DELETE":
			del = a
		}
	}
	require.NotNil(t, view)
	require.NotNil(t, del)

	views := view.ResponsesByCode()
	require.Contains(t, views, 200)
	resp := views[200][0]
	require.NotNil(t, resp.Attributes())
	attr, ok := resp.Attributes().Get("question")
	require.True(t, ok)
	assert.Equal(t, "string", attr.Type())

	dels := del.ResponsesByCode()
	require.Contains(t, dels, 204)
}

func TestActionURIInheritsResourceParameters(t *testing.T) {
	bp := parseSample(t)
	actions := bp.Actions()
	for _, a := range actions {
		if a.RequestMethod() != "GET" {
			continue
		}
		uri, err := a.URI()
		require.NoError(t, err)
		assert.Equal(t, "/questions/1", uri)
	}
}

func TestLookupHierarchicalPath(t *testing.T) {
	bp := parseSample(t)
	got, err := bp.Lookup(">Questions>Question>View a Question")
	require.NoError(t, err)
	action, ok := got.(*blueprint.Action)
	require.True(t, ok)
	assert.Equal(t, "GET", action.RequestMethod())
}

func TestLookupURIPrefix(t *testing.T) {
	const doc = `FORMAT: 1A

# Polls

# Group Questions

## Questions [/questions]

### List Questions [GET]

+ Response 200
`
	root := etree.Parse([]byte(doc))
	bp, err := blueprint.Parse(root)
	require.NoError(t, err)

	got, err := bp.Lookup("/questions:GET")
	require.NoError(t, err)
	actions, ok := got.([]*blueprint.Action)
	require.True(t, ok)
	require.Len(t, actions, 1)
	assert.Equal(t, "GET", actions[0].RequestMethod())
}

func TestMultipleRequestsShareDistinctResponseCopies(t *testing.T) {
	const doc = `FORMAT: 1A

# Polls

# Group Items

## Item [/items/{id}]

### Update an Item [PUT]

+ Request First

+ Request Second

+ Response 200
`
	root := etree.Parse([]byte(doc))
	bp, err := blueprint.Parse(root)
	require.NoError(t, err)

	var update *blueprint.Action
	for _, a := range bp.Actions() {
		if a.RequestMethod() == "PUT" {
			update = a
		}
	}
	require.NotNil(t, update)

	requests := update.Requests()
	require.Len(t, requests, 2)

	first, second := requests[0], requests[1]
	firstResp, ok := first.Responses()[200]
	require.True(t, ok)
	secondResp, ok := second.Responses()[200]
	require.True(t, ok)

	assert.NotSame(t, firstResp, secondResp, "each request must own a distinct Response instance")
	assert.Same(t, first, firstResp.Request())
	assert.Same(t, second, secondResp.Request())

	all := update.ResponsesByCode()[200]
	require.Len(t, all, 2)
}

func TestLookupURIPrefixMatchesDeeperAction(t *testing.T) {
	const doc = `FORMAT: 1A

# Polls

# Group Questions

## Question [/questions/{id}]

+ Parameters
    + id (string, optional) - the question id

        + Default: 1

### View a Question [GET]

+ Response 200
`
	root := etree.Parse([]byte(doc))
	bp, err := blueprint.Parse(root)
	require.NoError(t, err)

	// The action's URI has a {placeholder}, but it resolves via the
	// parameter's declared default, so it must still be indexed and
	// findable both at its full expanded path...
	got, err := bp.Lookup("/questions/1:GET")
	require.NoError(t, err)
	actions, ok := got.([]*blueprint.Action)
	require.True(t, ok)
	require.Len(t, actions, 1)
	assert.Equal(t, "GET", actions[0].RequestMethod())

	// ...and at a shorter, registered ancestor prefix of that path.
	got, err = bp.Lookup("/questions:GET")
	require.NoError(t, err)
	actions, ok = got.([]*blueprint.Action)
	require.True(t, ok)
	require.Len(t, actions, 1)

	// ...and at the unconditional root entry.
	got, err = bp.Lookup("/:GET")
	require.NoError(t, err)
	actions, ok = got.([]*blueprint.Action)
	require.True(t, ok)
	require.Len(t, actions, 1)
}

func TestParseRejectsMissingFormatMetadata(t *testing.T) {
	const doc = `HOST: https://api.example.com

# Polls

# Group Questions
`
	root := etree.Parse([]byte(doc))
	_, err := blueprint.Parse(root)
	require.Error(t, err)
}

func TestMergeRejectsDuplicateActionID(t *testing.T) {
	bp1 := parseSample(t)
	bp2 := parseSample(t)
	err := bp1.Merge(bp2)
	// Neither document declares a "Data Structures" section, so nothing
	// collides there; the duplicate Question/GET action id is what trips.
	require.Error(t, err)
}

func TestMergeDistinctGroups(t *testing.T) {
	const second = `FORMAT: 1A

# Widgets

# Group Widgets

## Widget [/widgets/{id}]

### View a Widget [GET]

+ Response 200
`
	bp1 := parseSample(t)
	root := etree.Parse([]byte(second))
	bp2, err := blueprint.Parse(root)
	require.NoError(t, err)

	require.NoError(t, bp1.Merge(bp2))
	assert.Equal(t, "Polls & Widgets", bp1.Name())
	assert.Equal(t, 2, len(bp1.Groups()))
	assert.Equal(t, 3, bp1.CountActions())
}
