package gerrit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const patchSetCreatedJSON = `{
  "type": "patchset-created",
  "uploader": {"name": "Unit Tester", "email": "unit@tester.com"},
  "patchSet": {"number": 2, "revision": "76ab7d611242f7c6742f0ab662133e02b2ba2b1c", "kind": "TRIVIAL_REBASE"},
  "change": {
    "project": "testproject",
    "branch": "master",
    "number": 1234,
    "url": "https://change/",
    "commitMessage": "This is the title\nThis is the message body.",
    "wip": true
  },
  "eventCreatedOn": 1600000000
}`

func TestParsePatchSetCreated(t *testing.T) {
	event, err := Parse([]byte(patchSetCreatedJSON))
	assert.Nil(t, err)
	assert.Equal(t, PatchSetCreated, event.Kind())

	patchSetCreated, ok := event.(*PatchSetCreatedEvent)
	assert.True(t, ok)
	assert.Equal(t, "Unit Tester", patchSetCreated.Uploader.Name)
	assert.Equal(t, TrivialRebase, patchSetCreated.PatchSet.Kind)
	assert.Equal(t, 1234, patchSetCreated.Change.Number)
	assert.True(t, patchSetCreated.Change.WIP)
	assert.False(t, patchSetCreated.Change.Private)
	assert.Equal(t, "This is the title", patchSetCreated.Change.Title())
}

func TestParseVariants(t *testing.T) {
	event, err := Parse([]byte(`{"type": "change-merged", "submitter": {"name": "Merger"}, "change": {"number": 1}}`))
	assert.Nil(t, err)
	merged, ok := event.(*ChangeMergedEvent)
	assert.True(t, ok)
	assert.Equal(t, "Merger", merged.Submitter.Name)

	event, err = Parse([]byte(`{"type": "reviewer-added", "reviewer": {"name": "Reviewer"}}`))
	assert.Nil(t, err)
	reviewerAdded, ok := event.(*ReviewerAddedEvent)
	assert.True(t, ok)
	assert.Nil(t, reviewerAdded.Change)

	event, err = Parse([]byte(`{"type": "private-state-changed", "changer": {"name": "Changer"}}`))
	assert.Nil(t, err)
	assert.IsType(t, &PrivateStateChangedEvent{}, event)

	event, err = Parse([]byte(`{"type": "wip-state-changed", "changer": {"name": "Changer"}}`))
	assert.Nil(t, err)
	assert.IsType(t, &WorkInProgressStateChangedEvent{}, event)
}

func TestParseUnknownType(t *testing.T) {
	event, err := Parse([]byte(`{"type": "comment-added", "change": {"number": 5}}`))
	assert.Nil(t, err)
	assert.Equal(t, EventKind("comment-added"), event.Kind())
	assert.Equal(t, 5, ChangeOf(event).Number)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.NotNil(t, err)

	_, err = Parse([]byte(`{"change": {"number": 5}}`))
	assert.NotNil(t, err)
}

func TestTitle(t *testing.T) {
	c := &Change{CommitMessage: "single line"}
	assert.Equal(t, "single line", c.Title())

	c = &Change{CommitMessage: ""}
	assert.Equal(t, "", c.Title())
}
