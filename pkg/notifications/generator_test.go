package notifications

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/stretchr/testify/assert"
)

func TestDispatchesOnKind(t *testing.T) {
	change := &gerrit.Change{Number: 1, Project: "testproject"}

	generator, err := NewGenerator(&gerrit.ChangeMergedEvent{Change: change}, testConfig())
	assert.Nil(t, err)
	assert.IsType(t, &changeMergedMessage{}, generator)

	generator, err = NewGenerator(&gerrit.ReviewerAddedEvent{Change: change}, testConfig())
	assert.Nil(t, err)
	assert.IsType(t, &reviewerAddedMessage{}, generator)

	generator, err = NewGenerator(&gerrit.PrivateStateChangedEvent{Change: change}, testConfig())
	assert.Nil(t, err)
	assert.IsType(t, &privateStateChangedMessage{}, generator)

	generator, err = NewGenerator(&gerrit.WorkInProgressStateChangedEvent{Change: change}, testConfig())
	assert.Nil(t, err)
	assert.IsType(t, &wipStateChangedMessage{}, generator)
}

func TestUnsupportedEventKind(t *testing.T) {
	_, err := NewGenerator(&gerrit.UnknownEvent{Type: "comment-added"}, testConfig())
	assert.True(t, errors.Is(err, ErrUnsupportedEventKind))

	var unsupported *UnsupportedEventKindError
	assert.True(t, errors.As(err, &unsupported))
	assert.Equal(t, gerrit.EventKind("comment-added"), unsupported.Kind)

	_, err = NewGenerator(nil, testConfig())
	assert.True(t, errors.Is(err, ErrUnsupportedEventKind))

	var nilEvent *gerrit.PatchSetCreatedEvent
	_, err = NewGenerator(nilEvent, testConfig())
	assert.True(t, errors.Is(err, ErrUnsupportedEventKind))

	assert.False(t, Supported("comment-added"))
	assert.True(t, Supported(gerrit.PatchSetCreated))
}

func TestMissingConfigIsDisabled(t *testing.T) {
	generator, err := NewGenerator(patchSetCreated("title"), nil)
	assert.Nil(t, err)
	assert.False(t, generator.ShouldPublish())
}

func TestGeneratorDoesNotMutateConfig(t *testing.T) {
	config := testConfig()
	before := *config

	generator, err := NewGenerator(patchSetCreated("This is the title"), config)
	assert.Nil(t, err)
	generator.ShouldPublish()
	generator.Generate()

	assert.Equal(t, before, *config)
}

func TestGenerateReturnsEmptyOnRenderFailure(t *testing.T) {
	renderer := NewRenderer(fstest.MapFS{}, templateName)

	generator, err := NewGeneratorWithRenderer(patchSetCreated("This is the title"), testConfig(), renderer)
	assert.Nil(t, err)
	assert.True(t, generator.ShouldPublish())
	assert.Equal(t, "", generator.Generate())
}
