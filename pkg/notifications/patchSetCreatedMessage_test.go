package notifications

import (
	"testing"

	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/gimlet-io/gerrit-slack/pkg/model"
	"github.com/stretchr/testify/assert"
)

func testConfig() *model.ProjectConfig {
	config := model.DefaultProjectConfig("testproject")
	config.Enabled = true
	config.WebhookURL = "https://webhook/"
	config.Channel = "testchannel"
	config.Ignore = "^WIP.*"
	return config
}

func patchSetCreated(commitMessage string) *gerrit.PatchSetCreatedEvent {
	return &gerrit.PatchSetCreatedEvent{
		Change: &gerrit.Change{
			Number:        1234,
			Project:       "testproject",
			Branch:        "master",
			URL:           "https://change/",
			CommitMessage: commitMessage,
		},
		PatchSet: &gerrit.PatchSet{Number: 1, Kind: gerrit.Rework},
		Uploader: &gerrit.Account{Name: "Unit Tester"},
	}
}

func shouldPublish(t *testing.T, event gerrit.Event, config *model.ProjectConfig) bool {
	generator, err := NewGenerator(event, config)
	assert.Nil(t, err)
	return generator.ShouldPublish()
}

func TestFactoryCreatesExpectedType(t *testing.T) {
	generator, err := NewGenerator(patchSetCreated("title"), testConfig())
	assert.Nil(t, err)
	assert.IsType(t, &patchSetCreatedMessage{}, generator)
}

func TestPublishesWhenExpected(t *testing.T) {
	assert.True(t, shouldPublish(t, patchSetCreated("This is a title\nAnd a the body."), testConfig()))
}

func TestDoesNotPublishWhenDisabled(t *testing.T) {
	config := testConfig()
	config.Enabled = false
	assert.False(t, shouldPublish(t, patchSetCreated("This is a title"), config))
}

func TestDoesNotPublishWhenMessageMatchesIgnore(t *testing.T) {
	assert.False(t, shouldPublish(t, patchSetCreated("WIP-This is a title\nAnd a the body."), testConfig()))
	assert.False(t, shouldPublish(t, patchSetCreated("WIP-anything"), testConfig()))
}

func TestPublishesWhenIgnoreOnlyPartiallyMatches(t *testing.T) {
	config := testConfig()
	config.Ignore = "WIP"
	assert.True(t, shouldPublish(t, patchSetCreated("WIP-anything"), config))

	config.Ignore = "WIP.*"
	assert.False(t, shouldPublish(t, patchSetCreated("WIP-anything\nspanning lines"), config))
}

func TestDoesNotPublishWhenTurnedOff(t *testing.T) {
	config := testConfig()
	config.PublishOnPatchSetCreated = false
	assert.False(t, shouldPublish(t, patchSetCreated("This is a title\nAnd a the body."), config))
}

func TestHandlesInvalidIgnorePatterns(t *testing.T) {
	config := testConfig()
	config.Ignore = ""
	assert.True(t, shouldPublish(t, patchSetCreated("WIP-anything"), config))

	config.Ignore = "(unbalanced"
	generator, err := NewGenerator(patchSetCreated("WIP-anything"), config)
	assert.Nil(t, err)
	decision := generator.Decide()
	assert.True(t, decision.Publish)
	assert.Len(t, decision.Degraded, 1)

	config.Ignore = "a)|(b"
	assert.True(t, shouldPublish(t, patchSetCreated("a"), config))
}

func TestUnchangedPatchSets(t *testing.T) {
	for _, kind := range []gerrit.ChangeKind{
		gerrit.TrivialRebase,
		gerrit.MergeFirstParentUpdate,
		gerrit.NoCodeChange,
		gerrit.NoChange,
	} {
		event := patchSetCreated("This is a title")
		event.PatchSet.Kind = kind
		assert.False(t, shouldPublish(t, event, testConfig()), "should not publish %s", kind)

		config := testConfig()
		config.IgnoreUnchangedPatchSet = false
		assert.True(t, shouldPublish(t, event, config), "should publish %s when unchanged patch sets are not ignored", kind)
	}
}

func TestPublishesWhenRework(t *testing.T) {
	event := patchSetCreated("This is a title")
	event.PatchSet.Kind = gerrit.Rework
	assert.True(t, shouldPublish(t, event, testConfig()))
}

func TestPublishesWhenUnknownChangeKind(t *testing.T) {
	event := patchSetCreated("This is a title")
	event.PatchSet.Kind = "SOMETHING_NEW"
	assert.True(t, shouldPublish(t, event, testConfig()))
}

func TestWorkInProgress(t *testing.T) {
	event := patchSetCreated("This is a title")
	event.Change.WIP = true
	assert.False(t, shouldPublish(t, event, testConfig()))

	config := testConfig()
	config.IgnoreUnchangedPatchSet = false
	config.IgnoreWorkInProgressPatchSet = false
	config.IgnorePrivatePatchSet = false
	assert.True(t, shouldPublish(t, event, config))
}

func TestPrivate(t *testing.T) {
	event := patchSetCreated("This is a title")
	event.Change.Private = true
	assert.False(t, shouldPublish(t, event, testConfig()))

	config := testConfig()
	config.IgnoreUnchangedPatchSet = false
	config.IgnoreWorkInProgressPatchSet = false
	config.IgnorePrivatePatchSet = false
	assert.True(t, shouldPublish(t, event, config))
}

func TestMissingAttributesDoNotSuppress(t *testing.T) {
	event := &gerrit.PatchSetCreatedEvent{}

	generator, err := NewGenerator(event, testConfig())
	assert.Nil(t, err)
	decision := generator.Decide()
	assert.True(t, decision.Publish)
	assert.Len(t, decision.Degraded, 4, "patch set, private, wip and ignore rules cannot be evaluated")

	assert.Equal(t, "", generator.Generate())
}

func TestSuppressedByFirstRule(t *testing.T) {
	config := testConfig()
	config.PublishOnPatchSetCreated = false
	event := patchSetCreated("WIP-anything")
	event.Change.Private = true

	generator, err := NewGenerator(event, config)
	assert.Nil(t, err)
	decision := generator.Decide()
	assert.False(t, decision.Publish)
	assert.Equal(t, "publish-on-patch-set-created", decision.SuppressedBy)
}

func TestGeneratesExpectedMessage(t *testing.T) {
	generator, err := NewGenerator(patchSetCreated("This is the title\nThis is the message body."), testConfig())
	assert.Nil(t, err)

	expected := "{\n" +
		"  \"channel\": \"#testchannel\",\n" +
		"  \"attachments\": [\n" +
		"    {\n" +
		"      \"fallback\": \"Unit Tester proposed testproject (master) https://change/: This is the title\",\n" +
		"      \"pretext\": \"Unit Tester proposed <https://change/|testproject (master) change 1234>\",\n" +
		"      \"title\": \"This is the title\",\n" +
		"      \"title_link\": \"https://change/\",\n" +
		"      \"text\": \"\",\n" +
		"      \"color\": \"good\"\n" +
		"    }\n" +
		"  ]\n" +
		"}\n"

	assert.Equal(t, expected, generator.Generate())
}
