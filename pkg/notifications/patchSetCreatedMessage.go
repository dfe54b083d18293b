package notifications

import (
	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/gimlet-io/gerrit-slack/pkg/model"
)

type patchSetCreatedMessage struct {
	event    *gerrit.PatchSetCreatedEvent
	config   *model.ProjectConfig
	renderer *Renderer
}

func (m *patchSetCreatedMessage) Decide() Decision {
	return evaluate(gerrit.PatchSetCreated,
		enabledRule(m.config),
		toggleRule("publish-on-patch-set-created", m.config.PublishOnPatchSetCreated),
		unchangedPatchSetRule(m.config, m.event.PatchSet),
		privateRule(m.config, m.event.Change),
		workInProgressRule(m.config, m.event.Change),
		ignorePatternRule(m.config, m.event.Change),
	)
}

func (m *patchSetCreatedMessage) ShouldPublish() bool {
	return m.Decide().Publish
}

func (m *patchSetCreatedMessage) Generate() string {
	return generate(gerrit.PatchSetCreated, m.renderer, m.fields)
}

func (m *patchSetCreatedMessage) fields() (*MessageTemplate, error) {
	change := m.event.Change
	if change == nil {
		return nil, missing("change")
	}
	if m.event.Uploader == nil {
		return nil, missing("uploader")
	}

	return &MessageTemplate{
		Channel: m.config.Channel,
		Name:    m.event.Uploader.Name,
		Action:  "proposed",
		Number:  change.Number,
		Project: change.Project,
		Branch:  change.Branch,
		URL:     change.URL,
		Title:   change.Title(),
	}, nil
}
