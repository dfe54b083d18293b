package notifications

import (
	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/gimlet-io/gerrit-slack/pkg/model"
)

type changeMergedMessage struct {
	event    *gerrit.ChangeMergedEvent
	config   *model.ProjectConfig
	renderer *Renderer
}

func (m *changeMergedMessage) Decide() Decision {
	return evaluate(gerrit.ChangeMerged,
		enabledRule(m.config),
		toggleRule("publish-on-change-merged", m.config.PublishOnChangeMerged),
	)
}

func (m *changeMergedMessage) ShouldPublish() bool {
	return m.Decide().Publish
}

func (m *changeMergedMessage) Generate() string {
	return generate(gerrit.ChangeMerged, m.renderer, m.fields)
}

// merge messages carry the commit title as body, without attachment title
func (m *changeMergedMessage) fields() (*MessageTemplate, error) {
	change := m.event.Change
	if change == nil {
		return nil, missing("change")
	}
	if m.event.Submitter == nil {
		return nil, missing("submitter")
	}

	return &MessageTemplate{
		Channel: m.config.Channel,
		Name:    m.event.Submitter.Name,
		Action:  "merged",
		Number:  change.Number,
		Project: change.Project,
		Branch:  change.Branch,
		URL:     change.URL,
		Message: change.Title(),
	}, nil
}
