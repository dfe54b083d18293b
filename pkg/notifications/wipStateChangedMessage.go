package notifications

import (
	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/gimlet-io/gerrit-slack/pkg/model"
)

// wipStateChangedMessage announces changes that became ready for review
type wipStateChangedMessage struct {
	event    *gerrit.WorkInProgressStateChangedEvent
	config   *model.ProjectConfig
	renderer *Renderer
}

func (m *wipStateChangedMessage) Decide() Decision {
	return evaluate(gerrit.WorkInProgressStateChanged,
		enabledRule(m.config),
		toggleRule("publish-on-wip-ready", m.config.PublishOnWipReady),
		stillWorkInProgressRule(m.event.Change),
	)
}

func (m *wipStateChangedMessage) ShouldPublish() bool {
	return m.Decide().Publish
}

func (m *wipStateChangedMessage) Generate() string {
	return generate(gerrit.WorkInProgressStateChanged, m.renderer, m.fields)
}

func (m *wipStateChangedMessage) fields() (*MessageTemplate, error) {
	change := m.event.Change
	if change == nil {
		return nil, missing("change")
	}
	if m.event.Changer == nil {
		return nil, missing("changer")
	}

	return &MessageTemplate{
		Channel: m.config.Channel,
		Name:    m.event.Changer.Name,
		Action:  "proposed",
		Number:  change.Number,
		Project: change.Project,
		Branch:  change.Branch,
		URL:     change.URL,
		Title:   change.Title(),
	}, nil
}
