package notifications

import (
	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/gimlet-io/gerrit-slack/pkg/model"
)

// privateStateChangedMessage announces changes that were made public
type privateStateChangedMessage struct {
	event    *gerrit.PrivateStateChangedEvent
	config   *model.ProjectConfig
	renderer *Renderer
}

func (m *privateStateChangedMessage) Decide() Decision {
	return evaluate(gerrit.PrivateStateChanged,
		enabledRule(m.config),
		toggleRule("publish-on-private-to-public", m.config.PublishOnPrivateToPublic),
		stillPrivateRule(m.event.Change),
	)
}

func (m *privateStateChangedMessage) ShouldPublish() bool {
	return m.Decide().Publish
}

func (m *privateStateChangedMessage) Generate() string {
	return generate(gerrit.PrivateStateChanged, m.renderer, m.fields)
}

func (m *privateStateChangedMessage) fields() (*MessageTemplate, error) {
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
