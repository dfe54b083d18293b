package notifications

import (
	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/gimlet-io/gerrit-slack/pkg/model"
)

type reviewerAddedMessage struct {
	event    *gerrit.ReviewerAddedEvent
	config   *model.ProjectConfig
	renderer *Renderer
}

func (m *reviewerAddedMessage) Decide() Decision {
	return evaluate(gerrit.ReviewerAdded,
		enabledRule(m.config),
		toggleRule("publish-on-reviewer-added", m.config.PublishOnReviewerAdded),
		privateRule(m.config, m.event.Change),
		workInProgressRule(m.config, m.event.Change),
	)
}

func (m *reviewerAddedMessage) ShouldPublish() bool {
	return m.Decide().Publish
}

func (m *reviewerAddedMessage) Generate() string {
	return generate(gerrit.ReviewerAdded, m.renderer, m.fields)
}

func (m *reviewerAddedMessage) fields() (*MessageTemplate, error) {
	change := m.event.Change
	if change == nil {
		return nil, missing("change")
	}
	if m.event.Reviewer == nil {
		return nil, missing("reviewer")
	}

	return &MessageTemplate{
		Channel: m.config.Channel,
		Name:    m.event.Reviewer.Name,
		Action:  "was added to review",
		Number:  change.Number,
		Project: change.Project,
		Branch:  change.Branch,
		URL:     change.URL,
		Title:   change.Title(),
	}, nil
}
