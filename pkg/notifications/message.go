package notifications

import (
	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/sirupsen/logrus"
)

// Generator decides whether a Gerrit event is published and renders its Slack message.
// A Generator serves one event and one project config.
type Generator interface {
	Decide() Decision
	ShouldPublish() bool
	Generate() string
}

// generate renders the message built by fields.
// Failures are logged and result in an empty message.
func generate(kind gerrit.EventKind, renderer *Renderer, fields func() (*MessageTemplate, error)) string {
	template, err := fields()
	if err != nil {
		logrus.WithField("kind", kind).Errorf("error generating message: %s", err)
		return ""
	}

	message, err := renderer.Render(template)
	if err != nil {
		logrus.WithField("kind", kind).Errorf("error generating message: %s", err)
		return ""
	}

	return message
}
