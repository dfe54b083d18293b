package notifications

import (
	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/gimlet-io/gerrit-slack/pkg/model"
)

type factory func(event gerrit.Event, config *model.ProjectConfig, renderer *Renderer) Generator

var generators = map[gerrit.EventKind]factory{
	gerrit.PatchSetCreated: func(event gerrit.Event, config *model.ProjectConfig, renderer *Renderer) Generator {
		if e, ok := event.(*gerrit.PatchSetCreatedEvent); ok && e != nil {
			return &patchSetCreatedMessage{event: e, config: config, renderer: renderer}
		}
		return nil
	},
	gerrit.ChangeMerged: func(event gerrit.Event, config *model.ProjectConfig, renderer *Renderer) Generator {
		if e, ok := event.(*gerrit.ChangeMergedEvent); ok && e != nil {
			return &changeMergedMessage{event: e, config: config, renderer: renderer}
		}
		return nil
	},
	gerrit.ReviewerAdded: func(event gerrit.Event, config *model.ProjectConfig, renderer *Renderer) Generator {
		if e, ok := event.(*gerrit.ReviewerAddedEvent); ok && e != nil {
			return &reviewerAddedMessage{event: e, config: config, renderer: renderer}
		}
		return nil
	},
	gerrit.PrivateStateChanged: func(event gerrit.Event, config *model.ProjectConfig, renderer *Renderer) Generator {
		if e, ok := event.(*gerrit.PrivateStateChangedEvent); ok && e != nil {
			return &privateStateChangedMessage{event: e, config: config, renderer: renderer}
		}
		return nil
	},
	gerrit.WorkInProgressStateChanged: func(event gerrit.Event, config *model.ProjectConfig, renderer *Renderer) Generator {
		if e, ok := event.(*gerrit.WorkInProgressStateChangedEvent); ok && e != nil {
			return &wipStateChangedMessage{event: e, config: config, renderer: renderer}
		}
		return nil
	},
}

// NewGenerator returns the message generator of the event's kind, rendering with the embedded template
func NewGenerator(event gerrit.Event, config *model.ProjectConfig) (Generator, error) {
	return newGenerator(event, config, defaultRenderer)
}

// NewGeneratorWithRenderer is NewGenerator with a custom message renderer
func NewGeneratorWithRenderer(event gerrit.Event, config *model.ProjectConfig, renderer *Renderer) (Generator, error) {
	return newGenerator(event, config, renderer)
}

func newGenerator(event gerrit.Event, config *model.ProjectConfig, renderer *Renderer) (Generator, error) {
	if event == nil {
		return nil, &UnsupportedEventKindError{}
	}

	f, ok := generators[event.Kind()]
	if !ok {
		return nil, &UnsupportedEventKindError{Kind: event.Kind()}
	}

	if config == nil {
		config = model.DefaultProjectConfig(projectOf(event))
	}

	generator := f(event, config, renderer)
	if generator == nil {
		return nil, &UnsupportedEventKindError{Kind: event.Kind()}
	}

	return generator, nil
}

func projectOf(event gerrit.Event) string {
	if change := gerrit.ChangeOf(event); change != nil {
		return change.Project
	}
	return ""
}
