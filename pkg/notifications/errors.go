package notifications

import (
	"errors"
	"fmt"

	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
)

var ErrUnsupportedEventKind = errors.New("unsupported event kind")

// UnsupportedEventKindError is returned when no message generator is registered for an event kind.
// It means an event source was wired up without a matching generator.
type UnsupportedEventKindError struct {
	Kind gerrit.EventKind
}

func (e *UnsupportedEventKindError) Error() string {
	return fmt.Sprintf("no message generator for event kind %q", e.Kind)
}

func (e *UnsupportedEventKindError) Is(target error) bool {
	return target == ErrUnsupportedEventKind
}

// PolicyEvaluationError is a publish rule that could not be evaluated.
// The rule is treated as not suppressing.
type PolicyEvaluationError struct {
	Rule string
	Err  error
}

func (e *PolicyEvaluationError) Error() string {
	return fmt.Sprintf("cannot evaluate %s rule: %s", e.Rule, e.Err)
}

func (e *PolicyEvaluationError) Unwrap() error {
	return e.Err
}

// RenderError is a message template that could not be loaded or executed
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("cannot render %s: %s", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

type missingAttributeError struct {
	attribute string
}

func (e *missingAttributeError) Error() string {
	return fmt.Sprintf("event has no %s attribute", e.attribute)
}

func missing(attribute string) error {
	return &missingAttributeError{attribute: attribute}
}
