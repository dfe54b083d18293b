package gerrit

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EventKind is the stream-event type name Gerrit puts into the "type" field
type EventKind string

const (
	PatchSetCreated            EventKind = "patchset-created"
	ChangeMerged               EventKind = "change-merged"
	ReviewerAdded              EventKind = "reviewer-added"
	PrivateStateChanged        EventKind = "private-state-changed"
	WorkInProgressStateChanged EventKind = "wip-state-changed"
)

// ChangeKind classifies how a patch set differs from its predecessor
type ChangeKind string

const (
	Rework                 ChangeKind = "REWORK"
	TrivialRebase          ChangeKind = "TRIVIAL_REBASE"
	MergeFirstParentUpdate ChangeKind = "MERGE_FIRST_PARENT_UPDATE"
	NoCodeChange           ChangeKind = "NO_CODE_CHANGE"
	NoChange               ChangeKind = "NO_CHANGE"
)

type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

type PatchSet struct {
	Number   int        `json:"number"`
	Revision string     `json:"revision"`
	Ref      string     `json:"ref,omitempty"`
	Kind     ChangeKind `json:"kind,omitempty"`
}

type Change struct {
	Number        int    `json:"number"`
	Project       string `json:"project"`
	Branch        string `json:"branch"`
	ID            string `json:"id,omitempty"`
	Subject       string `json:"subject,omitempty"`
	URL           string `json:"url"`
	CommitMessage string `json:"commitMessage"`
	Status        string `json:"status,omitempty"`
	WIP           bool   `json:"wip,omitempty"`
	Private       bool   `json:"private,omitempty"`
}

// Title returns the first line of the commit message
func (c *Change) Title() string {
	title, _, _ := strings.Cut(c.CommitMessage, "\n")
	return title
}

// Event is one Gerrit lifecycle occurrence. The concrete type is determined by Kind.
type Event interface {
	Kind() EventKind
}

type PatchSetCreatedEvent struct {
	Change   *Change
	PatchSet *PatchSet
	Uploader *Account
}

func (e *PatchSetCreatedEvent) Kind() EventKind { return PatchSetCreated }

type ChangeMergedEvent struct {
	Change    *Change
	PatchSet  *PatchSet
	Submitter *Account
}

func (e *ChangeMergedEvent) Kind() EventKind { return ChangeMerged }

type ReviewerAddedEvent struct {
	Change   *Change
	PatchSet *PatchSet
	Reviewer *Account
}

func (e *ReviewerAddedEvent) Kind() EventKind { return ReviewerAdded }

type PrivateStateChangedEvent struct {
	Change   *Change
	PatchSet *PatchSet
	Changer  *Account
}

func (e *PrivateStateChangedEvent) Kind() EventKind { return PrivateStateChanged }

type WorkInProgressStateChangedEvent struct {
	Change   *Change
	PatchSet *PatchSet
	Changer  *Account
}

func (e *WorkInProgressStateChangedEvent) Kind() EventKind { return WorkInProgressStateChanged }

// UnknownEvent carries a stream event whose type has no dedicated variant
type UnknownEvent struct {
	Type   string
	Change *Change
}

func (e *UnknownEvent) Kind() EventKind {
	if e == nil {
		return ""
	}
	return EventKind(e.Type)
}

// streamEvent is the wire shape of a Gerrit stream event
type streamEvent struct {
	Type           string    `json:"type"`
	Change         *Change   `json:"change,omitempty"`
	PatchSet       *PatchSet `json:"patchSet,omitempty"`
	Uploader       *Account  `json:"uploader,omitempty"`
	Submitter      *Account  `json:"submitter,omitempty"`
	Reviewer       *Account  `json:"reviewer,omitempty"`
	Changer        *Account  `json:"changer,omitempty"`
	EventCreatedOn int64     `json:"eventCreatedOn,omitempty"`
}

// Parse decodes a Gerrit stream-event JSON document into its typed variant
func Parse(data []byte) (Event, error) {
	var raw streamEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("cannot parse gerrit event: %s", err)
	}
	if raw.Type == "" {
		return nil, fmt.Errorf("gerrit event has no type")
	}

	switch EventKind(raw.Type) {
	case PatchSetCreated:
		return &PatchSetCreatedEvent{Change: raw.Change, PatchSet: raw.PatchSet, Uploader: raw.Uploader}, nil
	case ChangeMerged:
		return &ChangeMergedEvent{Change: raw.Change, PatchSet: raw.PatchSet, Submitter: raw.Submitter}, nil
	case ReviewerAdded:
		return &ReviewerAddedEvent{Change: raw.Change, PatchSet: raw.PatchSet, Reviewer: raw.Reviewer}, nil
	case PrivateStateChanged:
		return &PrivateStateChangedEvent{Change: raw.Change, PatchSet: raw.PatchSet, Changer: raw.Changer}, nil
	case WorkInProgressStateChanged:
		return &WorkInProgressStateChangedEvent{Change: raw.Change, PatchSet: raw.PatchSet, Changer: raw.Changer}, nil
	default:
		return &UnknownEvent{Type: raw.Type, Change: raw.Change}, nil
	}
}

// ChangeOf returns the change an event refers to, or nil if it carries none
func ChangeOf(event Event) *Change {
	switch e := event.(type) {
	case *PatchSetCreatedEvent:
		if e != nil {
			return e.Change
		}
	case *ChangeMergedEvent:
		if e != nil {
			return e.Change
		}
	case *ReviewerAddedEvent:
		if e != nil {
			return e.Change
		}
	case *PrivateStateChangedEvent:
		if e != nil {
			return e.Change
		}
	case *WorkInProgressStateChangedEvent:
		if e != nil {
			return e.Change
		}
	case *UnknownEvent:
		if e != nil {
			return e.Change
		}
	}
	return nil
}
