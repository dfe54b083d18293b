package notifications

import (
	"regexp"

	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/gimlet-io/gerrit-slack/pkg/model"
	"github.com/sirupsen/logrus"
)

// Decision is the outcome of the publish rules of an event
type Decision struct {
	Publish bool

	// SuppressedBy names the rule that suppressed publishing
	SuppressedBy string

	// Degraded holds the rules that could not be evaluated
	Degraded []error
}

type rule struct {
	name  string
	check func() (suppress bool, err error)
}

// evaluate runs the rules in order and stops at the first one that suppresses.
// A rule that fails to evaluate does not suppress.
func evaluate(kind gerrit.EventKind, rules ...rule) Decision {
	decision := Decision{Publish: true}

	for _, r := range rules {
		suppress, err := r.check()
		if err != nil {
			policyErr := &PolicyEvaluationError{Rule: r.name, Err: err}
			logrus.WithField("kind", kind).Warn(policyErr.Error())
			decision.Degraded = append(decision.Degraded, policyErr)
			continue
		}

		if suppress {
			logrus.WithField("kind", kind).Debugf("not publishing, suppressed by %s", r.name)
			decision.Publish = false
			decision.SuppressedBy = r.name
			return decision
		}
	}

	return decision
}

func enabledRule(config *model.ProjectConfig) rule {
	return rule{
		name: "enabled",
		check: func() (bool, error) {
			return !config.Enabled, nil
		},
	}
}

func toggleRule(name string, publish bool) rule {
	return rule{
		name: name,
		check: func() (bool, error) {
			return !publish, nil
		},
	}
}

func unchangedPatchSetRule(config *model.ProjectConfig, patchSet *gerrit.PatchSet) rule {
	return rule{
		name: "ignore-unchanged-patch-set",
		check: func() (bool, error) {
			if !config.IgnoreUnchangedPatchSet {
				return false, nil
			}
			if patchSet == nil {
				return false, missing("patchSet")
			}
			return unchangedChangeKind(patchSet.Kind), nil
		},
	}
}

func unchangedChangeKind(kind gerrit.ChangeKind) bool {
	switch kind {
	case gerrit.TrivialRebase,
		gerrit.MergeFirstParentUpdate,
		gerrit.NoCodeChange,
		gerrit.NoChange:
		return true
	case gerrit.Rework:
		return false
	default:
		// unknown kinds count as changed
		logrus.Warnf("unknown change kind %q", kind)
		return false
	}
}

func privateRule(config *model.ProjectConfig, change *gerrit.Change) rule {
	return rule{
		name: "ignore-private-patch-set",
		check: func() (bool, error) {
			if !config.IgnorePrivatePatchSet {
				return false, nil
			}
			if change == nil {
				return false, missing("change")
			}
			return change.Private, nil
		},
	}
}

func workInProgressRule(config *model.ProjectConfig, change *gerrit.Change) rule {
	return rule{
		name: "ignore-wip-patch-set",
		check: func() (bool, error) {
			if !config.IgnoreWorkInProgressPatchSet {
				return false, nil
			}
			if change == nil {
				return false, missing("change")
			}
			return change.WIP, nil
		},
	}
}

// stillPrivateRule suppresses private state changes that left the change private
func stillPrivateRule(change *gerrit.Change) rule {
	return rule{
		name: "still-private",
		check: func() (bool, error) {
			if change == nil {
				return false, missing("change")
			}
			return change.Private, nil
		},
	}
}

// stillWorkInProgressRule suppresses wip state changes that left the change in progress
func stillWorkInProgressRule(change *gerrit.Change) rule {
	return rule{
		name: "still-wip",
		check: func() (bool, error) {
			if change == nil {
				return false, missing("change")
			}
			return change.WIP, nil
		},
	}
}

func ignorePatternRule(config *model.ProjectConfig, change *gerrit.Change) rule {
	return rule{
		name: "ignore",
		check: func() (bool, error) {
			if config.Ignore == "" {
				return false, nil
			}
			pattern, err := compileIgnorePattern(config.Ignore)
			if err != nil {
				return false, err
			}
			if change == nil {
				return false, missing("change")
			}
			return pattern.MatchString(change.CommitMessage), nil
		},
	}
}

// compileIgnorePattern compiles an ignore expression that has to match the whole commit message.
// Dot matches line terminators.
func compileIgnorePattern(ignore string) (*regexp.Regexp, error) {
	// the bare pattern has to be valid on its own, wrapping could balance a stray parenthesis
	if _, err := regexp.Compile(ignore); err != nil {
		return nil, err
	}
	return regexp.Compile(`(?s)^(?:` + ignore + `)$`)
}
