package model

const (
	DefaultChannel = "general"

	// AllProjects is the root project every Gerrit project inherits configuration from
	AllProjects = "All-Projects"
)

// ProjectConfig holds the notification settings of a Gerrit project.
// A config is read-only for the duration of a notification decision.
type ProjectConfig struct {
	// ID for this config
	ID int64 `json:"-" yaml:"-" meddler:"id,pk"`

	// Project is the Gerrit project name
	// required: true
	Project string `json:"project" yaml:"project" meddler:"project"`

	// Enabled is the global gate of the project, nothing is published if false
	Enabled bool `json:"enabled" yaml:"enabled" meddler:"enabled"`

	// WebhookURL is the Slack incoming webhook the payloads are posted to
	WebhookURL string `json:"webhookUrl" yaml:"webhookUrl" meddler:"webhook_url,secret"`

	// Channel is the Slack channel name without the leading #
	Channel string `json:"channel" yaml:"channel" meddler:"channel"`

	// Ignore is a regular expression, commit messages fully matching it are not published
	Ignore string `json:"ignore" yaml:"ignore" meddler:"ignore_pattern"`

	PublishOnPatchSetCreated bool `json:"publishOnPatchSetCreated" yaml:"publishOnPatchSetCreated" meddler:"publish_on_patch_set_created"`
	PublishOnChangeMerged    bool `json:"publishOnChangeMerged" yaml:"publishOnChangeMerged" meddler:"publish_on_change_merged"`
	PublishOnReviewerAdded   bool `json:"publishOnReviewerAdded" yaml:"publishOnReviewerAdded" meddler:"publish_on_reviewer_added"`
	PublishOnPrivateToPublic bool `json:"publishOnPrivateToPublic" yaml:"publishOnPrivateToPublic" meddler:"publish_on_private_to_public"`
	PublishOnWipReady        bool `json:"publishOnWipReady" yaml:"publishOnWipReady" meddler:"publish_on_wip_ready"`

	// IgnoreUnchangedPatchSet suppresses rebases and patch sets without code change
	IgnoreUnchangedPatchSet      bool `json:"ignoreUnchangedPatchSet" yaml:"ignoreUnchangedPatchSet" meddler:"ignore_unchanged_patch_set"`
	IgnorePrivatePatchSet        bool `json:"ignorePrivatePatchSet" yaml:"ignorePrivatePatchSet" meddler:"ignore_private_patch_set"`
	IgnoreWorkInProgressPatchSet bool `json:"ignoreWorkInProgressPatchSet" yaml:"ignoreWorkInProgressPatchSet" meddler:"ignore_wip_patch_set"`
}

// DefaultProjectConfig returns the settings used when a project has no configuration
func DefaultProjectConfig(project string) *ProjectConfig {
	return &ProjectConfig{
		Project:                      project,
		Enabled:                      false,
		Channel:                      DefaultChannel,
		PublishOnPatchSetCreated:     true,
		PublishOnChangeMerged:        true,
		PublishOnReviewerAdded:       true,
		PublishOnPrivateToPublic:     true,
		PublishOnWipReady:            true,
		IgnoreUnchangedPatchSet:      true,
		IgnorePrivatePatchSet:        true,
		IgnoreWorkInProgressPatchSet: true,
	}
}
