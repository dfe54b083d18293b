package model

const (
	StatusPublished  = "published"
	StatusSuppressed = "suppressed"
	StatusFailed     = "failed"
)

// Notification is the audit record of one processed Gerrit event
type Notification struct {
	ID           string `json:"id" meddler:"id"`
	Project      string `json:"project" meddler:"project"`
	ChangeNumber int    `json:"changeNumber" meddler:"change_number"`
	Kind         string `json:"kind" meddler:"kind"`
	Status       string `json:"status" meddler:"status"`
	StatusDesc   string `json:"statusDesc" meddler:"status_desc"`
	Created      int64  `json:"created" meddler:"created"`
}
