package models

import "time"

// Action types carried by activity events. A version numbered 1 is an
// initial upload, anything later is an update.
const (
	ActionUploaded = "uploaded"
	ActionUpdated  = "updated"
)

// ActivityEvent is a read-only projection of one version-creation action
// within a repository, as served by the activity endpoint.
type ActivityEvent struct {
	PaperID       string    `json:"paperId"`
	PaperTitle    string    `json:"paperTitle"`
	OwnerEmail    string    `json:"ownerEmail"`
	VersionNumber int       `json:"versionNumber"`
	FileName      string    `json:"fileName"`
	FileType      string    `json:"fileType"`
	URL           string    `json:"url"`
	UploadedAt    time.Time `json:"uploadedAt"`
	ActionType    string    `json:"actionType"`
}
