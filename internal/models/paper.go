package models

import "time"

// Paper is the latest-version summary of a logical document, as returned by
// the papers-by-repo listing. CurrentVersion always equals the highest
// VersionNumber among the paper's versions; it is the only version considered
// live for default preview and download.
type Paper struct {
	PaperID        string    `json:"paperId"`
	Title          string    `json:"title"`
	OwnerEmail     string    `json:"ownerEmail"`
	CurrentVersion int       `json:"currentVersion"`
	FileName       string    `json:"fileName"`
	FileType       string    `json:"fileType"`
	URL            string    `json:"url"`
	UploadedAt     time.Time `json:"uploadedAt"`
}

// PaperVersion is one immutable upload. Version numbers are assigned
// sequentially starting at 1 and are never reused or renumbered.
type PaperVersion struct {
	VersionNumber int       `json:"versionNumber"`
	FileName      string    `json:"fileName"`
	FileType      string    `json:"fileType"`
	URL           string    `json:"url"`
	UploadedAt    time.Time `json:"uploadedAt"`
}

// PaperDocument is the full paper record the backend returns from upload,
// update and version-listing calls: the summary fields plus every version.
type PaperDocument struct {
	ID             string         `json:"id"`
	RepoID         string         `json:"repoId"`
	OwnerEmail     string         `json:"ownerEmail"`
	Title          string         `json:"title"`
	CurrentVersion int            `json:"currentVersion"`
	Versions       []PaperVersion `json:"versions"`
}
