// Package preview decides how a stored file can be rendered in place.
//
// PDFs are served inline straight from the backend's download endpoint.
// Other document types cannot be rendered by browsers directly, so their
// storage URL is rewritten to an inline variant and bounced through a
// generic document viewer. Some versions retain no storage URL at all, in
// which case the file is download-only. All of this is pure string work;
// the provider-specific URL surgery is isolated here so call sites never
// see it.
package preview

import (
	"net/url"
	"strings"
)

// Kind classifies the preview target.
type Kind int

const (
	// KindBackendInline renders via the backend's own download endpoint
	// with the inline flag set. Browsers handle PDFs natively.
	KindBackendInline Kind = iota
	// KindExternalViewer renders via a third-party document viewer
	// wrapping the (inline-flagged) storage URL.
	KindExternalViewer
	// KindUnavailable means no embedded viewer is possible; offer
	// download only. This is a first-class outcome, not an error.
	KindUnavailable
)

// Target is a renderable preview destination. URL is empty exactly when
// Kind is KindUnavailable.
type Target struct {
	Kind Kind
	URL  string
}

// BackendURLFunc builds the backend's inline-preview link for a paper
// version (0 = current). The gateway's PreviewURL satisfies it.
type BackendURLFunc func(paperID string, versionNumber int, inline bool) string

const viewerBase = "https://docs.google.com/viewer"

// Resolve maps a file's identity and stored location to a preview target.
func Resolve(fileName, fileType, storageURL, paperID string, versionNumber int, backendURL BackendURLFunc) Target {
	if isPDF(fileName, fileType) {
		return Target{Kind: KindBackendInline, URL: backendURL(paperID, versionNumber, true)}
	}

	if storageURL == "" {
		return Target{Kind: KindUnavailable}
	}

	inline := inlineStorageURL(storageURL)
	viewer := viewerBase + "?url=" + url.QueryEscape(inline) + "&embedded=true"
	return Target{Kind: KindExternalViewer, URL: viewer}
}

func isPDF(fileName, fileType string) bool {
	return strings.Contains(strings.ToLower(fileType), "pdf") ||
		strings.HasSuffix(strings.ToLower(fileName), ".pdf")
}

// inlineStorageURL derives the inline-display variant of a storage URL.
// Cloudinary delivery URLs get the no-attachment flag spliced in after the
// upload segment; anything else passes through unchanged.
func inlineStorageURL(u string) string {
	if !strings.Contains(u, "cloudinary.com") {
		return u
	}
	if strings.Contains(u, "/upload/") {
		return strings.Replace(u, "/upload/", "/upload/fl_attachment:false/", 1)
	}
	return u
}
