package gateway

import "strconv"

// DownloadURL builds the attachment-download link for a paper version.
// versionNumber 0 means the current version.
func (c *Client) DownloadURL(paperID string, versionNumber int) string {
	u := c.baseURL + "/papers/" + paperID + "/download"
	if versionNumber > 0 {
		u += "/" + strconv.Itoa(versionNumber)
	}
	return u
}

// PreviewURL builds the download link with the inline-display flag, used when
// the browser should render the file in place instead of saving it.
func (c *Client) PreviewURL(paperID string, versionNumber int, inline bool) string {
	u := c.DownloadURL(paperID, versionNumber)
	if inline {
		u += "?inline=true"
	}
	return u
}
