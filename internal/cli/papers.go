package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/researchhub/hubcli/internal/filex"
	"github.com/researchhub/hubcli/internal/models"
	"github.com/researchhub/hubcli/internal/preview"
	"github.com/researchhub/hubcli/internal/versions"
	"github.com/researchhub/hubcli/internal/viewmodel"
)

// requireOpen guards the per-repository commands.
func (a *App) requireOpen() bool {
	if a.paperView == nil {
		printlnFn("No repository open. Run 'open <repoId>' first.")
		return false
	}
	return true
}

// Papers prints the paper list of the open repository.
func (a *App) Papers(ctx context.Context) error {
	if !a.requireOpen() {
		return nil
	}

	state, papers, err := a.paperView.Snapshot()
	switch state {
	case viewmodel.StateFailed:
		printlnFn("Paper list is stale, last fetch failed:", err.Error())
	case viewmodel.StateIdle, viewmodel.StateLoading:
		if err := a.paperView.Refresh(ctx); err != nil {
			printlnFn("Could not load papers:", err.Error())
			return err
		}
		_, papers, _ = a.paperView.Snapshot()
	}

	if len(papers) == 0 {
		printlnFn("No papers in this repository.")
		return nil
	}
	for _, p := range papers {
		printlnFn(fmt.Sprintf("%s  %s (v%d, %s)", p.PaperID, p.Title, p.CurrentVersion, p.FileName))
	}
	return nil
}

// Upload prompts for a title and a local file path and creates a new paper
// in the open repository.
func (a *App) Upload(ctx context.Context) error {
	if !a.requireOpen() {
		return nil
	}

	title, err := getSimpleText(a.reader, "Paper title", os.Stdout)
	if err != nil {
		return err
	}
	fileName, content, err := a.readLocalFile()
	if err != nil {
		return err
	}

	doc, err := a.paperView.Upload(ctx, title, fileName, content)
	if err != nil {
		printlnFn("Upload failed:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Uploaded %s as paper %s (v%d)", fileName, doc.ID, doc.CurrentVersion))
	return nil
}

// Update prompts for a local file path and appends it as a new version of
// an existing paper. Earlier versions stay intact.
func (a *App) Update(ctx context.Context, args []string) error {
	if !a.requireOpen() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: update <paperId>")
		return nil
	}

	fileName, content, err := a.readLocalFile()
	if err != nil {
		return err
	}

	ver, err := a.paperView.Update(ctx, args[0], fileName, content)
	if err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Updated paper %s to v%d", args[0], ver.VersionNumber))
	return nil
}

// Versions prints the full version history of a paper, newest first.
func (a *App) Versions(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: versions <paperId>")
		return nil
	}

	list, err := a.papers.ListVersions(ctx, args[0])
	if err != nil {
		printlnFn("Could not load versions:", err.Error())
		return err
	}
	if len(list) == 0 {
		printlnFn("No versions.")
		return nil
	}
	for _, v := range versions.SortForDisplay(list) {
		printlnFn(fmt.Sprintf("v%d  %s (%s) uploaded %s", v.VersionNumber, v.FileName, v.FileType, v.UploadedAt.Format("2006-01-02 15:04")))
	}
	return nil
}

// Preview prints how a paper version can be viewed in place: an inline
// backend link for PDFs, an external viewer link for other document types,
// or a download-only notice when the file has no storage URL.
func (a *App) Preview(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: preview <paperId> [version]")
		return nil
	}
	paperID := args[0]
	target, err := parseVersionArg(args)
	if err != nil {
		printlnFn("Bad version number:", args[1])
		return err
	}

	ver, err := a.resolveVersion(ctx, paperID, target)
	if err != nil {
		printlnFn("Could not resolve version:", err.Error())
		return err
	}

	t := preview.Resolve(ver.FileName, ver.FileType, ver.URL, paperID, target, a.papers.PreviewURL)
	switch t.Kind {
	case preview.KindBackendInline:
		printlnFn("Open in browser (inline PDF):", t.URL)
	case preview.KindExternalViewer:
		printlnFn("Open in browser (document viewer):", t.URL)
	default:
		printlnFn("Preview unavailable for this version; use 'download' instead.")
	}
	return nil
}

// Download saves a paper version into the configured download directory.
func (a *App) Download(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: download <paperId> [version]")
		return nil
	}
	paperID := args[0]
	target, err := parseVersionArg(args)
	if err != nil {
		printlnFn("Bad version number:", args[1])
		return err
	}

	dir, err := filex.EnsureDir(a.config.DownloadDir)
	if err != nil {
		printlnFn("Cannot prepare download directory:", err.Error())
		return err
	}

	tmp, err := os.CreateTemp(dir, "hubcli-*")
	if err != nil {
		return err
	}

	fileName, err := a.papers.Download(ctx, paperID, target, tmp)
	cerr := tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		printlnFn("Download failed:", err.Error())
		return err
	}
	if cerr != nil {
		os.Remove(tmp.Name())
		return cerr
	}

	dest := filepath.Join(dir, filex.SafeFileName(fileName, paperID))
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	printlnFn("Saved to", dest)
	return nil
}

// DeletePaper removes a paper and every one of its versions after a y/n
// confirmation.
func (a *App) DeletePaper(ctx context.Context, args []string) error {
	if !a.requireOpen() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: rmpaper <paperId>")
		return nil
	}

	answer, err := getSimpleText(a.reader, "Delete this paper and ALL its versions? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.paperView.Delete(ctx, args[0]); err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}
	printlnFn("Paper deleted.")
	return nil
}

// Activity prints the recent-activity feed of the open repository.
func (a *App) Activity(ctx context.Context) error {
	if !a.requireOpen() {
		return nil
	}

	viewerEmail := ""
	if a.user != nil {
		viewerEmail = a.user.Email
	}

	feed, err := a.activityView.Feed(ctx, a.openRepo.ID, viewerEmail)
	if err != nil {
		printlnFn("Could not load activity:", err.Error())
		return err
	}
	if len(feed) == 0 {
		printlnFn("No recent activity.")
		return nil
	}
	for _, e := range feed {
		printlnFn(fmt.Sprintf("%s %s %q (v%d), %s", e.Actor, e.ActionType, e.PaperTitle, e.VersionNumber, e.TimeAgo))
	}
	return nil
}

// readLocalFile prompts for a path and loads the file. The upload file name
// is the path's base name.
func (a *App) readLocalFile() (string, []byte, error) {
	path, err := getSimpleText(a.reader, "Path to file", os.Stdout)
	if err != nil {
		return "", nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Cannot read file:", err.Error())
		return "", nil, err
	}
	return filepath.Base(path), content, nil
}

// parseVersionArg reads the optional second argument as a version number;
// absent means the current version.
func parseVersionArg(args []string) (int, error) {
	if len(args) < 2 {
		return versions.Current, nil
	}
	return strconv.Atoi(args[1])
}

// resolveVersion fetches a paper's history and picks the requested version.
func (a *App) resolveVersion(ctx context.Context, paperID string, target int) (*models.PaperVersion, error) {
	list, err := a.papers.ListVersions(ctx, paperID)
	if err != nil {
		return nil, err
	}
	return versions.Resolve(list, target)
}
