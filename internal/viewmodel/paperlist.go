package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/researchhub/hubcli/internal/logging"
	"github.com/researchhub/hubcli/internal/models"
)

// PaperListView holds the paper list of one open repository.
type PaperListView struct {
	gw  PaperGateway
	log logging.Logger

	repoID string

	mu     sync.Mutex
	state  State
	papers []models.Paper
	err    error
	token  uuid.UUID
	closed bool
}

func NewPaperListView(gw PaperGateway, log logging.Logger, repoID string) *PaperListView {
	return &PaperListView{gw: gw, log: log, repoID: repoID, state: StateIdle}
}

// RepoID identifies the repository this view is bound to.
func (v *PaperListView) RepoID() string { return v.repoID }

// Refresh fetches the paper list. The view enters Loading immediately; the
// completion commits only if no newer fetch was issued and the view is still
// open. A failed fetch surfaces the error and keeps the previous list.
func (v *PaperListView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	token := uuid.New()
	v.token = token
	v.state = StateLoading
	v.mu.Unlock()

	papers, err := v.gw.ListPapers(ctx, v.repoID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || v.token != token {
		// a newer fetch superseded this one, or the view was torn down
		v.log.Debug(ctx, "discarding stale paper list response", "repoId", v.repoID)
		return nil
	}
	if err != nil {
		v.state = StateFailed
		v.err = err
		v.log.Error(ctx, "paper list fetch failed", "repoId", v.repoID, "err", err)
		return err
	}
	v.state = StateLoaded
	v.papers = papers
	v.err = nil
	return nil
}

// Upload creates a new paper in the repository and refetches the list on
// success. On failure the list state is untouched.
func (v *PaperListView) Upload(ctx context.Context, title, fileName string, content []byte) (*models.PaperDocument, error) {
	doc, err := v.gw.UploadPaper(ctx, v.repoID, title, fileName, content)
	if err != nil {
		return nil, fmt.Errorf("uploading paper: %w", err)
	}
	v.log.Info(ctx, "paper uploaded", "repoId", v.repoID, "paperId", doc.ID, "version", doc.CurrentVersion)
	if err := v.Refresh(ctx); err != nil {
		return doc, err
	}
	return doc, nil
}

// Update appends a new version to a paper and refetches the list on success.
func (v *PaperListView) Update(ctx context.Context, paperID, fileName string, content []byte) (*models.PaperVersion, error) {
	ver, err := v.gw.UpdatePaper(ctx, paperID, fileName, content)
	if err != nil {
		return nil, fmt.Errorf("updating paper: %w", err)
	}
	v.log.Info(ctx, "paper updated", "paperId", paperID, "version", ver.VersionNumber)
	if err := v.Refresh(ctx); err != nil {
		return ver, err
	}
	return ver, nil
}

// Delete removes a paper and all its versions, then refetches the list.
func (v *PaperListView) Delete(ctx context.Context, paperID string) error {
	if err := v.gw.DeletePaper(ctx, paperID); err != nil {
		return fmt.Errorf("deleting paper: %w", err)
	}
	v.log.Info(ctx, "paper deleted", "paperId", paperID)
	return v.Refresh(ctx)
}

// Snapshot returns the current state, the display list and the last error.
// The returned slice is a copy; mutating it cannot corrupt the view.
func (v *PaperListView) Snapshot() (State, []models.Paper, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	papers := make([]models.Paper, len(v.papers))
	copy(papers, v.papers)
	return v.state, papers, v.err
}

// Close detaches the view: any in-flight completion becomes a no-op.
func (v *PaperListView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
