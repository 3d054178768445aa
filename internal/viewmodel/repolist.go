package viewmodel

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/researchhub/hubcli/internal/common"
	"github.com/researchhub/hubcli/internal/logging"
	"github.com/researchhub/hubcli/internal/models"
)

// Scope selects which repository listing a RepoListView shows.
type Scope int

const (
	ScopeGlobal Scope = iota
	ScopeMine
)

// RepoListView holds one repository listing (global or owned).
type RepoListView struct {
	gw    RepoGateway
	log   logging.Logger
	scope Scope

	mu     sync.Mutex
	state  State
	repos  []models.Repository
	err    error
	token  uuid.UUID
	closed bool
}

func NewRepoListView(gw RepoGateway, log logging.Logger, scope Scope) *RepoListView {
	return &RepoListView{gw: gw, log: log, scope: scope, state: StateIdle}
}

// SetScope switches between the global and owned listings. The caller should
// Refresh afterwards; until then the old list stays visible.
func (v *RepoListView) SetScope(s Scope) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scope = s
}

func (v *RepoListView) Scope() Scope {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scope
}

// Refresh fetches the listing for the current scope with the same commit
// rules as PaperListView.Refresh.
func (v *RepoListView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	token := uuid.New()
	v.token = token
	v.state = StateLoading
	scope := v.scope
	v.mu.Unlock()

	var (
		repos []models.Repository
		err   error
	)
	if scope == ScopeMine {
		repos, err = v.gw.ListMyRepos(ctx)
	} else {
		repos, err = v.gw.ListGlobalRepos(ctx)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || v.token != token {
		v.log.Debug(ctx, "discarding stale repo list response")
		return nil
	}
	if err != nil {
		v.state = StateFailed
		v.err = err
		v.log.Error(ctx, "repo list fetch failed", "err", err)
		return err
	}
	v.state = StateLoaded
	v.repos = repos
	v.err = nil
	return nil
}

// Create makes a new repository and refetches the listing on success.
func (v *RepoListView) Create(ctx context.Context, name, description string) (*models.Repository, error) {
	repo, err := v.gw.CreateRepo(ctx, name, description)
	if err != nil {
		return nil, fmt.Errorf("creating repository: %w", err)
	}
	v.log.Info(ctx, "repository created", "repoId", repo.ID, "name", repo.Name)
	if err := v.Refresh(ctx); err != nil {
		return repo, err
	}
	return repo, nil
}

// Delete removes a repository after the caller re-typed its exact name.
// The comparison trims surrounding whitespace; a mismatch blocks the call
// before anything reaches the wire. Deletion cascades to every paper and
// version in the repository.
func (v *RepoListView) Delete(ctx context.Context, repo models.Repository, confirmName string) error {
	if strings.TrimSpace(confirmName) != strings.TrimSpace(repo.Name) {
		return common.ErrNameMismatch
	}
	if err := v.gw.DeleteRepo(ctx, repo.ID); err != nil {
		return fmt.Errorf("deleting repository: %w", err)
	}
	v.log.Info(ctx, "repository deleted", "repoId", repo.ID, "name", repo.Name)
	return v.Refresh(ctx)
}

// Find looks a repository up by id in the already-fetched listing.
func (v *RepoListView) Find(repoID string) (*models.Repository, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.repos {
		if v.repos[i].ID == repoID {
			repo := v.repos[i]
			return &repo, nil
		}
	}
	return nil, fmt.Errorf("repository %s: %w", repoID, common.ErrNotFound)
}

// Filter returns the repositories whose name or description contains query,
// compared case-insensitively. An empty query matches everything. The filter
// runs over the already-fetched listing; it never touches the wire.
func (v *RepoListView) Filter(query string) []models.Repository {
	_, repos, _ := v.Snapshot()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return repos
	}
	matched := repos[:0]
	for _, r := range repos {
		if strings.Contains(strings.ToLower(r.Name), query) ||
			strings.Contains(strings.ToLower(r.Description), query) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Snapshot returns the current state, a copy of the listing and the last
// error.
func (v *RepoListView) Snapshot() (State, []models.Repository, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	repos := make([]models.Repository, len(v.repos))
	copy(repos, v.repos)
	return v.state, repos, v.err
}

// Close detaches the view.
func (v *RepoListView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
