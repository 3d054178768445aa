package viewmodel

import (
	"context"

	"github.com/researchhub/hubcli/internal/models"
)

// State is the lifecycle of a list view: Idle until the first fetch,
// Loading while one is in flight, then Loaded or Failed.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PaperGateway is the slice of the gateway the paper views depend on.
type PaperGateway interface {
	ListPapers(ctx context.Context, repoID string) ([]models.Paper, error)
	UploadPaper(ctx context.Context, repoID, title, fileName string, content []byte) (*models.PaperDocument, error)
	UpdatePaper(ctx context.Context, paperID, fileName string, content []byte) (*models.PaperVersion, error)
	DeletePaper(ctx context.Context, paperID string) error
}

// RepoGateway is the slice of the gateway the repository views depend on.
type RepoGateway interface {
	ListGlobalRepos(ctx context.Context) ([]models.Repository, error)
	ListMyRepos(ctx context.Context) ([]models.Repository, error)
	CreateRepo(ctx context.Context, name, description string) (*models.Repository, error)
	DeleteRepo(ctx context.Context, repoID string) error
}

// ActivityGateway is the slice of the gateway the activity view depends on.
type ActivityGateway interface {
	FetchActivity(ctx context.Context, repoID string) ([]models.ActivityEvent, error)
}
