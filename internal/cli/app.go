package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/researchhub/hubcli/internal/config"
	"github.com/researchhub/hubcli/internal/gateway"
	"github.com/researchhub/hubcli/internal/logging"
	"github.com/researchhub/hubcli/internal/models"
	"github.com/researchhub/hubcli/internal/viewmodel"
)

// authAPI is the session slice of the gateway the app depends on.
type authAPI interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
}

// paperAPI covers the per-paper operations the app calls directly,
// outside the list view-models.
type paperAPI interface {
	ListVersions(ctx context.Context, paperID string) ([]models.PaperVersion, error)
	Download(ctx context.Context, paperID string, versionNumber int, w io.Writer) (string, error)
	PreviewURL(paperID string, versionNumber int, inline bool) string
}

type App struct {
	config *config.Config
	log    logging.Logger

	auth   authAPI
	papers paperAPI

	// paperGateway backs the per-repository list views created on open.
	paperGateway viewmodel.PaperGateway

	repoView     *viewmodel.RepoListView
	activityView *viewmodel.ActivityView

	// set while a repository is open
	paperView *viewmodel.PaperListView
	openRepo  *models.Repository

	user   *models.User
	reader *bufio.Reader
}

// NewApp wires the gateway and the view-models from config.
func NewApp(cfg *config.Config) (*App, error) {
	log, err := logging.NewLogger(cfg.DevLogging)
	if err != nil {
		return nil, err
	}

	gw, err := gateway.New(cfg.BaseURL, log, gateway.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return nil, fmt.Errorf("building gateway: %w", err)
	}

	return &App{
		config:       cfg,
		log:          log,
		auth:         gw,
		papers:       gw,
		repoView:     viewmodel.NewRepoListView(gw, log, viewmodel.ScopeGlobal),
		activityView: viewmodel.NewActivityView(gw, log),
		paperGateway: gw,
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) hasOpenRepo() bool {
	return a.openRepo != nil
}

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Email
	}
	if a.openRepo != nil {
		if s != "" {
			s += " "
		}
		s += "/" + a.openRepo.Name
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run starts the interactive shell and blocks until the user exits.
func (a *App) Run() {
	ctx := context.Background()
	printlnFn("Welcome to ResearchHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
