package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/researchhub/hubcli/internal/viewmodel"
)

// Repos lists repositories. "repos my" switches to the owned listing,
// "repos global" (or no argument) to the public one. Any further words form
// a search query matched against names and descriptions of the fetched list.
func (a *App) Repos(ctx context.Context, args []string) error {
	scope := viewmodel.ScopeGlobal
	if len(args) > 0 {
		switch args[0] {
		case "my":
			scope = viewmodel.ScopeMine
			args = args[1:]
		case "global":
			args = args[1:]
		}
	}
	query := strings.Join(args, " ")
	a.repoView.SetScope(scope)

	if err := a.repoView.Refresh(ctx); err != nil {
		printlnFn("Could not load repositories:", err.Error())
		return err
	}

	repos := a.repoView.Filter(query)
	if len(repos) == 0 {
		if query != "" {
			printlnFn("No repositories match", query+".")
		} else {
			printlnFn("No repositories.")
		}
		return nil
	}
	for _, r := range repos {
		printlnFn(fmt.Sprintf("%s  %s: %s (owner %s)", r.ID, r.Name, r.Description, r.OwnerEmail))
	}
	return nil
}

// CreateRepo prompts for a name and description and creates a repository.
func (a *App) CreateRepo(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Repository name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	repo, err := a.repoView.Create(ctx, name, description)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return err
	}
	printlnFn("Created repository", repo.ID)
	return nil
}

// DeleteRepo deletes a repository after the user re-types its exact name.
// The deletion cascades to every paper and version and cannot be undone.
func (a *App) DeleteRepo(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: rmrepo <repoId>")
		return nil
	}

	repo, err := a.repoView.Find(args[0])
	if err != nil {
		printlnFn("Unknown repository:", args[0], "(run 'repos' first)")
		return err
	}

	printlnFn("This permanently deletes the repository and ALL its papers and versions.")
	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Type the repository name (%q) to confirm", repo.Name), os.Stdout)
	if err != nil {
		return err
	}

	if err := a.repoView.Delete(ctx, *repo, confirm); err != nil {
		printlnFn("Delete blocked:", err.Error())
		return err
	}

	if a.openRepo != nil && a.openRepo.ID == repo.ID {
		_ = a.CloseRepo(ctx)
	}
	printlnFn("Repository deleted.")
	return nil
}

// Open binds the paper list and activity commands to one repository.
func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: open <repoId>")
		return nil
	}

	repo, err := a.repoView.Find(args[0])
	if err != nil {
		// the listing may simply be stale or never fetched
		if rerr := a.repoView.Refresh(ctx); rerr != nil {
			printlnFn("Could not load repositories:", rerr.Error())
			return rerr
		}
		repo, err = a.repoView.Find(args[0])
		if err != nil {
			printlnFn("Unknown repository:", args[0])
			return err
		}
	}

	_ = a.CloseRepo(ctx)
	a.openRepo = repo
	a.paperView = viewmodel.NewPaperListView(a.paperGateway, a.log, repo.ID)

	if err := a.paperView.Refresh(ctx); err != nil {
		printlnFn("Could not load papers:", err.Error())
		return err
	}
	printlnFn("Opened", repo.Name)
	return a.Papers(ctx)
}

// Collaborators prints the access grants of the open repository: the owner
// plus everyone who uploaded a paper. The listing is derived client-side;
// there is no invite or revoke call to make.
func (a *App) Collaborators(ctx context.Context) error {
	if !a.requireOpen() {
		return nil
	}

	_, papers, _ := a.paperView.Snapshot()
	grants := viewmodel.DeriveCollaborators(*a.openRepo, papers)
	for _, g := range grants {
		line := fmt.Sprintf("[%s] %s <%s> %s", g.Initials(), g.Name, g.Email, g.Role)
		if !g.CanModify() {
			line += " (fixed)"
		}
		printlnFn(line)
	}
	return nil
}

// CloseRepo tears down the per-repository views. In-flight fetches for the
// closed view can no longer write state.
func (a *App) CloseRepo(ctx context.Context) error {
	if a.paperView != nil {
		a.paperView.Close()
		a.paperView = nil
	}
	a.openRepo = nil
	return nil
}
