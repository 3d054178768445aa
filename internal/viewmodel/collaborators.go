package viewmodel

import (
	"sort"
	"strings"

	"github.com/researchhub/hubcli/internal/models"
)

// DeriveCollaborators builds the access-grant list for a repository from
// data the client already holds: the repository owner gets the Owner grant,
// and every distinct other paper owner a ReadWrite one. The backend exposes
// no collaborator endpoints, so the list is derived locally and read-only.
func DeriveCollaborators(repo models.Repository, papers []models.Paper) []models.Collaborator {
	grants := []models.Collaborator{{
		ID:    repo.OwnerEmail,
		Name:  displayName(repo.OwnerEmail),
		Email: repo.OwnerEmail,
		Role:  models.RoleOwner,
	}}

	seen := map[string]bool{repo.OwnerEmail: true}
	for _, p := range papers {
		if p.OwnerEmail == "" || seen[p.OwnerEmail] {
			continue
		}
		seen[p.OwnerEmail] = true
		grants = append(grants, models.Collaborator{
			ID:    p.OwnerEmail,
			Name:  displayName(p.OwnerEmail),
			Email: p.OwnerEmail,
			Role:  models.RoleReadWrite,
		})
	}

	sort.SliceStable(grants[1:], func(i, j int) bool {
		return grants[i+1].Email < grants[j+1].Email
	})
	return grants
}

// displayName turns an email local-part into a space-separated name so the
// avatar initials come out word-per-word.
func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	return strings.Join(strings.Fields(local), " ")
}
