// Package versions resolves a concrete paper version out of an
// already-fetched version list. No I/O happens here.
package versions

import (
	"fmt"
	"sort"

	"github.com/researchhub/hubcli/internal/common"
	"github.com/researchhub/hubcli/internal/models"
)

// Current is the target value meaning "the paper's current version",
// i.e. the highest version number present.
const Current = 0

// Resolve picks the version matching target from list. Target Current (or
// any non-positive value) selects the highest-numbered version. A requested
// number that does not exist is a distinct error, never a silent fallback to
// current.
func Resolve(list []models.PaperVersion, target int) (*models.PaperVersion, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("paper has no versions: %w", common.ErrNotFound)
	}

	if target <= Current {
		best := &list[0]
		for i := range list {
			if list[i].VersionNumber > best.VersionNumber {
				best = &list[i]
			}
		}
		return best, nil
	}

	for i := range list {
		if list[i].VersionNumber == target {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("version %d: %w", target, common.ErrNotFound)
}

// SortForDisplay returns a copy of list ordered by version number strictly
// descending (newest first). Version numbers are unique within a paper, so
// there are no ties to break.
func SortForDisplay(list []models.PaperVersion) []models.PaperVersion {
	out := make([]models.PaperVersion, len(list))
	copy(out, list)
	sort.Slice(out, func(i, j int) bool {
		return out[i].VersionNumber > out[j].VersionNumber
	})
	return out
}
