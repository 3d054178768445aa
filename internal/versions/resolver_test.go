package versions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/researchhub/hubcli/internal/common"
	"github.com/researchhub/hubcli/internal/models"
)

func threeVersions() []models.PaperVersion {
	// deliberately unordered, as received from the backend
	return []models.PaperVersion{
		{VersionNumber: 2, FileName: "b.pdf"},
		{VersionNumber: 1, FileName: "a.pdf"},
		{VersionNumber: 3, FileName: "c.pdf"},
	}
}

func TestResolve_DefaultPicksCurrent(t *testing.T) {
	v, err := Resolve(threeVersions(), Current)
	require.NoError(t, err)
	require.Equal(t, 3, v.VersionNumber)
	require.Equal(t, "c.pdf", v.FileName)
}

func TestResolve_SpecificVersion(t *testing.T) {
	v, err := Resolve(threeVersions(), 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.VersionNumber)
	require.Equal(t, "b.pdf", v.FileName)
}

func TestResolve_MissingVersionIsNotFound(t *testing.T) {
	_, err := Resolve(threeVersions(), 5)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestResolve_EmptyList(t *testing.T) {
	_, err := Resolve(nil, Current)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSortForDisplay_DescendingAndNonMutating(t *testing.T) {
	in := threeVersions()
	out := SortForDisplay(in)

	require.Equal(t, []int{3, 2, 1}, []int{out[0].VersionNumber, out[1].VersionNumber, out[2].VersionNumber})
	// input untouched
	require.Equal(t, 2, in[0].VersionNumber)
}
