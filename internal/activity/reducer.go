// Package activity turns raw version-creation events into the bounded,
// display-ready recent-activity feed.
package activity

import (
	"sort"
	"strings"
	"time"

	"github.com/researchhub/hubcli/internal/models"
)

// FeedLimit caps the feed at the most recent events. This is a display
// policy; the backend keeps the full history.
const FeedLimit = 4

// Entry is one display-ready feed line. Consumers must not re-sort or
// re-truncate a reduced feed.
type Entry struct {
	models.ActivityEvent

	// Actor is "You" for the viewer's own events, the email local-part for
	// everyone else, "Unknown" when the event carries no owner.
	Actor string

	// TimeAgo is the relative age label at reduction time.
	TimeAgo string
}

// Reduce sorts events newest-first, keeps the FeedLimit most recent and
// resolves each actor against viewerEmail. The backend claims to pre-sort;
// the sort here is defensive and makes no such assumption. The input slice
// is not modified.
func Reduce(events []models.ActivityEvent, viewerEmail string, now time.Time) []Entry {
	sorted := make([]models.ActivityEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UploadedAt.After(sorted[j].UploadedAt)
	})

	if len(sorted) > FeedLimit {
		sorted = sorted[:FeedLimit]
	}

	out := make([]Entry, 0, len(sorted))
	for _, ev := range sorted {
		out = append(out, Entry{
			ActivityEvent: ev,
			Actor:         resolveActor(ev.OwnerEmail, viewerEmail),
			TimeAgo:       TimeAgo(ev.UploadedAt, now),
		})
	}
	return out
}

func resolveActor(ownerEmail, viewerEmail string) string {
	if ownerEmail == "" {
		return "Unknown"
	}
	if ownerEmail == viewerEmail {
		return "You"
	}
	if at := strings.Index(ownerEmail, "@"); at >= 0 {
		return ownerEmail[:at]
	}
	return ownerEmail
}
