package viewmodel

import (
	"context"
	"fmt"
	"time"

	"github.com/researchhub/hubcli/internal/activity"
	"github.com/researchhub/hubcli/internal/logging"
)

// ActivityView produces the display-ready recent-activity feed for one
// repository. It is stateless between calls: the feed is derived wholly
// from the fetch result, the viewer identity and the clock.
type ActivityView struct {
	gw  ActivityGateway
	log logging.Logger

	// nowFn is a test seam; defaults to time.Now.
	nowFn func() time.Time
}

func NewActivityView(gw ActivityGateway, log logging.Logger) *ActivityView {
	return &ActivityView{gw: gw, log: log, nowFn: time.Now}
}

// Feed fetches the repository's events and reduces them to the bounded,
// newest-first, actor-resolved feed. The result must not be re-sorted or
// re-truncated downstream.
func (v *ActivityView) Feed(ctx context.Context, repoID, viewerEmail string) ([]activity.Entry, error) {
	events, err := v.gw.FetchActivity(ctx, repoID)
	if err != nil {
		return nil, fmt.Errorf("fetching activity: %w", err)
	}
	return activity.Reduce(events, viewerEmail, v.nowFn()), nil
}
