package activity

import (
	"fmt"
	"time"
)

// TimeAgo renders the elapsed time between ts and now as a compact relative
// label: "42s ago", "5m ago", "3h ago", "2d ago". A zero ts renders as
// "N/A". Negative elapsed time clamps to zero seconds. The caller supplies
// now, so the function stays deterministic under test.
func TimeAgo(ts, now time.Time) string {
	if ts.IsZero() {
		return "N/A"
	}

	s := int64(now.Sub(ts).Seconds())
	if s < 0 {
		s = 0
	}

	switch {
	case s < 60:
		return fmt.Sprintf("%ds ago", s)
	case s < 3600:
		return fmt.Sprintf("%dm ago", s/60)
	case s < 86400:
		return fmt.Sprintf("%dh ago", s/3600)
	default:
		return fmt.Sprintf("%dd ago", s/86400)
	}
}
