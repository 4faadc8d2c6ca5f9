// Package scoring computes the derived popularity metrics for a video:
// engagement rate, virality score, age in days, and view velocity. All
// functions are pure and never divide by zero.
package scoring

import (
	"fmt"
	"math"
	"time"
)

// Virality tier thresholds, checked in descending order.
const (
	TierViral   = "VIRAL"
	TierHot     = "Hot"
	TierGrowing = "Growing"
	TierGood    = "Good"
	TierNormal  = "Normal"
)

// EngagementRate returns (likes + comments) / views as a percentage,
// rounded to 2 decimal places. Zero views yields 0.
func EngagementRate(views, likes, comments int64) float64 {
	if views == 0 {
		return 0
	}
	rate := float64(likes+comments) / float64(views) * 100
	return math.Round(rate*100) / 100
}

// ViralityScore returns a 0-100 composite of reach relative to channel
// size and raw view velocity, rounded to 1 decimal place. Each factor
// is capped at 50 points so neither can dominate: a small channel with
// outsized views scores on the first term, a fast mover on the second.
// Zero subscribers or zero days old yields 0; unknown scale is treated
// as non-viral rather than infinitely viral.
func ViralityScore(views, subscribers int64, daysOld int) float64 {
	if subscribers == 0 || daysOld == 0 {
		return 0
	}

	viewsPerSub := float64(views) / float64(subscribers)
	viewsPerDay := float64(views) / float64(daysOld)

	subRatioScore := math.Min(viewsPerSub*10, 50)
	velocityScore := math.Min(viewsPerDay/1000*50, 50)

	return math.Round((subRatioScore+velocityScore)*10) / 10
}

// DaysOld returns the whole days between the publish timestamp and now.
// An unparsable timestamp yields 0.
func DaysOld(publishedAt string, now time.Time) int {
	pub, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return 0
	}
	days := int(now.Sub(pub).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// DaysOldNow is DaysOld against the current instant.
func DaysOldNow(publishedAt string) int {
	return DaysOld(publishedAt, time.Now().UTC())
}

// ViewsPerDay returns the mean daily view count. A same-day video is
// treated as one day old.
func ViewsPerDay(views int64, daysOld int) float64 {
	if daysOld < 1 {
		daysOld = 1
	}
	return float64(views) / float64(daysOld)
}

// ViralityTier maps a virality score to its tier label. The first
// matching descending threshold wins.
func ViralityTier(score float64) string {
	switch {
	case score >= 80:
		return TierViral
	case score >= 60:
		return TierHot
	case score >= 40:
		return TierGrowing
	case score >= 20:
		return TierGood
	default:
		return TierNormal
	}
}

// FormatCount renders a large count for display: 1200000 -> "1.2M",
// 5300 -> "5.3K", 999 -> "999".
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
