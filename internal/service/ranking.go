package service

import (
	"math"
	"sort"

	"github.com/shortscout/shorts-discovery-go/internal/models"
)

// viralThreshold is the virality score at or above which a row counts
// as viral in summary statistics.
const viralThreshold = 60

// SortRows orders rows by virality score descending, then views
// descending. The sort is stable: rows tied on both keys keep their
// prior relative order.
func SortRows(rows []models.ResultRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ViralityScore != rows[j].ViralityScore {
			return rows[i].ViralityScore > rows[j].ViralityScore
		}
		return rows[i].Views > rows[j].Views
	})
}

// Summarize computes aggregate statistics over a result collection.
// An empty collection yields the zero summary.
func Summarize(rows []models.ResultRow) models.Summary {
	if len(rows) == 0 {
		return models.Summary{}
	}

	var (
		totalViews      int64
		totalEngagement float64
		totalVirality   float64
		viralCount      int
	)

	for _, row := range rows {
		totalViews += row.Views
		totalEngagement += row.EngagementRate
		totalVirality += row.ViralityScore
		if row.ViralityScore >= viralThreshold {
			viralCount++
		}
	}

	n := len(rows)
	return models.Summary{
		VideosFound:   n,
		AvgViews:      totalViews / int64(n),
		AvgEngagement: round2(totalEngagement / float64(n)),
		ViralCount:    viralCount,
		AvgVirality:   round1(totalVirality / float64(n)),
	}
}

// TopByVirality returns the first n rows of an already-ranked
// collection as a copy.
func TopByVirality(rows []models.ResultRow, n int) []models.ResultRow {
	if n > len(rows) {
		n = len(rows)
	}
	top := make([]models.ResultRow, n)
	copy(top, rows[:n])
	return top
}

// TopByEngagement returns the n rows with the highest engagement rate,
// without disturbing the input ordering.
func TopByEngagement(rows []models.ResultRow, n int) []models.ResultRow {
	sorted := make([]models.ResultRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EngagementRate > sorted[j].EngagementRate
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// KeywordRollups groups a result collection by keyword and computes
// per-keyword mean views, mean virality, and found-count, ordered by
// mean virality descending.
func KeywordRollups(rows []models.ResultRow) []models.KeywordStats {
	type agg struct {
		views    int64
		virality float64
		count    int
	}

	byKeyword := make(map[string]*agg)
	var order []string

	for _, row := range rows {
		a, ok := byKeyword[row.Keyword]
		if !ok {
			a = &agg{}
			byKeyword[row.Keyword] = a
			order = append(order, row.Keyword)
		}
		a.views += row.Views
		a.virality += row.ViralityScore
		a.count++
	}

	stats := make([]models.KeywordStats, 0, len(order))
	for _, keyword := range order {
		a := byKeyword[keyword]
		stats = append(stats, models.KeywordStats{
			Keyword:     keyword,
			VideosFound: a.count,
			AvgViews:    round1(float64(a.views) / float64(a.count)),
			AvgVirality: round1(a.virality / float64(a.count)),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AvgVirality > stats[j].AvgVirality
	})

	return stats
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
