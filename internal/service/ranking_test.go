package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shortscout/shorts-discovery-go/internal/models"
)

func row(id string, views int64, virality, engagement float64, keyword string) models.ResultRow {
	return models.ResultRow{
		VideoID:        id,
		Views:          views,
		ViralityScore:  virality,
		EngagementRate: engagement,
		Keyword:        keyword,
	}
}

func TestSortRows(t *testing.T) {
	rows := []models.ResultRow{
		row("low", 100, 10, 0, "a"),
		row("tied-small", 50, 80, 0, "a"),
		row("high", 200, 95, 0, "a"),
		row("tied-big", 500, 80, 0, "a"),
	}

	SortRows(rows)

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.VideoID
	}
	assert.Equal(t, []string{"high", "tied-big", "tied-small", "low"}, got)
}

func TestSortRowsStableOnFullTie(t *testing.T) {
	rows := []models.ResultRow{
		row("first", 100, 50, 0, "a"),
		row("second", 100, 50, 0, "a"),
		row("third", 100, 50, 0, "a"),
	}

	SortRows(rows)

	assert.Equal(t, "first", rows[0].VideoID)
	assert.Equal(t, "second", rows[1].VideoID)
	assert.Equal(t, "third", rows[2].VideoID)
}

func TestSummarize(t *testing.T) {
	rows := []models.ResultRow{
		row("a", 100000, 75.5, 4.0, "kw"),
		row("b", 50000, 60.0, 2.5, "kw"),
		row("c", 10000, 20.1, 1.0, "kw"),
	}

	summary := Summarize(rows)

	assert.Equal(t, 3, summary.VideosFound)
	assert.Equal(t, int64(53333), summary.AvgViews)
	assert.Equal(t, 2.5, summary.AvgEngagement)
	// 60.0 sits exactly on the viral threshold and counts.
	assert.Equal(t, 2, summary.ViralCount)
	assert.Equal(t, 51.9, summary.AvgVirality)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, models.Summary{}, Summarize(nil))
}

func TestTopByVirality(t *testing.T) {
	rows := []models.ResultRow{
		row("a", 0, 90, 0, "kw"),
		row("b", 0, 80, 0, "kw"),
		row("c", 0, 70, 0, "kw"),
	}

	top := TopByVirality(rows, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "a", top[0].VideoID)

	// n larger than the collection returns everything.
	assert.Len(t, TopByVirality(rows, 10), 3)

	// The copy is independent of the input.
	top[0].VideoID = "mutated"
	assert.Equal(t, "a", rows[0].VideoID)
}

func TestTopByEngagement(t *testing.T) {
	rows := []models.ResultRow{
		row("a", 0, 90, 1.0, "kw"),
		row("b", 0, 80, 9.0, "kw"),
		row("c", 0, 70, 5.0, "kw"),
	}

	top := TopByEngagement(rows, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "b", top[0].VideoID)
	assert.Equal(t, "c", top[1].VideoID)

	// Input order is untouched.
	assert.Equal(t, "a", rows[0].VideoID)
}

func TestKeywordRollups(t *testing.T) {
	rows := []models.ResultRow{
		row("a", 100, 10, 0, "quiet"),
		row("b", 1000, 90, 0, "loud"),
		row("c", 2000, 80, 0, "loud"),
		row("d", 300, 30, 0, "quiet"),
	}

	stats := KeywordRollups(rows)
	assert.Len(t, stats, 2)

	assert.Equal(t, "loud", stats[0].Keyword)
	assert.Equal(t, 2, stats[0].VideosFound)
	assert.Equal(t, 1500.0, stats[0].AvgViews)
	assert.Equal(t, 85.0, stats[0].AvgVirality)

	assert.Equal(t, "quiet", stats[1].Keyword)
	assert.Equal(t, 200.0, stats[1].AvgViews)
	assert.Equal(t, 20.0, stats[1].AvgVirality)
}

func TestKeywordRollupsEmpty(t *testing.T) {
	assert.Empty(t, KeywordRollups(nil))
}
