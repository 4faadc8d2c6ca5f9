package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/shortscout/shorts-discovery-go/internal/models"
)

func sampleRows() []models.ResultRow {
	return []models.ResultRow{
		{
			VideoID:        "vid-1",
			Title:          "A short with, a comma",
			VideoURL:       "https://youtube.com/shorts/vid-1",
			Views:          200000,
			Likes:          10000,
			Comments:       500,
			EngagementRate: 5.25,
			ViralityScore:  100.0,
			ViralityTier:   "VIRAL",
			ViewsPerDay:    100000,
			Duration:       "00:58",
			DurationSec:    58,
			Published:      "2025-06-08",
			DaysOld:        2,
			Description:    "desc",
			Tags:           "one, two",
			ThumbnailURL:   "https://img.example/vid-1.jpg",
			Channel:        "Channel One",
			ChannelURL:     "https://youtube.com/channel/chan-1",
			ChannelSubs:    2000,
			ChannelCountry: "US",
			Niche:          "Facts & Mind-Blowing Info",
			Keyword:        "mind blowing facts",
			Region:         "US",
			IdeaAngle:      "Recreate this...",
		},
		{
			VideoID: "vid-2",
			Title:   "Second",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Columns, records[0])
	assert.Len(t, records[1], len(Columns))
	assert.Equal(t, "vid-1", records[1][0])
	assert.Equal(t, "A short with, a comma", records[1][1])
	assert.Equal(t, "5.25", records[1][6])
	assert.Equal(t, "100", records[1][7])
	assert.Equal(t, "VIRAL", records[1][8])
	assert.Equal(t, "58", records[1][11])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRows()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	first := decoded[0]
	assert.Len(t, first, len(Columns))
	assert.Equal(t, "vid-1", first["Video ID"])
	assert.Equal(t, 5.25, first["Engagement Rate (%)"])
	assert.Equal(t, "VIRAL", first["Virality Tier"])
	for _, col := range Columns {
		assert.Contains(t, first, col)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleRows()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Shorts Ideas")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, "vid-1", rows[1][0])
	assert.Equal(t, "200000", rows[1][3])
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"csv", "CSV", "xlsx", "json"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 4, 5, 0, time.UTC)

	assert.Equal(t,
		"shorts_ideas_Gaming_&_Tech_20250610.csv",
		Filename("Gaming & Tech", FormatCSV, now))
	assert.Equal(t,
		"shorts_ideas_Custom_20250610.xlsx",
		Filename("Custom", FormatXLSX, now))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, "application/json", FormatJSON.ContentType())
	assert.Contains(t, FormatXLSX.ContentType(), "spreadsheetml")
}
