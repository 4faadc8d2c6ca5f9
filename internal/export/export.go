// Package export serializes a ranked result collection to CSV, XLSX,
// and JSON. All three encodings carry the same columns in the same
// order.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shortscout/shorts-discovery-go/internal/models"
)

// Format identifies an export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

const sheetName = "Shorts Ideas"

// Columns is the export header row, in output order.
var Columns = []string{
	"Video ID",
	"Video Title",
	"Video URL",
	"Views",
	"Likes",
	"Comments",
	"Engagement Rate (%)",
	"Virality Score",
	"Virality Tier",
	"Views/Day",
	"Duration",
	"Duration (sec)",
	"Published",
	"Days Old",
	"Description",
	"Tags",
	"Thumbnail",
	"Channel",
	"Channel URL",
	"Channel Subs",
	"Channel Country",
	"Niche",
	"Keyword",
	"Region",
	"Idea Angle",
}

// ParseFormat maps a format query value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported export format: %s", s)
}

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatJSON:
		return "application/json"
	default:
		return "text/csv"
	}
}

// Filename builds the download filename for a run:
// shorts_ideas_<niche>_<YYYYMMDD>.<ext> with spaces in the niche
// replaced by underscores.
func Filename(niche string, f Format, now time.Time) string {
	return fmt.Sprintf("shorts_ideas_%s_%s.%s",
		strings.ReplaceAll(niche, " ", "_"), now.Format("20060102"), f)
}

// Write serializes rows to w in the given format.
func Write(w io.Writer, f Format, rows []models.ResultRow) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatXLSX:
		return WriteXLSX(w, rows)
	case FormatJSON:
		return WriteJSON(w, rows)
	}
	return fmt.Errorf("unsupported export format: %s", f)
}

// record mirrors one ResultRow under the export column names. The JSON
// encoding relies on field order matching Columns.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type record struct {
	VideoID        string  `json:"Video ID"`
	VideoTitle     string  `json:"Video Title"`
	VideoURL       string  `json:"Video URL"`
	Views          int64   `json:"Views"`
	Likes          int64   `json:"Likes"`
	Comments       int64   `json:"Comments"`
	EngagementRate float64 `json:"Engagement Rate (%)"`
	ViralityScore  float64 `json:"Virality Score"`
	ViralityTier   string  `json:"Virality Tier"`
	ViewsPerDay    float64 `json:"Views/Day"`
	Duration       string  `json:"Duration"`
	DurationSec    int     `json:"Duration (sec)"`
	Published      string  `json:"Published"`
	DaysOld        int     `json:"Days Old"`
	Description    string  `json:"Description"`
	Tags           string  `json:"Tags"`
	Thumbnail      string  `json:"Thumbnail"`
	Channel        string  `json:"Channel"`
	ChannelURL     string  `json:"Channel URL"`
	ChannelSubs    int64   `json:"Channel Subs"`
	ChannelCountry string  `json:"Channel Country"`
	Niche          string  `json:"Niche"`
	Keyword        string  `json:"Keyword"`
	Region         string  `json:"Region"`
	IdeaAngle      string  `json:"Idea Angle"`
}

func recordOf(row models.ResultRow) record {
	return record{
		VideoID:        row.VideoID,
		VideoTitle:     row.Title,
		VideoURL:       row.VideoURL,
		Views:          row.Views,
		Likes:          row.Likes,
		Comments:       row.Comments,
		EngagementRate: row.EngagementRate,
		ViralityScore:  row.ViralityScore,
		ViralityTier:   row.ViralityTier,
		ViewsPerDay:    row.ViewsPerDay,
		Duration:       row.Duration,
		DurationSec:    row.DurationSec,
		Published:      row.Published,
		DaysOld:        row.DaysOld,
		Description:    row.Description,
		Tags:           row.Tags,
		Thumbnail:      row.ThumbnailURL,
		Channel:        row.Channel,
		ChannelURL:     row.ChannelURL,
		ChannelSubs:    row.ChannelSubs,
		ChannelCountry: row.ChannelCountry,
		Niche:          row.Niche,
		Keyword:        row.Keyword,
		Region:         row.Region,
		IdeaAngle:      row.IdeaAngle,
	}
}

// values renders the record's fields as display strings in column
// order, shared by the CSV and XLSX writers.
func (r record) values() []string {
	return []string{
		r.VideoID,
		r.VideoTitle,
		r.VideoURL,
		strconv.FormatInt(r.Views, 10),
		strconv.FormatInt(r.Likes, 10),
		strconv.FormatInt(r.Comments, 10),
		strconv.FormatFloat(r.EngagementRate, 'f', -1, 64),
		strconv.FormatFloat(r.ViralityScore, 'f', -1, 64),
		r.ViralityTier,
		strconv.FormatFloat(r.ViewsPerDay, 'f', -1, 64),
		r.Duration,
		strconv.Itoa(r.DurationSec),
		r.Published,
		strconv.Itoa(r.DaysOld),
		r.Description,
		r.Tags,
		r.Thumbnail,
		r.Channel,
		r.ChannelURL,
		strconv.FormatInt(r.ChannelSubs, 10),
		r.ChannelCountry,
		r.Niche,
		r.Keyword,
		r.Region,
		r.IdeaAngle,
	}
}

// WriteCSV writes a header row followed by one row per record.
func WriteCSV(w io.Writer, rows []models.ResultRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(recordOf(row).values()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a single-sheet workbook with the header row and one
// row per record.
func WriteXLSX(w io.Writer, rows []models.ResultRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}

	for i, row := range rows {
		rec := recordOf(row)
		cells := []any{
			rec.VideoID,
			rec.VideoTitle,
			rec.VideoURL,
			rec.Views,
			rec.Likes,
			rec.Comments,
			rec.EngagementRate,
			rec.ViralityScore,
			rec.ViralityTier,
			rec.ViewsPerDay,
			rec.Duration,
			rec.DurationSec,
			rec.Published,
			rec.DaysOld,
			rec.Description,
			rec.Tags,
			rec.Thumbnail,
			rec.Channel,
			rec.ChannelURL,
			rec.ChannelSubs,
			rec.ChannelCountry,
			rec.Niche,
			rec.Keyword,
			rec.Region,
			rec.IdeaAngle,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("write xlsx row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// WriteJSON writes the rows as a JSON array of records keyed by the
// export column names.
func WriteJSON(w io.Writer, rows []models.ResultRow) error {
	records := make([]record, len(rows))
	for i, row := range rows {
		records[i] = recordOf(row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
