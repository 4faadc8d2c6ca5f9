// Package service implements the discovery pipeline: per-keyword
// search, deduplication, batched detail enrichment, metric computation,
// filtering, and ranking into a single flat result collection.
package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shortscout/shorts-discovery-go/internal/models"
	"github.com/shortscout/shorts-discovery-go/internal/niche"
	"github.com/shortscout/shorts-discovery-go/internal/observability"
	"github.com/shortscout/shorts-discovery-go/internal/parser"
	"github.com/shortscout/shorts-discovery-go/internal/scoring"
	"github.com/shortscout/shorts-discovery-go/pkg/logger"
)

const (
	maxDescriptionChars = 300
	maxTags             = 10
	maxTitleCharsInIdea = 50
	topN                = 5
)

// Gateway is the remote data source the pipeline reads from. All three
// operations are idempotent queries; the gateway performs no
// deduplication of its own.
type Gateway interface {
	SearchShorts(ctx context.Context, keyword string, publishedAfter time.Time, region string, maxResults int64) ([]models.SearchHit, error)
	VideoDetails(ctx context.Context, videoIDs []string) ([]models.VideoDetail, error)
	ChannelDetails(ctx context.Context, channelIDs []string) ([]models.ChannelDetail, error)
}

// DiscoveryService orchestrates discovery runs against a Gateway.
type DiscoveryService struct {
	gateway      Gateway
	keywordDelay time.Duration
	now          func() time.Time
}

// NewDiscoveryService creates a DiscoveryService. keywordDelay is the
// pause inserted between keyword passes to stay under remote rate
// limits.
func NewDiscoveryService(gateway Gateway, keywordDelay time.Duration) *DiscoveryService {
	return &DiscoveryService{
		gateway:      gateway,
		keywordDelay: keywordDelay,
		now:          time.Now,
	}
}

// Discover runs the full pipeline for one request and returns the
// ranked result collection with summary statistics and the warning log.
// Keywords are processed sequentially in list order; a video ID appears
// in the result at most once, attributed to the first keyword that
// produced it. Per-keyword remote failures are recorded as warnings and
// never abort the run.
func (s *DiscoveryService) Discover(ctx context.Context, req models.DiscoveryRequest) (*models.DiscoveryResult, error) {
	keywords := s.resolveKeywords(req)
	if len(keywords) == 0 {
		return nil, &ValidationError{Message: "no keywords: unknown niche and no custom keywords"}
	}

	startedAt := s.now().UTC()
	publishedAfter := startedAt.AddDate(0, 0, -req.DaysBack)
	runID := uuid.New()

	logger.Log.Info("discovery run started",
		zap.String("run_id", runID.String()),
		zap.String("niche", req.Niche),
		zap.String("region", req.Region),
		zap.Int("keywords", len(keywords)),
		zap.Int("days_back", req.DaysBack),
	)

	var (
		rows     []models.ResultRow
		warnings []string
		seen     = make(map[string]struct{})
	)

	for i, keyword := range keywords {
		if err := ctx.Err(); err != nil {
			return nil, &ProcessingError{Message: "discovery run abandoned", Cause: err}
		}

		kwRows, warning := s.processKeyword(ctx, req, keyword, publishedAfter, seen)
		if warning != "" {
			warnings = append(warnings, warning)
		}
		rows = append(rows, kwRows...)

		// Courtesy pause between keyword passes; not needed after the
		// last one.
		if s.keywordDelay > 0 && i < len(keywords)-1 {
			select {
			case <-ctx.Done():
				return nil, &ProcessingError{Message: "discovery run abandoned", Cause: ctx.Err()}
			case <-time.After(s.keywordDelay):
			}
		}
	}

	SortRows(rows)

	completedAt := s.now().UTC()
	observability.DiscoveryRuns.Inc()
	observability.RunDuration.Observe(completedAt.Sub(startedAt).Seconds())

	logger.Log.Info("discovery run completed",
		zap.String("run_id", runID.String()),
		zap.Int("rows", len(rows)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("elapsed", completedAt.Sub(startedAt)),
	)

	return &models.DiscoveryResult{
		RunID:           runID,
		Niche:           req.Niche,
		Region:          req.Region,
		Rows:            rows,
		Summary:         Summarize(rows),
		KeywordStats:    KeywordRollups(rows),
		TopByVirality:   TopByVirality(rows, topN),
		TopByEngagement: TopByEngagement(rows, topN),
		Warnings:        warnings,
		StartedAt:       startedAt,
		CompletedAt:     completedAt,
	}, nil
}

// resolveKeywords merges the niche's curated keywords with any custom
// keywords, in that order. Keyword order matters: it decides which
// keyword a video seen under several queries is attributed to.
func (s *DiscoveryService) resolveKeywords(req models.DiscoveryRequest) []string {
	keywords := niche.KeywordsFor(req.Niche)

	for _, kw := range req.CustomKeywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}

	return keywords
}

// processKeyword runs one keyword pass: search, dedup against the
// run-wide seen set, batched detail fetch, join, and row construction.
// It returns the qualifying rows and a warning message ("" when clean).
func (s *DiscoveryService) processKeyword(ctx context.Context, req models.DiscoveryRequest, keyword string, publishedAfter time.Time, seen map[string]struct{}) ([]models.ResultRow, string) {
	hits, err := s.gateway.SearchShorts(ctx, keyword, publishedAfter, req.Region, req.ResultsPerKeyword)
	if err != nil {
		return nil, fmt.Sprintf("search error for %q: %v", keyword, err)
	}
	if len(hits) == 0 {
		return nil, ""
	}

	var newVideoIDs []string
	for _, hit := range hits {
		if _, ok := seen[hit.VideoID]; !ok {
			newVideoIDs = append(newVideoIDs, hit.VideoID)
		}
	}
	if len(newVideoIDs) == 0 {
		return nil, ""
	}

	// Channel IDs come from the full hit list, not just the unseen
	// videos: an already-seen video's channel may still be needed by a
	// new hit from the same channel.
	channelIDs := uniqueChannelIDs(hits)

	// Mark as seen before the detail fetch so a later keyword never
	// reprocesses these IDs even if the fetch fails.
	for _, id := range newVideoIDs {
		seen[id] = struct{}{}
	}

	videoDetails, err := s.gateway.VideoDetails(ctx, newVideoIDs)
	if err != nil {
		return nil, fmt.Sprintf("video detail error for %q: %v", keyword, err)
	}

	channelDetails, err := s.gateway.ChannelDetails(ctx, channelIDs)
	if err != nil {
		return nil, fmt.Sprintf("channel detail error for %q: %v", keyword, err)
	}

	videoMap := make(map[string]models.VideoDetail, len(videoDetails))
	for _, d := range videoDetails {
		videoMap[d.VideoID] = d
	}

	channelMap := make(map[string]models.ChannelDetail, len(channelDetails))
	for _, d := range channelDetails {
		channelMap[d.ChannelID] = d
	}

	var rows []models.ResultRow
	for _, hit := range hits {
		detail, ok := videoMap[hit.VideoID]
		if !ok {
			// Already-seen hits and detail lookup misses land here.
			continue
		}

		channel, ok := channelMap[hit.ChannelID]
		if !ok {
			// Missing channel statistics degrade to zero values rather
			// than dropping the video.
			channel = models.ChannelDetail{ChannelID: hit.ChannelID, Country: "N/A"}
		}

		row, ok := s.buildRow(req, keyword, hit.ChannelID, detail, channel)
		if !ok {
			continue
		}

		rows = append(rows, row)
		observability.RowsProduced.Inc()
	}

	return rows, ""
}

// buildRow computes the derived metrics for one candidate, applies the
// configured filters, and constructs the immutable result row. The
// second return value is false when the candidate was filtered out.
func (s *DiscoveryService) buildRow(req models.DiscoveryRequest, keyword, channelID string, detail models.VideoDetail, channel models.ChannelDetail) (models.ResultRow, bool) {
	durationSec := parser.DurationSeconds(detail.Duration)
	if durationSec < req.MinDurationSec || durationSec > req.MaxDurationSec {
		return models.ResultRow{}, false
	}

	daysOld := scoring.DaysOld(detail.PublishedAt, s.now().UTC())
	engagement := scoring.EngagementRate(detail.Views, detail.Likes, detail.Comments)

	viralityDays := daysOld
	if viralityDays < 1 {
		viralityDays = 1
	}
	virality := scoring.ViralityScore(detail.Views, channel.Subscribers, viralityDays)
	viewsPerDay := math.Round(scoring.ViewsPerDay(detail.Views, daysOld))

	if detail.Views < req.MinViews {
		return models.ResultRow{}, false
	}
	if req.MaxSubscribers > 0 && channel.Subscribers > req.MaxSubscribers {
		return models.ResultRow{}, false
	}
	if engagement < req.MinEngagement {
		return models.ResultRow{}, false
	}
	if virality < req.MinVirality {
		return models.ResultRow{}, false
	}

	published := detail.PublishedAt
	if len(published) > 10 {
		published = published[:10]
	}

	return models.ResultRow{
		VideoID:        detail.VideoID,
		Title:          detail.Title,
		VideoURL:       fmt.Sprintf("https://youtube.com/shorts/%s", detail.VideoID),
		Views:          detail.Views,
		Likes:          detail.Likes,
		Comments:       detail.Comments,
		EngagementRate: engagement,
		ViralityScore:  virality,
		ViralityTier:   scoring.ViralityTier(virality),
		ViewsPerDay:    viewsPerDay,
		Duration:       parser.FormatDuration(detail.Duration),
		DurationSec:    durationSec,
		Published:      published,
		DaysOld:        daysOld,
		Description:    truncateRunes(detail.Description, maxDescriptionChars),
		Tags:           joinTags(detail.Tags),
		ThumbnailURL:   detail.ThumbnailURL,
		Channel:        detail.ChannelTitle,
		ChannelURL:     fmt.Sprintf("https://youtube.com/channel/%s", channelID),
		ChannelSubs:    channel.Subscribers,
		ChannelCountry: channel.Country,
		Niche:          req.Niche,
		Keyword:        keyword,
		Region:         req.Region,
		IdeaAngle:      ideaAngle(detail.Title, req.Niche, detail.Views, engagement),
	}, true
}

// ideaAngle synthesizes the actionable one-liner attached to every row.
// The qualitative hook phrases and the 50-character title cut are fixed
// for output compatibility.
func ideaAngle(title, nicheName string, views int64, engagement float64) string {
	var hooks []string

	if views > 1_000_000 {
		hooks = append(hooks, "VIRAL format")
	} else if views > 100_000 {
		hooks = append(hooks, "High-performing format")
	}

	if engagement > 5 {
		hooks = append(hooks, "high engagement hook")
	}

	hookText := "trending format"
	if len(hooks) > 0 {
		hookText = strings.Join(hooks, ", ")
	}

	return fmt.Sprintf(
		"Recreate this %s for '%s'. Study: '%s...' - Adapt the hook structure, change the examples, maintain similar pacing.",
		hookText, nicheName, truncateRunes(title, maxTitleCharsInIdea),
	)
}

func joinTags(tags []string) string {
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return strings.Join(tags, ", ")
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// uniqueChannelIDs returns the distinct channel IDs from a hit list in
// first-appearance order, keeping detail-fetch cache keys stable across
// identical runs.
func uniqueChannelIDs(hits []models.SearchHit) []string {
	seen := make(map[string]struct{}, len(hits))
	var ids []string

	for _, hit := range hits {
		if _, ok := seen[hit.ChannelID]; ok {
			continue
		}
		seen[hit.ChannelID] = struct{}{}
		ids = append(ids, hit.ChannelID)
	}

	return ids
}
