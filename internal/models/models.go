// Package models contains the data models and DTOs for the Shorts
// discovery service.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchHit identifies a candidate video returned by a keyword search.
// Hits are ephemeral: they exist only to build the detail-fetch batches
// for one keyword pass.
type SearchHit struct {
	VideoID      string `json:"video_id"`
	ChannelID    string `json:"channel_id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
	PublishedAt  string `json:"published_at"`
	Description  string `json:"description"`
}

// VideoDetail carries the statistics and content metadata for one
// video, keyed by video ID.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type VideoDetail struct {
	VideoID      string   `json:"video_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ChannelID    string   `json:"channel_id"`
	ChannelTitle string   `json:"channel_title"`
	PublishedAt  string   `json:"published_at"`
	Tags         []string `json:"tags"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Views        int64    `json:"views"`
	Likes        int64    `json:"likes"`
	Comments     int64    `json:"comments"`
	// Duration is the raw compact encoding, e.g. "PT0M58S".
	Duration string `json:"duration"`
}

// ChannelDetail carries subscriber count and country for one channel.
// It is shared read-only across all videos of that channel in a run.
type ChannelDetail struct {
	ChannelID   string `json:"channel_id"`
	Subscribers int64  `json:"subscribers"`
	Country     string `json:"country"`
}

// ResultRow is the durable output unit: one qualifying video with its
// raw counters, derived metrics, and provenance. Immutable after
// construction.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ResultRow struct {
	VideoID        string  `json:"video_id"`
	Title          string  `json:"title"`
	VideoURL       string  `json:"video_url"`
	Views          int64   `json:"views"`
	Likes          int64   `json:"likes"`
	Comments       int64   `json:"comments"`
	EngagementRate float64 `json:"engagement_rate"`
	ViralityScore  float64 `json:"virality_score"`
	ViralityTier   string  `json:"virality_tier"`
	ViewsPerDay    float64 `json:"views_per_day"`
	Duration       string  `json:"duration"`
	DurationSec    int     `json:"duration_sec"`
	Published      string  `json:"published"`
	DaysOld        int     `json:"days_old"`
	Description    string  `json:"description"`
	Tags           string  `json:"tags"`
	ThumbnailURL   string  `json:"thumbnail_url"`
	Channel        string  `json:"channel"`
	ChannelURL     string  `json:"channel_url"`
	ChannelSubs    int64   `json:"channel_subs"`
	ChannelCountry string  `json:"channel_country"`
	Niche          string  `json:"niche"`
	Keyword        string  `json:"keyword"`
	Region         string  `json:"region"`
	IdeaAngle      string  `json:"idea_angle"`
}

// Summary holds aggregate statistics over a ranked result collection.
type Summary struct {
	VideosFound   int     `json:"videos_found"`
	AvgViews      int64   `json:"avg_views"`
	AvgEngagement float64 `json:"avg_engagement"`
	ViralCount    int     `json:"viral_count"`
	AvgVirality   float64 `json:"avg_virality"`
}

// KeywordStats is the per-keyword rollup over a result collection.
type KeywordStats struct {
	Keyword     string  `json:"keyword"`
	VideosFound int     `json:"videos_found"`
	AvgViews    float64 `json:"avg_views"`
	AvgVirality float64 `json:"avg_virality"`
}

// DiscoveryRequest is the resolved configuration for one pipeline run.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type DiscoveryRequest struct {
	Niche             string   `json:"niche"`
	CustomKeywords    []string `json:"custom_keywords"`
	DaysBack          int      `json:"days_back"`
	Region            string   `json:"region"`
	ResultsPerKeyword int64    `json:"results_per_keyword"`
	MinViews          int64    `json:"min_views"`
	// MaxSubscribers of 0 means unlimited.
	MaxSubscribers  int64   `json:"max_subscribers"`
	MinEngagement   float64 `json:"min_engagement"`
	MinVirality     float64 `json:"min_virality"`
	MinDurationSec  int     `json:"min_duration_sec"`
	MaxDurationSec  int     `json:"max_duration_sec"`
}

// DiscoveryResult is the finished product of one run: the ranked rows
// plus summary statistics, analytics rollups, and the warning log.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type DiscoveryResult struct {
	RunID           uuid.UUID      `json:"run_id"`
	Niche           string         `json:"niche"`
	Region          string         `json:"region"`
	Rows            []ResultRow    `json:"rows"`
	Summary         Summary        `json:"summary"`
	KeywordStats    []KeywordStats `json:"keyword_stats"`
	TopByVirality   []ResultRow    `json:"top_by_virality"`
	TopByEngagement []ResultRow    `json:"top_by_engagement"`
	Warnings        []string       `json:"warnings"`
	StartedAt       time.Time      `json:"started_at"`
	CompletedAt     time.Time      `json:"completed_at"`
}

// DiscoveryRequestDTO is the HTTP request body for a discovery run.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type DiscoveryRequestDTO struct {
	Niche string `json:"niche"`
	// CustomKeywords is newline-separated free text, one keyword per line.
	CustomKeywords    string  `json:"custom_keywords"`
	DaysBack          int     `json:"days_back" binding:"required"`
	Region            string  `json:"region" binding:"required"`
	ResultsPerKeyword int64   `json:"results_per_keyword" binding:"required"`
	MinViews          int64   `json:"min_views"`
	MaxSubscribers    int64   `json:"max_subscribers"`
	MinEngagement     float64 `json:"min_engagement"`
	MinVirality       float64 `json:"min_virality"`
	MinDurationSec    int     `json:"min_duration_sec"`
	MaxDurationSec    int     `json:"max_duration_sec"`
}

// DiscoveryResponseDTO is the HTTP response for a discovery run.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type DiscoveryResponseDTO struct {
	RunID           uuid.UUID      `json:"run_id"`
	Niche           string         `json:"niche"`
	Region          string         `json:"region"`
	Rows            []ResultRow    `json:"rows"`
	Summary         Summary        `json:"summary"`
	KeywordStats    []KeywordStats `json:"keyword_stats"`
	TopByVirality   []ResultRow    `json:"top_by_virality"`
	TopByEngagement []ResultRow    `json:"top_by_engagement"`
	Warnings        []string       `json:"warnings"`
	// Suggestion is set when no row survived filtering: an empty result
	// is a valid outcome, not an error.
	Suggestion string `json:"suggestion,omitempty"`
}

// ErrorResponse represents an error response.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}
