// Package youtube wraps the YouTube Data API v3 behind the three query
// operations the discovery pipeline needs. Every call is read through a
// TTL cache keyed by the exact argument tuple; error outcomes are
// cached alongside successes to bound call volume for repeated
// identical queries.
package youtube

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/shortscout/shorts-discovery-go/internal/cache"
	"github.com/shortscout/shorts-discovery-go/internal/models"
	"github.com/shortscout/shorts-discovery-go/internal/observability"
)

const (
	// maxBatchIDs is the platform limit for one batched detail lookup.
	maxBatchIDs = 50

	opSearch   = "search"
	opVideos   = "videos"
	opChannels = "channels"
)

// RemoteError is the tagged error value for transport or remote
// failures. It never escapes past the gateway as a panic; callers
// decide whether a failed call is fatal.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Client is the remote data gateway against the YouTube Data API v3.
type Client struct {
	service *youtube.Service
	store   cache.Cache
	ttl     time.Duration
	timeout time.Duration
	keyHash string

	searchCall   func(ctx context.Context, keyword string, publishedAfter time.Time, region string, maxResults int64) (*youtube.SearchListResponse, error)
	videosCall   func(ctx context.Context, ids []string) (*youtube.VideoListResponse, error)
	channelsCall func(ctx context.Context, ids []string) (*youtube.ChannelListResponse, error)
}

// NewClient creates a gateway using the given API credential. Results
// are memoized in store for ttl; each remote call is bounded by
// timeout.
func NewClient(ctx context.Context, apiKey string, store cache.Cache, ttl, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	sum := sha256.Sum256([]byte(apiKey))

	c := &Client{
		service: service,
		store:   store,
		ttl:     ttl,
		timeout: timeout,
		keyHash: hex.EncodeToString(sum[:8]),
	}
	c.searchCall = c.doSearch
	c.videosCall = c.doVideos
	c.channelsCall = c.doChannels

	return c, nil
}

// cachedSearch is the memoized envelope for one search call. Err holds
// the remote failure description when the cached outcome was an error.
type cachedSearch struct {
	Hits []models.SearchHit `json:"hits"`
	Err  string             `json:"err,omitempty"`
}

type cachedVideos struct {
	Details []models.VideoDetail `json:"details"`
	Err     string               `json:"err,omitempty"`
}

type cachedChannels struct {
	Details []models.ChannelDetail `json:"details"`
	Err     string                 `json:"err,omitempty"`
}

// SearchShorts runs a keyword query restricted to short-form video,
// ordered by view count descending, limited to videos published after
// the given instant. The gateway performs no deduplication; that is the
// pipeline's responsibility.
func (c *Client) SearchShorts(ctx context.Context, keyword string, publishedAfter time.Time, region string, maxResults int64) ([]models.SearchHit, error) {
	key := fmt.Sprintf("%s|%s|%s|%s|%d|%s",
		opSearch, keyword, publishedAfter.UTC().Format(time.RFC3339), region, maxResults, c.keyHash)

	var entry cachedSearch
	if c.store.Get(ctx, key, &entry) {
		observability.CacheLookups.WithLabelValues(opSearch, "hit").Inc()
		if entry.Err != "" {
			return nil, &RemoteError{Op: opSearch, Message: entry.Err}
		}
		return entry.Hits, nil
	}
	observability.CacheLookups.WithLabelValues(opSearch, "miss").Inc()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.searchCall(callCtx, keyword, publishedAfter, region, maxResults)
	if err != nil {
		observability.APIRequests.WithLabelValues(opSearch, "error").Inc()
		c.store.Set(ctx, key, cachedSearch{Err: err.Error()}, c.ttl)
		return nil, &RemoteError{Op: opSearch, Message: err.Error()}
	}
	observability.APIRequests.WithLabelValues(opSearch, "success").Inc()

	hits := mapSearchItems(response.Items)
	c.store.Set(ctx, key, cachedSearch{Hits: hits}, c.ttl)
	return hits, nil
}

// VideoDetails fetches statistics and content metadata for up to 50
// videos in one call.
func (c *Client) VideoDetails(ctx context.Context, videoIDs []string) ([]models.VideoDetail, error) {
	if len(videoIDs) == 0 {
		return nil, fmt.Errorf("no video IDs provided")
	}
	if len(videoIDs) > maxBatchIDs {
		return nil, fmt.Errorf("too many video IDs (max %d, got %d)", maxBatchIDs, len(videoIDs))
	}

	key := fmt.Sprintf("%s|%s|%s", opVideos, strings.Join(videoIDs, ","), c.keyHash)

	var entry cachedVideos
	if c.store.Get(ctx, key, &entry) {
		observability.CacheLookups.WithLabelValues(opVideos, "hit").Inc()
		if entry.Err != "" {
			return nil, &RemoteError{Op: opVideos, Message: entry.Err}
		}
		return entry.Details, nil
	}
	observability.CacheLookups.WithLabelValues(opVideos, "miss").Inc()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.videosCall(callCtx, videoIDs)
	if err != nil {
		observability.APIRequests.WithLabelValues(opVideos, "error").Inc()
		c.store.Set(ctx, key, cachedVideos{Err: err.Error()}, c.ttl)
		return nil, &RemoteError{Op: opVideos, Message: err.Error()}
	}
	observability.APIRequests.WithLabelValues(opVideos, "success").Inc()

	details := mapVideoItems(response.Items)
	c.store.Set(ctx, key, cachedVideos{Details: details}, c.ttl)
	return details, nil
}

// ChannelDetails fetches subscriber statistics and country for up to 50
// channels in one call.
func (c *Client) ChannelDetails(ctx context.Context, channelIDs []string) ([]models.ChannelDetail, error) {
	if len(channelIDs) == 0 {
		return nil, fmt.Errorf("no channel IDs provided")
	}
	if len(channelIDs) > maxBatchIDs {
		return nil, fmt.Errorf("too many channel IDs (max %d, got %d)", maxBatchIDs, len(channelIDs))
	}

	key := fmt.Sprintf("%s|%s|%s", opChannels, strings.Join(channelIDs, ","), c.keyHash)

	var entry cachedChannels
	if c.store.Get(ctx, key, &entry) {
		observability.CacheLookups.WithLabelValues(opChannels, "hit").Inc()
		if entry.Err != "" {
			return nil, &RemoteError{Op: opChannels, Message: entry.Err}
		}
		return entry.Details, nil
	}
	observability.CacheLookups.WithLabelValues(opChannels, "miss").Inc()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.channelsCall(callCtx, channelIDs)
	if err != nil {
		observability.APIRequests.WithLabelValues(opChannels, "error").Inc()
		c.store.Set(ctx, key, cachedChannels{Err: err.Error()}, c.ttl)
		return nil, &RemoteError{Op: opChannels, Message: err.Error()}
	}
	observability.APIRequests.WithLabelValues(opChannels, "success").Inc()

	details := mapChannelItems(response.Items)
	c.store.Set(ctx, key, cachedChannels{Details: details}, c.ttl)
	return details, nil
}

func (c *Client) doSearch(ctx context.Context, keyword string, publishedAfter time.Time, region string, maxResults int64) (*youtube.SearchListResponse, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Q(keyword).
		Type("video").
		Order("viewCount").
		PublishedAfter(publishedAfter.UTC().Format(time.RFC3339)).
		MaxResults(maxResults).
		VideoDuration("short").
		RegionCode(region).
		Context(ctx)

	return call.Do()
}

func (c *Client) doVideos(ctx context.Context, ids []string) (*youtube.VideoListResponse, error) {
	call := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx)

	return call.Do()
}

func (c *Client) doChannels(ctx context.Context, ids []string) (*youtube.ChannelListResponse, error) {
	call := c.service.Channels.List([]string{"statistics", "snippet"}).
		Id(ids...).
		Context(ctx)

	return call.Do()
}

func mapSearchItems(items []*youtube.SearchResult) []models.SearchHit {
	hits := make([]models.SearchHit, 0, len(items))

	for _, item := range items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		hits = append(hits, models.SearchHit{
			VideoID:      item.Id.VideoId,
			ChannelID:    item.Snippet.ChannelId,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			Description:  item.Snippet.Description,
		})
	}

	return hits
}

func mapVideoItems(items []*youtube.Video) []models.VideoDetail {
	details := make([]models.VideoDetail, 0, len(items))

	for _, item := range items {
		detail := models.VideoDetail{VideoID: item.Id}

		if item.Snippet != nil {
			detail.Title = item.Snippet.Title
			detail.Description = item.Snippet.Description
			detail.ChannelID = item.Snippet.ChannelId
			detail.ChannelTitle = item.Snippet.ChannelTitle
			detail.PublishedAt = item.Snippet.PublishedAt
			detail.Tags = item.Snippet.Tags
			detail.ThumbnailURL = pickThumbnail(item.Snippet.Thumbnails)
		}

		if item.Statistics != nil {
			detail.Views = int64(item.Statistics.ViewCount)
			detail.Likes = int64(item.Statistics.LikeCount)
			detail.Comments = int64(item.Statistics.CommentCount)
		}

		if item.ContentDetails != nil {
			detail.Duration = item.ContentDetails.Duration
		}

		details = append(details, detail)
	}

	return details
}

func mapChannelItems(items []*youtube.Channel) []models.ChannelDetail {
	details := make([]models.ChannelDetail, 0, len(items))

	for _, item := range items {
		detail := models.ChannelDetail{ChannelID: item.Id, Country: "N/A"}

		if item.Statistics != nil && !item.Statistics.HiddenSubscriberCount {
			detail.Subscribers = int64(item.Statistics.SubscriberCount)
		}

		if item.Snippet != nil && item.Snippet.Country != "" {
			detail.Country = item.Snippet.Country
		}

		details = append(details, detail)
	}

	return details
}

// pickThumbnail prefers the high resolution thumbnail and falls back to
// the default one.
func pickThumbnail(thumbs *youtube.ThumbnailDetails) string {
	if thumbs == nil {
		return ""
	}
	if thumbs.High != nil && thumbs.High.Url != "" {
		return thumbs.High.Url
	}
	if thumbs.Default != nil {
		return thumbs.Default.Url
	}
	return ""
}
