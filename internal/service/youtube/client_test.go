package youtube

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/youtube/v3"

	"github.com/shortscout/shorts-discovery-go/internal/cache"
)

func newTestClient() *Client {
	return &Client{
		store:   cache.NewMemoryCache(),
		ttl:     time.Hour,
		timeout: time.Second,
		keyHash: "testkey",
	}
}

func TestSearchShortsCachesSuccess(t *testing.T) {
	ctx := context.Background()
	c := newTestClient()

	calls := 0
	c.searchCall = func(_ context.Context, _ string, _ time.Time, _ string, _ int64) (*youtube.SearchListResponse, error) {
		calls++
		return &youtube.SearchListResponse{
			Items: []*youtube.SearchResult{
				{
					Id: &youtube.ResourceId{VideoId: "vid-1"},
					Snippet: &youtube.SearchResultSnippet{
						ChannelId:    "chan-1",
						Title:        "First short",
						ChannelTitle: "Channel One",
						PublishedAt:  "2025-06-01T00:00:00Z",
					},
				},
			},
		}, nil
	}

	after := time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)

	hits, err := c.SearchShorts(ctx, "space facts shorts", after, "US", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "vid-1", hits[0].VideoID)
	assert.Equal(t, "chan-1", hits[0].ChannelID)

	// Identical arguments within the TTL must hit the cache.
	again, err := c.SearchShorts(ctx, "space facts shorts", after, "US", 10)
	require.NoError(t, err)
	assert.Equal(t, hits, again)
	assert.Equal(t, 1, calls)

	// A different argument tuple is a different cache entry.
	_, err = c.SearchShorts(ctx, "space facts shorts", after, "GB", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSearchShortsCachesError(t *testing.T) {
	ctx := context.Background()
	c := newTestClient()

	calls := 0
	c.searchCall = func(_ context.Context, _ string, _ time.Time, _ string, _ int64) (*youtube.SearchListResponse, error) {
		calls++
		return nil, errors.New("quota exceeded")
	}

	after := time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)

	_, err := c.SearchShorts(ctx, "gaming shorts", after, "US", 10)
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "search", remoteErr.Op)
	assert.Contains(t, remoteErr.Message, "quota exceeded")

	// The failed outcome is memoized too.
	_, err = c.SearchShorts(ctx, "gaming shorts", after, "US", 10)
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 1, calls)
}

func TestVideoDetailsBatchLimits(t *testing.T) {
	ctx := context.Background()
	c := newTestClient()

	_, err := c.VideoDetails(ctx, nil)
	assert.Error(t, err)

	ids := make([]string, maxBatchIDs+1)
	for i := range ids {
		ids[i] = "v"
	}
	_, err = c.VideoDetails(ctx, ids)
	assert.Error(t, err)

	_, err = c.ChannelDetails(ctx, nil)
	assert.Error(t, err)
}

func TestVideoDetailsCachesSuccess(t *testing.T) {
	ctx := context.Background()
	c := newTestClient()

	calls := 0
	c.videosCall = func(_ context.Context, ids []string) (*youtube.VideoListResponse, error) {
		calls++
		return &youtube.VideoListResponse{
			Items: []*youtube.Video{
				{
					Id: ids[0],
					Snippet: &youtube.VideoSnippet{
						Title:       "Detail title",
						ChannelId:   "chan-1",
						PublishedAt: "2025-06-01T00:00:00Z",
						Tags:        []string{"a", "b"},
					},
					Statistics: &youtube.VideoStatistics{
						ViewCount:    200000,
						LikeCount:    10000,
						CommentCount: 500,
					},
					ContentDetails: &youtube.VideoContentDetails{Duration: "PT0M58S"},
				},
			},
		}, nil
	}

	details, err := c.VideoDetails(ctx, []string{"vid-1"})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, int64(200000), details[0].Views)
	assert.Equal(t, "PT0M58S", details[0].Duration)

	_, err = c.VideoDetails(ctx, []string{"vid-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestMapChannelItems(t *testing.T) {
	details := mapChannelItems([]*youtube.Channel{
		{
			Id:         "chan-1",
			Statistics: &youtube.ChannelStatistics{SubscriberCount: 2000},
			Snippet:    &youtube.ChannelSnippet{Country: "US"},
		},
		{
			Id: "chan-hidden",
			Statistics: &youtube.ChannelStatistics{
				SubscriberCount:       99999,
				HiddenSubscriberCount: true,
			},
		},
	})

	require.Len(t, details, 2)
	assert.Equal(t, int64(2000), details[0].Subscribers)
	assert.Equal(t, "US", details[0].Country)
	// Hidden subscriber counts read as zero, country defaults to N/A.
	assert.Equal(t, int64(0), details[1].Subscribers)
	assert.Equal(t, "N/A", details[1].Country)
}

func TestMapSearchItemsSkipsMalformed(t *testing.T) {
	hits := mapSearchItems([]*youtube.SearchResult{
		{Id: &youtube.ResourceId{VideoId: ""}},
		{Id: nil},
		{
			Id:      &youtube.ResourceId{VideoId: "ok"},
			Snippet: &youtube.SearchResultSnippet{ChannelId: "c"},
		},
	})

	require.Len(t, hits, 1)
	assert.Equal(t, "ok", hits[0].VideoID)
}

func TestPickThumbnail(t *testing.T) {
	assert.Equal(t, "", pickThumbnail(nil))
	assert.Equal(t, "high", pickThumbnail(&youtube.ThumbnailDetails{
		High:    &youtube.Thumbnail{Url: "high"},
		Default: &youtube.Thumbnail{Url: "default"},
	}))
	assert.Equal(t, "default", pickThumbnail(&youtube.ThumbnailDetails{
		Default: &youtube.Thumbnail{Url: "default"},
	}))
}
