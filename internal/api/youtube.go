package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/yt-metrics/internal/analyzer"
	"github.com/yt-metrics/internal/models"
)

const (
	youtubeAPIBaseURL = "https://www.googleapis.com/youtube/v3"
	// YouTube API maximum page size for playlistItems and videos.list.
	apiPageSize = 50
)

// resolveClient handles the channel resolution lookups (forUsername,
// forHandle, search) via direct HTTP requests.
type resolveClient struct {
	apiKey string
	client *http.Client
}

func newResolveClient(apiKey string) *resolveClient {
	return &resolveClient{
		apiKey: apiKey,
		client: &http.Client{},
	}
}

// ResolveChannelURL extracts or resolves the channel ID from the various
// YouTube channel URL formats.
func (c *resolveClient) ResolveChannelURL(channelURL string) (string, error) {
	parsedURL, err := url.Parse(channelURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch {
	case strings.Contains(parsedURL.Host, "youtube.com"):
		path := parsedURL.Path
		switch {
		case strings.HasPrefix(path, "/channel/"):
			// Format: youtube.com/channel/UC...
			return strings.TrimPrefix(path, "/channel/"), nil
		case strings.HasPrefix(path, "/c/"), strings.HasPrefix(path, "/user/"):
			// Format: youtube.com/c/ChannelName or youtube.com/user/Username
			username := strings.TrimPrefix(path, "/c/")
			username = strings.TrimPrefix(username, "/user/")
			return c.channelIDForUsername(username)
		case strings.HasPrefix(path, "/@"):
			// Format: youtube.com/@Handle
			return c.channelIDForHandle(strings.TrimPrefix(path, "/@"))
		}
	case strings.Contains(parsedURL.Host, "youtu.be"):
		return "", fmt.Errorf("youtu.be URLs are typically video URLs, not channel URLs")
	}

	return "", fmt.Errorf("unsupported YouTube URL format")
}

// channelIDForUsername resolves a legacy username or custom URL segment.
func (c *resolveClient) channelIDForUsername(username string) (string, error) {
	lookupURL := fmt.Sprintf("%s/channels?part=id&forUsername=%s&key=%s",
		youtubeAPIBaseURL, url.QueryEscape(username), c.apiKey)

	resp, err := c.client.Get(lookupURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel ID: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("YouTube API returned status code: %d", resp.StatusCode)
	}

	var response struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Items) == 0 {
		return "", fmt.Errorf("no channel found for username: %s", username)
	}
	return response.Items[0].ID, nil
}

// channelIDForHandle resolves an @handle, falling back to a channel
// search when the direct lookup finds nothing.
func (c *resolveClient) channelIDForHandle(handle string) (string, error) {
	lookupURL := fmt.Sprintf("%s/channels?part=id&forHandle=%s&key=%s",
		youtubeAPIBaseURL, url.QueryEscape(handle), c.apiKey)

	resp, err := c.client.Get(lookupURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel ID: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("YouTube API returned status code: %d", resp.StatusCode)
	}

	var response struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(response.Items) > 0 {
		return response.Items[0].ID, nil
	}

	// Direct lookup failed; search for the handle instead.
	searchURL := fmt.Sprintf("%s/search?part=snippet&q=%s&type=channel&key=%s",
		youtubeAPIBaseURL, url.QueryEscape("@"+handle), c.apiKey)

	resp, err = c.client.Get(searchURL)
	if err != nil {
		return "", fmt.Errorf("failed to search for channel: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("YouTube API returned status code: %d", resp.StatusCode)
	}

	var searchResponse struct {
		Items []struct {
			ID struct {
				ChannelID string `json:"channelId"`
			} `json:"id"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&searchResponse); err != nil {
		return "", fmt.Errorf("failed to decode search response: %w", err)
	}

	if len(searchResponse.Items) == 0 {
		return "", fmt.Errorf("no channel found for handle: @%s", handle)
	}
	return searchResponse.Items[0].ID.ChannelID, nil
}

// Fetcher retrieves channel summaries and per-video records from the
// YouTube Data API and shapes them for analysis.
type Fetcher struct {
	service  *youtube.Service
	resolver *resolveClient
}

// NewFetcher creates a Fetcher backed by the given API key.
func NewFetcher(apiKey string) (*Fetcher, error) {
	ctx := context.Background()
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Fetcher{
		service:  service,
		resolver: newResolveClient(apiKey),
	}, nil
}

// ResolveChannelURL resolves any supported channel URL format to a
// channel ID.
func (f *Fetcher) ResolveChannelURL(channelURL string) (string, error) {
	return f.resolver.ResolveChannelURL(channelURL)
}

// ChannelSummary fetches the channel-level snapshot. A hidden subscriber
// count comes back as a nil pointer so downstream output can distinguish
// it from a real zero.
func (f *Fetcher) ChannelSummary(channelID string) (models.ChannelSummary, error) {
	call := f.service.Channels.List([]string{"snippet", "statistics"}).Id(channelID)
	response, err := call.Do()
	if err != nil {
		return models.ChannelSummary{}, fmt.Errorf("error fetching channel info: %w", err)
	}
	if len(response.Items) == 0 {
		return models.ChannelSummary{}, fmt.Errorf("channel not found: %s", channelID)
	}

	item := response.Items[0]
	summary := models.ChannelSummary{
		ChannelID: item.Id,
		Title:     item.Snippet.Title,
	}
	if item.Statistics != nil {
		summary.TotalViews = int64(item.Statistics.ViewCount)
		if !item.Statistics.HiddenSubscriberCount {
			subs := int64(item.Statistics.SubscriberCount)
			summary.Subscribers = &subs
		}
	}
	return summary, nil
}

// ChannelVideos fetches up to maxVideos of the channel's most recent
// uploads as analysis-ready records. Durations and publish timestamps
// are normalized here; records with malformed fields keep zero values
// rather than failing the fetch.
func (f *Fetcher) ChannelVideos(channelID string, maxVideos int) ([]models.VideoRecord, error) {
	playlistID, err := f.uploadsPlaylistID(channelID)
	if err != nil {
		return nil, err
	}

	videoIDs, err := f.playlistVideoIDs(playlistID, maxVideos)
	if err != nil {
		return nil, err
	}
	if len(videoIDs) == 0 {
		return nil, nil
	}

	var records []models.VideoRecord
	for i := 0; i < len(videoIDs); i += apiPageSize {
		end := i + apiPageSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		call := f.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
			Id(videoIDs[i:end]...)
		response, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("error fetching video details: %w", err)
		}

		for _, v := range response.Items {
			if v == nil || v.Snippet == nil {
				continue
			}
			record := models.VideoRecord{
				ID:          v.Id,
				Title:       v.Snippet.Title,
				Description: v.Snippet.Description,
				PublishedAt: analyzer.NormalizeTimestamp(v.Snippet.PublishedAt),
			}
			if v.ContentDetails != nil {
				record.DurationSeconds = analyzer.ParseISODuration(v.ContentDetails.Duration)
			}
			if v.Statistics != nil {
				record.Views = int64(v.Statistics.ViewCount)
				record.Likes = int64(v.Statistics.LikeCount)
				record.Comments = int64(v.Statistics.CommentCount)
			}
			records = append(records, record)
		}
	}

	return records, nil
}

func (f *Fetcher) uploadsPlaylistID(channelID string) (string, error) {
	call := f.service.Channels.List([]string{"contentDetails"}).Id(channelID)
	response, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("error fetching channel details: %w", err)
	}
	if len(response.Items) == 0 {
		return "", fmt.Errorf("channel not found: %s", channelID)
	}

	channel := response.Items[0]
	if channel.ContentDetails == nil || channel.ContentDetails.RelatedPlaylists == nil ||
		channel.ContentDetails.RelatedPlaylists.Uploads == "" {
		return "", fmt.Errorf("uploads playlist not found for channel: %s", channelID)
	}
	return channel.ContentDetails.RelatedPlaylists.Uploads, nil
}

func (f *Fetcher) playlistVideoIDs(playlistID string, maxVideos int) ([]string, error) {
	var videoIDs []string
	nextPageToken := ""

	for {
		call := f.service.PlaylistItems.List([]string{"snippet"}).
			PlaylistId(playlistID).
			MaxResults(apiPageSize)
		if nextPageToken != "" {
			call = call.PageToken(nextPageToken)
		}

		response, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("error fetching playlist items: %w", err)
		}

		for _, item := range response.Items {
			if item != nil && item.Snippet != nil && item.Snippet.ResourceId != nil {
				videoIDs = append(videoIDs, item.Snippet.ResourceId.VideoId)
			}
		}

		if len(videoIDs) >= maxVideos || response.NextPageToken == "" {
			break
		}
		nextPageToken = response.NextPageToken
	}

	if len(videoIDs) > maxVideos {
		videoIDs = videoIDs[:maxVideos]
	}
	return videoIDs, nil
}
