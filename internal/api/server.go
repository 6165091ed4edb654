package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yt-metrics/internal/analyzer"
	"github.com/yt-metrics/internal/models"
)

const (
	// Default number of recent uploads to analyze when the request does
	// not say otherwise.
	defaultMaxVideos = 200
	dateParamLayout  = "2006-01-02"
)

// MetricsAPI wires the fetcher, the analysis engine and the optional
// snapshot store into gin handlers.
type MetricsAPI struct {
	fetcher *Fetcher
	engine  *analyzer.Analyzer
	db      *models.Database
}

// NewMetricsAPI creates the handler set. db may be nil, which disables
// snapshot caching.
func NewMetricsAPI(apiKey string, db *models.Database) (*MetricsAPI, error) {
	fetcher, err := NewFetcher(apiKey)
	if err != nil {
		return nil, err
	}

	return &MetricsAPI{
		fetcher: fetcher,
		engine:  analyzer.New(),
		db:      db,
	}, nil
}

// RegisterRoutes attaches all endpoints to the router.
func (h *MetricsAPI) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/channel/url", h.GetChannelByURL)
	router.GET("/channel/:id/metrics", h.GetChannelMetrics)
	router.GET("/insights", h.GetInsights)
}

// GetChannelByURL resolves a channel URL to its ID and summary.
func (h *MetricsAPI) GetChannelByURL(c *gin.Context) {
	channelURL := c.Query("url")
	if channelURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	channelID, err := h.fetcher.ResolveChannelURL(channelURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid YouTube URL: %v", err)})
		return
	}

	summary, err := h.fetcher.ChannelSummary(channelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetChannelMetrics runs the full analysis for a channel. Without a
// date window, a snapshot from earlier the same day is served from the
// store instead of refetching.
func (h *MetricsAPI) GetChannelMetrics(c *gin.Context) {
	channelID := c.Param("id")
	if channelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Channel ID is required"})
		return
	}

	dateRange, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maxVideos := defaultMaxVideos
	if raw := c.Query("maxVideos"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			maxVideos = n
		}
	}

	// Date-windowed requests bypass the snapshot cache: the stored
	// record covers the default window only.
	if dateRange == nil {
		if cached := h.cachedMetrics(channelID); cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	log.Printf("Fetching fresh metrics for channel: %s", channelID)
	summary, err := h.fetcher.ChannelSummary(channelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	videos, err := h.fetcher.ChannelVideos(channelID, maxVideos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics := h.engine.Analyze(summary, videos, dateRange)

	if dateRange == nil && h.db != nil {
		if err := h.db.StoreMetrics(&metrics); err != nil {
			log.Printf("Failed to store metrics snapshot: %v", err)
		}
	}

	c.JSON(http.StatusOK, metrics)
}

// GetInsights analyzes several channels and aggregates them into
// comparative suggestions.
func (h *MetricsAPI) GetInsights(c *gin.Context) {
	idsParam := c.Query("ids")
	if idsParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids query parameter is required"})
		return
	}

	var channelIDs []string
	for _, id := range strings.Split(idsParam, ",") {
		if id = strings.TrimSpace(id); id != "" {
			channelIDs = append(channelIDs, id)
		}
	}
	if len(channelIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids query parameter is required"})
		return
	}

	var analyses []models.ChannelMetrics
	for _, channelID := range channelIDs {
		metrics := h.cachedMetrics(channelID)
		if metrics == nil {
			summary, err := h.fetcher.ChannelSummary(channelID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("channel %s: %v", channelID, err)})
				return
			}
			videos, err := h.fetcher.ChannelVideos(channelID, defaultMaxVideos)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("channel %s: %v", channelID, err)})
				return
			}
			m := h.engine.Analyze(summary, videos, nil)
			metrics = &m

			if h.db != nil {
				if err := h.db.StoreMetrics(metrics); err != nil {
					log.Printf("Failed to store metrics snapshot: %v", err)
				}
			}
		}
		analyses = append(analyses, *metrics)
	}

	c.JSON(http.StatusOK, analyzer.AggregateInsights(analyses))
}

// cachedMetrics returns the stored snapshot when it was taken today,
// nil otherwise. Store errors only log; a broken cache never fails a
// request.
func (h *MetricsAPI) cachedMetrics(channelID string) *models.ChannelMetrics {
	if h.db == nil {
		return nil
	}

	metrics, storedAt, err := h.db.GetLatestMetrics(channelID)
	if err != nil {
		log.Printf("Error fetching cached metrics: %v", err)
		return nil
	}
	if metrics == nil {
		return nil
	}

	if storedAt.UTC().Format(dateParamLayout) != time.Now().UTC().Format(dateParamLayout) {
		log.Printf("Cached metrics for %s are from a different day, refetching", channelID)
		return nil
	}

	log.Printf("Returning cached metrics for %s from %v", channelID, storedAt)
	return metrics
}

// parseDateRange builds the inclusive analysis window from the from/to
// query parameters, both optional and formatted as YYYY-MM-DD.
func parseDateRange(fromParam, toParam string) (*models.DateRange, error) {
	if fromParam == "" && toParam == "" {
		return nil, nil
	}

	dr := &models.DateRange{}
	if fromParam != "" {
		from, err := time.Parse(dateParamLayout, fromParam)
		if err != nil {
			return nil, fmt.Errorf("invalid from date %q, expected YYYY-MM-DD", fromParam)
		}
		dr.From = &from
	}
	if toParam != "" {
		to, err := time.Parse(dateParamLayout, toParam)
		if err != nil {
			return nil, fmt.Errorf("invalid to date %q, expected YYYY-MM-DD", toParam)
		}
		dr.To = &to
	}
	return dr, nil
}
