package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Kimnjuki/faceless-sub001/domain/models"
	"github.com/Kimnjuki/faceless-sub001/domain/repositories"
	"github.com/Kimnjuki/faceless-sub001/domain/services"
	"github.com/Kimnjuki/faceless-sub001/infrastructure/newsapi"
	"github.com/Kimnjuki/faceless-sub001/pkg/config"
	"github.com/Kimnjuki/faceless-sub001/pkg/logger"
)

type IngestServiceImpl struct {
	client       *newsapi.Client
	newsItemRepo repositories.NewsItemRepository
	cfg          config.NewsAPIConfig

	// Pacing between upserts and the cosmetic 429 sleep. Fields so tests can
	// zero them.
	upsertPace     time.Duration
	rateLimitSleep time.Duration

	now func() time.Time
}

func NewIngestService(
	client *newsapi.Client,
	newsItemRepo repositories.NewsItemRepository,
	cfg config.NewsAPIConfig,
) services.IngestService {
	return &IngestServiceImpl{
		client:         client,
		newsItemRepo:   newsItemRepo,
		cfg:            cfg,
		upsertPace:     80 * time.Millisecond,
		rateLimitSleep: 1200 * time.Millisecond,
		now:            time.Now,
	}
}

// Run executes one ingestion pass: a single fetch, then sequential upserts.
// There is no retry inside a run; the next scheduled run is the retry
// mechanism. Failures are reported in the result, never raised.
func (s *IngestServiceImpl) Run(ctx context.Context) services.RunResult {
	if s.cfg.APIKey == "" {
		logger.IngestError("missing_api_key", "News API key not configured, skipping run", nil, nil)
		return services.RunResult{OK: false, Reason: services.ReasonMissingAPIKey}
	}

	logger.Ingest("run_started", "Fetching news", map[string]interface{}{
		"query":     s.cfg.Query,
		"page_size": s.cfg.PageSize,
	})

	resp, err := s.client.Everything(ctx, s.cfg.Query, s.cfg.PageSize, s.cfg.Language)
	if err != nil {
		if errors.Is(err, newsapi.ErrRateLimited) {
			// The sleep is cosmetic; the retry is the next hourly trigger.
			time.Sleep(s.rateLimitSleep)
			logger.IngestError("rate_limited", "News API rate limited", err, nil)
			return services.RunResult{OK: false, Reason: services.ReasonRateLimited}
		}
		logger.IngestError("fetch_failed", "News API fetch failed", err, nil)
		return services.RunResult{OK: false, Reason: services.ReasonFetchError}
	}

	if resp.Status != "ok" {
		reason := resp.Code
		if reason == "" {
			reason = services.ReasonAPIError
		}
		logger.IngestError("api_error", "News API returned error status", nil, map[string]interface{}{
			"code":    resp.Code,
			"message": resp.Message,
		})
		return services.RunResult{OK: false, Reason: reason}
	}

	ingested := 0
	for _, item := range resp.Articles {
		newsItem := s.normalize(item)

		// Fail fast: the first upsert error aborts the run with the partial
		// count.
		if _, err := s.newsItemRepo.Upsert(ctx, newsItem); err != nil {
			logger.IngestError("upsert_failed", "News item upsert failed", err, map[string]interface{}{
				"external_id": newsItem.ExternalID,
			})
			return services.RunResult{OK: false, Reason: services.ReasonUpsertError, Ingested: ingested}
		}
		ingested++

		// Crude self-throttle between writes, not adaptive backpressure.
		if s.upsertPace > 0 {
			time.Sleep(s.upsertPace)
		}
	}

	logger.Ingest("run_completed", "News ingestion completed", map[string]interface{}{"ingested": ingested})
	return services.RunResult{OK: true, Ingested: ingested}
}

// normalize maps an API item onto a NewsItem row. The external id is the URL
// when present; URL-less items get a synthesized id with a random suffix so
// they never accidentally collide or dedup.
func (s *IngestServiceImpl) normalize(item newsapi.Item) *models.NewsItem {
	publishedAt := s.now()
	if item.PublishedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, item.PublishedAt); err == nil {
			publishedAt = parsed
		}
	}

	externalID := item.URL
	if externalID == "" {
		sourceID := item.Source.ID
		if sourceID == "" {
			sourceID = item.Source.Name
		}
		externalID = fmt.Sprintf("%s-%d-%s", sourceID, publishedAt.UnixMilli(), uuid.NewString()[:8])
	}

	return &models.NewsItem{
		ExternalID:  externalID,
		Source:      item.Source.Name,
		IsAutomated: true,
		OriginalURL: item.URL,
		Title:       item.Title,
		Description: item.Description,
		PublishedAt: publishedAt,
	}
}
