package services

import "context"

// Run failure reasons reported by the ingestor. A run never returns a Go
// error for these; the scheduler's bookkeeping must not be disrupted.
const (
	ReasonMissingAPIKey = "missing_api_key"
	ReasonFetchError    = "fetch_error"
	ReasonRateLimited   = "rate_limited"
	ReasonAPIError      = "api_error"
	ReasonUpsertError   = "upsert_error"
)

// RunResult is the outcome of one ingestion run.
type RunResult struct {
	OK       bool   `json:"ok"`
	Reason   string `json:"reason,omitempty"`
	Ingested int    `json:"ingested"`
}

// IngestService pulls recent items from the external news API and upserts
// them as NewsItems. One call is one run; the hourly schedule is the only
// retry mechanism.
type IngestService interface {
	Run(ctx context.Context) RunResult
}
