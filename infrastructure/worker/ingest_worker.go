package worker

import (
	"context"
	"sync"

	"github.com/Kimnjuki/faceless-sub001/domain/services"
	"github.com/Kimnjuki/faceless-sub001/pkg/logger"
)

// IngestWorker runs news ingestion on a single background goroutine. The
// cron job and the admin trigger both feed the same channel, so runs never
// overlap regardless of who asked for one.
type IngestWorker struct {
	ingestService services.IngestService

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	isRunning bool
	mu        sync.Mutex
	triggerCh chan struct{}

	lastResult *services.RunResult
}

func NewIngestWorker(ingestService services.IngestService) *IngestWorker {
	return &IngestWorker{
		ingestService: ingestService,
		triggerCh:     make(chan struct{}, 1),
	}
}

// Trigger requests an ingestion run. If one is already queued the request is
// coalesced.
func (w *IngestWorker) Trigger() {
	select {
	case w.triggerCh <- struct{}{}:
		logger.Ingest("ingest_triggered", "Ingestion run triggered", nil)
	default:
		// Already queued
	}
}

// Start starts the worker goroutine.
func (w *IngestWorker) Start() {
	w.mu.Lock()
	if w.isRunning {
		w.mu.Unlock()
		logger.IngestError("worker_start", "Ingest worker already running", nil, nil)
		return
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.isRunning = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.loop()

	logger.Ingest("worker_started", "Ingest worker started", nil)
}

// Stop stops the worker and waits for an in-flight run to finish.
func (w *IngestWorker) Stop() {
	w.mu.Lock()
	if !w.isRunning {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.isRunning = false
	w.mu.Unlock()

	w.wg.Wait()
	logger.Ingest("worker_stopped", "Ingest worker stopped", nil)
}

func (w *IngestWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// LastResult returns the outcome of the most recent run, or nil if none ran.
func (w *IngestWorker) LastResult() *services.RunResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lastResult == nil {
		return nil
	}
	result := *w.lastResult
	return &result
}

func (w *IngestWorker) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.triggerCh:
			result := w.ingestService.Run(w.ctx)

			w.mu.Lock()
			w.lastResult = &result
			w.mu.Unlock()

			if result.OK {
				logger.Ingest("run_completed", "Ingestion run completed", map[string]interface{}{"ingested": result.Ingested})
			} else {
				logger.IngestError("run_failed", "Ingestion run failed", nil, map[string]interface{}{"reason": result.Reason, "ingested": result.Ingested})
			}
		}
	}
}
