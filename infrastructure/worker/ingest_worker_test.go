package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kimnjuki/faceless-sub001/domain/services"
)

type stubIngestService struct {
	ran chan struct{}
}

func (s *stubIngestService) Run(_ context.Context) services.RunResult {
	select {
	case s.ran <- struct{}{}:
	default:
	}
	return services.RunResult{OK: true, Ingested: 3}
}

func TestIngestWorkerRunsOnTrigger(t *testing.T) {
	stub := &stubIngestService{ran: make(chan struct{}, 1)}
	w := NewIngestWorker(stub)

	w.Start()
	defer w.Stop()

	assert.Nil(t, w.LastResult())

	w.Trigger()
	select {
	case <-stub.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not run after trigger")
	}

	// The result is stored after Run returns; poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for w.LastResult() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	result := w.LastResult()
	require.NotNil(t, result)
	assert.True(t, result.OK)
	assert.Equal(t, 3, result.Ingested)
}

func TestIngestWorkerStartStop(t *testing.T) {
	w := NewIngestWorker(&stubIngestService{ran: make(chan struct{}, 1)})

	assert.False(t, w.IsRunning())
	w.Start()
	assert.True(t, w.IsRunning())
	w.Stop()
	assert.False(t, w.IsRunning())

	// Stop on a stopped worker is a no-op.
	w.Stop()
}
