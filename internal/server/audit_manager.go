package server

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/parcelbroker/shipdesk/internal/kafka"
	"github.com/parcelbroker/shipdesk/internal/metrics"
)

// AuditPublisher ships a batch of audit records in one call.
type AuditPublisher interface {
	Publish(ctx context.Context, records ...kafka.Record) error
}

// AuditManager collects entries into batches of batchSize (or whatever arrived
// within timeout) and hands each batch to the publisher from a worker pool.
// Publishing is single-shot; a failed batch is logged and dropped.
type AuditManager struct {
	publisher      AuditPublisher
	logger         *zap.Logger
	workerCount    int
	batchSize      int
	timeout        time.Duration
	publishTimeout time.Duration

	inputChan  chan AuditLogEntry
	batchChan  chan []AuditLogEntry
	shutdownCh chan struct{}
	once       sync.Once

	wg sync.WaitGroup
}

func NewAuditManager(publisher AuditPublisher, logger *zap.Logger, workerCount, batchSize int, timeout time.Duration) *AuditManager {
	return &AuditManager{
		publisher:      publisher,
		logger:         logger.With(zap.String("component", "audit")),
		workerCount:    workerCount,
		batchSize:      batchSize,
		timeout:        timeout,
		publishTimeout: 5 * time.Second,
		inputChan:      make(chan AuditLogEntry, workerCount*batchSize*2),
		batchChan:      make(chan []AuditLogEntry, workerCount*2),
		shutdownCh:     make(chan struct{}),
	}
}

func (m *AuditManager) Start() {
	m.logger.Info("starting audit manager", zap.Int("workers", m.workerCount), zap.Int("batch_size", m.batchSize))
	m.wg.Add(1)
	go m.runAggregator()

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(i)
	}
}

// Shutdown flushes the pending batch and waits for the workers until ctx expires.
func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		m.logger.Info("initiating audit manager shutdown")
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("audit manager shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("audit manager shutdown interrupted")
		}
	})
}

// LogEntry queues an entry. When the queue is full or the manager is stopping
// the entry is written to the log instead.
func (m *AuditManager) LogEntry(entry AuditLogEntry) {
	select {
	case <-m.shutdownCh:
		m.emergencyLog(entry)
		return
	default:
	}

	select {
	case m.inputChan <- entry:
	default:
		m.emergencyLog(entry)
	}
}

func (m *AuditManager) runAggregator() {
	defer m.wg.Done()

	var (
		batch    []AuditLogEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	drain:
		for {
			select {
			case entry := <-m.inputChan:
				batch = append(batch, entry)
			default:
				break drain
			}
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) dispatchBatch(batch []AuditLogEntry) {
	batchCopy := make([]AuditLogEntry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		m.publish(-1, batchCopy)
	}
}

func (m *AuditManager) runWorker(id int) {
	defer m.wg.Done()
	for batch := range m.batchChan {
		m.publish(id, batch)
	}
}

func (m *AuditManager) publish(workerID int, batch []AuditLogEntry) {
	records := make([]kafka.Record, len(batch))
	for i, entry := range batch {
		records[i] = kafka.Record{Key: entry.RequestID, Value: entry}
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.publishTimeout)
	defer cancel()

	if err := m.publisher.Publish(ctx, records...); err != nil {
		metrics.AuditBatchesTotal.WithLabelValues("failed").Inc()
		m.logger.Error("failed to publish audit batch",
			zap.Int("worker", workerID), zap.Int("entries", len(batch)), zap.Error(err))
		return
	}
	metrics.AuditBatchesTotal.WithLabelValues("published").Inc()
}

func (m *AuditManager) emergencyLog(entry AuditLogEntry) {
	metrics.AuditBatchesTotal.WithLabelValues("bypassed").Inc()
	m.logger.Warn("audit entry bypassed the queue",
		zap.String("request_id", entry.RequestID),
		zap.String("handler", entry.Handler),
		zap.String("method", entry.Method),
		zap.String("path", entry.Path),
		zap.Int("status", entry.StatusCode),
		zap.String("user_id", entry.UserID),
	)
}
