package monitor

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Pinger покрывает подмножество клиента MongoDB, нужное для проверки соединения
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Monitor периодически пингует хранилище и хранит последний результат.
// Только наблюдение: запросы он не перезапускает и не чинит.
type Monitor struct {
	client   Pinger
	logger   *zap.Logger
	interval time.Duration
	wg       sync.WaitGroup
	stop     chan struct{}

	mu      sync.RWMutex
	lastErr error
}

func New(client Pinger, logger *zap.Logger, interval time.Duration) *Monitor {
	return &Monitor{
		client:   client,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (m *Monitor) Start(ctx context.Context) {
	m.logger.Info("Starting store health monitor", zap.Duration("interval", m.interval))

	m.wg.Add(1)
	go m.run(ctx)
}

func (m *Monitor) Stop() {
	m.logger.Info("Stopping store health monitor...")
	close(m.stop)
	m.wg.Wait()
	m.logger.Info("Store health monitor stopped")
}

func (m *Monitor) run(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check выполняет один пинг и обновляет состояние монитора
func (m *Monitor) Check(ctx context.Context) error {
	err := m.client.Ping(ctx, readpref.Primary())

	m.mu.Lock()
	prev := m.lastErr
	m.lastErr = err
	m.mu.Unlock()

	if err != nil {
		m.logger.Warn("store ping failed", zap.Error(err))
	} else if prev != nil {
		m.logger.Info("store connection recovered")
	}
	return err
}

// Healthy сообщает, был ли последний пинг успешным.
// До первого Check монитор считается здоровым: соединение проверено при старте.
func (m *Monitor) Healthy() bool {
	return m.LastError() == nil
}

func (m *Monitor) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}
