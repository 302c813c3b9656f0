package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"go.uber.org/zap"
)

// Monitor periodically probes the document store and caches the result for
// the health and debug endpoints, so they never block on a network call.
type Monitor struct {
	container *azcosmos.ContainerClient

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(container *azcosmos.ContainerClient, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		container: container,
		interval:  interval,
		stopCh:    make(chan struct{}),
		logger:    logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Cosmos
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	status := Status{
		Cosmos:    m.checkCosmos(),
		LastCheck: time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

// checkCosmos reads the container properties as a cheap reachability probe.
func (m *Monitor) checkCosmos() bool {
	if m.container == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := m.container.Read(ctx, nil); err != nil {
		m.logger.Warn("cosmos probe failed", zap.Error(err))
		return false
	}
	return true
}
