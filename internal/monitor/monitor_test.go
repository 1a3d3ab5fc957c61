package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// stubPinger - управляемая замена клиента MongoDB
type stubPinger struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (s *stubPinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubPinger) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *stubPinger) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestMonitor_Check(t *testing.T) {
	pinger := &stubPinger{}
	m := New(pinger, zap.NewNop(), time.Minute)

	// До первого пинга монитор считается здоровым
	assert.True(t, m.Healthy())
	assert.NoError(t, m.LastError())

	require.NoError(t, m.Check(context.Background()))
	assert.True(t, m.Healthy())

	pingErr := errors.New("server selection timeout")
	pinger.setErr(pingErr)

	err := m.Check(context.Background())
	assert.ErrorIs(t, err, pingErr)
	assert.False(t, m.Healthy())
	assert.ErrorIs(t, m.LastError(), pingErr)

	// Восстановление соединения сбрасывает ошибку
	pinger.setErr(nil)
	require.NoError(t, m.Check(context.Background()))
	assert.True(t, m.Healthy())
	assert.NoError(t, m.LastError())
}

func TestMonitor_StartStop(t *testing.T) {
	pinger := &stubPinger{}
	m := New(pinger, zap.NewNop(), 10*time.Millisecond)

	m.Start(context.Background())

	assert.Eventually(t, func() bool {
		return pinger.callCount() >= 2
	}, time.Second, 5*time.Millisecond, "monitor never ticked")

	m.Stop()

	// После остановки пинги прекращаются
	stopped := pinger.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, pinger.callCount())
}

func TestMonitor_ContextCancel(t *testing.T) {
	pinger := &stubPinger{}
	m := New(pinger, zap.NewNop(), 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)

	assert.Eventually(t, func() bool {
		return pinger.callCount() >= 1
	}, time.Second, time.Millisecond)

	cancel()
	time.Sleep(50 * time.Millisecond)

	stopped := pinger.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, pinger.callCount())
}

func TestMonitor_UnhealthyWhileStoreDown(t *testing.T) {
	pinger := &stubPinger{}
	pinger.setErr(errors.New("connection refused"))

	m := New(pinger, zap.NewNop(), 10*time.Millisecond)
	m.Start(context.Background())
	defer m.Stop()

	assert.Eventually(t, func() bool {
		return !m.Healthy()
	}, time.Second, 5*time.Millisecond)

	pinger.setErr(nil)

	assert.Eventually(t, func() bool {
		return m.Healthy()
	}, time.Second, 5*time.Millisecond)
}
