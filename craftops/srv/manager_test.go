package srv

import (
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(NewServer(slog.Default(), Config{Name: "hub", Address: "hub:25565"}))
	Register(NewServer(slog.Default(), Config{Name: "survival", Address: "survival:25565"}))

	assert.Len(t, All(), 2)

	s := FromName("hub")
	require.NotNil(t, s)
	assert.Equal(t, "hub:25565", s.Address())

	assert.Nil(t, FromName("creative"))
}

func TestCheck(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	t.Run("reachable", func(t *testing.T) {
		s := NewServer(slog.Default(), Config{Name: "up", Address: listener.Addr().String()})
		s.Check(time.Second)

		st := s.Status()
		assert.True(t, st.Online)
		assert.Zero(t, s.Failures())
	})

	t.Run("never reached", func(t *testing.T) {
		s := NewServer(slog.Default(), Config{Name: "down", Address: "127.0.0.1:1"})
		s.Check(100 * time.Millisecond)

		assert.False(t, s.Status().Online)
		assert.EqualValues(t, 1, s.Failures())

		s.Check(100 * time.Millisecond)
		assert.EqualValues(t, 2, s.Failures())
	})
}

func TestCheckFailureThreshold(t *testing.T) {
	s := NewServer(slog.Default(), Config{Name: "flaky", Address: "127.0.0.1:1"})
	s.status.Store(Status{Online: true, LatencyMs: 3})

	// Up to maxFailures consecutive failures keep the last-known
	// status.
	for i := 1; i <= maxFailures; i++ {
		s.Check(100 * time.Millisecond)
		assert.True(t, s.Status().Online, "failure %d", i)
		assert.EqualValues(t, i, s.Failures())
	}

	// The next failure crosses the threshold: offline, counter reset.
	s.Check(100 * time.Millisecond)
	assert.False(t, s.Status().Online)
	assert.Zero(t, s.Failures())
}

func TestCheckRecovery(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	s := NewServer(slog.Default(), Config{Name: "flaky", Address: listener.Addr().String()})
	s.failures.Store(3)

	s.Check(time.Second)
	assert.True(t, s.Status().Online)
	assert.Zero(t, s.Failures())
}
