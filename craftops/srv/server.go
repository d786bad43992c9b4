// Package srv tracks the deployed server fleet and its reachability.
package srv

import (
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/df-mc/atomic"
	"github.com/dj-forge/craftops/craftops/srv/ping"
)

// Server ...
type Server struct {
	log *slog.Logger

	failures atomic.Int32
	conf     atomic.Value[Config]
	status   atomic.Value[Status]
}

// NewServer ...
func NewServer(log *slog.Logger, conf Config) *Server {
	srv := &Server{
		log: log,
	}
	srv.conf.Store(conf)
	return srv
}

// maxFailures is the number of consecutive failed checks tolerated
// before a server is marked offline.
const maxFailures = 5

// Check probes the server once and stores the observed status. The
// Java address is checked with a plain TCP dial; when a Bedrock
// (Geyser) address is configured it is additionally pinged over
// RakNet for MOTD and player counts. A single failed dial keeps the
// last-known status; only more than maxFailures consecutive failures
// mark the server offline.
func (s *Server) Check(timeout time.Duration) {
	start := time.Now()
	conn, err := net.DialTimeout("tcp", s.Address(), timeout)
	if err != nil {
		s.failures.Inc()
		if s.Failures() > maxFailures {
			s.assumeOffline()
			s.log.Debug("server assumed offline after multiple failures", "name", s.Name(), "address", s.Address())
			s.failures.Store(0)
		}
		return
	}
	_ = conn.Close()

	st := Status{
		Online:    true,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	s.failures.Store(0)

	if addr := s.BedrockAddress(); addr != "" {
		if response, err := ping.Ping(addr, timeout); err != nil {
			s.log.Debug("bedrock endpoint unreachable", "name", s.Name(), "address", addr)
		} else {
			st.BedrockOnline = true
			st.MOTD = response.MessageOfTheDay
			st.PlayerCount, _ = strconv.Atoi(response.PlayerCount)
			st.MaxPlayerCount, _ = strconv.Atoi(response.MaxPlayerCount)
		}
	}

	s.status.Store(st)
}

// assumeOffline ...
func (s *Server) assumeOffline() {
	st := Status{
		Online: false,
	}
	s.status.Store(st)
}

// Name ...
func (s *Server) Name() string {
	return s.Config().Name
}

// Address ...
func (s *Server) Address() string {
	return s.Config().Address
}

// BedrockAddress ...
func (s *Server) BedrockAddress() string {
	return s.Config().BedrockAddress
}

// Failures returns the number of consecutive failed checks.
func (s *Server) Failures() int32 {
	return s.failures.Load()
}

// Config ...
func (s *Server) Config() Config {
	return s.conf.Load()
}

// Status ...
func (s *Server) Status() Status {
	return s.status.Load()
}
