package modrinth

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	NewService(slog.Default(), server.URL, "craftops-test", 2*time.Second)
	return GlobalService()
}

func TestVersions(t *testing.T) {
	t.Run("parses the version listing", func(t *testing.T) {
		s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/project/P7dR8mSH/version", r.URL.Path)
			assert.Equal(t, "craftops-test", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{
					"id": "jHmHg0NO",
					"project_id": "P7dR8mSH",
					"version_number": "0.102.0+1.21.1",
					"version_type": "release",
					"game_versions": ["1.21.1"],
					"loaders": ["fabric"],
					"date_published": "2026-05-01T12:00:00Z",
					"files": [
						{"url": "https://cdn.example/fabric-api.jar", "filename": "fabric-api.jar", "primary": true}
					]
				}
			]`))
		}))

		versions, err := s.Versions(context.Background(), "P7dR8mSH")
		require.NoError(t, err)
		require.Len(t, versions, 1)
		assert.Equal(t, "jHmHg0NO", versions[0].ID)
		assert.Equal(t, []string{"fabric"}, versions[0].Loaders)

		file, ok := versions[0].PrimaryFile()
		require.True(t, ok)
		assert.Equal(t, "fabric-api.jar", file.Filename)
	})

	t.Run("unknown project", func(t *testing.T) {
		s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := s.Versions(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls int
		s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`[]`))
		}))

		versions, err := s.Versions(context.Background(), "P7dR8mSH")
		require.NoError(t, err)
		assert.Empty(t, versions)
		assert.Equal(t, 2, calls)
	})

	t.Run("rate limit window blocks further requests", func(t *testing.T) {
		s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		s.mu.Lock()
		s.rateLimitReset = time.Now().Add(time.Minute)
		s.mu.Unlock()

		_, err := s.Versions(context.Background(), "P7dR8mSH")
		assert.ErrorIs(t, err, ErrRateLimited)
	})
}

func TestPrimaryFile(t *testing.T) {
	t.Run("falls back to first file", func(t *testing.T) {
		v := Version{Files: []File{{Filename: "a.jar"}, {Filename: "b.jar"}}}
		f, ok := v.PrimaryFile()
		require.True(t, ok)
		assert.Equal(t, "a.jar", f.Filename)
	})

	t.Run("no files", func(t *testing.T) {
		_, ok := Version{}.PrimaryFile()
		assert.False(t, ok)
	})
}
