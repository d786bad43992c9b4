package command

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dj-forge/craftops/craftops"
	"github.com/dj-forge/craftops/craftops/serverlist"
)

func testOps(t *testing.T) *craftops.CraftOps {
	t.Helper()
	return craftops.NewCraftOps(slog.Default(), craftops.DefaultConfig())
}

func TestEncodeServersArgs(t *testing.T) {
	cmd := NewEncodeServers(testOps(t))

	t.Run("missing output path", func(t *testing.T) {
		err := cmd.Args(cmd, nil)
		require.Error(t, err)
		var usage *UsageError
		assert.ErrorAs(t, err, &usage)
	})

	t.Run("odd pair count", func(t *testing.T) {
		err := cmd.Args(cmd, []string{"servers.dat", "hub"})
		require.Error(t, err)
		var usage *UsageError
		assert.ErrorAs(t, err, &usage)
	})

	t.Run("output path only", func(t *testing.T) {
		assert.NoError(t, cmd.Args(cmd, []string{"servers.dat"}))
	})

	t.Run("pairs", func(t *testing.T) {
		assert.NoError(t, cmd.Args(cmd, []string{"servers.dat", "hub", "hub:25565", "smp", "smp:25565"}))
	})
}

func TestEncodeServersRun(t *testing.T) {
	ops := testOps(t)

	t.Run("pairs from the command line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "servers.dat")

		root := New(ops)
		root.SetOut(io.Discard)
		root.SetArgs([]string{"encode-servers", path, "hub", "hub:25565", "smp", "smp:25565"})
		require.NoError(t, root.Execute())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		expected, err := serverlist.Encode(serverlist.List{
			{Name: "hub", Address: "hub:25565"},
			{Name: "smp", Address: "smp:25565"},
		})
		require.NoError(t, err)
		assert.Equal(t, expected, data)
	})

	t.Run("falls back to the configured fleet", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "servers.dat")

		root := New(ops)
		root.SetOut(io.Discard)
		root.SetArgs([]string{"encode-servers", path})
		require.NoError(t, root.Execute())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		expected, err := serverlist.Encode(ops.ConfiguredServers())
		require.NoError(t, err)
		assert.Equal(t, expected, data)
	})
}
