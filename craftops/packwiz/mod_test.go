package packwiz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fabricAPIToml = `name = "Fabric API"
filename = "fabric-api-0.102.0+1.21.1.jar"
side = "both"

[download]
url = "https://cdn.modrinth.com/data/P7dR8mSH/versions/jHmHg0NO/fabric-api-0.102.0%2B1.21.1.jar"
hash-format = "sha1"
hash = "f4c4ecbcbc1b64ee9a3c72fd4e8e1073b1faae62"

[update]
[update.modrinth]
mod-id = "P7dR8mSH"
version = "jHmHg0NO"
`

const handInstalledToml = `name = "Local Tweaks"
filename = "local-tweaks-1.0.jar"
side = "server"

[download]
url = "https://example.org/local-tweaks-1.0.jar"
hash-format = "sha1"
hash = "0000000000000000000000000000000000000000"
`

func TestReadAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fabric-api.pw.toml"), []byte(fabricAPIToml), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "local-tweaks.pw.toml"), []byte(handInstalledToml), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("not a mod"), 0644))

	mods, err := ReadAll(dir)
	require.NoError(t, err)
	require.Len(t, mods, 2)

	// WalkDir visits lexically, so fabric-api comes first.
	fabric := mods[0]
	assert.Equal(t, "Fabric API", fabric.Name)
	assert.Equal(t, "fabric-api", fabric.Slug())
	assert.Equal(t, "P7dR8mSH", fabric.Update.Modrinth.ModID)
	assert.Equal(t, "jHmHg0NO", fabric.Update.Modrinth.Version)
	assert.Equal(t, "sha1", fabric.Download.HashFormat)
	assert.True(t, fabric.OnModrinth())

	local := mods[1]
	assert.Equal(t, "Local Tweaks", local.Name)
	assert.Equal(t, "local-tweaks", local.Slug())
	assert.False(t, local.OnModrinth())
}

func TestReadAllBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.pw.toml"), []byte("= not toml"), 0644))

	_, err := ReadAll(dir)
	assert.Error(t, err)
}
