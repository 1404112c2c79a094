package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/annel0/voxel-engine/internal/world/block/implementations"
)

func TestArchiveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.bak")

	src := world.NewManager()
	src.EnsureAround(vec.Vec3Float{X: 8, Y: 10, Z: 8})
	src.SetBlockWorld(4, 21, 4, block.WoodBlockID)

	require.NoError(t, WriteArchive(path, src))

	// Архив сжат: существенно меньше несжатого снимка
	raw, err := Save(src)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(len(raw)))

	dst := world.NewManager()
	require.NoError(t, ReadArchive(path, dst))

	assert.Equal(t, src.ChunkCount(), dst.ChunkCount())
	assert.Equal(t, block.WoodBlockID, dst.BlockAt(4, 21, 4))
}

func TestArchiveMissingFile(t *testing.T) {
	err := ReadArchive(filepath.Join(t.TempDir(), "нет-такого.bak"), world.NewManager())
	assert.Error(t, err)
}
