package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena(os.DirFS("testdata"), "arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, "arena", arena.Name)
	assert.Equal(t, 320, arena.Width)
	assert.Equal(t, 192, arena.Height)

	// bottom row of tiles, flipped to y=0
	require.Len(t, arena.Grounds, 20)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 16, H: 16}, arena.Grounds[0])

	require.Len(t, arena.Blocks, 1)
	assert.Equal(t, "crate", arena.Blocks[0].Name)
	assert.Equal(t, Rect{X: 152, Y: 16, W: 16, H: 16}, arena.Blocks[0].Rect)

	require.Len(t, arena.Obstacles, 1)
	assert.Equal(t, Rect{X: 232, Y: 16, W: 16, H: 48}, arena.Obstacles[0])

	require.Len(t, arena.Floaters, 1)
	assert.Equal(t, "y", arena.Floaters[0].Axis)
	assert.Equal(t, -32.0, arena.Floaters[0].Travel)
	assert.Equal(t, 1.5, arena.Floaters[0].Period)

	require.Len(t, arena.Agents, 2)
	hooker := arena.Agents[0]
	assert.Equal(t, "hooker", hooker.Name)
	assert.Equal(t, 1.0, hooker.Facing)
	assert.False(t, hooker.Launch)
	assert.Equal(t, "jump@4", hooker.Script)
	// point objects become a box standing on the point
	assert.Equal(t, Rect{X: 56, Y: 16, W: 16, H: 16}, hooker.Rect)

	slinger := arena.Agents[1]
	assert.Equal(t, -1.0, slinger.Facing)
	assert.True(t, slinger.Launch)

	require.Len(t, arena.Players, 2)
	assert.Equal(t, "p1", arena.Players[0].Name)
	assert.Equal(t, 0, arena.Players[0].Index)
	assert.Equal(t, 1, arena.Players[1].Index)
}

func TestLoadArenas(t *testing.T) {
	arenas, names, err := LoadArenas(os.DirFS("."), "testdata")
	require.NoError(t, err)

	assert.Equal(t, []string{"arena"}, names)
	assert.Contains(t, arenas, "arena")

	_, _, err = LoadArenas(os.DirFS("."), "missing")
	assert.Error(t, err)
}

func TestLoadArenaMissing(t *testing.T) {
	_, err := LoadArena(os.DirFS("testdata"), "nope.tmx")
	assert.Error(t, err)
}

func TestRectCenter(t *testing.T) {
	assert.Equal(t, 8.0, Rect{W: 16, H: 4}.Center().X)
	assert.Equal(t, 2.0, Rect{W: 16, H: 4}.Center().Y)
}
