// Package assets bundles the arena files shipped with the simulator.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/hookshot/leveldata"
)

const levelDir = "levels"

var (
	//go:embed all:levels
	levelFS embed.FS
)

// Levels exposes the bundled level files.
func Levels() fs.FS {
	return levelFS
}

// LoadArena loads a bundled arena by name, with or without ".tmx".
func LoadArena(name string) (*leveldata.Arena, error) {
	name = strings.TrimSuffix(name, ".tmx")
	arena, err := leveldata.LoadArena(levelFS, path.Join(levelDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("arena %q: %w", name, err)
	}
	return arena, nil
}

// LoadArenas loads every bundled arena, returning them keyed by name plus
// the sorted names.
func LoadArenas() (map[string]*leveldata.Arena, []string, error) {
	return leveldata.LoadArenas(levelFS, levelDir)
}
