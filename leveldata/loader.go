package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	defaultBodySize = 16
	defaultPeriod   = 2
)

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass an
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	mapH := float64(arena.Height)

	// Solid tiles from the wg-tiles layer are ground.
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "wg-tiles" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				arena.Grounds = append(arena.Grounds, flip(mapH, float64(x)*tileW, float64(y)*tileH, tileW, tileH))
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				arena.Grounds = append(arena.Grounds, flip(mapH, o.X, o.Y, o.Width, o.Height))
			}
		case "Obstacles":
			for _, o := range og.Objects {
				arena.Obstacles = append(arena.Obstacles, flip(mapH, o.X, o.Y, o.Width, o.Height))
			}
		case "Floaters":
			for _, o := range og.Objects {
				f := Floater{
					Rect:   flip(mapH, o.X, o.Y, o.Width, o.Height),
					Axis:   strings.ToLower(o.Properties.GetString("axis")),
					Travel: o.Properties.GetFloat("travel"),
					Period: o.Properties.GetFloat("period"),
				}
				if f.Axis != "x" {
					f.Axis = "y"
				}
				if f.Period <= 0 {
					f.Period = defaultPeriod
				}
				arena.Floaters = append(arena.Floaters, f)
			}
		case "Blocks":
			for _, o := range og.Objects {
				arena.Blocks = append(arena.Blocks, spawn(mapH, o))
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				s := spawn(mapH, o)
				s.Index = o.Properties.GetInt("spawnIndex")
				arena.Players = append(arena.Players, s)
			}
			// Sort spawns left-to-right for consistent assignment
			sort.Slice(arena.Players, func(i, j int) bool {
				return arena.Players[i].X < arena.Players[j].X
			})
		case "Agents":
			for _, o := range og.Objects {
				a := AgentSpawn{
					Spawn:  spawn(mapH, o),
					Facing: 1,
					Launch: o.Properties.GetBool("launch"),
					Script: o.Properties.GetString("script"),
				}
				if strings.EqualFold(o.Properties.GetString("facing"), "left") {
					a.Facing = -1
				}
				arena.Agents = append(arena.Agents, a)
			}
		}
	}

	return arena, nil
}

// LoadArenas discovers all .tmx files in dir within fsys and loads each,
// returning them keyed by stem name plus a sorted list of names.
func LoadArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		arena, err := LoadArena(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}

func flip(mapH, x, y, w, h float64) Rect {
	return Rect{X: x, Y: mapH - y - h, W: w, H: h}
}

// spawn converts a Tiled object. Point objects get a default-sized box
// whose bottom sits on the point.
func spawn(mapH float64, o *tiled.Object) Spawn {
	w, h := o.Width, o.Height
	y := o.Y
	if w == 0 || h == 0 {
		w, h = defaultBodySize, defaultBodySize
		x := o.X - w/2
		return Spawn{Name: o.Name, Rect: Rect{X: x, Y: mapH - y, W: w, H: h}}
	}
	return Spawn{Name: o.Name, Rect: flip(mapH, o.X, y, w, h)}
}
