package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the track every run loads.
const DefaultLevel = "levels/track.tmx"

// Rect is a box in level pixels, relative to the segment's top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Pattern is one obstacle arrangement a segment can be filled with.
type Pattern struct {
	Obstacles []Rect
	Weight    int
}

// Level describes one repeating track segment.
type Level struct {
	Name          string
	Width         int // segment width in pixels
	SegmentHeight int // segment height in pixels
	Lanes         int

	SpawnX, SpawnY float64 // player spawn inside the first segment
	Walls          []Rect
	Patterns       []Pattern
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevels loads every .tmx file under levels/, sorted by name.
func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		levels = append(levels, l.MustLoadLevel(filepath.ToSlash(filepath.Join("levels", name))))
	}
	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}
	return levels
}

// MustLoadLevel panics if the embedded level cannot be parsed.
func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses an embedded Tiled map into a track segment description.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := Level{
		Name:          levelPath,
		Width:         levelMap.Width * levelMap.TileWidth,
		SegmentHeight: levelMap.Height * levelMap.TileHeight,
		SpawnX:        float64(levelMap.Width*levelMap.TileWidth) / 2,
		SpawnY:        float64(levelMap.Height*levelMap.TileHeight) * 0.8,
		Lanes:         levelMap.Properties.GetInt("lanes"),
	}
	if name := levelMap.Properties.GetString("name"); name != "" {
		level.Name = name
	}

	// Parse object groups for the spawn, walls and obstacle patterns
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				level.SpawnX = og.Objects[0].X
				level.SpawnY = og.Objects[0].Y
			}
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "Pattern":
			p := Pattern{Weight: og.Properties.GetInt("weight")}
			if p.Weight <= 0 {
				p.Weight = 1
			}
			for _, o := range og.Objects {
				p.Obstacles = append(p.Obstacles, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
			level.Patterns = append(level.Patterns, p)
		}
	}

	if level.Width <= 0 || level.SegmentHeight <= 0 {
		return Level{}, fmt.Errorf("load level %s: empty map", levelPath)
	}
	return level, nil
}

// TotalWeight sums pattern weights for weighted selection.
func (lv *Level) TotalWeight() int {
	total := 0
	for _, p := range lv.Patterns {
		total += p.Weight
	}
	return total
}

// PickPattern maps roll in [0, TotalWeight) to a pattern. It returns nil when
// the level has no patterns.
func (lv *Level) PickPattern(roll int) *Pattern {
	for i := range lv.Patterns {
		roll -= lv.Patterns[i].Weight
		if roll < 0 {
			return &lv.Patterns[i]
		}
	}
	if len(lv.Patterns) == 0 {
		return nil
	}
	return &lv.Patterns[len(lv.Patterns)-1]
}
