package factory

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/tileworld/archetypes"
	"github.com/automoto/tileworld/assets"
	"github.com/automoto/tileworld/components"
	"github.com/automoto/tileworld/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSource says where a run's levels come from. An empty DiskDir means
// the embedded set.
type LevelSource struct {
	Game    string
	DiskDir string
}

// Load reads the variant's levels. A disk directory holding a subdirectory
// named after the variant uses it; otherwise the directory itself is read.
func (s LevelSource) Load() ([]*leveldata.Level, *components.LevelFilesData, error) {
	if s.DiskDir == "" {
		loader := assets.NewLevelLoader(s.Game)
		levels, paths, err := loader.Load()
		if err != nil {
			return nil, nil, err
		}
		return levels, &components.LevelFilesData{FS: loader.FS, Paths: paths}, nil
	}

	dir := s.DiskDir
	if info, err := os.Stat(filepath.Join(dir, s.Game)); err == nil && info.IsDir() {
		dir = filepath.Join(dir, s.Game)
	}
	fsys := os.DirFS(dir)
	levels, paths, err := (&assets.LevelLoader{FS: fsys, Dir: "."}).Load()
	if err != nil {
		return nil, nil, err
	}
	return levels, &components.LevelFilesData{FS: fsys, Paths: paths, DiskDir: dir}, nil
}

// CreateLevel spawns the level entity. The tile image is built on first draw.
func CreateLevel(ecs *ecs.ECS, files *components.LevelFilesData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{})
	components.LevelFiles.Set(level, files)
	return level
}

// WatchLevels starts hot reload for levels loaded from disk.
func WatchLevels(files *components.LevelFilesData) error {
	if files.DiskDir == "" {
		return fmt.Errorf("watch levels: embedded levels cannot be watched: %w", fs.ErrInvalid)
	}
	w, err := leveldata.NewWatcher(files.DiskDir)
	if err != nil {
		return err
	}
	files.Watcher = w
	return nil
}
