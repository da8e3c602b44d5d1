package systems

import (
	"fmt"
	"log"
	"path"
	"path/filepath"

	"github.com/automoto/tileworld/components"
	"github.com/automoto/tileworld/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelWatch reloads level files changed on disk into the running
// sim. A file that fails to parse keeps the previous version.
func UpdateLevelWatch(e *ecs.ECS) {
	entry, ok := components.LevelFiles.First(e.World)
	if !ok {
		return
	}
	files := components.LevelFiles.Get(entry)
	if files.Watcher == nil {
		return
	}
	data, ok := GetSim(e)
	if !ok {
		return
	}

	for {
		select {
		case changed, ok := <-files.Watcher.Events:
			if !ok {
				files.Watcher = nil
				return
			}
			if err := reloadLevel(files, data, changed); err != nil {
				log.Printf("level reload: %v", err)
				continue
			}
			invalidateLevelImage(e.World)
		case err, ok := <-files.Watcher.Errors:
			if !ok {
				files.Watcher = nil
				return
			}
			log.Printf("level watch: %v", err)
		default:
			return
		}
	}
}

// reloadLevel loads the changed file and swaps it into its level slot.
func reloadLevel(files *components.LevelFilesData, data *components.SimData, changed string) error {
	i, p, ok := levelIndexOf(files, changed)
	if !ok {
		return fmt.Errorf("%s is not part of this run", changed)
	}
	lvl, err := leveldata.LoadFile(files.FS, p)
	if err != nil {
		return err
	}
	if err := data.Sim.ReloadLevel(i, lvl); err != nil {
		return err
	}
	log.Printf("reloaded level %d from %s", i, p)
	return nil
}

// levelIndexOf maps a path reported by the watcher to its level slot and
// its path inside the level FS.
func levelIndexOf(files *components.LevelFilesData, changed string) (int, string, bool) {
	rel, err := filepath.Rel(files.DiskDir, changed)
	if err != nil {
		return 0, "", false
	}
	rel = path.Clean(filepath.ToSlash(rel))
	for i, p := range files.Paths {
		if path.Clean(p) == rel {
			return i, p, true
		}
	}
	return 0, "", false
}

// CloseLevelWatch stops hot reload for the scene.
func CloseLevelWatch(e *ecs.ECS) {
	entry, ok := components.LevelFiles.First(e.World)
	if !ok {
		return
	}
	files := components.LevelFiles.Get(entry)
	if files.Watcher == nil {
		return
	}
	if err := files.Watcher.Close(); err != nil {
		log.Printf("level watch close: %v", err)
	}
	files.Watcher = nil
}
