package components

import (
	"io/fs"

	"github.com/automoto/tileworld/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// LevelData caches the pre-rendered tiles of the active level. The image
// is rebuilt whenever Source no longer matches the sim's level.
type LevelData struct {
	Source *leveldata.Level
	Image  *ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()

// LevelFilesData remembers where each level of the run came from so a
// changed file can be reloaded into the right slot.
type LevelFilesData struct {
	FS      fs.FS
	Paths   []string // per level index, paths inside FS
	DiskDir string   // directory FS was opened on, for matching watcher events
	Watcher *leveldata.Watcher
}

var LevelFiles = donburi.NewComponentType[LevelFilesData]()
