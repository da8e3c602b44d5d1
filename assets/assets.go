package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/tileworld/shared/leveldata"
)

// LevelsDir is the root of the embedded level tree. Each game variant reads
// the subdirectory named after it.
const LevelsDir = "levels"

//go:embed all:levels
var assetFS embed.FS

// LevelFS returns the embedded level tree.
func LevelFS() fs.FS {
	return assetFS
}

// LevelLoader reads the levels of one variant from a file system. Callers
// that hot reload pass os.DirFS; the default is the embedded tree.
type LevelLoader struct {
	FS  fs.FS
	Dir string
}

// NewLevelLoader reads the embedded levels of the named variant.
func NewLevelLoader(variant string) *LevelLoader {
	return &LevelLoader{FS: assetFS, Dir: path.Join(LevelsDir, variant)}
}

// Load returns the variant's levels in file name order along with their
// paths inside FS.
func (l *LevelLoader) Load() ([]*leveldata.Level, []string, error) {
	levels, paths, err := leveldata.LoadAll(l.FS, l.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("load levels from %s: %w", l.Dir, err)
	}
	return levels, paths, nil
}

// MustLoadLevels is Load for startup paths where a missing level is fatal.
func (l *LevelLoader) MustLoadLevels() []*leveldata.Level {
	levels, _, err := l.Load()
	if err != nil {
		panic(err)
	}
	return levels
}
