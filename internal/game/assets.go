package game

import (
	"fmt"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Garsondee/dungeon-chase/internal/config"
	"github.com/Garsondee/dungeon-chase/internal/engine"
	"github.com/Garsondee/dungeon-chase/internal/maze"
)

// AssetLoader loads the resources a stage needs.
type AssetLoader interface {
	LoadTexture(path string) (engine.Texture, error)
	LoadMap(stage config.Stage) (*maze.Map, error)
}

// FileAssets loads textures and maps from disk.
type FileAssets struct{}

// LoadTexture decodes an image file into a GPU texture.
func (FileAssets) LoadTexture(path string) (engine.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return &imageTexture{img: img}, nil
}

// LoadMap reads the stage's map file, or generates it from the seed.
func (FileAssets) LoadMap(stage config.Stage) (*maze.Map, error) {
	return loadStageMap(stage)
}

func loadStageMap(stage config.Stage) (*maze.Map, error) {
	if !stage.Generated() {
		return maze.Load(stage.Map)
	}
	opts := maze.DefaultGenOptions(stage.Seed)
	if stage.Width > 0 {
		opts.Width = stage.Width
	}
	if stage.Height > 0 {
		opts.Height = stage.Height
	}
	m, err := maze.Generate(opts)
	if err != nil {
		return nil, fmt.Errorf("generate stage %q: %w", stage.Name, err)
	}
	return m, nil
}

// imageTexture adapts an ebiten image to engine.Texture.
type imageTexture struct {
	img *ebiten.Image
}

func (t *imageTexture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *imageTexture) Release() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}
