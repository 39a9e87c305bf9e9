package game

import (
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/Garsondee/dungeon-chase/internal/config"
)

// Env carries what every scene needs from outside the scene stack.
type Env struct {
	Cfg    config.Config
	Log    *log.Logger
	Assets AssetLoader

	// Clipboard receives debug reports. Nil disables copying.
	Clipboard func(string) error
}

// NewEnv builds an Env backed by the filesystem and the system clipboard.
func NewEnv(cfg config.Config, logger *log.Logger) *Env {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Env{
		Cfg:       cfg,
		Log:       logger,
		Assets:    FileAssets{},
		Clipboard: clipboard.WriteAll,
	}
}
