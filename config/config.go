// Package config parses the command-line flags that drive a render
// run into a single validated Render value.
package config

import (
	"flag"
	"fmt"

	"github.com/teaspot-studio/zercalo-go/zercaloerr"
)

// Render holds everything the CLI driver needs to pick a scene,
// size its camera, and write output.
type Render struct {
	OutDir string
	Width  uint32
	Height uint32
	Frames uint32
	Scene  string
	VoxPath string
	Seed   int64
	Debug  bool
}

// Known scene names accepted by the -scene flag.
const (
	SceneCube      = "cube"
	SceneSmoke     = "smoke"
	SceneSand      = "sand"
	SceneVox       = "vox"
	SceneHarvester = "harvester"
)

var knownScenes = map[string]bool{
	SceneCube:      true,
	SceneSmoke:     true,
	SceneSand:      true,
	SceneVox:       true,
	SceneHarvester: true,
}

// Parse builds a Render config from args (normally os.Args[1:]), using
// fs as the flag.FlagSet so callers can control error handling and
// output (tests pass a fresh FlagSet with ContinueOnError).
func Parse(fs *flag.FlagSet, args []string) (*Render, error) {
	cfg := &Render{}

	var width, height, frames uint
	fs.StringVar(&cfg.OutDir, "out", "out", "output directory for rendered frames")
	fs.UintVar(&width, "width", 64, "frame width in pixels")
	fs.UintVar(&height, "height", 64, "frame height in pixels")
	fs.UintVar(&frames, "frames", 1, "number of frames to render")
	fs.StringVar(&cfg.Scene, "scene", SceneCube, "built-in scene: cube, smoke, sand, vox, harvester")
	fs.StringVar(&cfg.VoxPath, "vox", "", "path to a .vox file (required when -scene=vox)")
	fs.Int64Var(&cfg.Seed, "seed", 1, "RNG seed for procedural scenes")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Width = uint32(width)
	cfg.Height = uint32(height)
	cfg.Frames = uint32(frames)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports whether cfg describes a runnable render.
func (cfg *Render) Validate() error {
	if cfg.Width == 0 || cfg.Height == 0 {
		return zercaloerr.New(zercaloerr.KindIO, "width and height must be positive")
	}
	if cfg.Frames == 0 {
		return zercaloerr.New(zercaloerr.KindIO, "frames must be positive")
	}
	if !knownScenes[cfg.Scene] {
		return zercaloerr.New(zercaloerr.KindIO, fmt.Sprintf("unknown scene %q", cfg.Scene))
	}
	if cfg.Scene == SceneVox && cfg.VoxPath == "" {
		return zercaloerr.New(zercaloerr.KindIO, "-vox is required when -scene=vox")
	}
	return nil
}
