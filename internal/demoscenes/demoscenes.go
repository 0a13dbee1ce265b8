// Package demoscenes provides the built-in scenes the CLI driver can
// render without any external assets beyond an optional .vox file:
// a static cube, a rising smoke plume, falling sand, a composed
// four-legged walker, and a loaded MagicaVoxel model.
package demoscenes

import (
	"github.com/teaspot-studio/zercalo-go/anim"
	"github.com/teaspot-studio/zercalo-go/config"
	"github.com/teaspot-studio/zercalo-go/zercaloerr"
)

// New builds the Renderable named by cfg.Scene, using cfg.Seed for any
// procedural randomness and cfg.VoxPath for the vox scene.
func New(cfg *config.Render) (anim.Renderable, error) {
	switch cfg.Scene {
	case config.SceneCube:
		return NewCube(), nil
	case config.SceneSmoke:
		return NewSmoke(cfg.Seed), nil
	case config.SceneSand:
		return NewSand(cfg.Seed), nil
	case config.SceneHarvester:
		return NewHarvester(), nil
	case config.SceneVox:
		return NewVox(cfg.VoxPath)
	default:
		return nil, zercaloerr.New(zercaloerr.KindIO, "unknown scene: "+cfg.Scene)
	}
}
