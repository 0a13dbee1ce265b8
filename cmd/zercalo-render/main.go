// Command zercalo-render drives the offline voxel renderer: pick a
// built-in demo scene (or load a .vox file), animate and ray-cast it
// frame by frame, and write the result as per-frame PNGs plus one
// animated PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/teaspot-studio/zercalo-go/config"
	"github.com/teaspot-studio/zercalo-go/encode"
	"github.com/teaspot-studio/zercalo-go/internal/demoscenes"
	"github.com/teaspot-studio/zercalo-go/raycast"
	"github.com/teaspot-studio/zercalo-go/zlog"
)

func main() {
	fs := flag.NewFlagSet("zercalo-render", flag.ExitOnError)
	cfg, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := zlog.New("zercalo-render", cfg.Debug)
	zlog.SetDefault(log)

	if err := run(cfg); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Render) error {
	root, err := demoscenes.New(cfg)
	if err != nil {
		return err
	}

	if s := root.Render(); cfg.Width > 0 && cfg.Height > 0 {
		s.Camera.Viewport.X = cfg.Width
		s.Camera.Viewport.Y = cfg.Height
	}

	diffuseDir := filepath.Join(cfg.OutDir, "frames", "diffuse")
	if err := os.MkdirAll(diffuseDir, 0o755); err != nil {
		return err
	}

	tiles, err := raycast.RenderFrames(root, cfg.Frames)
	if err != nil {
		return err
	}

	for i, tile := range tiles {
		path := filepath.Join(diffuseDir, fmt.Sprintf("frame_%04d.png", i))
		if err := encode.WritePNG(path, tile); err != nil {
			return err
		}
	}
	zlog.Default().Infof("wrote %d frame(s) to %s", len(tiles), diffuseDir)

	animPath := filepath.Join(cfg.OutDir, "diffuse.png")
	if err := encode.WriteAPNG(animPath, tiles, 1, 24); err != nil {
		return err
	}
	zlog.Default().Infof("wrote animation to %s", animPath)

	sheetPath := filepath.Join(cfg.OutDir, "contact-sheet.png")
	cols := contactSheetColumns(len(tiles))
	if err := encode.WriteContactSheet(sheetPath, tiles, cols); err != nil {
		return err
	}
	zlog.Default().Infof("wrote contact sheet to %s", sheetPath)

	return nil
}

// contactSheetColumns picks a roughly square grid for n frames.
func contactSheetColumns(n int) int {
	cols := 1
	for cols*cols < n {
		cols++
	}
	return cols
}
