package demoscenes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teaspot-studio/zercalo-go/config"
)

func TestNewDispatchesKnownScenes(t *testing.T) {
	for _, name := range []string{config.SceneCube, config.SceneSmoke, config.SceneSand, config.SceneHarvester} {
		cfg := &config.Render{Scene: name, Seed: 7}
		r, err := New(cfg)
		require.NoError(t, err, name)
		require.NotNil(t, r, name)
	}
}

func TestNewRejectsUnknownScene(t *testing.T) {
	_, err := New(&config.Render{Scene: "bogus"})
	require.Error(t, err)
}

func TestCubeSceneRendersNonEmptyModel(t *testing.T) {
	cube := NewCube()
	s := cube.Render()
	require.Len(t, s.Models, 1)
	require.Equal(t, uint32(cubeGridSize), s.Models[0].Size.X)
}

func TestSmokeSceneAnimatesAndRenders(t *testing.T) {
	smoke := NewSmoke(1)
	smoke.Animate(1)
	s := smoke.Render()
	require.Len(t, s.Models, 1)
}

func TestSandSceneAnimatesAndRenders(t *testing.T) {
	sand := NewSand(1)
	sand.Animate(1)
	s := sand.Render()
	require.Len(t, s.Models, 1)
}

func TestHarvesterSceneBakesBodyAndAllFourLegs(t *testing.T) {
	harvester := NewHarvester()
	harvester.Animate(3)
	s := harvester.Render()
	require.Len(t, s.Models, 5)
}

func TestHarvesterSceneSwingsLegsOutOfPhase(t *testing.T) {
	harvester := NewHarvester()
	harvester.Animate(1)

	comp := harvester.Scene.comp
	require.NotEqual(t, comp.Parts[1].Rotation, comp.Parts[2].Rotation)
}
