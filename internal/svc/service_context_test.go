package svc

import (
	"math"
	"testing"

	"github.com/fachebot/container-tooltips/internal/config"
	"github.com/fachebot/container-tooltips/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneClock(t *testing.T) {
	clock := &SceneClock{}
	assert.True(t, math.IsNaN(clock.Time()))

	sc, err := scene.Parse([]byte("Clock: 42\n"))
	require.NoError(t, err)
	clock.Set(sc)
	assert.Equal(t, 42.0, clock.Time())
}

func TestServiceContext_AttachDetach(t *testing.T) {
	c := config.Default()
	c.Display.Language = "not-a-language-tag!"
	svcCtx := NewServiceContext(c)
	require.NotNil(t, svcCtx.Registry.Contents)

	sc, err := scene.Parse([]byte(`
Tags: {Dirt: Dirt, Algae: Algae}
Objects:
  - {Id: 1, Name: Bin, Prefab: Bin, Storage: [2]}
  - {Id: 2, Name: Dirt, Prefab: Dirt, Element: {Mass: 2, Temperature: 300}}
  - {Id: 3, Name: Sorter, Prefab: Sorter, Filterable: Algae}
  - {Id: 4, Name: Empty, Prefab: Bin, Storage: []}
  - {Id: 5, Name: Gas Filter, Prefab: GasFilterComplete, Filterable: Algae}
`))
	require.NoError(t, err)

	hooks := svcCtx.Attach(sc)
	bin, _ := sc.Object(1)
	sorter, _ := sc.Object(3)
	empty, _ := sc.Object(4)
	assert.Equal(t, []string{"Contents: 2 kg of Dirt at 26.9 °C"}, bin.StatusLines(false))
	assert.Equal(t, []string{"Filters: Algae"}, sorter.StatusLines(false))
	assert.Equal(t, []string{"Contents: None"}, empty.StatusLines(false))

	// 自带过滤提示的建筑不挂载过滤条目
	gasFilter, _ := sc.Object(5)
	assert.Empty(t, gasFilter.StatusLines(false))

	svcCtx.Detach(sc, hooks)
	assert.Empty(t, bin.StatusLines(false))
	assert.Empty(t, sorter.StatusLines(false))
}
