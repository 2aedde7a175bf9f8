package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fachebot/container-tooltips/internal/cache"
	"github.com/fachebot/container-tooltips/internal/contents"
	"github.com/fachebot/container-tooltips/internal/filters"
	"github.com/fachebot/container-tooltips/internal/locale"
	"github.com/fachebot/container-tooltips/internal/status"
	"github.com/fachebot/container-tooltips/internal/units"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const testScene = `
Clock: 100
Tags:
  Dirt: Dirt
  RawEgg: <link="EGG">Egg</link>
  Algae: Algae
  StorageLocker: Storage Bin
Objects:
  - Id: 1
    Name: Locker
    Prefab: StorageLocker
    Storage: [2, 3, 4]
  - Id: 2
    Name: Dirt
    Prefab: Dirt
    Element: {Mass: 5, Temperature: 300}
  - Id: 3
    Name: Dirt
    Prefab: Dirt
    Element: {Mass: 3, Temperature: 300}
  - Id: 4
    Name: Egg
    Prefab: RawEgg
    Pickupable: 2
    Edible: 1600
  - Id: 5
    Name: Sorter
    Prefab: SolidConduitSorter
    Filterable: Dirt
    FlatTagFilter: [Algae, RawEgg]
  - Id: 6
    Name: Generator
    Prefab: Generator
    ShowInUI: false
    Storage: []
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(testScene))
	require.NoError(t, err)

	assert.Equal(t, 100.0, s.Time())
	assert.Len(t, s.Objects(), 6)

	locker, ok := s.Object(1)
	require.True(t, ok)
	tag, name, ok := locker.Prefab()
	assert.True(t, ok)
	assert.Equal(t, "StorageLocker", tag)
	assert.Equal(t, "Storage Bin", name)

	items, ok := locker.Storage()
	require.True(t, ok)
	require.Len(t, items, 3)
	assert.Equal(t, 2, items[0].InstanceID())

	egg, _ := s.Object(4)
	_, ok = egg.PrimaryElement()
	assert.False(t, ok)
	amount, ok := egg.Pickupable()
	assert.True(t, ok)
	assert.Equal(t, 2.0, amount)
	calories, ok := egg.Edible()
	assert.True(t, ok)
	assert.Equal(t, 1600.0, calories)
	_, ok = egg.Storage()
	assert.False(t, ok)

	// 未登记的类型标识使用对象名称
	sorter, _ := s.Object(5)
	_, name, _ = sorter.Prefab()
	assert.Equal(t, "Sorter", name)

	var storageIDs []int
	for _, obj := range s.Storages() {
		storageIDs = append(storageIDs, obj.InstanceID())
	}
	assert.Equal(t, []int{1, 6}, storageIDs)

	require.Len(t, s.Filtered(), 1)
	sources := s.Filtered()[0].FilterSources()
	assert.Equal(t, []filters.Tag{
		{ID: "Dirt", ProperName: "Dirt"},
		{ID: "Algae", ProperName: "Algae"},
		{ID: "RawEgg", ProperName: `<link="EGG">Egg</link>`},
	}, sources.Tags())

	generator, _ := s.Object(6)
	assert.False(t, generator.ShowInUI())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "Objects: [:"},
		{"duplicate id", "Objects:\n  - {Id: 1, Name: A}\n  - {Id: 1, Name: B}\n"},
		{"unknown child", "Objects:\n  - {Id: 1, Name: A, Storage: [2]}\n"},
		{"missing name", "Objects:\n  - {Id: 1}\n"},
		{"negative mass", "Objects:\n  - {Id: 1, Name: A, Element: {Mass: -1}}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParse_SelfReference(t *testing.T) {
	s, err := Parse([]byte("Tags: {Box: Box}\nObjects:\n  - {Id: 1, Name: Box, Prefab: Box, Storage: [1]}\n"))
	require.NoError(t, err)

	box, _ := s.Object(1)
	items, ok := box.Storage()
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Same(t, box, items[0])

	// 自引用的存储不会导致无限递归
	level := contents.Aggregate([]contents.Item{box})
	assert.Equal(t, 1, level.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Objects(), 6)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFS(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "scenes/base.yaml", []byte(testScene), 0o644))

	s, err := LoadFS(fs, "scenes/base.yaml")
	require.NoError(t, err)
	assert.Len(t, s.Storages(), 2)

	_, err = LoadFS(fs, "scenes/other.yaml")
	assert.Error(t, err)
}

func TestObject_StorageMutation(t *testing.T) {
	s, err := Parse([]byte(testScene))
	require.NoError(t, err)

	locker, _ := s.Object(1)
	egg, _ := s.Object(4)
	assert.True(t, locker.Remove(4))
	assert.False(t, locker.Remove(4))
	assert.Len(t, locker.Items(), 2)

	locker.Store(egg)
	assert.Len(t, locker.Items(), 3)

	s.Advance(1.5)
	assert.Equal(t, 101.5, s.Time())
}

func TestObject_StatusItems(t *testing.T) {
	obj := newObject(&ObjectSpec{ID: 1, Name: "Locker"})
	a := &status.StatusItem{
		ResolveString:  func(any) string { return "a" },
		ResolveTooltip: func(any) string { return "A" },
	}
	b := &status.StatusItem{ResolveString: func(data any) string { return data.(string) }}

	ha := obj.ReplaceStatusItem(uuid.Nil, a, nil)
	hb := obj.ReplaceStatusItem(uuid.Nil, b, "b")
	assert.NotEqual(t, ha, hb)
	assert.Equal(t, []string{"a", "b"}, obj.StatusLines(false))
	assert.Equal(t, []string{"A"}, obj.StatusLines(true))

	assert.Equal(t, hb, obj.ReplaceStatusItem(hb, b, "c"))
	assert.Equal(t, []string{"a", "c"}, obj.StatusLines(false))

	obj.RemoveStatusItem(ha, false)
	obj.RemoveStatusItem(ha, false)
	assert.Equal(t, []string{"c"}, obj.StatusLines(false))
}

func TestScene_WithStatusHooks(t *testing.T) {
	s, err := Parse([]byte(testScene))
	require.NoError(t, err)

	catalog := locale.New("", "en")
	presenter := units.NewFormatter(catalog, "en", units.Kelvin)
	summarizer := contents.NewSummarizer(presenter, contents.Options{
		SortMode: contents.SortAmount,
		MassUnit: units.MassAuto,
		Language: language.English,
	})
	filterSummarizer := filters.NewSummarizer(language.English, catalog.More)
	resolver := status.NewResolver(summarizer, filterSummarizer, cache.New(0, 0), s, catalog, status.Limits{Status: 5, Tooltip: 20})
	registry := status.NewRegistry(resolver, catalog)
	registry.Initialize()

	hooks := status.NewHooks(registry)
	for _, obj := range s.Storages() {
		hooks.OnStorageSpawn(obj, obj)
	}
	for _, obj := range s.Filtered() {
		hooks.OnFlatTagFilterableSpawn(obj, obj)
	}

	locker, _ := s.Object(1)
	lines := locker.StatusLines(false)
	require.Len(t, lines, 1)
	assert.Equal(t, "Contents: \n8 kg (2 items) of Dirt at ~300 K\n2 Units (1.6 kcal) of <link=\"EGG\">Egg</link> at 0 K", lines[0])

	generator, _ := s.Object(6)
	assert.Empty(t, generator.StatusLines(false))

	sorter, _ := s.Object(5)
	assert.Equal(t, []string{"Filters: Algae\nDirt\n<link=\"EGG\">Egg</link>"}, sorter.StatusLines(true))

	hooks.OnCleanUp(1)
	assert.Empty(t, locker.StatusLines(false))
}

func TestSuggest(t *testing.T) {
	candidates := []string{"Algae", "Dirt", "StorageLocker"}

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Dirtt", "Dirt", true},
		{"storagelocker", "StorageLocker", true},
		{"StorageLockr", "StorageLocker", true},
		{"Copper", "", false},
		{"Ag", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := suggest(tt.input, candidates)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
