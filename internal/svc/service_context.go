package svc

import (
	"math"
	"sync"
	"time"

	"github.com/fachebot/container-tooltips/internal/cache"
	"github.com/fachebot/container-tooltips/internal/config"
	"github.com/fachebot/container-tooltips/internal/contents"
	"github.com/fachebot/container-tooltips/internal/filters"
	"github.com/fachebot/container-tooltips/internal/locale"
	"github.com/fachebot/container-tooltips/internal/logger"
	"github.com/fachebot/container-tooltips/internal/scene"
	"github.com/fachebot/container-tooltips/internal/status"
	"github.com/fachebot/container-tooltips/internal/units"

	"golang.org/x/text/language"
)

// SceneClock 当前场景的游戏时钟，场景重新加载时切换
type SceneClock struct {
	mu    sync.RWMutex
	clock status.Clock
}

func (c *SceneClock) Set(clock status.Clock) {
	c.mu.Lock()
	c.clock = clock
	c.mu.Unlock()
}

func (c *SceneClock) Time() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.clock == nil {
		return math.NaN()
	}
	return c.clock.Time()
}

type ServiceContext struct {
	Config             *config.Config
	Catalog            *locale.Catalog
	Formatter          *units.Formatter
	ContentsSummarizer *contents.Summarizer
	FiltersSummarizer  *filters.Summarizer
	Cache              *cache.Cache
	Clock              *SceneClock
	Resolver           *status.Resolver
	Registry           *status.Registry
}

func NewServiceContext(c *config.Config) *ServiceContext {
	lang, err := language.Parse(c.Display.Language)
	if err != nil {
		logger.Warnf("[Svc] 无法识别的语言 %s，使用英文, %v", c.Display.Language, err)
		lang = language.English
	}

	// 创建文本目录和数值格式化
	catalog := locale.New(c.Display.LocalePath, c.Display.Language)
	formatter := units.NewFormatter(catalog, c.Display.Language, units.TemperatureUnit(c.Display.TemperatureUnit))

	// 创建摘要生成器
	contentsSummarizer := contents.NewSummarizer(formatter, contents.Options{
		SortMode:   contents.SortMode(c.Contents.SortMode),
		MassUnit:   units.ParseMassUnit(c.Contents.MassUnits),
		LineFormat: c.Contents.LineFormat,
		Language:   lang,
	})
	filtersSummarizer := filters.NewSummarizer(lang, catalog.More)

	// 创建缓存和状态条目
	memo := cache.New(time.Duration(c.Cache.TTL)*time.Second, time.Duration(c.Cache.CleanupInterval)*time.Second)
	clock := &SceneClock{}
	resolver := status.NewResolver(
		contentsSummarizer,
		filtersSummarizer,
		memo,
		clock,
		catalog,
		status.Limits{Status: c.Contents.StatusLineLimit, Tooltip: c.Contents.TooltipLineLimit},
	)
	registry := status.NewRegistry(resolver, catalog)
	registry.Initialize()

	return &ServiceContext{
		Config:             c,
		Catalog:            catalog,
		Formatter:          formatter,
		ContentsSummarizer: contentsSummarizer,
		FiltersSummarizer:  filtersSummarizer,
		Cache:              memo,
		Clock:              clock,
		Resolver:           resolver,
		Registry:           registry,
	}
}

// Attach 切换到场景的时钟，并为场景中的存储和过滤对象挂载状态条目
func (svcCtx *ServiceContext) Attach(sc *scene.Scene) *status.Hooks {
	svcCtx.Clock.Set(sc)

	hooks := status.NewHooks(svcCtx.Registry)
	for _, obj := range sc.Storages() {
		hooks.OnStorageSpawn(obj, obj)
	}
	for _, obj := range sc.Filtered() {
		sources := obj.FilterSources()
		switch {
		case len(sources.Filterables) > 0:
			hooks.OnFilterableSpawn(obj, obj)
		case len(sources.TreeFilterables) > 0:
			hooks.OnTreeFilterableSpawn(obj, obj)
		default:
			hooks.OnFlatTagFilterableSpawn(obj, obj)
		}
	}

	logger.Debugf("[Svc] 已挂载状态条目: 存储 %d 个, 过滤 %d 个", len(sc.Storages()), len(sc.Filtered()))
	return hooks
}

// Detach 移除场景中所有对象的状态条目
func (svcCtx *ServiceContext) Detach(sc *scene.Scene, hooks *status.Hooks) {
	for _, obj := range sc.Objects() {
		hooks.OnCleanUp(obj.InstanceID())
	}
}
