package status

import (
	"fmt"
	"math"

	"github.com/fachebot/container-tooltips/internal/contents"
	"github.com/fachebot/container-tooltips/internal/filters"
	"github.com/fachebot/container-tooltips/internal/locale"
	"github.com/fachebot/container-tooltips/internal/logger"
)

// contentsSummarizer 生成内容摘要（便于测试注入 mock）
type contentsSummarizer interface {
	SummarizeContents(items []contents.Item, lineLimit int) string
}

// filtersSummarizer 生成过滤摘要（便于测试注入 mock）
type filtersSummarizer interface {
	SummarizeFilters(sources filters.Sources, lineLimit int) string
}

// memo 按版本号缓存渲染结果
type memo interface {
	GetOrCompute(key string, version float64, compute func() string) string
}

// Clock 宿主的游戏时钟
type Clock interface {
	Time() float64
}

// Limits 状态栏和提示框的行数上限
type Limits struct {
	Status  int
	Tooltip int
}

type Resolver struct {
	contents contentsSummarizer
	filters  filtersSummarizer
	cache    memo
	clock    Clock
	catalog  *locale.Catalog
	limits   Limits
}

func NewResolver(
	summarizer contentsSummarizer,
	filterSummarizer filtersSummarizer,
	cache memo,
	clock Clock,
	catalog *locale.Catalog,
	limits Limits,
) *Resolver {
	return &Resolver{
		contents: summarizer,
		filters:  filterSummarizer,
		cache:    cache,
		clock:    clock,
		catalog:  catalog,
		limits:   limits,
	}
}

// tick 当前游戏时间，没有时钟时返回 NaN，此时缓存不会命中
func (r *Resolver) tick() float64 {
	if r.clock == nil {
		return math.NaN()
	}
	return r.clock.Time()
}

func (r *Resolver) ContentsStatusText(data any) string {
	return r.resolveContents("status", data, r.limits.Status)
}

func (r *Resolver) ContentsTooltipText(data any) string {
	return r.resolveContents("tooltip", data, r.limits.Tooltip)
}

func (r *Resolver) FiltersStatusText(data any) string {
	return r.resolveFilters("status", data, r.limits.Status)
}

func (r *Resolver) FiltersTooltipText(data any) string {
	return r.resolveFilters("tooltip", data, r.limits.Tooltip)
}

func (r *Resolver) resolveContents(kind string, data any, lineLimit int) string {
	storage, ok := data.(Storage)
	if !ok || storage == nil {
		logger.Warnf("[Status] 内容状态条目收到的数据不是存储: %T", data)
		return ""
	}

	key := fmt.Sprintf("contents:%s:%d", kind, storage.InstanceID())
	return r.cache.GetOrCompute(key, r.tick(), func() string {
		summary := r.contents.SummarizeContents(storage.Items(), lineLimit)
		return r.label(locale.ContentsName, summary)
	})
}

func (r *Resolver) resolveFilters(kind string, data any, lineLimit int) string {
	subject, ok := data.(Filtered)
	if !ok || subject == nil {
		logger.Warnf("[Status] 过滤状态条目收到的数据不是过滤组件: %T", data)
		return ""
	}

	key := fmt.Sprintf("filters:%s:%d", kind, subject.InstanceID())
	return r.cache.GetOrCompute(key, r.tick(), func() string {
		summary := r.filters.SummarizeFilters(subject.FilterSources(), lineLimit)
		return r.label(locale.FiltersName, summary)
	})
}

// label 拼接 "名称: 摘要"，摘要为空时显示 None
func (r *Resolver) label(name, summary string) string {
	if summary == "" {
		summary = r.catalog.Get(locale.Empty)
	}
	return r.catalog.Get(name) + ": " + summary
}
