// Package status 将内容摘要和过滤摘要作为状态条目挂到宿主的可选中对象上。
//
// 宿主在对象生成、存储变化和销毁时调用 Hooks；状态条目的文本由 Resolver 在每帧显示时解析，
// 并按宿主的游戏时间缓存。
package status

import (
	"github.com/fachebot/container-tooltips/internal/contents"
	"github.com/fachebot/container-tooltips/internal/filters"
	"github.com/fachebot/container-tooltips/internal/locale"
	"github.com/fachebot/container-tooltips/internal/logger"

	"github.com/google/uuid"
)

const (
	Prefix            = "CONTAINERTOOLTIPS"
	ContentsStatusID  = "CONTAINERTOOLTIPSTATUSITEM"
	FiltersStatusID   = "CONTAINERTOOLTIPFILTERSITEM"
	statusIconInfo    = "status_item_info"
	notificationLevel = "Neutral"
)

// StatusItem 宿主状态条目的定义。Resolve* 在条目显示时由宿主调用
type StatusItem struct {
	ID           string
	Prefix       string
	Icon         string
	Notification string
	Name         string
	Tooltip      string

	ResolveString  func(data any) string
	ResolveTooltip func(data any) string
}

// Selectable 宿主中可以显示状态条目的对象
type Selectable interface {
	// ReplaceStatusItem 用 item 替换 handle 对应的条目（handle 为空时新增），返回新的句柄
	ReplaceStatusItem(handle uuid.UUID, item *StatusItem, data any) uuid.UUID
	RemoveStatusItem(handle uuid.UUID, immediate bool)
}

// Storage 带有内部存储的对象
type Storage interface {
	InstanceID() int
	Name() string
	Items() []contents.Item
	ShowInUI() bool
}

// Filtered 带有过滤组件的对象
type Filtered interface {
	InstanceID() int
	Name() string
	FilterSources() filters.Sources
}

// Registry 保存已创建的状态条目
type Registry struct {
	resolver *Resolver
	catalog  *locale.Catalog

	Contents *StatusItem
	Filters  *StatusItem
}

func NewRegistry(resolver *Resolver, catalog *locale.Catalog) *Registry {
	return &Registry{resolver: resolver, catalog: catalog}
}

// Initialize 创建状态条目并绑定解析回调，重复调用时不会重新创建
func (r *Registry) Initialize() {
	if r.Contents != nil && r.Filters != nil {
		logger.Debugf("[Status] 状态条目已初始化，跳过")
		return
	}

	r.Contents = &StatusItem{
		ID:             ContentsStatusID,
		Prefix:         Prefix,
		Icon:           statusIconInfo,
		Notification:   notificationLevel,
		Name:           r.catalog.Get(locale.ContentsName),
		Tooltip:        r.catalog.Get(locale.ContentsTooltip),
		ResolveString:  r.resolver.ContentsStatusText,
		ResolveTooltip: r.resolver.ContentsTooltipText,
	}
	r.Filters = &StatusItem{
		ID:             FiltersStatusID,
		Prefix:         Prefix,
		Icon:           statusIconInfo,
		Notification:   notificationLevel,
		Name:           r.catalog.Get(locale.FiltersName),
		Tooltip:        r.catalog.Get(locale.FiltersTooltip),
		ResolveString:  r.resolver.FiltersStatusText,
		ResolveTooltip: r.resolver.FiltersTooltipText,
	}

	logger.Infof("[Status] 状态条目已创建: %s, %s", ContentsStatusID, FiltersStatusID)
}
