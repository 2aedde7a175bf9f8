package status

import (
	"github.com/fachebot/container-tooltips/internal/logger"

	"github.com/google/uuid"
)

// ContentsBehaviour 管理存储对象上的内容状态条目
type ContentsBehaviour struct {
	handle     uuid.UUID
	storage    Storage
	selectable Selectable
	registry   *Registry
}

func NewContentsBehaviour(storage Storage, selectable Selectable, registry *Registry) *ContentsBehaviour {
	return &ContentsBehaviour{
		storage:    storage,
		selectable: selectable,
		registry:   registry,
	}
}

func (b *ContentsBehaviour) Handle() uuid.UUID {
	return b.handle
}

func (b *ContentsBehaviour) OnSpawn() {
	b.refresh()
}

func (b *ContentsBehaviour) OnStorageChange() {
	logger.Debugf("[Status] %s 的存储发生变化", b.name())
	b.refresh()
}

func (b *ContentsBehaviour) OnCleanUp() {
	b.clear()
}

func (b *ContentsBehaviour) name() string {
	if b.storage == nil {
		return "<nil>"
	}
	return b.storage.Name()
}

func (b *ContentsBehaviour) refresh() {
	if b.storage == nil || b.selectable == nil {
		logger.Warnf("[Status] %s 缺少存储或可选中组件，无法显示内容", b.name())
		return
	}

	if b.registry == nil || b.registry.Contents == nil {
		logger.Errorf("[Status] 内容状态条目尚未初始化")
		b.clear()
		return
	}

	if !b.storage.ShowInUI() {
		logger.Debugf("[Status] %s 的存储不在界面中显示，移除状态条目", b.name())
		b.clear()
		return
	}

	handle := b.selectable.ReplaceStatusItem(b.handle, b.registry.Contents, b.storage)
	if b.handle != uuid.Nil {
		logger.Debugf("[Status] %s 的内容状态条目已更新, handle=%s", b.name(), handle)
	}
	b.handle = handle
}

func (b *ContentsBehaviour) clear() {
	if b.handle == uuid.Nil || b.selectable == nil {
		return
	}
	b.selectable.RemoveStatusItem(b.handle, false)
	logger.Debugf("[Status] 已移除 %s 的内容状态条目, handle=%s", b.name(), b.handle)
	b.handle = uuid.Nil
}

// FiltersBehaviour 管理过滤建筑上的过滤状态条目
type FiltersBehaviour struct {
	handle     uuid.UUID
	subject    Filtered
	selectable Selectable
	registry   *Registry
}

func NewFiltersBehaviour(subject Filtered, selectable Selectable, registry *Registry) *FiltersBehaviour {
	return &FiltersBehaviour{
		subject:    subject,
		selectable: selectable,
		registry:   registry,
	}
}

func (b *FiltersBehaviour) Handle() uuid.UUID {
	return b.handle
}

func (b *FiltersBehaviour) OnSpawn() {
	b.refresh()
}

func (b *FiltersBehaviour) OnCleanUp() {
	b.clear()
}

func (b *FiltersBehaviour) name() string {
	if b.subject == nil {
		return "<nil>"
	}
	return b.subject.Name()
}

func (b *FiltersBehaviour) refresh() {
	if b.subject == nil || b.selectable == nil || b.subject.FilterSources().Empty() {
		logger.Warnf("[Status] %s 缺少过滤组件或可选中组件，无法显示过滤设置", b.name())
		b.clear()
		return
	}

	if b.registry == nil || b.registry.Filters == nil {
		logger.Errorf("[Status] 过滤状态条目尚未初始化")
		b.clear()
		return
	}

	handle := b.selectable.ReplaceStatusItem(b.handle, b.registry.Filters, b.subject)
	if b.handle != uuid.Nil {
		logger.Debugf("[Status] %s 的过滤状态条目已更新, handle=%s", b.name(), handle)
	}
	b.handle = handle
}

func (b *FiltersBehaviour) clear() {
	if b.handle == uuid.Nil || b.selectable == nil {
		return
	}
	b.selectable.RemoveStatusItem(b.handle, false)
	logger.Debugf("[Status] 已移除 %s 的过滤状态条目, handle=%s", b.name(), b.handle)
	b.handle = uuid.Nil
}
