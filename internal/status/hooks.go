package status

import (
	"github.com/fachebot/container-tooltips/internal/logger"
)

// builtinFilterBuildings 这些建筑的提示中已经显示了过滤设置
var builtinFilterBuildings = map[string]bool{
	"GasFilterComplete":    true,
	"LiquidFilterComplete": true,
}

// Hooks 宿主在对象生命周期中调用的入口。每个对象最多挂载一个同类行为，
// 非并发安全，应在宿主主线程中调用
type Hooks struct {
	registry *Registry
	contents map[int]*ContentsBehaviour
	filters  map[int]*FiltersBehaviour
}

func NewHooks(registry *Registry) *Hooks {
	return &Hooks{
		registry: registry,
		contents: make(map[int]*ContentsBehaviour),
		filters:  make(map[int]*FiltersBehaviour),
	}
}

// OnStorageSpawn 存储对象生成后调用
func (h *Hooks) OnStorageSpawn(storage Storage, selectable Selectable) *ContentsBehaviour {
	if storage == nil {
		logger.Warnf("[Hooks] 存储对象无效")
		return nil
	}

	b, ok := h.contents[storage.InstanceID()]
	if !ok {
		b = NewContentsBehaviour(storage, selectable, h.registry)
		h.contents[storage.InstanceID()] = b
	}
	b.OnSpawn()
	return b
}

// OnStorageChange 存储内容变化后调用
func (h *Hooks) OnStorageChange(instanceID int) {
	if b, ok := h.contents[instanceID]; ok {
		b.OnStorageChange()
	}
}

// OnFilterableSpawn 单选过滤建筑生成后调用，跳过已自带过滤提示的建筑
func (h *Hooks) OnFilterableSpawn(subject Filtered, selectable Selectable) *FiltersBehaviour {
	if subject != nil && builtinFilterBuildings[prefabID(subject)] {
		logger.Debugf("[Hooks] %s 已自带过滤提示，跳过", subject.Name())
		return nil
	}
	return h.attachFilters(subject, selectable)
}

// prefabID 对象的类型标识，未提供时使用名称
func prefabID(subject Filtered) string {
	if p, ok := subject.(interface {
		Prefab() (string, string, bool)
	}); ok {
		if tag, _, ok := p.Prefab(); ok {
			return tag
		}
	}
	return subject.Name()
}

func (h *Hooks) OnTreeFilterableSpawn(subject Filtered, selectable Selectable) *FiltersBehaviour {
	return h.attachFilters(subject, selectable)
}

func (h *Hooks) OnFlatTagFilterableSpawn(subject Filtered, selectable Selectable) *FiltersBehaviour {
	return h.attachFilters(subject, selectable)
}

func (h *Hooks) attachFilters(subject Filtered, selectable Selectable) *FiltersBehaviour {
	if subject == nil {
		logger.Warnf("[Hooks] 过滤对象无效")
		return nil
	}

	b, ok := h.filters[subject.InstanceID()]
	if !ok {
		b = NewFiltersBehaviour(subject, selectable, h.registry)
		h.filters[subject.InstanceID()] = b
	}
	b.OnSpawn()
	return b
}

// OnCleanUp 对象销毁时调用，移除其上的所有状态条目
func (h *Hooks) OnCleanUp(instanceID int) {
	if b, ok := h.contents[instanceID]; ok {
		b.OnCleanUp()
		delete(h.contents, instanceID)
	}
	if b, ok := h.filters[instanceID]; ok {
		b.OnCleanUp()
		delete(h.filters, instanceID)
	}
}
