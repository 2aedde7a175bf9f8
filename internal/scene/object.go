package scene

import (
	"github.com/fachebot/container-tooltips/internal/contents"
	"github.com/fachebot/container-tooltips/internal/filters"
	"github.com/fachebot/container-tooltips/internal/status"

	"github.com/google/uuid"
)

// Object 场景中的一个宿主对象，可以同时是物品、存储和过滤建筑
type Object struct {
	id         int
	name       string
	prefab     string
	properName string
	showInUI   bool

	element    *contents.Element
	pickupable *float64
	edible     *float64

	hasStorage bool
	storage    []*Object

	filterable *singleFilter
	tree       *tagList
	flat       *tagList

	handles []uuid.UUID
	entries map[uuid.UUID]attached
}

// attached 对象上已挂载的状态条目
type attached struct {
	item *status.StatusItem
	data any
}

func newObject(spec *ObjectSpec) *Object {
	obj := &Object{
		id:         spec.ID,
		name:       spec.Name,
		prefab:     spec.Prefab,
		showInUI:   spec.ShowInUI == nil || *spec.ShowInUI,
		pickupable: spec.Pickupable,
		edible:     spec.Edible,
		hasStorage: spec.Storage != nil,
		entries:    make(map[uuid.UUID]attached),
	}
	if spec.Element != nil {
		obj.element = &contents.Element{
			Mass:         spec.Element.Mass,
			Units:        spec.Element.Units,
			Temperature:  spec.Element.Temperature,
			DiseaseIdx:   spec.Element.DiseaseIdx,
			DiseaseCount: spec.Element.DiseaseCount,
		}
	}
	return obj
}

func (o *Object) InstanceID() int {
	return o.id
}

func (o *Object) Name() string {
	return o.name
}

func (o *Object) Prefab() (string, string, bool) {
	if o.prefab == "" {
		return "", "", false
	}
	return o.prefab, o.properName, true
}

func (o *Object) PrimaryElement() (contents.Element, bool) {
	if o.element == nil {
		return contents.Element{}, false
	}
	return *o.element, true
}

func (o *Object) Pickupable() (float64, bool) {
	if o.pickupable == nil {
		return 0, false
	}
	return *o.pickupable, true
}

func (o *Object) Edible() (float64, bool) {
	if o.edible == nil {
		return 0, false
	}
	return *o.edible, true
}

func (o *Object) Storage() ([]contents.Item, bool) {
	if !o.hasStorage {
		return nil, false
	}
	return o.Items(), true
}

// Items 实现 status.Storage
func (o *Object) Items() []contents.Item {
	items := make([]contents.Item, 0, len(o.storage))
	for _, child := range o.storage {
		items = append(items, child)
	}
	return items
}

func (o *Object) ShowInUI() bool {
	return o.showInUI
}

// SetShowInUI 切换存储是否在界面中显示
func (o *Object) SetShowInUI(show bool) {
	o.showInUI = show
}

// Store 向存储中放入一个对象
func (o *Object) Store(child *Object) {
	o.hasStorage = true
	o.storage = append(o.storage, child)
}

// Remove 从存储中取出指定对象，返回是否存在
func (o *Object) Remove(id int) bool {
	for i, child := range o.storage {
		if child.id == id {
			o.storage = append(o.storage[:i], o.storage[i+1:]...)
			return true
		}
	}
	return false
}

// FilterSources 实现 status.Filtered
func (o *Object) FilterSources() filters.Sources {
	var sources filters.Sources
	if o.filterable != nil {
		sources.Filterables = append(sources.Filterables, o.filterable)
	}
	if o.tree != nil {
		sources.TreeFilterables = append(sources.TreeFilterables, o.tree)
	}
	if o.flat != nil {
		sources.FlatTagFilterables = append(sources.FlatTagFilterables, o.flat)
	}
	return sources
}

// ReplaceStatusItem 实现 status.Selectable，handle 不存在时新增条目
func (o *Object) ReplaceStatusItem(handle uuid.UUID, item *status.StatusItem, data any) uuid.UUID {
	if _, ok := o.entries[handle]; ok {
		o.entries[handle] = attached{item: item, data: data}
		return handle
	}

	handle = uuid.New()
	o.handles = append(o.handles, handle)
	o.entries[handle] = attached{item: item, data: data}
	return handle
}

func (o *Object) RemoveStatusItem(handle uuid.UUID, immediate bool) {
	if _, ok := o.entries[handle]; !ok {
		return
	}
	delete(o.entries, handle)
	for i, h := range o.handles {
		if h == handle {
			o.handles = append(o.handles[:i], o.handles[i+1:]...)
			break
		}
	}
}

// StatusLines 按挂载顺序解析对象上所有状态条目的文本
func (o *Object) StatusLines(tooltip bool) []string {
	lines := make([]string, 0, len(o.handles))
	for _, h := range o.handles {
		e := o.entries[h]
		resolve := e.item.ResolveString
		if tooltip {
			resolve = e.item.ResolveTooltip
		}
		if resolve == nil {
			continue
		}
		lines = append(lines, resolve(e.data))
	}
	return lines
}

// singleFilter 单选过滤器，selected 为空表示未选择
type singleFilter struct {
	selected *filters.Tag
}

func (f *singleFilter) SelectedTag() (filters.Tag, bool) {
	if f.selected == nil {
		return filters.Tag{}, false
	}
	return *f.selected, true
}

// tagList 同时实现树形和平铺两种多选过滤器
type tagList struct {
	tags []filters.Tag
}

func (l *tagList) Tags() []filters.Tag {
	return l.tags
}

func (l *tagList) SelectedTags() []filters.Tag {
	return l.tags
}
