// Package scene 从 YAML 文件加载一组宿主对象，用于在命令行中驱动状态条目。
//
// 对象之间通过 Id 引用子对象，因此可以描述嵌套甚至相互引用的存储。
package scene

import (
	"fmt"
	"sort"

	"github.com/fachebot/container-tooltips/internal/filters"
	"github.com/fachebot/container-tooltips/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type ElementSpec struct {
	Mass         float64 `yaml:"Mass" validate:"gte=0"`
	Units        float64 `yaml:"Units" validate:"gte=0"`
	Temperature  float64 `yaml:"Temperature" validate:"gte=0"`
	DiseaseIdx   uint8   `yaml:"DiseaseIdx"`
	DiseaseCount int     `yaml:"DiseaseCount" validate:"gte=0"`
}

type ObjectSpec struct {
	ID         int          `yaml:"Id"`
	Name       string       `yaml:"Name" validate:"required"`
	Prefab     string       `yaml:"Prefab"` // 为空表示缺少类型标识
	ShowInUI   *bool        `yaml:"ShowInUI"`
	Storage    []int        `yaml:"Storage"`
	Element    *ElementSpec `yaml:"Element"`
	Pickupable *float64     `yaml:"Pickupable"`
	Edible     *float64     `yaml:"Edible"` // 卡路里

	// 过滤组件，字段缺失表示没有该组件
	Filterable    *string   `yaml:"Filterable"`
	TreeFilter    *[]string `yaml:"TreeFilter"`
	FlatTagFilter *[]string `yaml:"FlatTagFilter"`
}

type File struct {
	Clock   float64           `yaml:"Clock"`
	Tags    map[string]string `yaml:"Tags"` // 类型标识 -> 显示名称
	Objects []ObjectSpec      `yaml:"Objects" validate:"dive"`
}

// Scene 已解析的对象集合，同时充当宿主的游戏时钟
type Scene struct {
	clock   float64
	tags    map[string]string
	objects []*Object
	byID    map[int]*Object
}

var validate = validator.New()

// Load 从本地文件系统读取并解析场景文件
func Load(path string) (*Scene, error) {
	return LoadFS(afero.NewOsFs(), path)
}

func LoadFS(fs afero.Fs, path string) (*Scene, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("读取场景文件失败: %w", err)
	}
	return Parse(data)
}

// Parse 解析场景内容，重复的 Id 或引用了不存在的子对象时返回错误
func Parse(data []byte) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("解析场景文件失败: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("场景校验失败: %w", err)
	}

	s := &Scene{
		clock: f.Clock,
		tags:  f.Tags,
		byID:  make(map[int]*Object, len(f.Objects)),
	}
	if s.tags == nil {
		s.tags = make(map[string]string)
	}

	for i := range f.Objects {
		spec := &f.Objects[i]
		if _, ok := s.byID[spec.ID]; ok {
			return nil, fmt.Errorf("对象 Id 重复: %d", spec.ID)
		}
		obj := newObject(spec)
		obj.properName = s.properName(spec.Prefab, spec.Name)
		s.byID[spec.ID] = obj
		s.objects = append(s.objects, obj)
	}

	// 第二遍解析子对象引用，允许引用后声明的对象和自身
	for i := range f.Objects {
		spec := &f.Objects[i]
		obj := s.byID[spec.ID]
		for _, childID := range spec.Storage {
			child, ok := s.byID[childID]
			if !ok {
				return nil, fmt.Errorf("对象 %d 引用了不存在的子对象 %d", spec.ID, childID)
			}
			obj.storage = append(obj.storage, child)
		}
		s.bindFilters(obj, spec)
	}

	logger.Debugf("[Scene] 已加载 %d 个对象, %d 个类型标识", len(s.objects), len(s.tags))
	return s, nil
}

// properName 类型标识的显示名称，未登记的标识直接使用对象名称
func (s *Scene) properName(tag, fallback string) string {
	if tag == "" {
		return fallback
	}
	if name, ok := s.tags[tag]; ok {
		return name
	}
	s.warnUnknownTag(tag)
	return fallback
}

func (s *Scene) tag(id string) filters.Tag {
	name, ok := s.tags[id]
	if !ok {
		s.warnUnknownTag(id)
		name = id
	}
	return filters.Tag{ID: id, ProperName: name}
}

func (s *Scene) warnUnknownTag(tag string) {
	if suggestion, ok := suggest(tag, s.tagIDs()); ok {
		logger.Warnf("[Scene] 未知的类型标识 %q，是否为 %q?", tag, suggestion)
		return
	}
	logger.Warnf("[Scene] 未知的类型标识 %q", tag)
}

func (s *Scene) tagIDs() []string {
	ids := make([]string, 0, len(s.tags))
	for id := range s.tags {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Scene) bindFilters(obj *Object, spec *ObjectSpec) {
	if spec.Filterable != nil {
		f := &singleFilter{}
		if *spec.Filterable != "" {
			tag := s.tag(*spec.Filterable)
			f.selected = &tag
		}
		obj.filterable = f
	}
	if spec.TreeFilter != nil {
		obj.tree = &tagList{tags: s.tagList(*spec.TreeFilter)}
	}
	if spec.FlatTagFilter != nil {
		obj.flat = &tagList{tags: s.tagList(*spec.FlatTagFilter)}
	}
}

func (s *Scene) tagList(ids []string) []filters.Tag {
	tags := make([]filters.Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, s.tag(id))
	}
	return tags
}

// Time 实现 status.Clock
func (s *Scene) Time() float64 {
	return s.clock
}

// Advance 推进游戏时间，使缓存的状态文本失效
func (s *Scene) Advance(dt float64) {
	s.clock += dt
}

func (s *Scene) Objects() []*Object {
	return s.objects
}

func (s *Scene) Object(id int) (*Object, bool) {
	obj, ok := s.byID[id]
	return obj, ok
}

// Storages 带有存储组件的对象，按声明顺序
func (s *Scene) Storages() []*Object {
	var list []*Object
	for _, obj := range s.objects {
		if obj.hasStorage {
			list = append(list, obj)
		}
	}
	return list
}

// Filtered 带有任一过滤组件的对象，按声明顺序
func (s *Scene) Filtered() []*Object {
	var list []*Object
	for _, obj := range s.objects {
		if !obj.FilterSources().Empty() {
			list = append(list, obj)
		}
	}
	return list
}
