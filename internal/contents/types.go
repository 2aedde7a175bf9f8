package contents

// Element 物品的基础物质属性
type Element struct {
	Mass         float64 // 千克
	Units        float64
	Temperature  float64 // 开尔文
	DiseaseIdx   uint8
	DiseaseCount int
}

// Item 宿主中的一个物品（只读）。物品本身也可能是一个容器
type Item interface {
	// InstanceID 对象实例标识，用于检测容器的循环引用
	InstanceID() int
	Name() string
	// Prefab 返回物品的类型标识及显示名称，ok 为 false 表示缺少类型标识
	Prefab() (tag string, properName string, ok bool)
	PrimaryElement() (Element, bool)
	Pickupable() (amount float64, ok bool)
	Edible() (calories float64, ok bool)
	Storage() ([]Item, bool)
}

// DiseaseAmount 某一种病菌的累计数量
type DiseaseAmount struct {
	Idx   uint8
	Count int
}

// Entry 同一层级中同一类型物品的汇总
type Entry struct {
	Name  string
	Key   string
	Depth int
	Count int

	Mass     float64
	Units    float64
	Calories float64

	TemperatureSum     float64
	TemperatureSamples int

	// Diseases 按首次出现的顺序保存
	Diseases          []DiseaseAmount
	TotalDiseaseCount int

	Children *Level
}

func (e *Entry) AddDisease(idx uint8, amount int) {
	e.TotalDiseaseCount += amount
	for i := range e.Diseases {
		if e.Diseases[i].Idx == idx {
			e.Diseases[i].Count += amount
			return
		}
	}
	e.Diseases = append(e.Diseases, DiseaseAmount{Idx: idx, Count: amount})
}

func (e *Entry) ensureChildren() *Level {
	if e.Children == nil {
		e.Children = newLevel(e.Depth + 1)
	}
	return e.Children
}

// Displayable 条目是否有可展示的信息
func (e *Entry) Displayable() bool {
	return e.Mass > 0 ||
		e.Units > 0 ||
		e.Calories > 0 ||
		len(e.Diseases) > 0 ||
		(e.Children != nil && e.Children.Len() > 0)
}

// Level 同一嵌套深度的条目集合，按类型标识去重，保持首次出现的顺序
type Level struct {
	depth   int
	lookup  map[string]*Entry
	entries []*Entry
}

func newLevel(depth int) *Level {
	return &Level{
		depth:  depth,
		lookup: make(map[string]*Entry),
	}
}

func (l *Level) Depth() int {
	return l.depth
}

func (l *Level) Len() int {
	return len(l.entries)
}

func (l *Level) Entries() []*Entry {
	return l.entries
}

func (l *Level) Get(key string) (*Entry, bool) {
	e, ok := l.lookup[key]
	return e, ok
}

func (l *Level) getOrAdd(key, name string) *Entry {
	e, ok := l.lookup[key]
	if !ok {
		e = &Entry{Name: name, Key: key, Depth: l.depth}
		l.lookup[key] = e
		l.entries = append(l.entries, e)
	}
	return e
}

// Flatten 前序展开整棵树，父条目排在其子条目之前
func (l *Level) Flatten() []*Entry {
	var out []*Entry
	var walk func(level *Level)
	walk = func(level *Level) {
		for _, e := range level.entries {
			out = append(out, e)
			if e.Children != nil {
				walk(e.Children)
			}
		}
	}
	walk(l)
	return out
}
