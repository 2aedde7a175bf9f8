package contents

import (
	"fmt"

	"github.com/fachebot/container-tooltips/internal/units"
)

// fakeItem 用于测试的 Item 实现
type fakeItem struct {
	id         int
	name       string
	tag        string
	noPrefab   bool
	element    *Element
	pickupable *float64
	calories   *float64
	storage    []Item
}

func (f *fakeItem) InstanceID() int { return f.id }
func (f *fakeItem) Name() string    { return f.name }

func (f *fakeItem) Prefab() (string, string, bool) {
	if f.noPrefab {
		return "", "", false
	}
	return f.tag, f.name, true
}

func (f *fakeItem) PrimaryElement() (Element, bool) {
	if f.element == nil {
		return Element{}, false
	}
	return *f.element, true
}

func (f *fakeItem) Pickupable() (float64, bool) {
	if f.pickupable == nil {
		return 0, false
	}
	return *f.pickupable, true
}

func (f *fakeItem) Edible() (float64, bool) {
	if f.calories == nil {
		return 0, false
	}
	return *f.calories, true
}

func (f *fakeItem) Storage() ([]Item, bool) {
	return f.storage, f.storage != nil
}

func ptr(v float64) *float64 { return &v }

var nextID = 1000

func newID() int {
	nextID++
	return nextID
}

// massItem 只有质量和温度的物品，类型标识与名称相同
func massItem(name string, mass, temperature float64) *fakeItem {
	return &fakeItem{
		id:      newID(),
		name:    name,
		tag:     name,
		element: &Element{Mass: mass, Units: 0, Temperature: temperature},
	}
}

func unitItem(name string, units float64) *fakeItem {
	return &fakeItem{id: newID(), name: name, tag: name, pickupable: ptr(units)}
}

func bareItem(name string) *fakeItem {
	return &fakeItem{id: newID(), name: name, tag: name}
}

// fakePresenter 输出格式固定、便于断言的 Presenter
type fakePresenter struct{}

func (fakePresenter) Mass(kg float64, _ units.MassUnit) string { return fmt.Sprintf("%gkg", kg) }
func (fakePresenter) Units(n float64) string                   { return fmt.Sprintf("%gu", n) }
func (fakePresenter) Calories(cal float64) string              { return fmt.Sprintf("%gcal", cal) }
func (fakePresenter) Temperature(k float64) string             { return fmt.Sprintf("%gK", k) }
func (fakePresenter) DiseaseAmount(n int) string               { return fmt.Sprintf("%d germs", n) }
func (fakePresenter) DiseaseName(idx uint8) string             { return fmt.Sprintf("D%d", idx) }
func (fakePresenter) More(n int) string                        { return fmt.Sprintf("+%d more...", n) }

func (fakePresenter) ItemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

func names(level *Level) []string {
	out := make([]string, 0, level.Len())
	for _, e := range level.Entries() {
		out = append(out, e.Name)
	}
	return out
}
