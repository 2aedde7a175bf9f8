package contents

import (
	"github.com/fachebot/container-tooltips/internal/logger"

	"github.com/zyedidia/generic/mapset"
)

// frame 遍历栈中的一帧。exit 帧在物品的子树处理完毕后出栈，用于将其移出循环检测集合
type frame struct {
	item  Item
	level *Level
	exit  bool
	id    int
}

// Aggregate 将物品按类型标识汇总为条目，嵌套容器的内容汇总到对应条目的 Children 中。
// 循环检测集合只记录当前遍历路径上的物品，同一物品可以出现在不同的分支中
func Aggregate(items []Item) *Level {
	root := newLevel(0)
	guard := mapset.New[int]()

	stack := make([]frame, 0, len(items))
	stack = pushItems(stack, items, root)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.exit {
			guard.Remove(f.id)
			continue
		}

		if f.item == nil {
			logger.Warnf("[Contents] 跳过空物品")
			continue
		}

		id := f.item.InstanceID()
		if guard.Has(id) {
			logger.Warnf("[Contents] 检测到 %s 的容器循环引用，停止展开", f.item.Name())
			continue
		}
		guard.Put(id)
		stack = append(stack, frame{exit: true, id: id})

		tag, name, ok := f.item.Prefab()
		if !ok {
			logger.Warnf("[Contents] 物品 %s 缺少类型标识，已跳过", f.item.Name())
			continue
		}

		entry := f.level.getOrAdd(tag, name)
		accumulate(entry, f.item)

		if nested, ok := f.item.Storage(); ok && len(nested) > 0 {
			stack = pushItems(stack, nested, entry.ensureChildren())
		}
	}

	return root
}

// pushItems 逆序入栈，保证出栈顺序与原始顺序一致
func pushItems(stack []frame, items []Item, level *Level) []frame {
	for i := len(items) - 1; i >= 0; i-- {
		stack = append(stack, frame{item: items[i], level: level})
	}
	return stack
}

func accumulate(entry *Entry, item Item) {
	entry.Count++

	if element, ok := item.PrimaryElement(); ok {
		entry.Mass += element.Mass
		entry.Units += element.Units
		entry.TemperatureSum += element.Temperature
		entry.TemperatureSamples++

		if element.DiseaseCount > 0 {
			entry.AddDisease(element.DiseaseIdx, element.DiseaseCount)
		}
	} else if amount, ok := item.Pickupable(); ok {
		logger.Debugf("[Contents] 物品 %s 没有物质属性，按可拾取数量 %v 计入", item.Name(), amount)
		entry.Units += amount
	}

	if calories, ok := item.Edible(); ok {
		entry.Calories += calories
	}
}
