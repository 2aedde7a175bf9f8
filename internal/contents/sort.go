package contents

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortMode string

const (
	SortDefault      SortMode = "Default"
	SortAmount       SortMode = "Amount"
	SortAlphabetical SortMode = "Alphabetical"
)

// Sorter 按配置的方式排序各层级条目。名称比较忽略大小写，并遵循语言的排序规则
type Sorter struct {
	lang language.Tag
}

func NewSorter(lang language.Tag) Sorter {
	return Sorter{lang: lang}
}

// Sort 使用英文排序规则排序
func Sort(level *Level, mode SortMode) {
	NewSorter(language.English).Sort(level, mode)
}

// Sort 原地排序 level 及其所有子层级。SortDefault 保持首次出现的顺序
func (s Sorter) Sort(level *Level, mode SortMode) {
	if level == nil {
		return
	}

	var compare func(a, b *Entry) int
	c := &comparer{collator: collate.New(s.lang, collate.IgnoreCase)}
	switch mode {
	case SortAmount:
		compare = c.amount
	case SortAlphabetical:
		compare = c.alphabetical
	default:
		return
	}

	sortLevel(level, compare)
}

func sortLevel(level *Level, compare func(a, b *Entry) int) {
	slices.SortStableFunc(level.entries, compare)
	for _, e := range level.entries {
		if e.Children != nil {
			sortLevel(e.Children, compare)
		}
	}
}

type comparer struct {
	collator *collate.Collator
}

// name 忽略大小写比较名称，相同时按原始字节和类型标识比较，保证全序
func (c *comparer) name(a, b *Entry) int {
	if r := c.collator.CompareString(a.Name, b.Name); r != 0 {
		return r
	}
	if r := cmp.Compare(a.Name, b.Name); r != 0 {
		return r
	}
	return cmp.Compare(a.Key, b.Key)
}

// amount 质量、热量、数量、物品个数依次降序，最后按名称升序
func (c *comparer) amount(a, b *Entry) int {
	if r := cmp.Compare(b.Mass, a.Mass); r != 0 {
		return r
	}
	if r := cmp.Compare(b.Calories, a.Calories); r != 0 {
		return r
	}
	if r := cmp.Compare(b.Units, a.Units); r != 0 {
		return r
	}
	if r := cmp.Compare(b.Count, a.Count); r != 0 {
		return r
	}
	return c.name(a, b)
}

// alphabetical 名称升序，名称相同时按数量排序
func (c *comparer) alphabetical(a, b *Entry) int {
	if r := c.collator.CompareString(a.Name, b.Name); r != 0 {
		return r
	}
	return c.amount(a, b)
}
