// Package filters 汇总建筑上已选择的过滤标签，生成提示文本。
package filters

import (
	"slices"

	"github.com/fachebot/container-tooltips/internal/lines"
	"github.com/fachebot/container-tooltips/internal/locale"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Tag 过滤标签。ProperName 可能带有 <link> 标记
type Tag struct {
	ID         string
	ProperName string
}

// Filterable 单选过滤器，ok 为 false 表示尚未选择
type Filterable interface {
	SelectedTag() (Tag, bool)
}

// TreeFilterable 按分类树勾选的过滤器
type TreeFilterable interface {
	Tags() []Tag
}

// FlatTagFilterable 平铺多选的过滤器
type FlatTagFilterable interface {
	SelectedTags() []Tag
}

// Sources 同一建筑上的全部过滤组件
type Sources struct {
	Filterables        []Filterable
	TreeFilterables    []TreeFilterable
	FlatTagFilterables []FlatTagFilterable
}

func (s Sources) Empty() bool {
	return len(s.Filterables) == 0 && len(s.TreeFilterables) == 0 && len(s.FlatTagFilterables) == 0
}

// Tags 合并所有来源的已选标签
func (s Sources) Tags() []Tag {
	var tags []Tag
	for _, f := range s.Filterables {
		if tag, ok := f.SelectedTag(); ok {
			tags = append(tags, tag)
		}
	}
	for _, f := range s.TreeFilterables {
		tags = append(tags, f.Tags()...)
	}
	for _, f := range s.FlatTagFilterables {
		tags = append(tags, f.SelectedTags()...)
	}
	return tags
}

type Summarizer struct {
	lang language.Tag
	more func(n int) string
}

func NewSummarizer(lang language.Tag, more func(n int) string) *Summarizer {
	return &Summarizer{lang: lang, more: more}
}

// SummarizeFilters 每行一个标签名称，按名称忽略大小写升序，最多 lineLimit 行
func (s *Summarizer) SummarizeFilters(sources Sources, lineLimit int) string {
	if sources.Empty() {
		return ""
	}

	tags := sources.Tags()
	if len(tags) == 0 {
		return ""
	}

	collator := collate.New(s.lang, collate.IgnoreCase)
	slices.SortStableFunc(tags, func(a, b Tag) int {
		return collator.CompareString(locale.StripLinks(a.ProperName), locale.StripLinks(b.ProperName))
	})

	w := lines.NewWriter(lineLimit, s.more)
	for _, tag := range tags {
		if !w.Add(tag.ProperName) {
			break
		}
	}
	return w.String(len(tags))
}
