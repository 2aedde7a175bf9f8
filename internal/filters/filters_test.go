package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

type single struct {
	tag Tag
	ok  bool
}

func (s single) SelectedTag() (Tag, bool) { return s.tag, s.ok }

type tree []Tag

func (t tree) Tags() []Tag { return t }

type flat []Tag

func (f flat) SelectedTags() []Tag { return f }

func tag(name string) Tag {
	return Tag{ID: name, ProperName: name}
}

func TestSummarizeFilters(t *testing.T) {
	tests := []struct {
		name    string
		sources Sources
		limit   int
		want    string
	}{
		{
			name:    "没有过滤组件",
			sources: Sources{},
			limit:   5,
			want:    "",
		},
		{
			name:    "过滤组件没有选择任何标签",
			sources: Sources{Filterables: []Filterable{single{}}, TreeFilterables: []TreeFilterable{tree{}}},
			limit:   5,
			want:    "",
		},
		{
			name:    "单选过滤器",
			sources: Sources{Filterables: []Filterable{single{tag: tag("Oxygen"), ok: true}}},
			limit:   5,
			want:    "Oxygen",
		},
		{
			name: "合并多个来源并忽略大小写排序",
			sources: Sources{
				Filterables:        []Filterable{single{tag: tag("sand"), ok: true}},
				TreeFilterables:    []TreeFilterable{tree{tag("Dirt"), tag("Algae")}},
				FlatTagFilterables: []FlatTagFilterable{flat{tag("Copper Ore")}},
			},
			limit: 5,
			want:  "Algae\nCopper Ore\nDirt\nsand",
		},
		{
			name: "超出上限",
			sources: Sources{
				TreeFilterables: []TreeFilterable{tree{tag("E"), tag("D"), tag("C"), tag("B"), tag("A")}},
			},
			limit: 2,
			want:  "A\nB\n+3 more...",
		},
		{
			name: "上限小于 1 时按 1 处理",
			sources: Sources{
				TreeFilterables: []TreeFilterable{tree{tag("B"), tag("A")}},
			},
			limit: -1,
			want:  "A\n+1 more...",
		},
		{
			name: "按去除链接标记后的名称排序",
			sources: Sources{
				TreeFilterables: []TreeFilterable{tree{
					{ID: "Water", ProperName: `<link="WATER">Water</link>`},
					{ID: "Algae", ProperName: `<link="ALGAE">Algae</link>`},
					{ID: "Phosphorite", ProperName: "Phosphorite"},
				}},
			},
			limit: 5,
			want:  "<link=\"ALGAE\">Algae</link>\nPhosphorite\n<link=\"WATER\">Water</link>",
		},
	}

	s := NewSummarizer(language.English, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.SummarizeFilters(tt.sources, tt.limit))
		})
	}
}

func TestSummarizeFilters_OrderIndependent(t *testing.T) {
	s := NewSummarizer(language.English, nil)
	a := Sources{
		Filterables:     []Filterable{single{tag: tag("Slime"), ok: true}},
		TreeFilterables: []TreeFilterable{tree{tag("Dirt"), tag("Algae")}},
	}
	b := Sources{
		TreeFilterables:    []TreeFilterable{tree{tag("Algae")}},
		FlatTagFilterables: []FlatTagFilterable{flat{tag("Slime"), tag("Dirt")}},
	}
	assert.Equal(t, s.SummarizeFilters(a, 10), s.SummarizeFilters(b, 10))
}
