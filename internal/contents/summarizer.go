package contents

import (
	"github.com/fachebot/container-tooltips/internal/logger"
	"github.com/fachebot/container-tooltips/internal/units"

	"golang.org/x/text/language"
)

type Options struct {
	SortMode   SortMode
	MassUnit   units.MassUnit
	LineFormat string
	Language   language.Tag
}

// Summarizer 生成容器内容摘要。每次调用都重新汇总，不保存任何状态
type Summarizer struct {
	sorter    Sorter
	sortMode  SortMode
	formatter *Formatter
}

func NewSummarizer(presenter Presenter, opts Options) *Summarizer {
	return &Summarizer{
		sorter:    NewSorter(opts.Language),
		sortMode:  opts.SortMode,
		formatter: NewFormatter(presenter, opts.LineFormat, opts.MassUnit),
	}
}

// SummarizeContents 汇总、排序并渲染物品列表，没有可展示内容时返回空字符串
func (s *Summarizer) SummarizeContents(items []Item, lineLimit int) string {
	if len(items) == 0 {
		return ""
	}

	level := Aggregate(items)
	if level.Len() == 0 {
		logger.Warnf("[Contents] 处理 %d 个物品后没有生成任何条目", len(items))
		return ""
	}

	s.sorter.Sort(level, s.sortMode)
	return s.formatter.Format(level, lineLimit)
}
