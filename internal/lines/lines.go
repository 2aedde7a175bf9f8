// Package lines 实现有行数上限的多行文本输出，超出部分以一行 "+N more..." 概括。
package lines

import (
	"fmt"
	"strings"
)

type Writer struct {
	limit int
	lines []string
	more  func(n int) string
}

// NewWriter 创建输出器，limit 小于 1 时按 1 处理；more 为空时使用默认英文
func NewWriter(limit int, more func(n int) string) *Writer {
	if limit < 1 {
		limit = 1
	}
	if more == nil {
		more = func(n int) string { return fmt.Sprintf("+%d more...", n) }
	}
	return &Writer{limit: limit, more: more}
}

func (w *Writer) Limit() int {
	return w.limit
}

func (w *Writer) Full() bool {
	return len(w.lines) >= w.limit
}

// Add 追加一行，已达上限时丢弃并返回 false
func (w *Writer) Add(line string) bool {
	if w.Full() {
		return false
	}
	w.lines = append(w.lines, line)
	return true
}

func (w *Writer) Len() int {
	return len(w.lines)
}

// String 拼接已写入的行。total 为候选条目总数，超过上限时追加概括行，
// 概括的数量为 total 减去实际写入的行数。没有写入任何行时返回空字符串
func (w *Writer) String(total int) string {
	if len(w.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(w.lines, "\n"))
	if total > w.limit {
		sb.WriteString("\n")
		sb.WriteString(w.more(total - len(w.lines)))
	}
	return sb.String()
}
