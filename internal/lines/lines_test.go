package lines

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		lines []string
		total int
		want  string
	}{
		{"空", 3, nil, 0, ""},
		{"未超出上限", 3, []string{"a", "b"}, 2, "a\nb"},
		{"恰好等于上限", 2, []string{"a", "b"}, 2, "a\nb"},
		{"超出上限", 3, []string{"a", "b", "c", "d", "e"}, 5, "a\nb\nc\n+2 more..."},
		{"上限小于 1 时按 1 处理", 0, []string{"a", "b"}, 2, "a\n+1 more..."},
		{"被跳过的条目计入概括数量", 2, []string{"a", "b"}, 4, "a\nb\n+2 more..."},
		{"没有写入任何行", 1, nil, 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(tt.limit, nil)
			for _, line := range tt.lines {
				w.Add(line)
			}
			assert.Equal(t, tt.want, w.String(tt.total))
		})
	}
}

func TestWriter_Full(t *testing.T) {
	w := NewWriter(2, nil)
	assert.True(t, w.Add("a"))
	assert.False(t, w.Full())
	assert.True(t, w.Add("b"))
	assert.True(t, w.Full())
	assert.False(t, w.Add("c"))
	assert.Equal(t, 2, w.Len())
}

func TestWriter_CustomMore(t *testing.T) {
	w := NewWriter(1, func(n int) string { return fmt.Sprintf("另有 %d 项", n) })
	w.Add("a")
	assert.Equal(t, "a\n另有 3 项", w.String(4))
}
