package notify

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fachebot/container-tooltips/internal/config"
	"github.com/fachebot/container-tooltips/internal/logger"
)

const (
	ModeStatus  = "status"
	ModeTooltip = "tooltip"
	ModeBoth    = "both"
)

// Subject 带有状态条目的对象
type Subject interface {
	InstanceID() int
	Name() string
	StatusLines(tooltip bool) []string
}

// Notifier 将对象的状态文本输出到 io.Writer
type Notifier struct {
	out    io.Writer
	config *config.Watch
	mu     sync.Mutex
}

func NewNotifier(out io.Writer, cfg *config.Watch) *Notifier {
	return &Notifier{
		out:    out,
		config: cfg,
	}
}

// Notify 按配置的模式输出状态文本、提示文本或两者，没有状态条目的对象不输出
func (n *Notifier) Notify(ctx context.Context, subject Subject) error {
	if subject == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	switch n.config.Mode {
	case ModeStatus:
		return n.notifyStatus(subject)
	case ModeTooltip:
		return n.notifyTooltip(subject)
	case ModeBoth:
		if err := n.notifyStatus(subject); err != nil {
			logger.Errorf("[Notify] 输出状态文本失败: %v", err)
		}
		if err := n.notifyTooltip(subject); err != nil {
			logger.Errorf("[Notify] 输出提示文本失败: %v", err)
		}
		return nil
	default:
		logger.Warnf("[Notify] 未知的输出模式: %s", n.config.Mode)
		return nil
	}
}

func (n *Notifier) notifyStatus(subject Subject) error {
	return n.write(subject, "status", subject.StatusLines(false))
}

func (n *Notifier) notifyTooltip(subject Subject) error {
	return n.write(subject, "tooltip", subject.StatusLines(true))
}

func (n *Notifier) write(subject Subject, kind string, texts []string) error {
	if len(texts) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s (%s)\n", subject.InstanceID(), subject.Name(), kind)
	for _, text := range texts {
		for _, line := range splitLines(text) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := io.WriteString(n.out, b.String()); err != nil {
		return fmt.Errorf("写入对象 %d 的%s文本失败: %w", subject.InstanceID(), kind, err)
	}
	return nil
}

// splitLines 按换行拆分，去掉摘要开头用于另起一行的空行
func splitLines(text string) []string {
	parts := strings.Split(text, "\n")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		lines = append(lines, part)
	}
	return lines
}
