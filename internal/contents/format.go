package contents

import (
	"fmt"
	"strings"

	"github.com/fachebot/container-tooltips/internal/lines"
	"github.com/fachebot/container-tooltips/internal/logger"
	"github.com/fachebot/container-tooltips/internal/units"
)

const DefaultLineFormat = "{1} of {0} at {2}"

// Presenter 数值与文本的本地化展示（由 units.Formatter 实现，便于测试注入 mock）
type Presenter interface {
	Mass(kg float64, unit units.MassUnit) string
	Units(n float64) string
	Calories(cal float64) string
	Temperature(kelvin float64) string
	DiseaseAmount(n int) string
	DiseaseName(idx uint8) string
	ItemCount(n int) string
	More(n int) string
}

type Formatter struct {
	presenter  Presenter
	lineFormat string
	massUnit   units.MassUnit
}

func NewFormatter(presenter Presenter, lineFormat string, massUnit units.MassUnit) *Formatter {
	if lineFormat == "" {
		lineFormat = DefaultLineFormat
	}
	return &Formatter{
		presenter:  presenter,
		lineFormat: lineFormat,
		massUnit:   massUnit,
	}
}

// Format 将已排序的条目树渲染为最多 lineLimit 行文本。
// 没有可展示信息的条目不输出，但仍计入 "+N more..." 的数量。
// 输出多于一行时在开头加换行，使调用方的 "Contents: " 前缀后另起一行
func (f *Formatter) Format(level *Level, lineLimit int) string {
	if level == nil {
		return ""
	}

	flattened := level.Flatten()
	if len(flattened) == 0 {
		return ""
	}

	w := lines.NewWriter(lineLimit, f.presenter.More)
	for _, e := range flattened {
		if w.Full() {
			break
		}
		if !e.Displayable() {
			logger.Debugf("[Contents] 条目 %s 没有可展示的信息，已跳过", e.Name)
			continue
		}
		w.Add(f.formatEntry(e))
	}

	text := w.String(len(flattened))
	if w.Len() > 1 {
		return "\n" + text
	}
	return text
}

func (f *Formatter) formatEntry(e *Entry) string {
	appendItemCount := e.Count > 1

	var amount string
	switch {
	case e.Mass > 0:
		amount = f.presenter.Mass(e.Mass, f.massUnit)
	case e.Units > 0:
		amount = f.presenter.Units(e.Units)
	default:
		amount = f.presenter.ItemCount(e.Count)
		appendItemCount = false
	}

	if e.Calories > 0 {
		amount += " (" + f.presenter.Calories(e.Calories) + ")"
	}
	if appendItemCount {
		amount += " (" + f.presenter.ItemCount(e.Count) + ")"
	}

	samples := e.TemperatureSamples
	if samples <= 0 {
		samples = e.Count
	}
	temperature := f.presenter.Temperature(e.TemperatureSum / float64(max(samples, 1)))
	if samples > 1 {
		temperature = "~" + temperature
	}

	line := indent(e.Depth) + formatLine(f.lineFormat, e.Name, amount, temperature)
	if germs := f.formatDiseases(e); germs != "" {
		line += "\n" + indent(e.Depth+1) + germs
	}
	return line
}

func (f *Formatter) formatDiseases(e *Entry) string {
	if e.TotalDiseaseCount <= 0 || len(e.Diseases) == 0 {
		return ""
	}

	names := make([]string, len(e.Diseases))
	for i, d := range e.Diseases {
		names[i] = f.presenter.DiseaseName(d.Idx)
	}
	return fmt.Sprintf("%s [%s]", f.presenter.DiseaseAmount(e.TotalDiseaseCount), strings.Join(names, " + "))
}

func indent(depth int) string {
	return strings.Repeat(" ", depth*4)
}

// formatLine 替换行格式中的 {0} {1} {2} 占位符，其余内容原样保留
func formatLine(format string, name, amount, temperature string) string {
	return strings.NewReplacer("{0}", name, "{1}", amount, "{2}", temperature).Replace(format)
}
