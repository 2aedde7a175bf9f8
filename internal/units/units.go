// Package units 负责质量、数量、热量、温度和病菌数量的本地化展示。
//
// 数值均使用宿主游戏的内部单位：质量为千克，温度为开尔文，热量为卡路里。
package units

import (
	"math"

	"github.com/fachebot/container-tooltips/internal/locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type MassUnit string

const (
	MassAuto     MassUnit = "Auto"
	MassKilogram MassUnit = "Kilogram"
	MassGram     MassUnit = "Gram"
	MassTonne    MassUnit = "Tonne"
)

// ParseMassUnit 解析配置中的质量单位，"Default" 与 "Auto" 等价
func ParseMassUnit(s string) MassUnit {
	switch MassUnit(s) {
	case MassKilogram, MassGram, MassTonne:
		return MassUnit(s)
	default:
		return MassAuto
	}
}

type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "Celsius"
	Fahrenheit TemperatureUnit = "Fahrenheit"
	Kelvin     TemperatureUnit = "Kelvin"
)

// DefaultDiseaseNames 宿主中病菌索引对应的名称
var DefaultDiseaseNames = map[uint8]string{
	0: "Food Poisoning",
	1: "Slimelung",
	2: "Floral Scents",
	3: "Zombie Spores",
	4: "Radioactive Contaminants",
}

type Formatter struct {
	printer      *message.Printer
	catalog      *locale.Catalog
	temperature  TemperatureUnit
	diseaseNames map[uint8]string
}

func NewFormatter(catalog *locale.Catalog, lang string, temperature TemperatureUnit) *Formatter {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Formatter{
		printer:      message.NewPrinter(tag),
		catalog:      catalog,
		temperature:  temperature,
		diseaseNames: DefaultDiseaseNames,
	}
}

// decimal 最多保留 digits 位小数，并按语言添加千位分隔符
func (f *Formatter) decimal(v float64, digits int) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(digits)))
}

// Mass 格式化质量。MassAuto 时按数量级选择单位
func (f *Formatter) Mass(kg float64, unit MassUnit) string {
	switch unit {
	case MassKilogram:
		return f.decimal(kg, 1) + " kg"
	case MassGram:
		return f.decimal(kg*1000, 1) + " g"
	case MassTonne:
		return f.decimal(kg/1000, 1) + " t"
	}

	abs := math.Abs(kg)
	switch {
	case abs == 0:
		return f.decimal(0, 1) + " kg"
	case abs < 5e-6:
		return f.decimal(kg*1e9, 1) + " µg"
	case abs < 5e-3:
		return f.decimal(kg*1e6, 1) + " mg"
	case abs < 5:
		return f.decimal(kg*1e3, 1) + " g"
	case abs < 5000:
		return f.decimal(kg, 1) + " kg"
	default:
		return f.decimal(kg/1000, 1) + " t"
	}
}

func (f *Formatter) Units(n float64) string {
	plural := 2
	if n == 1 {
		plural = 1
	}
	return f.catalog.GetN("%s Unit", "%s Units", plural, f.decimal(n, 1))
}

// Calories 以千卡展示热量
func (f *Formatter) Calories(cal float64) string {
	return f.decimal(cal/1000, 1) + " kcal"
}

func (f *Formatter) Temperature(kelvin float64) string {
	switch f.temperature {
	case Kelvin:
		return f.decimal(kelvin, 1) + " K"
	case Fahrenheit:
		return f.decimal(kelvin*9/5-459.67, 1) + " °F"
	default:
		return f.decimal(kelvin-273.15, 1) + " °C"
	}
}

func (f *Formatter) DiseaseAmount(n int) string {
	return f.catalog.GetN("%s germ", "%s germs", n, f.printer.Sprint(number.Decimal(n)))
}

func (f *Formatter) DiseaseName(idx uint8) string {
	if name, ok := f.diseaseNames[idx]; ok {
		return f.catalog.Get(name)
	}
	return f.catalog.Get("Germ #%d", idx)
}

func (f *Formatter) ItemCount(n int) string {
	return f.catalog.GetN("%d item", "%d items", n, n)
}

func (f *Formatter) More(n int) string {
	return f.catalog.More(n)
}
