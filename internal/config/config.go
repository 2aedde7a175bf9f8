package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	MinLineLimit = 1
	MaxLineLimit = 100
)

type Contents struct {
	SortMode         string `yaml:"SortMode" validate:"oneof=Default Amount Alphabetical"`
	MassUnits        string `yaml:"MassUnits" validate:"oneof=Auto Default Kilogram Gram Tonne"`
	StatusLineLimit  int    `yaml:"StatusLineLimit"`  // 悬浮卡片/状态栏中显示的最大条目数
	TooltipLineLimit int    `yaml:"TooltipLineLimit"` // 悬停内容列表时显示的最大条目数
	// LineFormat 每行的格式，{0} 名称, {1} 数量, {2} 温度
	LineFormat string `yaml:"LineFormat" validate:"required"`
}

type Display struct {
	Language        string `yaml:"Language" validate:"required"`
	LocalePath      string `yaml:"LocalePath"` // gettext 翻译文件目录，为空时使用内置英文
	TemperatureUnit string `yaml:"TemperatureUnit" validate:"oneof=Celsius Fahrenheit Kelvin"`
}

type Cache struct {
	TTL             int `yaml:"TTL" validate:"gte=0"`             // 缓存条目过期时间（秒）
	CleanupInterval int `yaml:"CleanupInterval" validate:"gte=0"` // 过期条目清理间隔（秒）
}

type Log struct {
	Level      string `yaml:"Level" validate:"oneof=debug info warn error"`
	File       string `yaml:"File"` // 为空时仅输出到控制台
	MaxSize    int    `yaml:"MaxSize" validate:"gte=0"`
	MaxBackups int    `yaml:"MaxBackups" validate:"gte=0"`
	MaxAge     int    `yaml:"MaxAge" validate:"gte=0"`
	Compress   bool   `yaml:"Compress"`
}

type Watch struct {
	Cron   string `yaml:"Cron" validate:"required"`                  // cron 表达式，如 "@every 5s"
	Mode   string `yaml:"Mode" validate:"oneof=status tooltip both"` // 输出状态文本、提示文本或两者
	Reload bool   `yaml:"Reload"`                                    // 场景文件变化时立即刷新
}

type Config struct {
	Contents Contents `yaml:"Contents"`
	Display  Display  `yaml:"Display"`
	Cache    Cache    `yaml:"Cache"`
	Log      Log      `yaml:"Log"`
	Watch    Watch    `yaml:"Watch"`
}

var validate = validator.New()

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Contents: Contents{
			SortMode:         "Default",
			MassUnits:        "Auto",
			StatusLineLimit:  5,
			TooltipLineLimit: 20,
			LineFormat:       "{1} of {0} at {2}",
		},
		Display: Display{
			Language:        "en",
			TemperatureUnit: "Celsius",
		},
		Cache: Cache{
			TTL:             60,
			CleanupInterval: 120,
		},
		Log: Log{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 10,
			MaxAge:     30,
			Compress:   true,
		},
		Watch: Watch{
			Cron:   "@every 5s",
			Mode:   "both",
			Reload: true,
		},
	}
}

// LoadFromFile 读取配置文件，未填写的字段使用默认值
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("配置校验失败: %w", err)
	}
	return nil
}

// Normalize 将超出范围的行数上限钳制到 [MinLineLimit, MaxLineLimit]，返回被调整的字段说明
func (c *Config) Normalize() []string {
	var adjusted []string
	clamp := func(name string, v *int) {
		old := *v
		switch {
		case *v < MinLineLimit:
			*v = MinLineLimit
		case *v > MaxLineLimit:
			*v = MaxLineLimit
		default:
			return
		}
		adjusted = append(adjusted, fmt.Sprintf("%s: %d -> %d", name, old, *v))
	}
	clamp("Contents.StatusLineLimit", &c.Contents.StatusLineLimit)
	clamp("Contents.TooltipLineLimit", &c.Contents.TooltipLineLimit)
	return adjusted
}
