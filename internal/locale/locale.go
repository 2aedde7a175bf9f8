// Package locale 提供界面文本的本地化查询，基于 gettext 翻译文件。
package locale

import (
	"strings"

	"github.com/leonelquinteros/gotext"
)

const Domain = "default"

// 界面文本的 msgid，同时作为未翻译时的英文原文
const (
	ContentsName    = "Contents"
	ContentsTooltip = "Shows the items in internal storage."
	FiltersName     = "Filters"
	FiltersTooltip  = "Shows the filters configured on this building."
	Empty           = "None"

	moreFormat = "+%d more..."
)

type Catalog struct {
	locale *gotext.Locale
}

// New 创建文本目录。path 为空或找不到翻译文件时直接返回 msgid 原文
func New(path, lang string) *Catalog {
	l := gotext.NewLocale(path, lang)
	if path != "" {
		l.AddDomain(Domain)
	}
	return &Catalog{locale: l}
}

func (c *Catalog) Get(str string, vars ...any) string {
	return c.locale.Get(str, vars...)
}

func (c *Catalog) GetN(str, plural string, n int, vars ...any) string {
	return c.locale.GetN(str, plural, n, vars...)
}

// More 列表被截断时的末行，如 "+7 more..."
func (c *Catalog) More(n int) string {
	return c.Get(moreFormat, n)
}

// StripLinks 去除名称中的 <link="...">...</link> 标记，仅保留可见文本
func StripLinks(s string) string {
	for {
		start := strings.Index(s, "<link")
		if start < 0 {
			break
		}
		end := strings.Index(s[start:], ">")
		if end < 0 {
			break
		}
		s = s[:start] + s[start+end+1:]
	}
	return strings.ReplaceAll(s, "</link>", "")
}
