package i18n

import (
	"strings"
	"sync"
)

// 支持的语言
const (
	LocaleVI = "vi-VN"
	LocaleEN = "en-US"
	LocaleZH = "zh-CN"
)

var (
	mu            sync.RWMutex
	defaultLocale = LocaleVI
)

// SetDefaultLocale 设置默认语言
func SetDefaultLocale(locale string) {
	normalized := Normalize(locale)
	mu.Lock()
	defaultLocale = normalized
	mu.Unlock()
}

// DefaultLocale 返回默认语言
func DefaultLocale() string {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLocale
}

// Normalize 归一化语言标识（容忍 Accept-Language 前缀形式）
func Normalize(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	if idx := strings.IndexAny(l, ",;"); idx >= 0 {
		l = l[:idx]
	}
	switch {
	case strings.HasPrefix(l, "vi"):
		return LocaleVI
	case strings.HasPrefix(l, "en"):
		return LocaleEN
	case strings.HasPrefix(l, "zh"):
		return LocaleZH
	}
	mu.RLock()
	defer mu.RUnlock()
	return defaultLocale
}

// T 按语言返回消息文案，未命中时回退默认语言再回退 key 本身
func T(locale, key string) string {
	normalized := Normalize(locale)
	if msg, ok := messages[normalized][key]; ok {
		return msg
	}
	if msg, ok := messages[DefaultLocale()][key]; ok {
		return msg
	}
	return key
}
