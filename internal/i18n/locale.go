package i18n

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ResolveLocale 解析请求语言：优先 query，其次 Accept-Language，最后默认语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale()
	}
	if locale := strings.TrimSpace(c.Query("locale")); locale != "" {
		return Normalize(locale)
	}
	if header := strings.TrimSpace(c.GetHeader("Accept-Language")); header != "" {
		return Normalize(header)
	}
	return DefaultLocale()
}
