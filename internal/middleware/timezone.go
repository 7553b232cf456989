package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TimeZoneHeader is the out-of-band channel callers use to declare the
// timezone due statuses should be observed from.
const TimeZoneHeader = "TimeZone"

const timezoneKey = contextKey("timezone")

// TimezoneMiddleware resolves the caller's IANA timezone from the TimeZone
// header and stores the resolved *time.Location in the Gin context. An absent
// header means UTC. An unknown identifier is rejected with 400 unless
// fallbackUTC is set, which restores the legacy silent-UTC behaviour.
func TimezoneMiddleware(fallbackUTC bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.GetHeader(TimeZoneHeader)
		loc := time.UTC
		if name != "" {
			parsed, err := time.LoadLocation(name)
			if err != nil {
				if !fallbackUTC {
					GetLoggerFromCtx(c.Request.Context()).Warn("Rejected invalid timezone", slog.String("timezone", name))
					c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
						"loc":  []string{TimeZoneHeader},
						"msg":  "Invalid time zone",
						"kind": "validation_error",
					})
					return
				}
				GetLoggerFromCtx(c.Request.Context()).Warn("Falling back to UTC for invalid timezone", slog.String("timezone", name))
			} else {
				loc = parsed
			}
		}

		c.Set(string(timezoneKey), loc)
		c.Next()
	}
}

// GetTimezoneFromCtx retrieves the caller's resolved timezone from the Gin
// context. Handlers thread it explicitly into service calls; it is never read
// from ambient state below this point.
func GetTimezoneFromCtx(c *gin.Context) *time.Location {
	locVal, exists := c.Get(string(timezoneKey))
	if !exists {
		return time.UTC
	}
	loc, ok := locVal.(*time.Location)
	if !ok {
		return time.UTC
	}
	return loc
}
