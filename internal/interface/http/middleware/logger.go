package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger 请求日志中间件
// 设计说明：
// 1. 为每个请求生成唯一的请求ID并回写X-Request-ID头，便于排查
// 2. 记录方法、路径、状态码、耗时、客户端IP——不记录请求体和Token
// 3. 输出走zerolog结构化日志，级别按状态码分档
func Logger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("request")

		// 慢请求单独告警（全内存查表，正常耗时应在毫秒级）
		if latency > time.Second {
			log.Warn().
				Str("request_id", requestID).
				Str("path", c.Request.URL.Path).
				Dur("latency", latency).
				Msg("slow request")
		}
	}
}
