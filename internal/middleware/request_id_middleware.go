package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок, в котором передается идентификатор запроса
const RequestIDHeader = "X-Request-ID"

// RequestID проставляет каждому запросу идентификатор для корреляции логов.
// Присланный клиентом идентификатор сохраняется, отсутствующий — генерируется.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
