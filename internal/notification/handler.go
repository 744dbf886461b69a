package notification

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	Redis *redis.Client
}

func NewHandler(client *redis.Client) *Handler {
	return &Handler{Redis: client}
}

// ===========================
// 📡 Registration changes - GET /api/notifications/registrations (SSE)
// @Summary Stream registration changes
// @Tags Notifications
// @Produce text/event-stream
// @Success 200 {object} Change
// @Failure 503 {object} map[string]string
// @Router /api/notifications/registrations [get]
func (h *Handler) StreamRegistrations(c *gin.Context) {
	if h.Redis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live notifications are not configured"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}

	ctx := c.Request.Context()
	sub := h.Redis.Subscribe(ctx, Channel)
	defer sub.Close()

	_, _ = c.Writer.Write([]byte(":ok\n\n"))
	flusher.Flush()

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			writeEvent(c.Writer, "registration", msg.Payload)
			flusher.Flush()
		case <-ctx.Done():
			return
		}
	}
}

func writeEvent(w io.Writer, name, data string) {
	_, _ = io.WriteString(w, "event: "+name+"\n")
	_, _ = io.WriteString(w, "data: "+data+"\n\n")
}
