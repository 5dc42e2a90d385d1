package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/firmbooks/firmbooks_backend/internal/middleware"
	"github.com/firmbooks/firmbooks_backend/internal/platform/changefeed"
	"github.com/gin-gonic/gin"
)

// eventsHandler streams row-change notifications to clients over SSE.
type eventsHandler struct {
	hub *changefeed.Hub
}

func newEventsHandler(hub *changefeed.Hub) *eventsHandler {
	return &eventsHandler{hub: hub}
}

// registerEventRoutes registers the change feed streaming route.
func registerEventRoutes(rg *gin.RouterGroup, hub *changefeed.Hub) {
	if hub == nil {
		return
	}
	h := newEventsHandler(hub)
	rg.GET("/events", h.streamEvents)
}

// streamEvents subscribes the client to the change feed, optionally filtered
// by ?entityKind= and ?entityID=, and streams events until the client
// disconnects.
func (h *eventsHandler) streamEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entityKind := c.Query("entityKind")
	entityID := c.Query("entityID")
	if entityKind == "" && entityID != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entityID filter requires entityKind"})
		return
	}

	subs := make([]*changefeed.Subscription, 0, 4)
	if entityKind != "" {
		subs = append(subs, h.hub.Subscribe(entityKind, entityID))
	} else {
		// No filter: follow every kind the feed publishes.
		for _, kind := range []string{"account", "transaction", "partner", "partner_transaction"} {
			subs = append(subs, h.hub.Subscribe(kind, ""))
		}
	}
	defer func() {
		for _, sub := range subs {
			sub.Close()
		}
	}()

	merged := make(chan changefeed.ChangeEvent)
	for _, sub := range subs {
		go func(sub *changefeed.Subscription) {
			for ev := range sub.C {
				select {
				case merged <- ev:
				case <-c.Request.Context().Done():
					return
				}
			}
		}(sub)
	}

	logger.Info("Change feed stream opened", slog.String("entity_kind", entityKind), slog.String("entity_id", entityID))

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-merged:
			payload, err := json.Marshal(ev)
			if err != nil {
				return true
			}
			c.SSEvent("change", string(payload))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
