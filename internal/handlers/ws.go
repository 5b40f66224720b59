package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/fitlog-dev/fitlog/internal/lifecycle"
	"github.com/fitlog-dev/fitlog/internal/types"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// EventsHandler streams lifecycle events to connected clients over a
// websocket. The feed is best-effort: a slow client misses events rather
// than backing up publishers.
type EventsHandler struct {
	events   *lifecycle.Publisher
	upgrader websocket.Upgrader
}

func NewEventsHandler(events *lifecycle.Publisher) *EventsHandler {
	return &EventsHandler{
		events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range types.AllowedOrigins {
					if origin == allowed {
						return true
					}
				}
				return false
			},
		},
	}
}

func (h *EventsHandler) Feed(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade websocket for %s: %v", user.Email, err)
		return
	}

	events, cancel := h.events.Subscribe()
	defer cancel()
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		log.Printf("Failed to set write deadline: %v", err)
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":    "connected",
		"message": "Lifecycle event feed established",
	})
	if err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	// Reader goroutine: we never expect client messages, but reading is
	// what surfaces close frames and pong responses.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
				return
			}
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("Websocket error for %s: %v", user.Email, err)
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, open := <-events:
			if !open {
				return
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("Failed to deliver event to %s: %v", user.Email, err)
				return
			}
		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
