package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/luocityspa/staff-portal/internal/domain/employee"
	"github.com/luocityspa/staff-portal/internal/pkg/jwt"
	"github.com/luocityspa/staff-portal/internal/pkg/sse"
)

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type EventsHandlerImpl struct {
	jwtService jwt.Service
	hub        *sse.Hub
}

func NewEventsHandler(jwtService jwt.Service, hub *sse.Hub) EventsHandler {
	return &EventsHandlerImpl{
		jwtService: jwtService,
		hub:        hub,
	}
}

// Stream handles the SSE connection for live updates. The roster topic
// is reserved for HR; the requests topic is open to any authenticated
// employee so dashboards refresh on submissions and decisions.
func (h *EventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Token comes from the query string; EventSource cannot set headers.
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	_, role, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	topic := r.URL.Query().Get("topic")
	switch topic {
	case sse.TopicRequests:
	case sse.TopicEmployees:
		if role != employee.RoleHR {
			http.Error(w, "HR access required", http.StatusForbidden)
			return
		}
	default:
		http.Error(w, "Unknown topic", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cancel := h.hub.Subscribe(topic)
	defer cancel()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"topic\":%q}\n\n", topic)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
