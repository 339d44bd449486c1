// Package notification renders transient status notices (success, error,
// warning, info) for the portal UI. Notices are kept in a bounded
// in-memory ring and pushed to connected clients through a broadcaster.
package notification

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Topic is the broadcast topic notices are published on.
const Topic = "notifications"

// maxRecent bounds the in-memory notice ring.
const maxRecent = 100

// Level classifies a notice for presentation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notice is a single transient status message.
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier is the emission interface domain services depend on.
type Notifier interface {
	Success(message string)
	Error(message string)
	Warning(message string)
	Info(message string)
}

// Broadcaster pushes a payload to clients subscribed to a topic.
type Broadcaster interface {
	Publish(topic string, data interface{})
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements Notifier. A nil broadcaster is allowed; notices are
// then only retained for the listing endpoint.
type Service struct {
	mu          sync.Mutex
	recent      []*Notice
	broadcaster Broadcaster
}

// NewService constructs a Service publishing through b (which may be nil).
func NewService(b Broadcaster) *Service {
	return &Service{broadcaster: b}
}

func (s *Service) Success(message string) { s.emit(LevelSuccess, message) }
func (s *Service) Error(message string)   { s.emit(LevelError, message) }
func (s *Service) Warning(message string) { s.emit(LevelWarning, message) }
func (s *Service) Info(message string)    { s.emit(LevelInfo, message) }

func (s *Service) emit(level Level, message string) {
	n := &Notice{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.recent = append(s.recent, n)
	if len(s.recent) > maxRecent {
		s.recent = s.recent[len(s.recent)-maxRecent:]
	}
	s.mu.Unlock()

	if s.broadcaster != nil {
		s.broadcaster.Publish(Topic, n)
	}
}

// Recent returns retained notices, newest first.
func (s *Service) Recent() []*Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Notice, len(s.recent))
	for i, n := range s.recent {
		out[len(s.recent)-1-i] = n
	}
	return out
}

// ---------------------------------------------------------------------------
// HTTP Handler
// ---------------------------------------------------------------------------

// Handler exposes the recent-notice listing.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers notification routes on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.HandleList)
}

// HandleList returns retained notices, newest first.
func (h *Handler) HandleList(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Recent())
}
