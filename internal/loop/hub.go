package loop

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Hub tracks the sessions of one server so it can report how many are
// online and announce a shutdown to all of them.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]string // session id -> username
	shutdown chan struct{}
	once     sync.Once
	logger   *log.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		sessions: make(map[string]string),
		shutdown: make(chan struct{}),
		logger:   logger,
	}
}

// Join registers a session. The returned channel is closed when shutdown
// starts; leave must be called once the session ends.
func (h *Hub) Join(id, username string) (shutdown <-chan struct{}, leave func()) {
	h.mu.Lock()
	h.sessions[id] = username
	n := len(h.sessions)
	h.mu.Unlock()
	h.logger.Debug("session joined", "session", id, "user", username, "online", n)

	var once sync.Once
	return h.shutdown, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.sessions, id)
			n := len(h.sessions)
			h.mu.Unlock()
			h.logger.Debug("session left", "session", id, "online", n)
		})
	}
}

// Active returns the number of joined sessions.
func (h *Hub) Active() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Shutdown notifies every session and waits for them to leave, up to the
// given timeout. Reports whether all sessions left in time.
func (h *Hub) Shutdown(timeout time.Duration) bool {
	h.once.Do(func() { close(h.shutdown) })

	deadline := time.After(timeout)
	ticker := time.NewTicker(ShutdownPoll)
	defer ticker.Stop()

	for {
		if h.Active() == 0 {
			return true
		}
		select {
		case <-deadline:
			h.logger.Warn("sessions still connected at shutdown", "online", h.Active())
			return false
		case <-ticker.C:
		}
	}
}
