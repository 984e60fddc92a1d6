package cleanup

import (
	"log"
	"time"

	"github.com/gravity-games/dropfour/internal/service/session"
)

type Worker struct {
	Sessions *session.Manager
	Interval time.Duration
	TTL      time.Duration
}

func NewWorker(sm *session.Manager, interval, ttl time.Duration) *Worker {
	return &Worker{Sessions: sm, Interval: interval, TTL: ttl}
}

// Start initiates the background ticker.
func (w *Worker) Start() {
	go w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	go func() {
		for range ticker.C {
			w.runCleanup()
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	removed := w.Sessions.CleanupExpired(w.TTL)
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d expired sessions (%d live)", removed, w.Sessions.Count())
	}
}
