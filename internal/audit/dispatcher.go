package audit

import (
	"go.uber.org/zap"

	"github.com/ArthurMoreiraS/OperlyService/internal/logger"
)

type Event struct {
	BusinessID string
	UserID     *string
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
}

// Dispatcher writes audit entries off the request path. The queue is
// bounded; when full, events are dropped rather than blocking the API.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(l *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: l,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.BusinessID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.Get().Error("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// Dispatch enqueues an event. A nil dispatcher is a no-op so callers can
// run without the audit trail wired (tests, one-off tools).
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		logger.Get().Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
