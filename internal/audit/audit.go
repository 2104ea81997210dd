package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/peoplekeeper/internal/logging"
)

// Event is one audit entry.
type Event struct {
	Time      time.Time
	SessionID string
	Actor     string
	Message   string
}

// ToLogLine formats the event as a single text line.
func (e Event) ToLogLine() string {
	return fmt.Sprintf("[%s] User: %s | Action: %s", e.Time.Format(time.DateTime), e.Actor, e.Message)
}

// Writer stores events. Errors are reported to Recorder, not to callers.
type Writer interface {
	Write(ctx context.Context, e Event) error
}

// Sink is what domain code talks to.
type Sink interface {
	Record(ctx context.Context, actor, message string)
}

// Recorder implements Sink on top of a Writer.
type Recorder struct {
	w         Writer
	log       logging.Logger
	sessionID string
	now       func() time.Time
}

func NewRecorder(w Writer, log logging.Logger, sessionID string) *Recorder {
	return &Recorder{w: w, log: log, sessionID: sessionID, now: time.Now}
}

// Record writes an event. A failing writer is logged as a warning and the
// event is dropped.
func (r *Recorder) Record(ctx context.Context, actor, message string) {
	e := Event{Time: r.now(), SessionID: r.sessionID, Actor: actor, Message: message}
	if err := r.w.Write(ctx, e); err != nil {
		r.log.Warn(ctx, "audit write failed", "actor", actor, "action", message, logging.Err(err))
	}
}

// Discard is a Sink that ignores every event.
type Discard struct{}

func (Discard) Record(context.Context, string, string) {}
