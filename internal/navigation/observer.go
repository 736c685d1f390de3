package navigation

import (
	"io"
	"log/slog"

	"github.com/alexanderramin/astroverse/internal/domain"
)

// Event names a requested transition.
type Event string

const (
	EventSelectCareer    Event = "select_career"
	EventSelectStep      Event = "select_step"
	EventCloseStepDetail Event = "close_step_detail"
	EventCloseRoadmap    Event = "close_roadmap"
)

// Transition describes one request made of the Navigator. Applied is false
// when the request was ignored and From equals To.
type Transition struct {
	Event   Event
	From    Phase
	To      Phase
	Career  domain.CareerID
	Step    domain.Stage
	Applied bool
}

// Observer receives every transition request.
type Observer interface {
	ObserveTransition(t Transition)
}

// NoopObserver ignores all transitions.
type NoopObserver struct{}

func (NoopObserver) ObserveTransition(Transition) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes transitions to w as slog text lines. Applied
// transitions log at Info and ignored ones at Debug, so level decides
// whether the latter appear. A nil writer yields a NoopObserver.
func NewLogObserver(w io.Writer, level slog.Level, attrs ...any) Observer {
	if w == nil {
		return NoopObserver{}
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) ObserveTransition(t Transition) {
	attrs := []any{
		"event", string(t.Event),
		"from", t.From.String(),
		"to", t.To.String(),
		"applied", t.Applied,
	}
	if t.Career != "" {
		attrs = append(attrs, "career", string(t.Career))
	}
	if t.Step != 0 {
		attrs = append(attrs, "step", int(t.Step))
	}
	if !t.Applied {
		o.logger.Debug("nav_transition", attrs...)
		return
	}
	o.logger.Info("nav_transition", attrs...)
}
