// Package navigation implements the portal's selection state: which career's
// roadmap is open and which stage detail is shown.
package navigation

import (
	"github.com/alexanderramin/astroverse/internal/domain"
)

// Phase is the coarse state of the selection.
type Phase int

const (
	Idle Phase = iota
	CareerSelected
	StepSelected
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case CareerSelected:
		return "career_selected"
	case StepSelected:
		return "step_selected"
	default:
		return "unknown"
	}
}

// CareerFinder resolves career ids. *catalog.Catalog satisfies it.
type CareerFinder interface {
	FindCareer(id domain.CareerID) (domain.Career, bool)
}

// Selection is a read-only snapshot handed to views.
type Selection struct {
	Phase  Phase
	Career domain.Career
	Step   domain.Stage
}

// HasCareer reports whether a roadmap is open.
func (s Selection) HasCareer() bool { return s.Phase != Idle }

// HasStep reports whether a stage detail is open.
func (s Selection) HasStep() bool { return s.Phase == StepSelected }

// Navigator owns the selection state. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Navigator struct {
	finder   CareerFinder
	observer Observer

	career domain.Career
	step   domain.Stage
}

// New returns a Navigator in the Idle phase. A nil observer is replaced with
// NoopObserver.
func New(finder CareerFinder, observer Observer) *Navigator {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Navigator{finder: finder, observer: observer}
}

// Phase derives the current phase from the held selection.
func (n *Navigator) Phase() Phase {
	switch {
	case n.career.ID == "":
		return Idle
	case n.step == 0:
		return CareerSelected
	default:
		return StepSelected
	}
}

// Selection returns a snapshot of the current state.
func (n *Navigator) Selection() Selection {
	return Selection{Phase: n.Phase(), Career: n.career, Step: n.step}
}

// SelectCareer opens the roadmap for id and clears any step. Unknown ids
// leave the state untouched and return false.
func (n *Navigator) SelectCareer(id domain.CareerID) bool {
	from := n.Phase()
	career, ok := n.finder.FindCareer(id)
	if !ok {
		n.notify(EventSelectCareer, from, false, id, 0)
		return false
	}
	n.career = career
	n.step = 0
	n.notify(EventSelectCareer, from, true, id, 0)
	return true
}

// SelectStep opens the detail for a stage of the open roadmap. It is
// ignored when no roadmap is open or the ordinal is outside 1..6.
func (n *Navigator) SelectStep(s domain.Stage) bool {
	from := n.Phase()
	if from == Idle || !s.Valid() {
		n.notify(EventSelectStep, from, false, n.career.ID, s)
		return false
	}
	n.step = s
	n.notify(EventSelectStep, from, true, n.career.ID, s)
	return true
}

// CloseStepDetail returns from StepSelected to CareerSelected.
func (n *Navigator) CloseStepDetail() bool {
	from := n.Phase()
	if from != StepSelected {
		n.notify(EventCloseStepDetail, from, false, n.career.ID, 0)
		return false
	}
	step := n.step
	n.step = 0
	n.notify(EventCloseStepDetail, from, true, n.career.ID, step)
	return true
}

// CloseRoadmap returns to Idle from either non-idle phase, discarding the
// step as well.
func (n *Navigator) CloseRoadmap() bool {
	from := n.Phase()
	if from == Idle {
		n.notify(EventCloseRoadmap, from, false, "", 0)
		return false
	}
	id, step := n.career.ID, n.step
	n.career = domain.Career{}
	n.step = 0
	n.notify(EventCloseRoadmap, from, true, id, step)
	return true
}

func (n *Navigator) notify(ev Event, from Phase, applied bool, id domain.CareerID, step domain.Stage) {
	n.observer.ObserveTransition(Transition{
		Event:   ev,
		From:    from,
		To:      n.Phase(),
		Career:  id,
		Step:    step,
		Applied: applied,
	})
}
