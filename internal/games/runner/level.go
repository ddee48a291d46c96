package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/mode-runner/internal/core"
)

// ModeTrigger switches the active mode when the player's world x reaches AtDistance.
type ModeTrigger struct {
	AtDistance float64
	Mode       ModeKind
}

// Level is immutable course data for one session.
type Level struct {
	ID        string
	Name      string
	Floor     Polyline      // Required
	Ceiling   Polyline      // Optional; nil means no ceiling
	Obstacles []core.Rect   // World-space hazard boxes
	Triggers  []ModeTrigger // Sorted by AtDistance
}

// FloorAt returns the floor height at world x.
func (l *Level) FloorAt(x float64) float64 {
	return l.Floor.Sample(x)
}

// CeilingAt returns the ceiling height at world x.
// Without a ceiling the result is -Inf, which nothing can cross.
func (l *Level) CeilingAt(x float64) float64 {
	if len(l.Ceiling) == 0 {
		return math.Inf(-1)
	}
	return l.Ceiling.Sample(x)
}

// Length returns the world x of the last floor point.
func (l *Level) Length() float64 {
	return l.Floor[len(l.Floor)-1].X
}

// ValidationError describes malformed level data.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks every precondition the simulation relies on.
// Levels that fail validation must not be played.
// Equal trigger distances are allowed; only a decrease is rejected.
func (l *Level) Validate() error {
	if len(l.Floor) == 0 {
		return ValidationError{Code: "EMPTY_FLOOR", Message: "floor polyline needs at least one point"}
	}
	if err := l.checkFinite(); err != nil {
		return err
	}
	if !l.Floor.sorted() {
		return ValidationError{Code: "UNSORTED_FLOOR", Message: "floor points must have strictly increasing x"}
	}
	if !l.Ceiling.sorted() {
		return ValidationError{Code: "UNSORTED_CEILING", Message: "ceiling points must have strictly increasing x"}
	}

	for i, o := range l.Obstacles {
		if o.W <= 0 || o.H <= 0 {
			return ValidationError{
				Code:    "BAD_OBSTACLE",
				Message: fmt.Sprintf("obstacle %d has non-positive size %vx%v", i, o.W, o.H),
			}
		}
	}

	for i, tr := range l.Triggers {
		if !tr.Mode.Valid() {
			return ValidationError{
				Code:    "UNKNOWN_MODE",
				Message: fmt.Sprintf("trigger %d names an unknown mode", i),
			}
		}
		if i > 0 && tr.AtDistance < l.Triggers[i-1].AtDistance {
			return ValidationError{
				Code:    "UNSORTED_TRIGGERS",
				Message: fmt.Sprintf("trigger %d at %v precedes trigger %d at %v", i, tr.AtDistance, i-1, l.Triggers[i-1].AtDistance),
			}
		}
	}

	return nil
}

// checkFinite rejects NaN and infinite coordinates, which would slip past
// every ordering comparison below.
func (l *Level) checkFinite() error {
	nonFinite := func(what string) error {
		return ValidationError{Code: "NON_FINITE", Message: what + " is NaN or infinite"}
	}

	for i, p := range l.Floor {
		if !finite(p.X, p.Y) {
			return nonFinite(fmt.Sprintf("floor point %d", i))
		}
	}
	for i, p := range l.Ceiling {
		if !finite(p.X, p.Y) {
			return nonFinite(fmt.Sprintf("ceiling point %d", i))
		}
	}
	for i, o := range l.Obstacles {
		if !finite(o.X, o.Y, o.W, o.H) {
			return nonFinite(fmt.Sprintf("obstacle %d", i))
		}
	}
	for i, tr := range l.Triggers {
		if !finite(tr.AtDistance) {
			return nonFinite(fmt.Sprintf("trigger %d distance", i))
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
