// Package transform is the scripting-facing geometry layer: a session
// holding the current matrix, its save/restore stack, the active reference
// point and unit system, and the transform facade that reads and writes
// named geometric properties of page items through them.
package transform

import (
	"github.com/pagescript/pagescript/coords"
	"github.com/pagescript/pagescript/host"
	"github.com/pagescript/pagescript/observability"
	"github.com/pagescript/pagescript/units"
)

// Session owns all transform state for one document run. The host executes
// scripts to completion one at a time, so a Session is single-threaded by
// contract and does no locking.
type Session struct {
	cur    coords.Matrix
	stack  []coords.Matrix
	ref    RefPoint
	unit   units.Unit
	origin coords.Point
	doc    *host.Document
	log    observability.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithUnit sets the initial unit system.
func WithUnit(u units.Unit) Option {
	return func(s *Session) { s.unit = u }
}

// WithReferencePoint sets the initial anchor.
func WithReferencePoint(r RefPoint) Option {
	return func(s *Session) { s.ref = r }
}

// WithOrigin sets the initial page-origin offset in points.
func WithOrigin(p coords.Point) Option {
	return func(s *Session) { s.origin = p }
}

// WithLogger sets the logger used by PrintMatrix and debug output.
func WithLogger(l observability.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession creates a session bound to doc. doc may be nil for pure
// matrix work; Transform then skips the scaling-preference override.
func NewSession(doc *host.Document, opts ...Option) *Session {
	s := &Session{
		doc:  doc,
		ref:  TopLeft,
		unit: units.Point,
		log:  observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ResetMatrix()
	return s
}

// Matrix returns the current matrix.
func (s *Session) Matrix() coords.Matrix { return s.cur }

// SetMatrix replaces the current matrix.
func (s *Session) SetMatrix(m coords.Matrix) { s.cur = m }

// ApplyMatrix composes m onto the current matrix.
func (s *Session) ApplyMatrix(m coords.Matrix) { s.cur = s.cur.Compose(m) }

// PushMatrix saves a snapshot of the current matrix.
func (s *Session) PushMatrix() {
	s.stack = append(s.stack, s.cur)
}

// PopMatrix restores the most recently pushed snapshot. With nothing to
// restore it returns ErrEmptyStack and leaves the current matrix alone.
func (s *Session) PopMatrix() error {
	if len(s.stack) == 0 {
		return ErrEmptyStack
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// ResetMatrix clears the stack and resets the current matrix to identity
// plus the standing page-origin translation, so the coordinate system
// matches the active canvas again.
func (s *Session) ResetMatrix() {
	s.stack = s.stack[:0]
	s.cur = coords.Translate(s.origin.X, s.origin.Y)
}

// PrintMatrix logs the current matrix.
func (s *Session) PrintMatrix() {
	s.log.Info("current matrix", observability.String("matrix", s.cur.String()))
}

// Rotate composes a clockwise rotation by angle radians onto the current
// matrix. Repeated calls accumulate. Note the unit asymmetry with the
// rotate transform property, which speaks degrees; both are kept for
// compatibility with the scripting surface.
func (s *Session) Rotate(angle float64) {
	s.cur = s.cur.Compose(coords.Rotate(angle))
}

// Scale composes a scale onto the current matrix.
func (s *Session) Scale(sx, sy float64) {
	s.cur = s.cur.Compose(coords.Scale(sx, sy))
}

// Translate composes a translation onto the current matrix.
func (s *Session) Translate(tx, ty float64) {
	s.cur = s.cur.Compose(coords.Translate(tx, ty))
}

// Unit returns the active unit system.
func (s *Session) Unit() units.Unit { return s.unit }

// SetUnit switches the unit of interpretation for subsequent calls. Stored
// geometry is not rescaled, but the matrix register and stack are reset
// because the coordinate system they were built in is gone.
func (s *Session) SetUnit(u units.Unit) {
	s.unit = u
	s.ResetMatrix()
}

// Origin returns the active page-origin offset in points.
func (s *Session) Origin() coords.Point { return s.origin }

// SetOrigin switches the page-origin offset and resets the matrix state to
// match the new canvas.
func (s *Session) SetOrigin(p coords.Point) {
	s.origin = p
	s.ResetMatrix()
}

// ReferencePoint returns the active anchor.
func (s *Session) ReferencePoint() RefPoint { return s.ref }

// SetReferencePoint changes the active anchor; it persists until changed
// again.
func (s *Session) SetReferencePoint(r RefPoint) { s.ref = r }
