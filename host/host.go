// Package host models the document side the transform layer operates on:
// pages holding placeable items with a measurable bounding box, plus the
// document-wide scaling preferences the transform facade toggles around
// each call. It is deliberately small; document lifecycle, file browsing
// and image placement live outside this library.
package host

import (
	"fmt"

	"github.com/pagescript/pagescript/coords"
)

// Item is the capability a page item must expose to be transformable: a
// bounding box in pasteboard coordinates and the absolute rotation, shear
// and scale state the host tracks for it. ApplyMatrix receives the matrix
// already rewritten into origin-relative (anchored) pasteboard form.
//
// Angles are reported in the host-native convention, degrees with
// counterclockwise positive. The transform layer inverts the sign at its
// boundary.
type Item interface {
	Bounds() coords.Rect
	RotationAngle() float64
	ShearAngle() float64
	ScalePercent() (h, v float64)
	ApplyMatrix(m coords.Matrix)
}

// ScalingOptions are the document-wide toggles controlling whether stroke
// weights and effects are adjusted when an item is scaled. The transform
// facade disables all of them for the duration of a call and restores the
// previous state afterwards.
type ScalingOptions struct {
	AdjustStrokeWeight bool
	AdjustEffects      bool
}

// Page is a single page with its top-left origin in pasteboard
// coordinates.
type Page struct {
	Name   string
	Origin coords.Point
	Items  []*Frame
}

// AddFrame places a new frame with the given bounds on the page.
func (p *Page) AddFrame(name string, bounds coords.Rect) *Frame {
	f := NewFrame(name, bounds)
	p.Items = append(p.Items, f)
	return f
}

// Document is an in-memory document: an ordered list of pages and the
// scaling preferences shared by everything in it.
type Document struct {
	Pages   []*Page
	scaling ScalingOptions
}

// NewDocument returns an empty document with the adjustment preferences a
// fresh host starts with.
func NewDocument() *Document {
	return &Document{
		scaling: ScalingOptions{AdjustStrokeWeight: true, AdjustEffects: true},
	}
}

// AddPage appends a page with the given pasteboard origin.
func (d *Document) AddPage(name string, origin coords.Point) *Page {
	p := &Page{Name: name, Origin: origin}
	d.Pages = append(d.Pages, p)
	return p
}

// Page returns the page at index i.
func (d *Document) Page(i int) (*Page, error) {
	if i < 0 || i >= len(d.Pages) {
		return nil, fmt.Errorf("host: page index %d out of range", i)
	}
	return d.Pages[i], nil
}

// Item finds a frame by name across all pages, or nil.
func (d *Document) Item(name string) *Frame {
	for _, p := range d.Pages {
		for _, f := range p.Items {
			if f.Name == name {
				return f
			}
		}
	}
	return nil
}

// Scaling returns the current scaling preferences.
func (d *Document) Scaling() ScalingOptions { return d.scaling }

// SetScaling replaces the scaling preferences.
func (d *Document) SetScaling(o ScalingOptions) { d.scaling = o }
