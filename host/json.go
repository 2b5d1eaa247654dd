package host

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pagescript/pagescript/coords"
)

// Wire form for documents consumed by the script runner. Bounds are
// [top, left, bottom, right] in points; origins are [x, y].

type documentJSON struct {
	Pages []pageJSON `json:"pages"`
}

type pageJSON struct {
	Name   string     `json:"name"`
	Origin [2]float64 `json:"origin"`
	Items  []itemJSON `json:"items"`
}

type itemJSON struct {
	Name   string     `json:"name"`
	Bounds [4]float64 `json:"bounds"`
}

// DecodeDocument reads a document description from r.
func DecodeDocument(r io.Reader) (*Document, error) {
	var dj documentJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dj); err != nil {
		return nil, fmt.Errorf("host: decoding document: %w", err)
	}
	doc := NewDocument()
	for _, pj := range dj.Pages {
		page := doc.AddPage(pj.Name, coords.Point{X: pj.Origin[0], Y: pj.Origin[1]})
		for _, ij := range pj.Items {
			b := coords.Rect{Top: ij.Bounds[0], Left: ij.Bounds[1], Bottom: ij.Bounds[2], Right: ij.Bounds[3]}
			if b.Width() < 0 || b.Height() < 0 {
				return nil, fmt.Errorf("host: item %q has inverted bounds", ij.Name)
			}
			page.AddFrame(ij.Name, b)
		}
	}
	return doc, nil
}

// EncodeDocument writes the document's current geometry to w in the same
// form DecodeDocument reads.
func EncodeDocument(w io.Writer, doc *Document) error {
	dj := documentJSON{}
	for _, p := range doc.Pages {
		pj := pageJSON{Name: p.Name, Origin: [2]float64{p.Origin.X, p.Origin.Y}}
		for _, f := range p.Items {
			b := f.Bounds()
			pj.Items = append(pj.Items, itemJSON{
				Name:   f.Name,
				Bounds: [4]float64{b.Top, b.Left, b.Bottom, b.Right},
			})
		}
		dj.Pages = append(dj.Pages, pj)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dj)
}
