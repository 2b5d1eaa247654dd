// Package scripting embeds a JavaScript engine and exposes the transform
// session and document to user scripts. This is the surface the library is
// written for: convenience calls like transform(item("box"), "width", 50)
// running to completion between host events.
package scripting

import (
	"context"

	"github.com/pagescript/pagescript/host"
	"github.com/pagescript/pagescript/transform"
)

// Engine represents a scripting engine (e.g., JavaScript).
type Engine interface {
	// Execute executes a script and returns its final value.
	Execute(ctx context.Context, script string) (interface{}, error)

	// RegisterAPI installs the transform and document API into the
	// engine's global scope.
	RegisterAPI(session *transform.Session, doc *host.Document) error
}
