package diagram

import (
	"crypto/rand"
	"errors"

	"github.com/oklog/ulid/v2"

	"github.com/katalvlaran/orthoroute/core"
)

// Sentinel errors for the diagram package.
var (
	// ErrShapeNotFound indicates a reference to an unknown shape.
	ErrShapeNotFound = errors.New("diagram: shape not found")

	// ErrConnectorNotFound indicates a reference to an unknown connector.
	ErrConnectorNotFound = errors.New("diagram: connector not found")

	// ErrDuplicateID indicates a shape or connector id that is already taken.
	ErrDuplicateID = errors.New("diagram: duplicate id")

	// ErrBadScene indicates a scene document that cannot be loaded.
	ErrBadScene = errors.New("diagram: invalid scene")
)

// Connector links two shape anchors.
type Connector struct {
	ID   core.ConnectorID
	From core.AnchorRef
	To   core.AnchorRef
}

// NewConnectorID returns a fresh, lexically sortable connector id.
func NewConnectorID() core.ConnectorID {
	return core.ConnectorID(ulid.MustNew(ulid.Now(), rand.Reader).String())
}
