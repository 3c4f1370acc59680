package kura

import "github.com/rotisserie/eris"

var (
	// ErrEntityNotFound is returned when an entity handle is beyond the
	// handles the World has issued.
	ErrEntityNotFound = eris.New("entity does not exist")

	// ErrWorldClosed is returned when closing a World that is already closed.
	ErrWorldClosed = eris.New("world is closed")
)
