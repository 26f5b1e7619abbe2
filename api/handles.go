// Package api implements the procedural surface of spec §6: an opaque
// handle table over editor.Editor instances plus a JSON-RPC server
// that dispatches the command table to them.
//
// Handles is grounded on original_source/c_api.h / c_api.cpp's
// opaque-pointer command table (platon_editor_new/free/...), with
// github.com/google/uuid standing in for the raw PlatonEditor* the C
// API hands back to its caller.
package api

import (
	"fmt"
	"sync"

	"github.com/eyelash/platon-core/editor"
	"github.com/google/uuid"
)

// Handle identifies one live editor instance to a host.
type Handle = uuid.UUID

// Handles owns every editor instance created through the procedural
// surface, guarding the map the way the teacher's web.Server guards
// its client list.
type Handles struct {
	mu      sync.Mutex
	editors map[Handle]*editor.Editor
}

// NewHandles returns an empty handle table.
func NewHandles() *Handles {
	return &Handles{editors: make(map[Handle]*editor.Editor)}
}

// New creates an empty editor and returns its handle (spec §6 "new()").
func (h *Handles) New() Handle {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := uuid.New()
	h.editors[id] = editor.New()
	return id
}

// NewFromFile loads path into a new editor and returns its handle
// (spec §6 "new_from_file(path)").
func (h *Handles) NewFromFile(path string) (Handle, error) {
	e, err := editor.Open(path)
	if err != nil {
		return Handle{}, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	id := uuid.New()
	h.editors[id] = e
	return id, nil
}

// Free destroys the editor behind id, releasing its resources (spec §6
// "free(e)"). Freeing an unknown handle is a no-op.
func (h *Handles) Free(id Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.editors, id)
}

// Get resolves id to its editor.
func (h *Handles) Get(id Handle) (*editor.Editor, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.editors[id]
	if !ok {
		return nil, fmt.Errorf("api: unknown handle %s", id)
	}
	return e, nil
}
