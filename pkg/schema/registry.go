/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"sort"
	"sync"

	cerrors "github.com/stratacloud/netschema/pkg/errors"
)

// Registry manages registered node schemas with thread-safe operations.
// It is populated once at process start and read-only afterward.
type Registry struct {
	nodes map[string]*Node

	mu sync.RWMutex
}

// NewRegistry creates an empty Registry instance.
func NewRegistry() *Registry {
	return &Registry{
		nodes: make(map[string]*Node),
	}
}

// Register adds a node schema to this registry after checking its
// structural invariants. Registering a name twice fails with a CONFLICT
// structured error.
func (r *Registry) Register(n *Node) error {
	if n == nil {
		return cerrors.New(cerrors.ErrCodeInvalidRequest, "node schema cannot be nil")
	}
	if err := n.Check(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.nodes[n.Name]; ok {
		return cerrors.Newf(cerrors.ErrCodeConflict, "schema %q already registered", n.Name)
	}
	r.nodes[n.Name] = n
	return nil
}

// MustRegister registers a node schema and panics on failure. The static
// catalog uses it at process start, where a malformed schema is a
// programming error.
func (r *Registry) MustRegister(nodes ...*Node) {
	for _, n := range nodes {
		if err := r.Register(n); err != nil {
			panic(err)
		}
	}
}

// Resolve retrieves a node schema by name. An unregistered name fails with
// a NOT_FOUND structured error.
func (r *Registry) Resolve(name string) (*Node, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.nodes[name]
	if !ok {
		return nil, cerrors.Newf(cerrors.ErrCodeNotFound, "schema %q not found", name)
	}
	return n, nil
}

// List returns all registered schema names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.nodes))
	for name := range r.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered schemas.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// IsEmpty returns true if no schemas are registered.
func (r *Registry) IsEmpty() bool {
	return r.Count() == 0
}
