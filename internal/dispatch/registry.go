// Package dispatch is the boundary the Dialogue Router calls through:
// operations registered by name, invoked with JSON arguments, always
// answering with a structured result.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// HandlerFunc runs one operation. The returned value marshals to the
// operation's result map; store failures ride inside it as data.
type HandlerFunc func(ctx context.Context, args json.RawMessage) (interface{}, error)

// Operation describes one dispatchable engine operation.
type Operation struct {
	Name        string
	Description string
	Category    string
	InputSchema map[string]interface{}
	Timeout     time.Duration
	Handle      HandlerFunc
}

// Registry maps operation names to handlers, preserving registration order
// for the exported tool list.
type Registry struct {
	ops   map[string]Operation
	order []string
}

func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

func (r *Registry) Register(op Operation) error {
	if op.Name == "" {
		return fmt.Errorf("operation name is required")
	}
	if op.Handle == nil {
		return fmt.Errorf("operation %s has no handler", op.Name)
	}
	if _, exists := r.ops[op.Name]; exists {
		return fmt.Errorf("operation %s already registered", op.Name)
	}
	r.ops[op.Name] = op
	r.order = append(r.order, op.Name)
	return nil
}

func (r *Registry) Get(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// List returns operations in registration order.
func (r *Registry) List() []Operation {
	out := make([]Operation, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.ops[name])
	}
	return out
}
