package model

import "sync"

// Warnings is the append-only diagnostics sink shared by every evaluator of a
// run. Append is safe for concurrent use.
type Warnings struct {
	mu    sync.Mutex
	items []string
}

// NewWarnings creates an empty sink.
func NewWarnings() *Warnings {
	return &Warnings{}
}

// Append records a diagnostic message.
func (w *Warnings) Append(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items = append(w.items, message)
}

// List returns a snapshot of the recorded messages in append order.
func (w *Warnings) List() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, len(w.items))
	copy(out, w.items)

	return out
}

// Len returns the number of recorded messages.
func (w *Warnings) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.items)
}
