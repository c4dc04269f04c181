package agent

import (
	"sync"
)

// StepID is the fixed identifier the gateway resolves the chat step under.
const StepID = "recipe-chat"

// Registry maps step identifiers to steps. The service registers exactly
// one; resolving an unbound id is the gateway's "not registered" failure.
type Registry struct {
	mu    sync.RWMutex
	steps map[string]*Step
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{steps: map[string]*Step{}}
}

// Register binds a step under id, replacing any previous binding.
func (r *Registry) Register(id string, s *Step) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps[id] = s
}

// Resolve looks up the step bound under id.
func (r *Registry) Resolve(id string) (*Step, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.steps[id]
	return s, ok
}
