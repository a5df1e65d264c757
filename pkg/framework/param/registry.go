package param

import (
	"sync"
	"sync/atomic"
)

// Listener is told about value changes made with SetValueNotifyingHost.
type Listener func(p *Parameter, normalized float64)

// Registry manages plugin parameters in declaration order
type Registry struct {
	params map[uint32]*Parameter
	order  []uint32 // Maintain order for indexed access
	mu     sync.RWMutex

	// copy-on-write so the audio thread never locks to notify
	listeners atomic.Pointer[[]Listener]
}

// NewRegistry creates a new parameter registry
func NewRegistry() *Registry {
	return &Registry{
		params: make(map[uint32]*Parameter),
		order:  make([]uint32, 0),
	}
}

// Add registers parameters. Duplicate IDs are skipped.
func (r *Registry) Add(params ...*Parameter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range params {
		if _, exists := r.params[p.ID]; exists {
			continue
		}
		p.notify = r.notify
		r.params[p.ID] = p
		r.order = append(r.order, p.ID)
	}

	return nil
}

// AddListener registers a change listener.
func (r *Registry) AddListener(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var next []Listener
	if cur := r.listeners.Load(); cur != nil {
		next = append(next, *cur...)
	}
	next = append(next, l)
	r.listeners.Store(&next)
}

func (r *Registry) notify(p *Parameter, normalized float64) {
	ls := r.listeners.Load()
	if ls == nil {
		return
	}
	for _, l := range *ls {
		l(p, normalized)
	}
}

// Get retrieves a parameter by ID
func (r *Registry) Get(id uint32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.params[id]
}

// GetBySymbol retrieves a parameter by its string id.
func (r *Registry) GetBySymbol(symbol string) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.params[id]; p.Symbol == symbol {
			return p
		}
	}
	return nil
}

// GetByIndex retrieves a parameter by index
func (r *Registry) GetByIndex(index int32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= int32(len(r.order)) {
		return nil
	}

	return r.params[r.order[index]]
}

// Bypass returns the parameter flagged IsBypass, if any.
func (r *Registry) Bypass() *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.params[id]; p.IsBypassParameter() {
			return p
		}
	}
	return nil
}

// Count returns the number of parameters
func (r *Registry) Count() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int32(len(r.order))
}

// All returns all parameters in order
func (r *Registry) All() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Parameter, len(r.order))
	for i, id := range r.order {
		result[i] = r.params[id]
	}

	return result
}
