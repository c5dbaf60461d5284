package charorder

import "slices"

// DefaultStrategy is the strategy a new Manager starts with: a direct cut
// from source to target.
func DefaultStrategy() Strategy {
	return Simple{Resolver: Direct}
}

// Manager owns the registered pools and the active strategy, and resolves
// columns on behalf of the rendering layer.
//
// Pools are append-only. Registration must complete before resolution
// starts; after that a Manager may be read from many goroutines.
type Manager struct {
	pools    Pools
	strategy Strategy
}

// Option configures a Manager.
type Option func(*Manager)

// WithStrategy sets the active strategy.
func WithStrategy(s Strategy) Option { return func(m *Manager) { m.SetStrategy(s) } }

// WithPool registers a pool built from chars.
func WithPool(chars []rune) Option { return func(m *Manager) { m.RegisterPool(chars) } }

// NewManager creates a manager with the default strategy and no pools.
func NewManager(opts ...Option) *Manager {
	m := &Manager{strategy: DefaultStrategy()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RegisterPool appends a pool built from chars. See NewPool.
func (m *Manager) RegisterPool(chars []rune) {
	m.pools = append(m.pools, NewPool(chars))
}

// RegisterPoolString is RegisterPool for a string of characters.
func (m *Manager) RegisterPoolString(chars string) {
	m.RegisterPool([]rune(chars))
}

// SetStrategy replaces the active strategy. Nil restores DefaultStrategy.
func (m *Manager) SetStrategy(s Strategy) {
	if s == nil {
		s = DefaultStrategy()
	}
	m.strategy = s
}

// Strategy returns the active strategy.
func (m *Manager) Strategy() Strategy {
	return m.strategy
}

// Pools returns a copy of the registered pools in registration order.
func (m *Manager) Pools() Pools {
	return slices.Clone(m.pools)
}

// ResolveColumn returns the transition of one column of a text change.
func (m *Manager) ResolveColumn(source, target []rune, column int) (Transition, error) {
	return m.strategy.FindCharOrder(source, target, column, m.pools)
}

// ResolveAll resolves every column of a text change in one pass, calling
// the strategy's ComputeHooks around it when implemented.
func (m *Manager) ResolveAll(source, target []rune) ([]Transition, error) {
	if h, ok := m.strategy.(ComputeHooks); ok {
		h.BeforeCompute(source, target, m.pools)
		defer h.AfterCompute(source, target, m.pools)
	}
	n := max(len(source), len(target))
	out := make([]Transition, n)
	for i := range n {
		t, err := m.strategy.FindCharOrder(source, target, i, m.pools)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}
