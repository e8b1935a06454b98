package onceguard

// Option configures a Guard created by New.
type Option func(*Guard)

// WithStore makes the guard keep its markers in store instead of the
// default in-memory map. Several guards may share one store; give them
// distinct namespaces if their effect ids can collide.
func WithStore(store Store) Option {
	return func(g *Guard) {
		g.store = store
	}
}

// WithNamespace sets the prefix for the guard's marker keys.
func WithNamespace(namespace string) Option {
	return func(g *Guard) {
		g.namespace = namespace
	}
}

// WithObserver attaches an Observer that receives run, repeat, skip, and
// dedup events for the lifetime of the guard.
func WithObserver(o Observer) Option {
	return func(g *Guard) {
		g.observer = o
	}
}
