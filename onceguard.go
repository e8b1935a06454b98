package onceguard

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

type contextKey struct{}

// Guard tracks the last handled version per effect id and fires callbacks
// at most once per distinct version.
// Create one with New and share it between all callers of the same effects.
type Guard struct {
	store     Store
	namespace string
	observer  Observer

	// mu serializes the marker read-then-write in Register. It is never
	// held while a callback runs, so callbacks may re-register.
	mu sync.Mutex

	group  singleflight.Group
	memoMu sync.RWMutex
	memos  map[string]memo
}

type memo struct {
	version int64
	value   any
}

// New creates a Guard. With no options it uses an in-memory marker store
// and the default key namespace.
func New(opts ...Option) *Guard {
	g := &Guard{
		store:     NewMemoryStore(),
		namespace: DefaultNamespace,
		memos:     make(map[string]memo),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithGuard returns a child context that carries g.
func WithGuard(ctx context.Context, g *Guard) context.Context {
	return context.WithValue(ctx, contextKey{}, g)
}

// FromContext retrieves the Guard from ctx, or nil if none is present.
func FromContext(ctx context.Context) *Guard {
	g, _ := ctx.Value(contextKey{}).(*Guard)
	return g
}

// Register fires fn if version is one the guard has not yet handled for id,
// and reports whether fn was invoked.
//
// A false condition, a zero version, or a nil fn makes Register a no-op.
// When the stored marker for id already equals version, fn is not invoked.
// Otherwise the marker is updated to version before fn runs, so a callback
// that synchronously re-registers the same id and version sees it as
// handled and does not recurse.
//
// Only the version is compared: passing a different fn for an
// already-handled (id, version) pair does not invoke it.
//
// Register is safe for concurrent use. When several goroutines race on the
// same new (id, version), exactly one of them invokes fn. A panic in fn
// propagates to the caller; the marker write has already happened, so a
// later registration of the same version does not re-run it.
func (g *Guard) Register(id string, condition bool, version int64, fn func()) bool {
	if !condition || version == 0 || fn == nil {
		g.emit(EventSkip, id, version)
		return false
	}

	key := g.key(id)

	g.mu.Lock()
	if last, ok := g.store.Get(key); ok && last == version {
		g.mu.Unlock()
		g.emit(EventRepeat, id, version)
		return false
	}
	g.store.Set(key, version)
	g.mu.Unlock()

	g.emit(EventRun, id, version)
	fn()
	return true
}

// Register resolves a Guard from ctx and registers the effect on it.
// If ctx carries no Guard, nothing happens and Register reports false.
func Register(ctx context.Context, id string, condition bool, version int64, fn func()) bool {
	g := FromContext(ctx)
	if g == nil {
		return false
	}
	return g.Register(id, condition, version, fn)
}
