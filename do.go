package onceguard

import "strconv"

// Do returns the value for (id, version), calling fn at most once per
// version. Repeat calls for an already-computed version return the
// memoized value; a new version recomputes and replaces it. Concurrent
// callers for the same id and version block and share a single in-flight
// call. Errors are not memoized, so a failed computation can be retried.
//
// A zero version bypasses memoization and calls fn directly.
//
// The same id must always be used with the same type T.
func Do[T any](g *Guard, id string, version int64, fn func() (T, error)) (T, error) {
	if version == 0 {
		return fn()
	}

	key := g.key(id)

	// Fast path: already memoized for this version.
	g.memoMu.RLock()
	if m, ok := g.memos[key]; ok && m.version == version {
		g.memoMu.RUnlock()
		g.emit(EventRepeat, id, version)
		return m.value.(T), nil
	}
	g.memoMu.RUnlock()

	// Slow path: singleflight dedup, keyed by version so callers racing
	// across a version change never share a stale computation.
	sfKey := key + delimiter + strconv.FormatInt(version, 10)
	val, err, shared := g.group.Do(sfKey, func() (any, error) {
		// Double-check: another goroutine may have memoized while we waited.
		g.memoMu.RLock()
		if m, ok := g.memos[key]; ok && m.version == version {
			g.memoMu.RUnlock()
			return m.value, nil
		}
		g.memoMu.RUnlock()

		result, err := fn()
		if err != nil {
			return result, err
		}

		g.memoMu.Lock()
		g.memos[key] = memo{version: version, value: result}
		g.memoMu.Unlock()

		return result, nil
	})

	if err != nil {
		var zero T
		return zero, err
	}
	if shared {
		g.emit(EventDedup, id, version)
	} else {
		g.emit(EventRun, id, version)
	}
	return val.(T), nil
}
