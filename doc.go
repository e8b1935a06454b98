// Package onceguard invokes side effects at most once per version of some
// observed state.
//
// A guard remembers, per effect id, the last version it has handled. Calling
// [Guard.Register] repeatedly is cheap and safe: the callback only fires when
// the version moves to a value the guard has not seen for that id. This turns
// "run on every change notification" hosts (pollers, watch loops, reactive
// update cycles) into "run once per distinct update" effects:
//
//	guard := onceguard.New()
//
//	// Called on every poll; logs once per doc.UpdatedAt change.
//	guard.Register(doc.ID, doc.Loaded, doc.UpdatedAt, func() {
//	    audit.Log("document refreshed", doc.ID)
//	})
//
// Registrations with a false condition, a zero version, or a nil callback do
// nothing. The last handled version lives in a [Store]; the default is an
// in-memory map, and any key-value backend satisfying Get/Set can be plugged
// in with [WithStore].
//
// [Do] is the value-producing twin of Register: it computes a value at most
// once per (id, version), shares in-flight computations between concurrent
// callers, and memoizes the result until the version changes. Errors are not
// memoized, so a failed computation can be retried.
//
// Ids are process-global within a guard and namespace: two callers using the
// same id suppress each other's effects.
package onceguard
