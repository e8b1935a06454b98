package onceguard

// DefaultNamespace prefixes marker keys so guard entries do not collide
// with other users of a shared store. Override per guard with
// WithNamespace.
const DefaultNamespace = "__once-guard__"

const delimiter = "::"

// key builds the composite marker key for an effect id.
func (g *Guard) key(id string) string {
	return g.namespace + delimiter + id
}
