package moxml

// Factory constructs an empty node of one concrete variant. The
// deserializer populates the returned node from the element it was
// resolved for.
type Factory func() Node

// Resolver maps an XML element tag to a freshly constructed node of the
// registered type. It is consumed by FromXML when descending into child
// elements. Resolve must return an *UnknownTypeError for an unmapped tag.
type Resolver interface {
	Resolve(tag string) (Node, error)
}

// Registry is a closed table from element tag to node factory. It is the
// package's Resolver implementation; API layers register their resource
// types once and hand the registry to FromXML via WithResolver.
//
// A Registry is not safe for concurrent registration; populate it before
// sharing.
type Registry struct {
	factories map[string]Factory
}

var _ Resolver = (*Registry)(nil)

// NewRegistry returns a registry with the operation status leaf already
// registered under its element tag.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(OperationStatusTag, func() Node { return NewOperationStatus() })
	return r
}

// Register maps an element tag to a factory, replacing any previous
// mapping for the tag.
func (r *Registry) Register(tag string, f Factory) {
	r.factories[tag] = f
}

// Resolve constructs a node for the given element tag.
func (r *Registry) Resolve(tag string) (Node, error) {
	f, ok := r.factories[tag]
	if !ok {
		return nil, &UnknownTypeError{Tag: tag}
	}
	return f(), nil
}
