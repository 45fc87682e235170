package moxml

import "strconv"

// An UnknownTypeError reports a child element tag for which the Resolver
// has no registered type. Deserialization of that subtree is aborted and
// no child is appended for the offending element.
type UnknownTypeError struct {
	Tag string
}

func (e *UnknownTypeError) Error() string {
	return "moxml: no type registered for element tag " + strconv.Quote(e.Tag)
}

// A ChildNotFoundError reports a RemoveChild call for a node that is not
// present in the parent's child list.
type ChildNotFoundError struct {
	ClassID string
}

func (e *ChildNotFoundError) Error() string {
	return "moxml: child of class " + strconv.Quote(e.ClassID) + " not found"
}

// An InvalidAttributeNameError reports an attempt to set an attribute
// under a reserved name through the generic attribute path. Names must be
// non-empty and must not start with an underscore, which is reserved for
// non-serialized state.
type InvalidAttributeNameError struct {
	Name string
}

func (e *InvalidAttributeNameError) Error() string {
	return "moxml: invalid attribute name " + strconv.Quote(e.Name)
}

// validateAttrName enforces the reserved-name invariant shared by every
// attribute-bearing variant.
func validateAttrName(name string) error {
	if name == "" || name[0] == '_' {
		return &InvalidAttributeNameError{Name: name}
	}
	return nil
}
