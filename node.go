package moxml

import (
	"github.com/nbrandt/go-moxml/xmltree"
)

// Node is the capability set shared by every managed-object variant.
type Node interface {
	// ClassID returns the object's class identifier, fixed at construction.
	ClassID() string
	// ElementTag returns the XML element name used when serializing.
	ElementTag() string
	// Handle returns the session handle bound during deserialization, or
	// nil. The handle is opaque to this package.
	Handle() any

	// Children returns the child nodes in insertion order.
	Children() []Node
	// AddChild appends a child node.
	AddChild(child Node)
	// RemoveChild removes the first occurrence of child, matched by
	// identity. It returns a *ChildNotFoundError if child is not present.
	RemoveChild(child Node) error
	// ChildCount returns the number of direct children.
	ChildCount() int

	// IsDirty reports whether the node or any descendant has local
	// attribute changes that have not been synchronized.
	IsDirty() bool
	// MarkClean clears the dirty flag on the node and every descendant.
	MarkClean()

	// Clone returns a structurally independent deep copy. Attribute state
	// is copied by value and children are cloned recursively; the session
	// handle is carried over as the same reference.
	Clone() Node

	// ToXML serializes the node under parent, or as a standalone root
	// element when parent is nil. Serialization never changes dirty state.
	ToXML(parent *xmltree.Element, opts ...EncodeOption) *xmltree.Element
	// FromXML ingests el into the node: it binds the session handle,
	// stores every XML attribute as a string value, and constructs child
	// nodes through the configured Resolver. Children are appended, not
	// replaced, so calling FromXML twice accumulates them.
	FromXML(el *xmltree.Element, opts ...DecodeOption) error
}

// Base carries the structural state every variant shares: class identity,
// the element tag, the child list and the session handle. Structural
// state is typed and never part of the generic attribute mapping. Base is
// only used embedded; it does not satisfy Node on its own.
type Base struct {
	classID    string
	elementTag string
	children   []Node
	handle     any
}

// ClassID returns the class identifier fixed at construction.
func (b *Base) ClassID() string { return b.classID }

// ElementTag returns the XML element name used when serializing.
func (b *Base) ElementTag() string { return b.elementTag }

// Handle returns the bound session handle, or nil.
func (b *Base) Handle() any { return b.handle }

// Children returns a copy of the child list in insertion order. The
// returned slice is the caller's; mutating it does not alter the tree.
func (b *Base) Children() []Node {
	out := make([]Node, len(b.children))
	copy(out, b.children)
	return out
}

// AddChild appends child. No uniqueness check is performed.
func (b *Base) AddChild(child Node) {
	b.children = append(b.children, child)
}

// RemoveChild removes the first occurrence of child, matched by identity.
func (b *Base) RemoveChild(child Node) error {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return nil
		}
	}
	return &ChildNotFoundError{ClassID: child.ClassID()}
}

// ChildCount returns the number of direct children.
func (b *Base) ChildCount() int { return len(b.children) }

// IsDirty reports whether any child subtree is dirty. Variants that carry
// mutable attributes combine this with their own local flag.
func (b *Base) IsDirty() bool { return b.childIsDirty() }

// MarkClean clears the dirty flag on every child subtree.
func (b *Base) MarkClean() { b.childMarkClean() }

func (b *Base) childIsDirty() bool {
	for _, c := range b.children {
		if c.IsDirty() {
			return true
		}
	}
	return false
}

func (b *Base) childMarkClean() {
	for _, c := range b.children {
		c.MarkClean()
	}
}

// childToXML serializes every child under el, in insertion order.
func (b *Base) childToXML(el *xmltree.Element) {
	for _, c := range b.children {
		c.ToXML(el)
	}
}

// cloneBase duplicates the structural state: children are cloned
// recursively, the handle is carried as the same reference.
func (b *Base) cloneBase() Base {
	nb := Base{
		classID:    b.classID,
		elementTag: b.elementTag,
		handle:     b.handle,
	}
	if len(b.children) > 0 {
		nb.children = make([]Node, 0, len(b.children))
		for _, c := range b.children {
			nb.children = append(nb.children, c.Clone())
		}
	}
	return nb
}

// createElement builds the element for this node: a standalone root when
// parent is nil, a subelement otherwise. An element name override applies
// in both cases.
func (b *Base) createElement(parent *xmltree.Element, opts []EncodeOption) *xmltree.Element {
	o := applyEncodeOptions(opts)
	tag := b.elementTag
	if o.elementName != "" {
		tag = o.elementName
	}
	if parent == nil {
		return xmltree.New(tag)
	}
	return parent.CreateChild(tag)
}
