// Package xmltree provides a small mutable document model for XML
// elements: a tag, an ordered attribute list, child elements in document
// order, and character data. It is the in-memory form the moxml
// serializer and deserializer operate on.
//
// Attribute order is significant and preserved through a parse/write
// round trip. Namespaces are not interpreted; qualified names are kept
// by their local part only.
package xmltree

// Attr is a single XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is one XML element node.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// New returns a standalone element with the given tag.
func New(tag string) *Element {
	return &Element{Tag: tag}
}

// CreateChild appends a new child element with the given tag and
// returns it.
func (e *Element) CreateChild(tag string) *Element {
	child := New(tag)
	e.Children = append(e.Children, child)
	return child
}

// Set sets the named attribute, replacing an existing value in place so
// that attribute order reflects first declaration.
func (e *Element) Set(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Get returns the value of the named attribute and whether it was present.
func (e *Element) Get(name string) (string, bool) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			return e.Attrs[i].Value, true
		}
	}
	return "", false
}

// FindChild returns the first child element with the given tag, or nil.
func (e *Element) FindChild(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}
