package moxml

import (
	"github.com/sirupsen/logrus"

	"github.com/nbrandt/go-moxml/xmltree"
)

// Attr is a single named attribute of a managed object. Attributes are
// kept as an explicit ordered list so serialization order is
// deterministic and equals declaration order.
type Attr struct {
	Name  string
	Value string
}

// Object is the attribute-bearing managed object: a node whose public
// state is a set of string-valued attributes plus child nodes. It is the
// building block for request and response trees and is embedded by the
// Filter and OperationStatus variants.
//
// Construct with NewObject; the zero value has no identity.
type Object struct {
	Base
	attrs []Attr
	dirty bool
}

var _ Node = (*Object)(nil)

// NewObject returns a clean object with the given class identifier and
// XML element tag.
func NewObject(classID, elementTag string) *Object {
	return &Object{Base: Base{classID: classID, elementTag: elementTag}}
}

// SetAttr sets or replaces the named attribute and marks the object
// dirty. A replaced attribute keeps its original position; a new one is
// appended. Reserved names are rejected with *InvalidAttributeNameError.
func (o *Object) SetAttr(name, value string) error {
	if err := validateAttrName(name); err != nil {
		return err
	}
	o.setAttr(name, value)
	o.dirty = true
	return nil
}

// setAttr stores without touching the dirty flag. The deserializer uses
// it directly: ingested state is the synchronized state.
func (o *Object) setAttr(name, value string) {
	for i := range o.attrs {
		if o.attrs[i].Name == name {
			o.attrs[i].Value = value
			return
		}
	}
	o.attrs = append(o.attrs, Attr{Name: name, Value: value})
}

// Attr returns the value of the named attribute and whether it is set.
func (o *Object) Attr(name string) (string, bool) {
	for i := range o.attrs {
		if o.attrs[i].Name == name {
			return o.attrs[i].Value, true
		}
	}
	return "", false
}

// Attrs returns a copy of the attribute list in declaration order.
func (o *Object) Attrs() []Attr {
	out := make([]Attr, len(o.attrs))
	copy(out, o.attrs)
	return out
}

// RemoveAttr deletes the named attribute, marking the object dirty. It
// reports whether the attribute was present.
func (o *Object) RemoveAttr(name string) bool {
	for i := range o.attrs {
		if o.attrs[i].Name == name {
			o.attrs = append(o.attrs[:i], o.attrs[i+1:]...)
			o.dirty = true
			return true
		}
	}
	return false
}

// IsDirty reports whether the object's own attributes changed since the
// last MarkClean, or any child subtree is dirty.
func (o *Object) IsDirty() bool {
	return o.dirty || o.childIsDirty()
}

// MarkClean clears the dirty flag on the object and every descendant.
func (o *Object) MarkClean() {
	o.dirty = false
	o.childMarkClean()
}

// Clone returns a deep copy: attributes by value, children recursively,
// the session handle as the same reference.
func (o *Object) Clone() Node {
	return &Object{
		Base:  o.cloneBase(),
		attrs: o.cloneAttrs(),
		dirty: o.dirty,
	}
}

func (o *Object) cloneAttrs() []Attr {
	if o.attrs == nil {
		return nil
	}
	out := make([]Attr, len(o.attrs))
	copy(out, o.attrs)
	return out
}

// ToXML serializes the object under parent, or as a standalone root when
// parent is nil. Every attribute is written in declaration order, then
// every child in insertion order. Dirty state is not affected.
func (o *Object) ToXML(parent *xmltree.Element, opts ...EncodeOption) *xmltree.Element {
	el := o.createElement(parent, opts)
	for _, a := range o.attrs {
		el.Set(a.Name, a.Value)
	}
	o.childToXML(el)
	return el
}

// FromXML ingests el into the object. The session handle is bound first,
// then every XML attribute is stored as a string under the name produced
// by the configured Namer, then each child element is resolved to a node
// through the configured Resolver, appended, and recursively ingested
// with the same options. A tag the resolver cannot map aborts that
// child's ingestion with an *UnknownTypeError and appends nothing for it.
func (o *Object) FromXML(el *xmltree.Element, opts ...DecodeOption) error {
	do := applyDecodeOptions(opts)
	o.handle = do.handle
	if err := o.ingestAttrs(el, do.namer); err != nil {
		return err
	}

	for _, childEl := range el.Children {
		if do.resolver == nil {
			return &UnknownTypeError{Tag: childEl.Tag}
		}
		child, err := do.resolver.Resolve(childEl.Tag)
		if err != nil {
			return err
		}
		o.children = append(o.children, child)
		logger.WithFields(logrus.Fields{
			"parent": o.classID,
			"tag":    childEl.Tag,
			"class":  child.ClassID(),
		}).Debug("resolved child element")

		// Terminal variants ingest their attributes and stop; see
		// OperationStatus.FromXML.
		if err := child.FromXML(childEl, opts...); err != nil {
			return err
		}
	}
	return nil
}

// ingestAttrs stores el's attributes without marking the object dirty.
func (o *Object) ingestAttrs(el *xmltree.Element, namer Namer) error {
	for _, a := range el.Attrs {
		name := namer(a.Name)
		if err := validateAttrName(name); err != nil {
			return err
		}
		o.setAttr(name, a.Value)
	}
	return nil
}

// WriteObject logs the object and its subtree through the package logger
// at debug level, one entry per node.
func (o *Object) WriteObject() {
	fields := logrus.Fields{"classId": o.classID}
	for _, a := range o.attrs {
		fields[a.Name] = a.Value
	}
	logger.WithFields(fields).Debug(o.elementTag)
	for _, c := range o.children {
		if w, ok := c.(interface{ WriteObject() }); ok {
			w.WriteObject()
		}
	}
}
