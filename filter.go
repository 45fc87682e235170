package moxml

import (
	"github.com/nbrandt/go-moxml/xmltree"
)

// Filter is the query/selection variant of Object. The class being
// filtered on is typed state rather than a generic attribute, so it can
// always serialize under the literal XML attribute name "class"
// regardless of internal naming.
type Filter struct {
	Object
	class string
}

var _ Node = (*Filter)(nil)

// NewFilter returns a clean filter with the given class identifier and
// XML element tag.
func NewFilter(classID, elementTag string) *Filter {
	return &Filter{Object: Object{Base: Base{classID: classID, elementTag: elementTag}}}
}

// SetClass sets the class the filter selects on and marks the filter
// dirty.
func (f *Filter) SetClass(class string) {
	f.class = class
	f.dirty = true
}

// Class returns the class the filter selects on.
func (f *Filter) Class() string { return f.class }

// ToXML serializes like Object.ToXML, with the class filter value always
// emitted first as the attribute "class" when set.
func (f *Filter) ToXML(parent *xmltree.Element, opts ...EncodeOption) *xmltree.Element {
	el := f.createElement(parent, opts)
	if f.class != "" {
		el.Set("class", f.class)
	}
	for _, a := range f.attrs {
		el.Set(a.Name, a.Value)
	}
	f.childToXML(el)
	return el
}

// Clone returns a deep copy of the filter.
func (f *Filter) Clone() Node {
	return &Filter{
		Object: Object{
			Base:  f.cloneBase(),
			attrs: f.cloneAttrs(),
			dirty: f.dirty,
		},
		class: f.class,
	}
}
