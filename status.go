package moxml

import (
	"github.com/nbrandt/go-moxml/xmltree"
)

// Element tag and class identifier of the operation status leaf.
const (
	OperationStatusClassID = "OperationStatus"
	OperationStatusTag     = "operationStatus"
)

// OperationStatus is a terminal leaf reporting the outcome of a
// previously issued operation, typically a status code and descriptive
// text. It carries attributes like any object, but deserialization never
// descends into it: nested elements under a status element are
// informational only and are left unparsed.
type OperationStatus struct {
	Object
}

var _ Node = (*OperationStatus)(nil)

// NewOperationStatus returns a status leaf populated with the given
// attributes. Reserved attribute names are dropped with a warning rather
// than stored, preserving the serialization-exclusion invariant.
func NewOperationStatus(attrs ...Attr) *OperationStatus {
	s := &OperationStatus{
		Object: Object{Base: Base{
			classID:    OperationStatusClassID,
			elementTag: OperationStatusTag,
		}},
	}
	for _, a := range attrs {
		if err := validateAttrName(a.Name); err != nil {
			logger.WithField("name", a.Name).Warn("dropping reserved status attribute")
			continue
		}
		s.setAttr(a.Name, a.Value)
	}
	return s
}

// FromXML binds the session handle and ingests el's attributes. Status
// nodes are terminal: child elements are never descended into.
func (s *OperationStatus) FromXML(el *xmltree.Element, opts ...DecodeOption) error {
	do := applyDecodeOptions(opts)
	s.handle = do.handle
	return s.ingestAttrs(el, do.namer)
}

// Clone returns a deep copy of the status leaf.
func (s *OperationStatus) Clone() Node {
	return &OperationStatus{
		Object: Object{
			Base:  s.cloneBase(),
			attrs: s.cloneAttrs(),
			dirty: s.dirty,
		},
	}
}

// ErrorResponse carries the error code and description an endpoint
// returns for a failed request. It is built by the transport from the
// response envelope's attributes and satisfies error so it can be
// surfaced directly.
type ErrorResponse struct {
	ErrorCode  string
	ErrorDescr string
}

// NewErrorResponse returns an ErrorResponse with the given code and
// description.
func NewErrorResponse(code, descr string) *ErrorResponse {
	return &ErrorResponse{ErrorCode: code, ErrorDescr: descr}
}

// ErrorResponseFromElement reads the conventional errorCode and
// errorDescr attributes from a response element.
func ErrorResponseFromElement(el *xmltree.Element) *ErrorResponse {
	code, _ := el.Get("errorCode")
	descr, _ := el.Get("errorDescr")
	return &ErrorResponse{ErrorCode: code, ErrorDescr: descr}
}

func (e *ErrorResponse) Error() string {
	if e.ErrorDescr == "" {
		return "moxml: request failed with code " + e.ErrorCode
	}
	return "moxml: request failed with code " + e.ErrorCode + ": " + e.ErrorDescr
}
