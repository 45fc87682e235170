package moxml

import "github.com/nbrandt/go-moxml/naming"

// Namer converts a wire attribute name to the internal naming convention
// used for stored attributes. It must be deterministic and pure. The
// default is naming.Identity, which keeps round trips exact.
type Namer func(wire string) string

// EncodeOption configures a single ToXML call.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	elementName string
}

// WithElementName overrides the element name used for the node being
// serialized. Children keep their own element tags.
func WithElementName(name string) EncodeOption {
	return func(o *encodeOptions) {
		o.elementName = name
	}
}

func applyEncodeOptions(opts []EncodeOption) encodeOptions {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DecodeOption configures a FromXML call. Options are propagated
// unchanged into the recursive ingestion of child elements.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	resolver Resolver
	handle   any
	namer    Namer
}

// WithResolver supplies the type registry used to construct child nodes
// from their element tags. Without a resolver, any child element fails
// with an *UnknownTypeError.
func WithResolver(r Resolver) DecodeOption {
	return func(o *decodeOptions) {
		o.resolver = r
	}
}

// WithHandle binds the opaque session handle to the node and to every
// node constructed beneath it. The handle is stored, never dereferenced.
func WithHandle(h any) DecodeOption {
	return func(o *decodeOptions) {
		o.handle = h
	}
}

// WithNamer overrides the wire-name conversion applied to ingested
// attribute names.
func WithNamer(n Namer) DecodeOption {
	return func(o *decodeOptions) {
		o.namer = n
	}
}

func applyDecodeOptions(opts []DecodeOption) decodeOptions {
	o := decodeOptions{namer: naming.Identity}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
