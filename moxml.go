package moxml

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"github.com/nbrandt/go-moxml/xmltree"
)

// Marshal serializes the node tree rooted at n into an XML document.
func Marshal(n Node, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := n.ToXML(nil, opts...).WriteTo(&buf); err != nil {
		return nil, errors.Wrapf(err, "moxml: marshal %s", n.ClassID())
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the XML document in data and ingests its root element
// into n. Like FromXML, it appends children rather than replacing them,
// so n should be freshly constructed.
func Unmarshal(data []byte, n Node, opts ...DecodeOption) error {
	el, err := xmltree.Parse(data)
	if err != nil {
		return errors.Wrapf(err, "moxml: unmarshal %s", n.ClassID())
	}
	return n.FromXML(el, opts...)
}
