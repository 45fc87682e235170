package xmltree

import (
	"bytes"
	"encoding/xml"
	"io"
)

// WriteTo writes the element and its subtree to w as an XML fragment.
// Escaping of attribute values and character data is handled by
// encoding/xml.
func (e *Element) WriteTo(w io.Writer) error {
	enc := xml.NewEncoder(w)
	if err := e.encode(enc); err != nil {
		return err
	}
	return enc.Flush()
}

func (e *Element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Tag}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.Name},
			Value: a.Value,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: start.Name})
}

// Bytes returns the serialized form of the element and its subtree.
func (e *Element) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the serialized form, or an empty string if the element
// cannot be encoded.
func (e *Element) String() string {
	b, err := e.Bytes()
	if err != nil {
		return ""
	}
	return string(b)
}
