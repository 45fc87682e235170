package xmltree

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Parse reads a complete XML document from data and returns its root
// element.
func Parse(data []byte) (*Element, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a complete XML document from r and returns its root
// element.
//
// Comments, directives and processing instructions are skipped. Character
// data is trimmed of surrounding whitespace and accumulated on the
// enclosing element; whitespace-only data between child elements is
// dropped. This is a non-streaming decoder: the whole document is
// tokenized before Decode returns.
func Decode(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "xmltree: malformed document")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := New(t.Name.Local)
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("xmltree: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			// The decoder guarantees tags are balanced, so the stack is
			// never empty here.
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			if s := strings.TrimSpace(string(t)); s != "" {
				stack[len(stack)-1].Text += s
			}
		}
	}

	if root == nil {
		return nil, errors.New("xmltree: document has no root element")
	}
	return root, nil
}
