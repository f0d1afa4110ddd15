// Package xmldoc is a small, tolerant XML document model.
//
// A Document is built once from response text and then only queried: find the first
// element with a tag name, enumerate all of them in document order, read an attribute,
// or read the text content of a descendant field. Lookups never fail. A document that
// could not be parsed behaves as an empty one, so every query against it yields nil or "".
package xmldoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	ErrEmptyDocument = errors.New("xmldoc: no root element")
	ErrMultipleRoots = errors.New("xmldoc: content after root element")
)

// Finder is implemented by both Document and Element.
type Finder interface {
	First(tag string) *Element
}

// Document is a parsed XML tree. The zero value is an empty document.
type Document struct {
	root *Element
	err  error
}

// Element is a single XML element with its attributes and mixed content.
type Element struct {
	Name   string
	attrs  []xml.Attr
	nodes  []node
	parent *Element
}

// node is either a run of character data or a child element.
type node struct {
	text string
	elem *Element
}

// Parse builds a Document from text. It never returns nil: on malformed input the
// returned document is empty and Err reports why.
func Parse(text string) *Document {
	return ParseReader(strings.NewReader(text))
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(b []byte) *Document {
	return ParseReader(bytes.NewReader(b))
}

// ParseReader builds a Document from r, honouring the encoding declared in the prolog.
func ParseReader(r io.Reader) *Document {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel

	var root *Element
	var stack []*Element

	for {
		token, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &Document{err: fmt.Errorf("xmldoc: %w", err)}
		}

		switch t := token.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local, attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				if root != nil {
					return &Document{err: ErrMultipleRoots}
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				el.parent = parent
				parent.nodes = append(parent.nodes, node{elem: el})
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return &Document{err: ErrMultipleRoots}
				}
				continue
			}
			current := stack[len(stack)-1]
			current.nodes = append(current.nodes, node{text: string(t)})
		}
	}

	if root == nil {
		return &Document{err: ErrEmptyDocument}
	}
	return &Document{root: root}
}

// Err reports the parse failure, if any.
func (d *Document) Err() error {
	if d == nil {
		return ErrEmptyDocument
	}
	return d.err
}

// Root returns the document element, or nil for an empty document.
func (d *Document) Root() *Element {
	if d == nil {
		return nil
	}
	return d.root
}

// First returns the first element named tag anywhere in the document, root included.
func (d *Document) First(tag string) *Element {
	root := d.Root()
	if root == nil {
		return nil
	}
	if root.Name == tag {
		return root
	}
	return root.First(tag)
}

// All returns every element named tag in document order, root included.
func (d *Document) All(tag string) []*Element {
	root := d.Root()
	if root == nil {
		return nil
	}
	var out []*Element
	if root.Name == tag {
		out = append(out, root)
	}
	return append(out, root.All(tag)...)
}

// First returns the first descendant named tag in document order. The element itself is not considered.
func (e *Element) First(tag string) *Element {
	if e == nil {
		return nil
	}
	for _, n := range e.nodes {
		if n.elem == nil {
			continue
		}
		if n.elem.Name == tag {
			return n.elem
		}
		if found := n.elem.First(tag); found != nil {
			return found
		}
	}
	return nil
}

// All returns every descendant named tag in document order.
func (e *Element) All(tag string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, n := range e.nodes {
		if n.elem == nil {
			continue
		}
		if n.elem.Name == tag {
			out = append(out, n.elem)
		}
		out = append(out, n.elem.All(tag)...)
	}
	return out
}

// Children returns the direct child elements.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, n := range e.nodes {
		if n.elem != nil {
			out = append(out, n.elem)
		}
	}
	return out
}

// Parent returns the enclosing element, or nil for the root.
func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return e.parent
}

// Attr returns the value of the attribute with the given local name.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns the concatenated character data of the element and all of its descendants.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	e.writeText(&sb)
	return sb.String()
}

func (e *Element) writeText(sb *strings.Builder) {
	for _, n := range e.nodes {
		if n.elem != nil {
			n.elem.writeText(sb)
			continue
		}
		sb.WriteString(n.text)
	}
}

// FieldText returns the text content of the first element named tag under n, or "" when there is none.
func FieldText(n Finder, tag string) string {
	if n == nil {
		return ""
	}
	return n.First(tag).Text()
}
