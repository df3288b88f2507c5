package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Node is one element of a decoded document.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Text     string // character data before the first child element
	Children []*Node
}

// Parse decodes data into its root element.
// filePath is only used for error reporting.
func Parse(data []byte, filePath string) (*Node, error) {
	return Decode(bytes.NewReader(data), filePath)
}

// Decode reads a document from r and returns its root element.
func Decode(r io.Reader, filePath string) (*Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapDecodeError(err, filePath)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{Name: t.Name, Attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					line, _ := decoder.InputPos()
					return nil, &ParseError{
						FilePath: filePath,
						Line:     line,
						Message:  "content after the document element",
					}
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			if len(top.Children) == 0 {
				top.Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, &ParseError{
			FilePath: filePath,
			Message:  "document has no root element",
			Hint:     "The file is empty or not an XML export.",
		}
	}
	return root, nil
}

// Attr returns the value of the attribute with the given local name.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the attribute value, or def when the attribute is absent.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// AttrFold looks an attribute up ignoring case, so Datatype finds DataType.
func (n *Node) AttrFold(name string) string {
	for _, a := range n.Attrs {
		if strings.EqualFold(a.Name.Local, name) {
			return a.Value
		}
	}
	return ""
}

// Child returns the first direct child with the given namespace and local
// name, or nil.
func (n *Node) Child(space, local string) *Node {
	for _, c := range n.Children {
		if c.Name.Space == space && c.Name.Local == local {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns the direct children with the given namespace and
// local name, in document order.
func (n *Node) ChildrenNamed(space, local string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name.Space == space && c.Name.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// FindAll returns every descendant of n (n excluded) accepted by match,
// in document order.
func (n *Node) FindAll(match func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(p *Node) {
		for _, c := range p.Children {
			if match(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// Local matches elements by local name regardless of namespace.
func Local(name string) func(*Node) bool {
	return func(n *Node) bool {
		return n.Name.Local == name
	}
}
