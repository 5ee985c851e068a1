package finn

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const xmlnsSpace = "xmlns"

// Namespaces maps a namespace prefix to the URI it is declared with in a
// document. The empty prefix holds the default namespace.
type Namespaces map[string]string

// Lookup returns the URI declared for prefix.
func (ns Namespaces) Lookup(prefix string) (string, bool) {
	uri, ok := ns[prefix]
	return uri, ok
}

// Default returns the default namespace URI, or "" when none is declared.
func (ns Namespaces) Default() string {
	return ns[""]
}

// Node is one decoded XML element. Element and attribute names carry the
// resolved namespace URI in Name.Space.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node
	Text     string
}

// Attr returns the value of the unqualified attribute local.
func (n *Node) Attr(local string) (string, bool) {
	return n.AttrNS("", local)
}

// AttrNS returns the value of the attribute local in namespace space.
func (n *Node) AttrNS(space, local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrPtr returns the unqualified attribute local, or nil when missing.
func (n *Node) AttrPtr(local string) *string {
	v, ok := n.Attr(local)
	if !ok {
		return nil
	}
	return &v
}

// FirstAttr returns the value of the first attribute that is not a
// namespace declaration.
func (n *Node) FirstAttr() (string, bool) {
	for _, a := range n.Attrs {
		if isNamespaceDecl(a) {
			continue
		}
		return a.Value, true
	}
	return "", false
}

// TextPtr returns the element's own character data.
func (n *Node) TextPtr() *string {
	s := n.Text
	return &s
}

// ChildrenNS returns the direct children named local in namespace space, in
// document order.
func (n *Node) ChildrenNS(space, local string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name.Space == space && c.Name.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// ChildrenLocal returns the direct children named local in any namespace.
func (n *Node) ChildrenLocal(local string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first direct child named local in namespace space.
func (n *Node) Child(space, local string) *Node {
	for _, c := range n.Children {
		if c.Name.Space == space && c.Name.Local == local {
			return c
		}
	}
	return nil
}

// ChildText returns the text of the first matching child, or nil when
// there is no such child.
func (n *Node) ChildText(space, local string) *string {
	c := n.Child(space, local)
	if c == nil {
		return nil
	}
	return c.TextPtr()
}

// ChildTextLocal is ChildText ignoring the child's namespace.
func (n *Node) ChildTextLocal(local string) *string {
	for _, c := range n.Children {
		if c.Name.Local == local {
			return c.TextPtr()
		}
	}
	return nil
}

func isNamespaceDecl(a xml.Attr) bool {
	return a.Name.Space == xmlnsSpace || (a.Name.Space == "" && a.Name.Local == xmlnsSpace)
}

var (
	errNoRoot        = errors.New("document has no root element")
	errMultipleRoots = errors.New("document has more than one root element")
)

// decodeDocument reads raw into a Node tree and collects every namespace
// declaration in the document. The first declaration of a prefix wins.
func decodeDocument(raw []byte) (*Node, Namespaces, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charset.NewReaderLabel

	ns := Namespaces{}
	var (
		root  *Node
		stack []*Node
		text  []*strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name, Attrs: t.Copy().Attr}
			collectNamespaces(ns, t.Attr)

			if len(stack) == 0 {
				if root != nil {
					return nil, nil, errMultipleRoots
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			text = append(text, &strings.Builder{})

		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			}

		case xml.EndElement:
			n := stack[len(stack)-1]
			n.Text = strings.TrimSpace(text[len(text)-1].String())
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}

	if root == nil {
		return nil, nil, errNoRoot
	}
	if len(stack) > 0 {
		return nil, nil, fmt.Errorf("unclosed element <%s>", stack[len(stack)-1].Name.Local)
	}

	return root, ns, nil
}

func collectNamespaces(ns Namespaces, attrs []xml.Attr) {
	for _, a := range attrs {
		var prefix string
		switch {
		case a.Name.Space == xmlnsSpace:
			prefix = a.Name.Local
		case a.Name.Space == "" && a.Name.Local == xmlnsSpace:
			prefix = ""
		default:
			continue
		}
		if _, seen := ns[prefix]; !seen {
			ns[prefix] = a.Value
		}
	}
}
