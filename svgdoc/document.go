package svgdoc

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"iter"
	"os"
	"sort"
	"strings"
)

const (
	svgNS      = "http://www.w3.org/2000/svg"
	xlinkNS    = "http://www.w3.org/1999/xlink"
	xmlNS      = "http://www.w3.org/XML/1998/namespace"
	inkscapeNS = "http://www.inkscape.org/namespaces/inkscape"
	sodipodiNS = "http://sodipodi.sourceforge.net/DTD/sodipodi-0.0.dtd"
)

// Element is a node of the document tree. Attributes are preserved verbatim
// so that parsing and re-serializing a document is lossless for everything
// the adapter does not interpret.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Text     string
	Parent   *Element
	Children []*Element
}

// ID returns the element's id attribute. It satisfies the engine's Object
// interface.
func (el *Element) ID() string {
	return el.Attr("id")
}

// Attr returns the value of the named un-namespaced attribute, or "" if it
// is absent.
func (el *Element) Attr(name string) string {
	return el.AttrNS("", name)
}

// AttrNS returns the value of an attribute in the given namespace.
func (el *Element) AttrNS(space, local string) string {
	for _, a := range el.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets an un-namespaced attribute, replacing any existing value.
func (el *Element) SetAttr(name, value string) {
	el.SetAttrNS("", name, value)
}

// SetAttrNS sets an attribute in the given namespace.
func (el *Element) SetAttrNS(space, local, value string) {
	for i, a := range el.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			el.Attrs[i].Value = value
			return
		}
	}
	el.Attrs = append(el.Attrs, xml.Attr{Name: xml.Name{Space: space, Local: local}, Value: value})
}

// Href returns the element's href, checking the plain attribute first and
// the xlink form second.
func (el *Element) Href() string {
	if v := el.Attr("href"); v != "" {
		return v
	}
	return el.AttrNS(xlinkNS, "href")
}

// Append adds child to the end of el's children.
func (el *Element) Append(child *Element) {
	child.Parent = el
	el.Children = append(el.Children, child)
}

// Remove detaches el from its parent. It is a no-op for the root.
func (el *Element) Remove() {
	p := el.Parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == el {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	el.Parent = nil
}

// Clone returns a deep copy of el, detached from any parent.
func (el *Element) Clone() *Element {
	out := &Element{
		Name:  el.Name,
		Attrs: append([]xml.Attr(nil), el.Attrs...),
		Text:  el.Text,
	}
	for _, c := range el.Children {
		out.Append(c.Clone())
	}
	return out
}

// Document is a parsed SVG document.
type Document struct {
	Root *Element
}

// Parse reads an SVG document from r.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing svg: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name}
			for _, a := range t.Attr {
				// Namespace declarations are regenerated on output.
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.Attrs = append(el.Attrs, a)
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = el
			} else {
				stack[len(stack)-1].Append(el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced end element %s", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				if s := strings.TrimSpace(string(t)); s != "" {
					stack[len(stack)-1].Text += s
				}
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return &Document{Root: root}, nil
}

// ParseFile reads an SVG document from a file.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Descendants yields every element below the root in document (pre-order)
// traversal order.
func (d *Document) Descendants() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		var walk func(el *Element) bool
		walk = func(el *Element) bool {
			for _, c := range el.Children {
				if !yield(c) {
					return false
				}
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(d.Root)
	}
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	if d.Root.ID() == id {
		return d.Root
	}
	for el := range d.Descendants() {
		if el.ID() == id {
			return el
		}
	}
	return nil
}

// UniqueID returns base if no element uses it, otherwise base-2, base-3,
// and so on.
func (d *Document) UniqueID(base string) string {
	if d.ElementByID(base) == nil {
		return base
	}
	for i := 2; ; i++ {
		id := fmt.Sprintf("%s-%d", base, i)
		if d.ElementByID(id) == nil {
			return id
		}
	}
}

// WriteTo serializes the document as indented XML.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	io.WriteString(cw, xml.Header)
	prefixes := d.collectNamespaces()
	writeElement(cw, d.Root, 0, prefixes, true)
	if cw.err == nil {
		cw.err = cw.w.(*bufio.Writer).Flush()
	}
	return cw.n, cw.err
}

// WriteFile serializes the document to a file.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}

// collectNamespaces maps every namespace URL used in the tree to the prefix
// it is serialized with. The SVG namespace is the default namespace.
func (d *Document) collectNamespaces() map[string]string {
	prefixes := map[string]string{
		svgNS:      "",
		xmlNS:      "xml",
		xlinkNS:    "xlink",
		inkscapeNS: "inkscape",
		sodipodiNS: "sodipodi",
	}
	used := map[string]bool{svgNS: true}
	next := 1
	record := func(space string) {
		if space == "" {
			return
		}
		used[space] = true
		if _, ok := prefixes[space]; !ok {
			prefixes[space] = fmt.Sprintf("ns%d", next)
			next++
		}
	}
	var walk func(el *Element)
	walk = func(el *Element) {
		record(el.Name.Space)
		for _, a := range el.Attrs {
			record(a.Name.Space)
		}
		for _, c := range el.Children {
			walk(c)
		}
	}
	walk(d.Root)
	for space := range prefixes {
		if !used[space] {
			delete(prefixes, space)
		}
	}
	return prefixes
}

func qname(n xml.Name, prefixes map[string]string) string {
	if n.Space == "" {
		return n.Local
	}
	if p := prefixes[n.Space]; p != "" {
		return p + ":" + n.Local
	}
	return n.Local
}

func writeAttr(w io.Writer, name, value string) {
	io.WriteString(w, " "+name+"=\"")
	xml.EscapeText(w, []byte(value))
	io.WriteString(w, "\"")
}

func writeElement(w io.Writer, el *Element, depth int, prefixes map[string]string, declare bool) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s<%s", indent, qname(el.Name, prefixes))
	if declare {
		decls := make([]string, 0, len(prefixes))
		for space, prefix := range prefixes {
			if space == xmlNS {
				continue
			}
			if prefix == "" {
				decls = append(decls, "xmlns\x00"+space)
			} else {
				decls = append(decls, "xmlns:"+prefix+"\x00"+space)
			}
		}
		sort.Strings(decls)
		for _, d := range decls {
			name, space, _ := strings.Cut(d, "\x00")
			writeAttr(w, name, space)
		}
	}
	for _, a := range el.Attrs {
		writeAttr(w, qname(a.Name, prefixes), a.Value)
	}
	if len(el.Children) == 0 && el.Text == "" {
		io.WriteString(w, "/>\n")
		return
	}
	io.WriteString(w, ">")
	if el.Text != "" {
		xml.EscapeText(w, []byte(el.Text))
	}
	if len(el.Children) > 0 {
		io.WriteString(w, "\n")
		for _, c := range el.Children {
			writeElement(w, c, depth+1, prefixes, false)
		}
		io.WriteString(w, indent)
	}
	fmt.Fprintf(w, "</%s>\n", qname(el.Name, prefixes))
}
