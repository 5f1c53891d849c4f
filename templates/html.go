package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so component bodies can emit
// markup without checking every call. Dynamic values reach the output only
// through attr and text, which escape them.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes constant markup as-is.
func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes escaped text.
func (h *htmlWriter) text(s string) {
	h.raw(esc(s))
}

// textf formats then escapes.
func (h *htmlWriter) textf(format string, args ...any) {
	h.text(fmt.Sprintf(format, args...))
}

// open writes a start tag. tag is always a literal.
func (h *htmlWriter) open(tag string, attrs ...attribute) {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for _, a := range attrs {
		a.writeTo(&b)
	}
	b.WriteString(">")
	h.raw(b.String())
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

// el writes <tag attrs>text</tag>.
func (h *htmlWriter) el(tag, text string, attrs ...attribute) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

// render writes a child component.
func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// fieldError writes the inline error paragraph, or nothing for "".
func (h *htmlWriter) fieldError(msg string) {
	if msg == "" {
		return
	}
	h.el("p", msg, attr("class", "field-error"))
}

// attribute is one attribute of a start tag.
type attribute struct {
	name  string
	value string
	bare  bool
	omit  bool
}

func (a attribute) writeTo(b *strings.Builder) {
	if a.omit {
		return
	}
	b.WriteString(" ")
	b.WriteString(a.name)
	if a.bare {
		return
	}
	b.WriteString(`="`)
	b.WriteString(esc(a.value))
	b.WriteString(`"`)
}

func attr(name, value string) attribute {
	return attribute{name: name, value: value}
}

func attrf(name, format string, args ...any) attribute {
	return attr(name, fmt.Sprintf(format, args...))
}

// flag is a boolean attribute such as disabled, written only when on.
func flag(name string, on bool) attribute {
	return attribute{name: name, bare: true, omit: !on}
}

// hxVals encodes extra request values for hx-vals.
func hxVals(name, value string) attribute {
	b, _ := json.Marshal(map[string]string{name: value})
	return attr("hx-vals", string(b))
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// component adapts a body func to templ.Component.
func component(body func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		body(h)
		return h.err
	})
}

// classes joins the class names whose condition is true.
func classes(base string, optional map[string]bool) string {
	out := base
	for _, name := range sortedKeys(optional) {
		if optional[name] {
			out += " " + name
		}
	}
	return out
}
