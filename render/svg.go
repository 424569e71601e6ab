package render

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/jbeda/geom"
)

// SVG writes SVG elements to an io.Writer. The first write error is kept
// and every later call becomes a no-op; check Err once at the end.
type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

// Err returns the first write error, if any.
func (svg *SVG) Err() error {
	return svg.err
}

// Attribute is one name='value' pair on an element. Values are escaped
// when written.
type Attribute struct {
	Name, Value string
}

// Attr formats value with fmt.Sprint, or with six decimals when it is a
// float64.
func Attr(name string, value any) Attribute {
	if f, ok := value.(float64); ok {
		return Attribute{name, num(f)}
	}
	return Attribute{name, fmt.Sprint(value)}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

func onezero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// element writes <name attrs...> followed by tail.
func (svg *SVG) element(name string, tail string, attrs ...Attribute) {
	if svg.err != nil {
		return
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString("='")
		b.WriteString(html.EscapeString(a.Value))
		b.WriteByte('\'')
	}
	b.WriteString(tail)
	_, svg.err = io.WriteString(svg.writer, b.String())
}

func (svg *SVG) raw(s string) {
	if svg.err != nil {
		return
	}
	_, svg.err = io.WriteString(svg.writer, s)
}

// Start opens the document; viewBox is in user space.
func (svg *SVG) Start(viewBox geom.Rect, attrs ...Attribute) {
	svg.raw("<?xml version=\"1.0\"?>\n")
	box := strings.Join([]string{
		num(viewBox.Min.X), num(viewBox.Min.Y), num(viewBox.Width()), num(viewBox.Height()),
	}, " ")
	svg.element("svg", ">\n", append([]Attribute{
		{"version", "1.1"},
		{"xmlns", "http://www.w3.org/2000/svg"},
		{"viewBox", box},
	}, attrs...)...)
}

func (svg *SVG) End() {
	svg.raw("</svg>\n")
}

func (svg *SVG) Group(attrs ...Attribute) {
	svg.element("g", ">\n", attrs...)
}

func (svg *SVG) EndGroup() {
	svg.raw("</g>\n")
}

func (svg *SVG) Rect(r geom.Rect, attrs ...Attribute) {
	svg.element("rect", "/>\n", append([]Attribute{
		Attr("x", r.Min.X), Attr("y", r.Min.Y), Attr("width", r.Width()), Attr("height", r.Height()),
	}, attrs...)...)
}

func (svg *SVG) Line(p1, p2 geom.Coord, attrs ...Attribute) {
	svg.element("line", "/>\n", append([]Attribute{
		Attr("x1", p1.X), Attr("y1", p1.Y), Attr("x2", p2.X), Attr("y2", p2.Y),
	}, attrs...)...)
}

func (svg *SVG) Circle(c geom.Coord, r float64, attrs ...Attribute) {
	svg.element("circle", "/>\n", append([]Attribute{
		Attr("cx", c.X), Attr("cy", c.Y), Attr("r", r),
	}, attrs...)...)
}

// CircularArc draws the arc of radius r from p1 to p2. sweep selects the
// positive-angle direction in user space.
func (svg *SVG) CircularArc(p1, p2 geom.Coord, r float64, largeArc, sweep bool, attrs ...Attribute) {
	d := fmt.Sprintf("M%s,%s A%s,%s 0 %s,%s %s,%s",
		num(p1.X), num(p1.Y), num(r), num(r), onezero(largeArc), onezero(sweep), num(p2.X), num(p2.Y))
	svg.element("path", "/>\n", append([]Attribute{{"d", d}}, attrs...)...)
}
