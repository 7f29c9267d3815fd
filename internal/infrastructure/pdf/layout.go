package pdf

import (
	"fmt"
	"strings"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/domain/render"
)

// PageFormat is a fixed page size in millimeters.
type PageFormat struct {
	Width      float64
	Height     float64
	Margin     float64
	BreakRatio float64
}

// A4 matches the page used by the proposal exports: 20mm margins and a page
// break once the cursor passes 92% of the page height.
var A4 = PageFormat{Width: 210, Height: 297, Margin: 20, BreakRatio: 0.92}

func (f PageFormat) contentWidth() float64 { return f.Width - 2*f.Margin }
func (f PageFormat) breakAt() float64      { return f.Height * f.BreakRatio }

// textMeasurer is the subset of *fpdf.Fpdf used to wrap text. Both methods
// measure byte by byte, matching the single-byte encoding produced by tr.
type textMeasurer interface {
	SetFont(familyStr, styleStr string, size float64)
	SplitLines(txt []byte, w float64) [][]byte
	GetStringWidth(s string) float64
}

type opKind int

const (
	opText opKind = iota
	opFill
	opRule
)

type rgb struct{ R, G, B int }

var (
	black = rgb{0, 0, 0}
	white = rgb{255, 255, 255}
	gray  = rgb{107, 114, 128}
)

// drawOp is one positioned primitive of a planned page.
type drawOp struct {
	Kind  opKind
	X, Y  float64
	W, H  float64
	Text  string
	Size  float64
	Style string
	Color rgb
}

// Page is a laid out page. Ops are drawn in order.
type Page struct {
	Number int
	Ops    []drawOp
}

// Plan is the output of the first export pass: every page break is known, so
// the total page count is final before anything is drawn.
type Plan struct {
	Format PageFormat
	Footer render.Footer
	Pages  []Page
}

func (p Plan) Total() int { return len(p.Pages) }

// FooterLabel returns the "page X of N" text of page index i (1-based).
func (p Plan) FooterLabel(i int) string {
	return fmt.Sprintf(p.Footer.PageLabel, i, p.Total())
}

const fontFamily = "Helvetica"

type paginator struct {
	format   PageFormat
	measure  textMeasurer
	tr       func(string) string
	maxPages int

	pages []Page
	y     float64
	err   error
}

// Paginate lays a document out on fixed-size pages. tr converts UTF-8 text to
// the encoding of the core fonts; maxPages <= 0 disables the page safeguard.
func Paginate(doc render.Document, format PageFormat, measure textMeasurer, tr func(string) string, maxPages int) (Plan, error) {
	if tr == nil {
		tr = func(s string) string { return s }
	}
	p := &paginator{format: format, measure: measure, tr: tr, maxPages: maxPages}
	p.newPage()

	primary := parseHexColor(doc.Palette.Primary, black)
	secondary := parseHexColor(doc.Palette.Secondary, gray)
	text := parseHexColor(doc.Palette.Text, black)

	p.header(doc, primary, secondary, text)

	for _, s := range doc.Sections {
		p.section(s, primary, text)
		if p.err != nil {
			return Plan{}, p.err
		}
	}
	if doc.Signature != nil {
		p.section(render.Section{
			Heading: "Aceite",
			Items:   []render.Item{{Style: render.ItemText, Text: doc.Signature.Label}},
		}, primary, text)
	}
	if p.err != nil {
		return Plan{}, p.err
	}
	return Plan{Format: format, Footer: doc.Footer, Pages: p.pages}, nil
}

func (p *paginator) newPage() {
	if p.maxPages > 0 && len(p.pages) >= p.maxPages {
		p.err = fmt.Errorf("%w: document exceeds %d pages", entities.ErrExport, p.maxPages)
		return
	}
	p.pages = append(p.pages, Page{Number: len(p.pages) + 1})
	p.y = p.format.Margin
}

func (p *paginator) emit(op drawOp) {
	last := &p.pages[len(p.pages)-1]
	last.Ops = append(last.Ops, op)
}

// reserve starts a new page when h more millimeters would cross the break line.
func (p *paginator) reserve(h float64) {
	if p.err != nil {
		return
	}
	if p.y+h > p.format.breakAt() {
		p.newPage()
	}
}

func (p *paginator) header(doc render.Document, primary, secondary, text rgb) {
	f := p.format
	h := doc.Header
	metrics := make([]string, 0, len(h.Metrics))
	for _, m := range h.Metrics {
		metrics = append(metrics, m.Label+": "+m.Value)
	}
	metricsLine := p.tr(strings.Join(metrics, "   |   "))

	if h.Alignment == "center" {
		p.centered(p.tr(strings.ToUpper(h.Title)), 30, 28, "B", text)
		p.emit(drawOp{Kind: opRule, X: f.Width/2 - 20, Y: 35, W: 40, H: 0.8, Color: primary})
		p.centered(p.tr(h.Subtitle), 50, 16, "", text)
		p.centered(metricsLine, 60, 11, "", secondary)
		p.y = 75
	} else {
		p.emit(drawOp{Kind: opFill, X: 0, Y: 0, W: f.Width, H: 60, Color: primary})
		p.emit(drawOp{Kind: opText, X: f.Margin, Y: 25, Text: p.tr(strings.ToUpper(h.Title)), Size: 24, Style: "B", Color: white})
		p.emit(drawOp{Kind: opText, X: f.Margin, Y: 40, Text: p.tr(h.Subtitle), Size: 14, Color: white})
		p.emit(drawOp{Kind: opText, X: f.Margin, Y: 52, Text: metricsLine, Size: 10, Color: white})
		p.y = 80
	}

	if b := brandingLine(doc.Branding); b != "" {
		p.lines(p.tr(b), f.Margin, f.contentWidth(), 9, "", gray)
		p.y += 4
	}
}

func (p *paginator) centered(txt string, y, size float64, style string, color rgb) {
	p.measure.SetFont(fontFamily, style, size)
	w := p.measure.GetStringWidth(txt)
	x := (p.format.Width - w) / 2
	if x < p.format.Margin {
		x = p.format.Margin
	}
	p.emit(drawOp{Kind: opText, X: x, Y: y, Text: txt, Size: size, Style: style, Color: color})
}

func (p *paginator) section(s render.Section, primary, text rgb) {
	f := p.format
	// Keep a heading together with at least its first line.
	p.reserve(10 + lineHeight(12))
	if p.err != nil {
		return
	}
	p.emit(drawOp{Kind: opText, X: f.Margin, Y: p.y, Text: p.tr(strings.ToUpper(s.Heading)), Size: 16, Style: "B", Color: primary})
	p.y += 10

	for _, it := range s.Items {
		switch it.Style {
		case render.ItemField:
			p.lines(p.tr(it.Label+": "+it.Text), f.Margin, f.contentWidth(), 12, "", text)
		case render.ItemBullet:
			p.lines(p.tr("• "+it.Text), f.Margin+2, f.contentWidth()-2, 12, "", text)
		case render.ItemNumbered:
			p.lines(p.tr(it.Label+". "+it.Text), f.Margin, f.contentWidth(), 12, "", text)
		case render.ItemHighlight:
			label := it.Text
			if it.Label != "" {
				label = it.Label + ": " + it.Text
			}
			p.lines(p.tr(label), f.Margin, f.contentWidth(), 14, "B", text)
		case render.ItemNote:
			p.lines(p.tr(it.Text), f.Margin, f.contentWidth(), 10, "I", gray)
		default:
			p.lines(p.tr(it.Text), f.Margin, f.contentWidth(), 12, "", text)
		}
		if p.err != nil {
			return
		}
		p.y += 2
	}
	p.y += 8
}

// lines wraps txt, already translated by tr, to width and emits one op per
// line, breaking pages as needed.
func (p *paginator) lines(txt string, x, width, size float64, style string, color rgb) {
	p.measure.SetFont(fontFamily, style, size)
	var wrapped []string
	for _, line := range p.measure.SplitLines([]byte(txt), width) {
		wrapped = append(wrapped, string(line))
	}
	if len(wrapped) == 0 {
		wrapped = []string{""}
	}
	lh := lineHeight(size)
	for _, line := range wrapped {
		p.reserve(lh)
		if p.err != nil {
			return
		}
		p.y += lh
		p.emit(drawOp{Kind: opText, X: x, Y: p.y, Text: line, Size: size, Style: style, Color: color})
	}
}

func lineHeight(size float64) float64 {
	return size * 0.5
}

func brandingLine(b render.Branding) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{b.CompanyName, b.Phone, b.Email, b.Address} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " - ")
}

// parseHexColor accepts #RGB and #RRGGBB, returning def for anything else.
func parseHexColor(s string, def rgb) rgb {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return def
	}
	var c rgb
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return def
	}
	return c
}
