package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bodyFontSize = 11
	bodyLineHt   = 5.5
	codeFontSize = 9.5
	codeLineHt   = 4.5
)

// pinnedDate keeps the PDF trailer free of wall-clock timestamps so that
// rendering the same content twice produces identical bytes.
var pinnedDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFRenderer lays out markdown as a styled A4 document. Text is mapped to
// the built-in cp1252 fonts, so glyphs outside that range are substituted.
type PDFRenderer struct {
	md goldmark.Markdown
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{md: goldmark.New()}
}

func (r *PDFRenderer) Render(title, content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	src := []byte(content)
	doc := r.md.Parser().Parse(text.NewReader(src))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreationDate(pinnedDate)
	pdf.SetModificationDate(pinnedDate)
	pdf.SetMargins(18, 20, 18)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if strings.TrimSpace(title) != "" {
		pdf.SetTextColor(31, 56, 100)
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 9, tr(title), "", "L", false)
		pdf.Ln(3)
	}

	renderBlocks(pdf, tr, doc, src)

	if pdf.Err() {
		return nil, fmt.Errorf("pdf layout: %v", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func renderBlocks(pdf *fpdf.Fpdf, tr func(string) string, parent ast.Node, src []byte) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch b := n.(type) {
		case *ast.Heading:
			size := headingSize(b.Level)
			pdf.Ln(2)
			pdf.SetTextColor(31, 56, 100)
			pdf.SetFont("Helvetica", "B", size)
			pdf.MultiCell(0, size*0.52, tr(plainText(b, src)), "", "L", false)
			pdf.Ln(1)
		case *ast.Paragraph:
			writeSpans(pdf, tr, inlineSpans(b, src))
			pdf.Ln(bodyLineHt)
			pdf.Ln(2)
		case *ast.List:
			renderList(pdf, tr, b, src, 0)
			pdf.Ln(2)
		case *ast.FencedCodeBlock:
			renderCode(pdf, tr, b.Lines(), src)
		case *ast.CodeBlock:
			renderCode(pdf, tr, b.Lines(), src)
		case *ast.Blockquote:
			renderBlocks(pdf, tr, b, src)
		case *ast.ThematicBreak:
			pdf.Ln(2)
			x, y := pdf.GetXY()
			w, _ := pdf.GetPageSize()
			_, _, right, _ := pdf.GetMargins()
			pdf.SetDrawColor(200, 200, 200)
			pdf.Line(x, y, w-right, y)
			pdf.Ln(3)
		}
	}
}

func renderList(pdf *fpdf.Fpdf, tr func(string) string, list *ast.List, src []byte, depth int) {
	left, _, _, _ := pdf.GetMargins()
	indent := left + float64(depth)*5

	idx := list.Start
	if idx == 0 {
		idx = 1
	}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d. ", idx)
			idx++
		}
		pdf.SetX(indent)
		pdf.SetTextColor(33, 33, 33)
		pdf.SetFont("Helvetica", "", bodyFontSize)
		pdf.Write(bodyLineHt, tr(marker))

		wroteInline := false
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch cc := c.(type) {
			case *ast.TextBlock, *ast.Paragraph:
				writeSpans(pdf, tr, inlineSpans(cc, src))
				wroteInline = true
			case *ast.List:
				if wroteInline {
					pdf.Ln(bodyLineHt)
					wroteInline = false
				}
				renderList(pdf, tr, cc, src, depth+1)
			}
		}
		if wroteInline {
			pdf.Ln(bodyLineHt)
		}
	}
}

func renderCode(pdf *fpdf.Fpdf, tr func(string) string, lines *text.Segments, src []byte) {
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Courier", "", codeFontSize)
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(src)), "\n")
		pdf.MultiCell(0, codeLineHt, tr(line), "", "L", false)
	}
	pdf.Ln(2)
}

func headingSize(level int) float64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 12.5
	default:
		return 11.5
	}
}

// span is a run of inline text with a uniform style.
type span struct {
	text   string
	bold   bool
	italic bool
	code   bool
	link   string
}

func inlineSpans(n ast.Node, src []byte) []span {
	var out []span
	collectSpans(n, src, span{}, &out)
	return out
}

func collectSpans(n ast.Node, src []byte, cur span, out *[]span) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			s := cur
			s.text = string(t.Segment.Value(src))
			if s.text != "" {
				*out = append(*out, s)
			}
			if t.SoftLineBreak() || t.HardLineBreak() {
				sp := cur
				sp.text = " "
				*out = append(*out, sp)
			}
		case *ast.CodeSpan:
			s := cur
			s.code = true
			var b strings.Builder
			for cc := t.FirstChild(); cc != nil; cc = cc.NextSibling() {
				if txt, ok := cc.(*ast.Text); ok {
					b.Write(txt.Segment.Value(src))
				}
			}
			s.text = b.String()
			if s.text != "" {
				*out = append(*out, s)
			}
		case *ast.Emphasis:
			s := cur
			if t.Level >= 2 {
				s.bold = true
			} else {
				s.italic = true
			}
			collectSpans(c, src, s, out)
		case *ast.Link:
			s := cur
			s.link = string(t.Destination)
			collectSpans(c, src, s, out)
		case *ast.AutoLink:
			s := cur
			s.link = string(t.URL(src))
			s.text = s.link
			*out = append(*out, s)
		default:
			collectSpans(c, src, cur, out)
		}
	}
}

func writeSpans(pdf *fpdf.Fpdf, tr func(string) string, spans []span) {
	for _, s := range spans {
		style := ""
		if s.bold {
			style += "B"
		}
		if s.italic {
			style += "I"
		}
		family := "Helvetica"
		if s.code {
			family = "Courier"
		}
		pdf.SetFont(family, style, bodyFontSize)
		if s.link != "" {
			pdf.SetTextColor(5, 99, 193)
			pdf.WriteLinkString(bodyLineHt, tr(s.text), s.link)
			continue
		}
		pdf.SetTextColor(33, 33, 33)
		pdf.Write(bodyLineHt, tr(s.text))
	}
}

func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	for _, s := range inlineSpans(n, src) {
		b.WriteString(s.text)
	}
	return strings.TrimSpace(b.String())
}

var _ Renderer = (*PDFRenderer)(nil)
