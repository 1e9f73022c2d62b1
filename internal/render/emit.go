package render

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf"

	"resume-composer/internal/domain"
)

// Page geometry is fixed: A4, single column, uniform margins (points).
const (
	pageMargin = 54.0
	bulletGap  = 12.0
)

// A fixed creation date keeps the emitted bytes identical across runs for
// the same (blocks, template) input.
var emitEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Emit flows the block sequence onto A4 pages and writes the PDF to w.
// Page breaks are a pure function of content volume and the template's
// style metrics. The document is composed in memory and written to w in a
// single flush, so w receives either the complete PDF or nothing. Any
// inconsistency is a render failure: it is logged and returned before the
// flush.
func Emit(blocks []Block, tpl domain.Template, w io.Writer) error {
	st := styleFor(tpl)

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(emitEpoch)
	pdf.SetTitle("Resume", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	textW := pageW - 2*pageMargin

	for i, b := range blocks {
		switch blk := b.(type) {
		case Heading:
			emitHeading(pdf, tr, st, blk, i, textW)
		case Paragraph:
			pdf.SetFont(st.font, "", st.body)
			pdf.SetTextColor(0, 0, 0)
			pdf.MultiCell(textW, st.body*st.leading, tr(blk.Text), "", "L", false)
		case BulletList:
			pdf.SetFont(st.font, "", st.body)
			pdf.SetTextColor(0, 0, 0)
			for _, item := range blk.Items {
				lineH := st.body * st.leading
				pdf.CellFormat(bulletGap, lineH, tr("•"), "", 0, "R", false, 0, "")
				pdf.MultiCell(textW-bulletGap, lineH, tr(item), "", "L", false)
			}
		case KeyValueLine:
			lineH := st.body * st.leading
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont(st.font, "B", st.body)
			pdf.Write(lineH, tr(blk.Label+": "))
			pdf.SetFont(st.font, "", st.body)
			pdf.Write(lineH, tr(blk.Value))
			pdf.Ln(lineH)
		default:
			err := domain.NewRenderFailure(fmt.Errorf("unknown layout block %T", b))
			slog.Error("emit aborted", "error", err)
			return err
		}
	}

	if pdf.Err() {
		err := domain.NewRenderFailure(pdf.Error())
		slog.Error("emit aborted", "error", err)
		return err
	}
	if err := pdf.Output(w); err != nil {
		return domain.NewRenderFailure(err)
	}
	return nil
}

func emitHeading(pdf *gofpdf.Fpdf, tr func(string) string, st style, h Heading, idx int, textW float64) {
	switch h.Level {
	case 1:
		align := "L"
		if st.centerName {
			align = "C"
		}
		pdf.SetFont(st.font, "B", st.name)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(textW, st.name*st.leading, tr(h.Text), "", 1, align, false, 0, "")
	case 2:
		if idx > 0 {
			pdf.Ln(st.sectionGap)
		}
		pdf.SetFont(st.font, "B", st.section)
		pdf.SetTextColor(st.accent.r, st.accent.g, st.accent.b)
		pdf.CellFormat(textW, st.section*st.leading, tr(h.Text), "", 1, "L", false, 0, "")
		if st.rule {
			y := pdf.GetY()
			pdf.SetDrawColor(st.accent.r, st.accent.g, st.accent.b)
			pdf.Line(pageMargin, y, pageMargin+textW, y)
			pdf.Ln(3)
		}
	default:
		pdf.Ln(st.sectionGap / 3)
		pdf.SetFont(st.font, "B", st.entry)
		pdf.SetTextColor(st.muted.r, st.muted.g, st.muted.b)
		pdf.CellFormat(textW, st.entry*st.leading, tr(h.Text), "", 1, "L", false, 0, "")
	}
}
