package csv2pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters (A4 portrait).
const (
	marginLeft   = 20.0
	marginTop    = 25.0 // leaves room for the issue-date box
	marginRight  = 20.0
	marginBottom = 20.0

	issueBoxWidth  = 35.0
	issueBoxHeight = 6.0
	issueBoxRadius = 2.0

	labelColWidth = 35.0
	valueColWidth = 115.0
	infoRowHeight = 9.0

	recordSpacing = 10.0
)

// Composer builds one styled PDF per account bundle. The zero value is not
// usable; populate all fields.
type Composer struct {
	Font   FontHandle
	Labels Labels
	Stamp  string // issue-date stamp shown in the page header box
}

// Compose renders the bundle into a paginated document and returns the PDF
// bytes. Record blocks flow across page boundaries; the issue-date box is
// drawn on every page.
func (c Composer) Compose(bundle AccountBundle) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	c.Font.registerWith(pdf)

	pdf.SetTitle(c.Labels.Title, true)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetHeaderFunc(func() { c.drawIssueBox(pdf) })
	pdf.AddPage()

	// Title and caution
	pdf.SetFont(c.Font.Family(), "", 18)
	pdf.SetTextColor(0x00, 0x00, 0x00)
	pdf.CellFormat(0, 8, c.Labels.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(c.Font.Family(), "", 10)
	pdf.SetTextColor(0xd9, 0x53, 0x4f)
	pdf.CellFormat(0, 5, c.Labels.Caution, "", 1, "L", false, 0, "")
	pdf.Ln(7)

	for _, rec := range bundle.Records {
		c.writeRecord(pdf, rec)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrComposePDF, err)
	}
	return buf.Bytes(), nil
}

// writeRecord emits one self-contained visual block: a sub-heading with the
// record name, then a filled label/value table. Optional fields appear only
// when non-empty.
func (c Composer) writeRecord(pdf *fpdf.Fpdf, rec CredentialRecord) {
	pdf.SetFont(c.Font.Family(), "", 14)
	pdf.SetTextColor(0x34, 0x3a, 0x40)
	pdf.CellFormat(0, 7, c.Labels.RecordPrefix+rec.Name, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	rows := [][2]string{{"ID:", rec.ID}}
	if rec.Password != "" {
		rows = append(rows, [2]string{"PASSWORD:", rec.Password})
	}
	if rec.Serial != "" {
		rows = append(rows, [2]string{"SERIAL CODE:", rec.Serial})
	}

	pdf.SetFillColor(0xf8, 0xf9, 0xfa)
	for _, row := range rows {
		pdf.SetFont(labelFamily, "", 10)
		pdf.SetTextColor(0x00, 0x00, 0x00)
		pdf.CellFormat(labelColWidth, infoRowHeight, row[0], "", 0, "L", true, 0, "")
		pdf.SetFont(valueFamily, "", 11)
		pdf.CellFormat(valueColWidth, infoRowHeight, row[1], "", 1, "L", true, 0, "")
	}

	pdf.Ln(recordSpacing)
}

// drawIssueBox renders the rounded issue-date stamp in the top-right
// margin area. Runs on every page via the header hook, independent of the
// flowing content.
func (c Composer) drawIssueBox(pdf *fpdf.Fpdf) {
	pageWidth, _ := pdf.GetPageSize()
	x := pageWidth - marginRight - issueBoxWidth
	y := 12.0 - issueBoxHeight/2

	pdf.SetFillColor(0xf8, 0xf9, 0xfa)
	pdf.SetDrawColor(0xde, 0xe2, 0xe6)
	pdf.SetLineWidth(0.5)
	pdf.RoundedRect(x, y, issueBoxWidth, issueBoxHeight, issueBoxRadius, "1234", "FD")

	pdf.SetTextColor(0x6c, 0x75, 0x7d)
	pdf.SetFont(labelFamily, "", 8)
	pdf.Text(x+2, y+issueBoxHeight-2, "Issue Date: "+c.Stamp)
}
