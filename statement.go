package minibank

import (
	"io"

	"github.com/go-pdf/fpdf"
)

var (
	statementCols = []struct {
		title string
		width float64
		align string
	}{
		{"Account", 25, "L"},
		{"Kind", 25, "L"},
		{"Holder", 55, "L"},
		{"Balance", 35, "R"},
		{"Terms", 40, "R"},
	}
)

// WriteStatement renders descs as a one-table PDF in the order given.
func WriteStatement(w io.Writer, descs []Description) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Account statement", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Account statement", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range statementCols {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, d := range descs {
		row := []string{d.ID, string(d.Kind), d.Holder, d.Balance.StringFixed(2), terms(d)}
		for i, c := range statementCols {
			pdf.CellFormat(c.width, 7, row[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(descs) == 0 {
		pdf.CellFormat(0, 7, "no accounts", "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

func terms(d Description) string {
	switch {
	case d.InterestRate != nil:
		return d.InterestRate.String() + "% interest"
	case d.OverdraftLimit != nil:
		return d.OverdraftLimit.StringFixed(2) + " overdraft"
	}
	return ""
}
