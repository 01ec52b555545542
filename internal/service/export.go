package service

import (
	"fmt"
	"strings"

	"github.com/hance08/duit/internal/constants"
	"github.com/hance08/duit/internal/model"
)

const csvHeader = "ID,Tanggal,Tipe,Kategori,Deskripsi,Jumlah"

// ToCSV serializes transactions into the spreadsheet export format. Amounts
// are signed: income is positive, expense and saving are negated since both
// are cash outflow. Only the description is quoted; internal quotes are
// doubled. An empty set yields an empty string so the caller can report that
// there is nothing to export.
func ToCSV(transactions []model.Transaction) string {
	if len(transactions) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")

	for _, t := range transactions {
		amount := t.Amount
		if t.Type != model.TypeIncome {
			amount = -amount
		}

		text := strings.ReplaceAll(t.Text, `"`, `""`)

		fmt.Fprintf(&b, "%d,%s,%s,%s,\"%s\",%d\n",
			t.ID, t.Date, t.Type.Display(), t.Category, text, amount)
	}

	return b.String()
}

// ExportMonth renders the month-filtered ledger as CSV, newest first, and
// returns the report file name alongside the document body.
func (rs *ReportService) ExportMonth(monthKey string) (fileName, content string, err error) {
	report, err := rs.Monthly(monthKey)
	if err != nil {
		return "", "", err
	}

	label := rs.config.ReportLabel
	if label == "" {
		label = "Personal"
	}

	monthLabel := monthKey
	if monthLabel == "" {
		monthLabel = "All"
	}

	fileName = fmt.Sprintf(constants.ExportFilePattern, label, monthLabel)
	return fileName, ToCSV(report.Transactions), nil
}
