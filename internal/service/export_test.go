package service

import (
	"strings"
	"testing"

	"github.com/hance08/duit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSV(t *testing.T) {
	t.Run("empty set yields empty string", func(t *testing.T) {
		assert.Equal(t, "", ToCSV(nil))
	})

	t.Run("signed amounts and quoting", func(t *testing.T) {
		transactions := []model.Transaction{
			{ID: 1, Text: "Monthly salary", Amount: 1000000, Type: model.TypeIncome, Category: "Salary", Date: "2024-05-01"},
			{ID: 2, Text: "Lunch", Amount: 50000, Type: model.TypeExpense, Category: "Food", Date: "2024-05-10"},
			{ID: 3, Text: "Emergency stash", Amount: 200000, Type: model.TypeSaving, Category: "Emergency Fund", Date: "2024-05-15"},
		}

		got := ToCSV(transactions)

		lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "ID,Tanggal,Tipe,Kategori,Deskripsi,Jumlah", lines[0])
		assert.Equal(t, `1,2024-05-01,Income,Salary,"Monthly salary",1000000`, lines[1])
		assert.Equal(t, `2,2024-05-10,Expense,Food,"Lunch",-50000`, lines[2])
		assert.Equal(t, `3,2024-05-15,Saving,Emergency Fund,"Emergency stash",-200000`, lines[3])
	})

	t.Run("quotes in the description are doubled", func(t *testing.T) {
		transactions := []model.Transaction{
			{ID: 7, Text: `Dinner at "Warteg Bahari"`, Amount: 35000, Type: model.TypeExpense, Category: "Food", Date: "2024-05-12"},
		}

		got := ToCSV(transactions)

		assert.Contains(t, got, `"Dinner at ""Warteg Bahari"""`)
	})
}

func TestExportMonth(t *testing.T) {
	repo := newFakeRepo(
		tx(1, model.TypeIncome, "Salary", 1000000, "2024-05-01"),
		tx(2, model.TypeExpense, "Food", 50000, "2024-05-10"),
		tx(3, model.TypeExpense, "Food", 99999, "2024-06-01"),
	)

	t.Run("month filter and file name", func(t *testing.T) {
		rs := NewReportService(repo, Config{ReportLabel: "Budi"})

		fileName, content, err := rs.ExportMonth("2024-05")
		require.NoError(t, err)

		assert.Equal(t, "Financial_Report_Budi_2024-05.csv", fileName)
		assert.Contains(t, content, "2024-05-01")
		assert.NotContains(t, content, "2024-06-01")
	})

	t.Run("label defaults and all months", func(t *testing.T) {
		rs := NewReportService(repo, Config{})

		fileName, content, err := rs.ExportMonth("")
		require.NoError(t, err)

		assert.Equal(t, "Financial_Report_Personal_All.csv", fileName)
		assert.Contains(t, content, "2024-06-01")
	})

	t.Run("no transactions gives empty content", func(t *testing.T) {
		rs := NewReportService(newFakeRepo(), Config{})

		_, content, err := rs.ExportMonth("2024-05")
		require.NoError(t, err)
		assert.Equal(t, "", content)
	})

	t.Run("bad month key is rejected", func(t *testing.T) {
		rs := NewReportService(repo, Config{})

		_, _, err := rs.ExportMonth("May 2024")
		assert.Error(t, err)
	})
}
