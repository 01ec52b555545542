package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hance08/duit/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// utf8BOM makes spreadsheet apps pick up the encoding correctly.
const utf8BOM = "\uFEFF"

func NewExportCmd(svc *service.Service) *cobra.Command {
	var month string
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a month's transactions to CSV",
		Long: `Write the transactions of a month to a CSV file
(Financial_Report_<label>_<month>.csv). Amounts are signed: income positive,
expense and saving negative.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			monthKey := monthOrDefault(month)

			fileName, content, err := svc.Report.ExportMonth(monthKey)
			if err != nil {
				return err
			}

			if content == "" {
				pterm.Warning.Println("Nothing to export for this month")
				return nil
			}

			outPath := filepath.Join(outDir, fileName)
			if err := os.WriteFile(outPath, []byte(utf8BOM+content), 0644); err != nil {
				return fmt.Errorf("failed to write report file: %w", err)
			}

			pterm.Success.Printf("Report written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month filter (YYYY-MM, or 'all')")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory for the report file")

	return cmd
}
