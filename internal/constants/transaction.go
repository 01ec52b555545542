package constants

const (
	// Date Layouts
	DateFormat  = "2006-01-02"
	MonthFormat = "2006-01"

	// Persisted document keys
	DocTransactions = "transactions"
	DocSavingGoals  = "saving_goals"

	// CSV export
	ExportFilePattern = "Financial_Report_%s_%s.csv"
)
