package cmd

import (
	"fmt"
	"time"

	"github.com/hance08/duit/internal/constants"
	"github.com/hance08/duit/internal/model"
	"github.com/hance08/duit/internal/service"
	"github.com/hance08/duit/internal/ui/prompts"
	"github.com/hance08/duit/internal/ui/views"
	"github.com/hance08/duit/internal/utils"
	"github.com/hance08/duit/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Desc     string
	Amount   string
	Type     string
	Category string
	Date     string
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Record an income, expense or saving transaction.

	You can use flags for quick entry or interactive mode for guided input.

	Examples:
	# Interactive mode (recommended for beginners)
	duit add

	# Quick mode with flags
	duit add --desc "Lunch" --amount 50000 --type expense --category Food

	# Backdated entry
	duit add --desc "Salary" --amount 8000000 --type income --category Salary --date 2024-05-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount in whole rupiah (e.g., 50000 or 50.000)")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type: income, expense or saving")
	cmd.Flags().StringVar(&flags.Category, "category", "", "Transaction category (see each type's category list)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD), default is today")

	return cmd
}

func (r *addRunner) Run() error {
	var draft model.Transaction
	var err error

	// Check if using flag mode or interactive mode
	hasFlags := r.cmd.Flags().Changed("desc") || r.cmd.Flags().Changed("amount") ||
		r.cmd.Flags().Changed("type") || r.cmd.Flags().Changed("category")

	if hasFlags {
		draft, err = r.flagsMode()
	} else {
		draft, err = r.interactiveMode()
	}
	if err != nil {
		return err
	}

	created, err := r.svc.Ledger.CreateTransaction(draft)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction created successfully! (ID: %d)\n", created.ID)

	return views.RenderTransactionDetail(created)
}

func (r *addRunner) flagsMode() (model.Transaction, error) {
	if r.flags.Amount == "" || r.flags.Type == "" || r.flags.Category == "" {
		return model.Transaction{}, fmt.Errorf("when using flags, --amount, --type, and --category are all required")
	}

	txType, err := model.ParseType(r.flags.Type)
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}

	date := r.flags.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	return model.Transaction{
		Text:     r.flags.Desc,
		Amount:   amount,
		Type:     txType,
		Category: r.flags.Category,
		Date:     date,
	}, nil
}

func (r *addRunner) interactiveMode() (model.Transaction, error) {
	// Step 1: Select transaction type
	txType, err := prompts.PromptTransactionType(model.TypeExpense)
	if err != nil {
		return model.Transaction{}, err
	}

	// Step 2: Select category for the type
	category, err := prompts.PromptCategory(txType, "")
	if err != nil {
		return model.Transaction{}, err
	}

	// Step 3: Get description
	description, err := prompts.PromptDescription("Description:", func(s string) error {
		return validation.ValidateDescription(s)
	})
	if err != nil {
		return model.Transaction{}, err
	}

	// Step 4: Get amount
	amountStr, err := prompts.PromptAmount(
		"Amount:",
		"Whole rupiah, no symbol needed (e.g. 50000 or 50.000)",
		func(s string) error { return validation.ValidateAmount(s) },
	)
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := utils.ParseAmount(amountStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount format: %w", err)
	}

	// Step 5: Transaction date
	date, err := prompts.PromptTransactionDate("")
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Text:     description,
		Amount:   amount,
		Type:     txType,
		Category: category,
		Date:     date,
	}, nil
}
