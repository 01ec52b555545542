package cmd

import (
	"fmt"

	"github.com/hance08/duit/internal/model"
	"github.com/hance08/duit/internal/service"
	"github.com/hance08/duit/internal/ui/prompts"
	"github.com/hance08/duit/internal/ui/views"
	"github.com/hance08/duit/internal/utils"
	"github.com/hance08/duit/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editFlags struct {
	Desc     string
	Amount   string
	Type     string
	Category string
	Date     string
}

type editRunner struct {
	svc   *service.Service
	flags *editFlags
	cmd   *cobra.Command
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Replace a transaction's fields. Fields you don't change keep their
current value. Without flags an interactive form pre-filled with the current
values is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &editRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "New description")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "New amount in whole rupiah")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "New type: income, expense or saving")
	cmd.Flags().StringVar(&flags.Category, "category", "", "New category")
	cmd.Flags().StringVar(&flags.Date, "date", "", "New date (YYYY-MM-DD)")

	return cmd
}

func (r *editRunner) Run(rawID string) error {
	var id int64
	if _, err := fmt.Sscanf(rawID, "%d", &id); err != nil {
		return fmt.Errorf("invalid transaction ID: %s", rawID)
	}

	current, err := r.svc.Ledger.GetTransaction(id)
	if err != nil {
		return err
	}

	hasFlags := r.cmd.Flags().Changed("desc") || r.cmd.Flags().Changed("amount") ||
		r.cmd.Flags().Changed("type") || r.cmd.Flags().Changed("category") ||
		r.cmd.Flags().Changed("date")

	var draft model.Transaction
	if hasFlags {
		draft, err = r.flagsMode(*current)
	} else {
		draft, err = r.interactiveMode(*current)
	}
	if err != nil {
		return err
	}

	updated, err := r.svc.Ledger.UpdateTransaction(id, draft)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d updated successfully\n", updated.ID)
	return views.RenderTransactionDetail(updated)
}

func (r *editRunner) flagsMode(current model.Transaction) (model.Transaction, error) {
	draft := current

	if r.cmd.Flags().Changed("desc") {
		draft.Text = r.flags.Desc
	}
	if r.cmd.Flags().Changed("amount") {
		amount, err := utils.ParseAmount(r.flags.Amount)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("invalid amount: %w", err)
		}
		draft.Amount = amount
	}
	if r.cmd.Flags().Changed("type") {
		txType, err := model.ParseType(r.flags.Type)
		if err != nil {
			return model.Transaction{}, err
		}
		draft.Type = txType

		// A type change invalidates the old category unless one was given.
		if !r.cmd.Flags().Changed("category") {
			return model.Transaction{}, fmt.Errorf("changing --type also needs --category (the category lists differ per type)")
		}
	}
	if r.cmd.Flags().Changed("category") {
		draft.Category = r.flags.Category
	}
	if r.cmd.Flags().Changed("date") {
		draft.Date = r.flags.Date
	}

	return draft, nil
}

func (r *editRunner) interactiveMode(current model.Transaction) (model.Transaction, error) {
	txType, err := prompts.PromptTransactionType(current.Type)
	if err != nil {
		return model.Transaction{}, err
	}

	defaultCategory := current.Category
	if txType != current.Type {
		defaultCategory = ""
	}

	category, err := prompts.PromptCategory(txType, defaultCategory)
	if err != nil {
		return model.Transaction{}, err
	}

	description, err := prompts.PromptDescription(
		fmt.Sprintf("Description (current: %s):", current.Text),
		nil,
	)
	if err != nil {
		return model.Transaction{}, err
	}
	if description == "" {
		description = current.Text
	}

	amountStr, err := prompts.PromptAmount(
		fmt.Sprintf("Amount (current: %s):", utils.FormatRupiah(current.Amount)),
		"Press Enter to keep the current amount",
		func(s string) error {
			if s == "" {
				return nil
			}
			return validation.ValidateAmount(s)
		},
	)
	if err != nil {
		return model.Transaction{}, err
	}

	amount := current.Amount
	if amountStr != "" {
		amount, err = utils.ParseAmount(amountStr)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("invalid amount format: %w", err)
		}
	}

	date, err := prompts.PromptTransactionDate(current.Date)
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
