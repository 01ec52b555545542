package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/duit/internal/constants"
	"github.com/hance08/duit/internal/model"
	"github.com/hance08/duit/internal/utils"
)

// ValidationError reports which draft field was rejected. Validation runs
// before any mutation, so a failed draft never reaches the store.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// ValidateDraft checks a full transaction draft before create/update.
func ValidateDraft(draft model.Transaction) error {
	if strings.TrimSpace(draft.Text) == "" {
		return &ValidationError{Field: "description", Msg: "can't be empty"}
	}
	if draft.Amount <= 0 {
		return &ValidationError{Field: "amount", Msg: "must be a positive number"}
	}
	if !draft.Type.Valid() {
		return &ValidationError{Field: "type", Msg: fmt.Sprintf("'%s' is not income, expense or saving", draft.Type)}
	}
	if strings.TrimSpace(draft.Category) == "" {
		return &ValidationError{Field: "category", Msg: "can't be empty"}
	}
	if draft.Date == "" {
		return &ValidationError{Field: "date", Msg: "can't be empty"}
	}
	if _, err := time.Parse(constants.DateFormat, draft.Date); err != nil {
		return &ValidationError{Field: "date", Msg: "must be a valid date (YYYY-MM-DD)"}
	}
	return nil
}

// ValidateDescription validates a description prompt value.
// Accepts any (for survey/huh compatibility).
func ValidateDescription(val any) error {
	desc, ok := val.(string)
	if !ok {
		return fmt.Errorf("description must be a string")
	}
	if strings.TrimSpace(desc) == "" {
		return fmt.Errorf("description can't be empty")
	}
	return nil
}

// ValidateAmount validates a positive amount prompt value.
func ValidateAmount(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("amount must be a string")
	}

	amount, err := utils.ParseAmount(input)
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("amount must be a positive number")
	}
	return nil
}

// ValidateDate validates a YYYY-MM-DD prompt value.
func ValidateDate(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("date must be a string")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("date can't be empty")
	}
	if _, err := time.Parse(constants.DateFormat, input); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

// ValidateMonthKey validates a YYYY-MM month filter value. Empty is allowed
// and means "all months".
func ValidateMonthKey(monthKey string) error {
	if monthKey == "" {
		return nil
	}
	if _, err := time.Parse(constants.MonthFormat, monthKey); err != nil {
		return fmt.Errorf("invalid month '%s', use YYYY-MM", monthKey)
	}
	return nil
}

// ParseGoalAmount converts goal input to a non-negative rupiah amount.
func ParseGoalAmount(input string) (int64, error) {
	amount, err := utils.ParseAmount(input)
	if err != nil {
		return 0, fmt.Errorf("goal target must be a number: %w", err)
	}
	if amount < 0 {
		return 0, fmt.Errorf("goal target can't be negative")
	}
	return amount, nil
}
