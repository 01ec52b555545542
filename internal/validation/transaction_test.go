package validation

import (
	"testing"

	"github.com/hance08/duit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() model.Transaction {
	return model.Transaction{
		Text:     "Lunch",
		Amount:   50000,
		Type:     model.TypeExpense,
		Category: "Food",
		Date:     "2024-05-10",
	}
}

func TestValidateDraft(t *testing.T) {
	t.Run("valid draft passes", func(t *testing.T) {
		assert.NoError(t, ValidateDraft(validDraft()))
	})

	tests := []struct {
		name      string
		mutate    func(*model.Transaction)
		wantField string
	}{
		{"empty description", func(d *model.Transaction) { d.Text = "   " }, "description"},
		{"zero amount", func(d *model.Transaction) { d.Amount = 0 }, "amount"},
		{"negative amount", func(d *model.Transaction) { d.Amount = -100 }, "amount"},
		{"unknown type", func(d *model.Transaction) { d.Type = "transfer" }, "type"},
		{"empty category", func(d *model.Transaction) { d.Category = "" }, "category"},
		{"empty date", func(d *model.Transaction) { d.Date = "" }, "date"},
		{"malformed date", func(d *model.Transaction) { d.Date = "10-05-2024" }, "date"},
		{"impossible date", func(d *model.Transaction) { d.Date = "2024-02-30" }, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := ValidateDraft(draft)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("50000"))
	assert.NoError(t, ValidateAmount("1.500.000"))
	assert.Error(t, ValidateAmount("0"))
	assert.Error(t, ValidateAmount("-500"))
	assert.Error(t, ValidateAmount("abc"))
	assert.Error(t, ValidateAmount(42))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2024-05-10"))
	assert.Error(t, ValidateDate(""))
	assert.Error(t, ValidateDate("2024/05/10"))
}

func TestValidateMonthKey(t *testing.T) {
	assert.NoError(t, ValidateMonthKey(""))
	assert.NoError(t, ValidateMonthKey("2024-05"))
	assert.Error(t, ValidateMonthKey("2024"))
	assert.Error(t, ValidateMonthKey("05-2024"))
	assert.Error(t, ValidateMonthKey("2024-13"))
}

func TestParseGoalAmount(t *testing.T) {
	amount, err := ParseGoalAmount("500.000")
	require.NoError(t, err)
	assert.Equal(t, int64(500000), amount)

	amount, err = ParseGoalAmount("0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), amount)

	_, err = ParseGoalAmount("-100")
	assert.Error(t, err)

	_, err = ParseGoalAmount("lots")
	assert.Error(t, err)
}
