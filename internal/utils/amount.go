package utils

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders a whole-rupiah amount with id-ID digit grouping,
// e.g. 1000000 -> "Rp 1.000.000".
func FormatRupiah(amount int64) string {
	return rupiahPrinter.Sprintf("Rp %d", amount)
}

// ParseAmount converts user amount input to whole rupiah. Digit grouping
// separators ("1.500.000") and an optional "Rp" prefix are stripped first.
// Sign checks are up to the caller.
func ParseAmount(input string) (int64, error) {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.TrimPrefix(cleaned, "Rp")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return 0, fmt.Errorf("amount is empty")
	}

	amount, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", input)
	}
	return amount, nil
}
