package service

import (
	"fmt"

	"github.com/hance08/duit/internal/model"
	"github.com/hance08/duit/internal/store"
	"github.com/hance08/duit/internal/validation"
)

type LedgerService struct {
	repo   store.Repository
	config Config
}

func NewLedgerService(repo store.Repository, cfg Config) *LedgerService {
	return &LedgerService{repo: repo, config: cfg}
}

// CreateTransaction validates the draft and records it. The store assigns the
// id; nothing is written when validation fails.
func (ls *LedgerService) CreateTransaction(draft model.Transaction) (*model.Transaction, error) {
	if err := validation.ValidateDraft(draft); err != nil {
		return nil, err
	}

	created, err := ls.repo.Create(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return created, nil
}

// UpdateTransaction replaces an existing transaction in full.
func (ls *LedgerService) UpdateTransaction(id int64, draft model.Transaction) (*model.Transaction, error) {
	if err := validation.ValidateDraft(draft); err != nil {
		return nil, err
	}

	updated, err := ls.repo.Update(id, draft)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetTransaction retrieves a single transaction by id.
func (ls *LedgerService) GetTransaction(id int64) (*model.Transaction, error) {
	return ls.repo.Get(id)
}

// DeleteTransaction removes a transaction. Unknown ids are a no-op.
func (ls *LedgerService) DeleteTransaction(id int64) error {
	if err := ls.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// SetGoal sets the saving target for a month, overwriting any prior value.
func (ls *LedgerService) SetGoal(monthKey string, amount int64) error {
	if err := validation.ValidateMonthKey(monthKey); err != nil {
		return err
	}
	if monthKey == "" {
		return fmt.Errorf("a saving goal needs a month (YYYY-MM)")
	}

	if err := ls.repo.SetGoal(monthKey, amount); err != nil {
		return err
	}
	return nil
}

// ResetLedger wipes every transaction and saving goal.
func (ls *LedgerService) ResetLedger() error {
	if err := ls.repo.Reset(); err != nil {
		return fmt.Errorf("failed to reset ledger: %w", err)
	}
	return nil
}
