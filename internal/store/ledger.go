package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/hance08/duit/internal/constants"
	"github.com/hance08/duit/internal/model"
)

var (
	ErrNotFound    = errors.New("transaction not found")
	ErrInvalidGoal = errors.New("goal amount must be a non-negative number")
)

// LedgerStore owns the in-memory ledger and keeps it in sync with the
// document store. Every mutation re-serializes both documents in full; there
// is no incremental persistence.
type LedgerStore struct {
	mu           sync.Mutex
	docs         DocumentStore
	transactions []model.Transaction
	goals        model.SavingGoals
	nextID       int64
}

// OpenLedger loads both ledger documents from the document store, starting
// from empty collections when nothing has been persisted yet.
func OpenLedger(docs DocumentStore) (*LedgerStore, error) {
	ls := &LedgerStore{
		docs:   docs,
		goals:  model.SavingGoals{},
		nextID: 1,
	}

	raw, ok, err := docs.Get(constants.DocTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &ls.transactions); err != nil {
			return nil, fmt.Errorf("corrupt transactions document: %w", err)
		}
	}

	raw, ok, err = docs.Get(constants.DocSavingGoals)
	if err != nil {
		return nil, fmt.Errorf("failed to load saving goals: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &ls.goals); err != nil {
			return nil, fmt.Errorf("corrupt saving goals document: %w", err)
		}
	}

	for _, t := range ls.transactions {
		if t.ID >= ls.nextID {
			ls.nextID = t.ID + 1
		}
	}

	return ls, nil
}

// Create assigns a fresh id to the draft, appends it and persists.
func (ls *LedgerStore) Create(draft model.Transaction) (*model.Transaction, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	draft.ID = ls.nextID
	ls.nextID++
	ls.transactions = append(ls.transactions, draft)

	if err := ls.persistLocked(); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Update replaces the transaction with the given id in full.
func (ls *LedgerStore) Update(id int64, draft model.Transaction) (*model.Transaction, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	for i := range ls.transactions {
		if ls.transactions[i].ID == id {
			draft.ID = id
			ls.transactions[i] = draft

			if err := ls.persistLocked(); err != nil {
				return nil, err
			}
			return &draft, nil
		}
	}
	return nil, fmt.Errorf("transaction #%d: %w", id, ErrNotFound)
}

// Delete removes the transaction with the given id. Deleting an id that does
// not exist is a no-op, not an error.
func (ls *LedgerStore) Delete(id int64) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	for i := range ls.transactions {
		if ls.transactions[i].ID == id {
			ls.transactions = append(ls.transactions[:i], ls.transactions[i+1:]...)
			return ls.persistLocked()
		}
	}
	return nil
}

// Get returns the transaction with the given id.
func (ls *LedgerStore) Get(id int64) (*model.Transaction, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	for i := range ls.transactions {
		if ls.transactions[i].ID == id {
			t := ls.transactions[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("transaction #%d: %w", id, ErrNotFound)
}

// All returns a snapshot of every transaction. Order carries no meaning;
// callers that need chronological output must sort explicitly.
func (ls *LedgerStore) All() []model.Transaction {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	out := make([]model.Transaction, len(ls.transactions))
	copy(out, ls.transactions)
	return out
}

// Goals returns a snapshot of the saving goal map.
func (ls *LedgerStore) Goals() model.SavingGoals {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	out := make(model.SavingGoals, len(ls.goals))
	for k, v := range ls.goals {
		out[k] = v
	}
	return out
}

// SetGoal overwrites the saving target for a month.
func (ls *LedgerStore) SetGoal(monthKey string, amount int64) error {
	if amount < 0 {
		return ErrInvalidGoal
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.goals[monthKey] = amount
	return ls.persistLocked()
}

// Reset clears every transaction and saving goal and persists the empty state.
func (ls *LedgerStore) Reset() error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.transactions = nil
	ls.goals = model.SavingGoals{}
	ls.nextID = 1
	return ls.persistLocked()
}

func (ls *LedgerStore) Close() error {
	return ls.docs.Close()
}

// persistLocked re-serializes both documents. Callers must hold ls.mu.
func (ls *LedgerStore) persistLocked() error {
	txs := ls.transactions
	if txs == nil {
		txs = []model.Transaction{}
	}

	rawTxs, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to serialize transactions: %w", err)
	}
	rawGoals, err := json.Marshal(ls.goals)
	if err != nil {
		return fmt.Errorf("failed to serialize saving goals: %w", err)
	}

	if err := ls.docs.Set(constants.DocTransactions, string(rawTxs)); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}
	if err := ls.docs.Set(constants.DocSavingGoals, string(rawGoals)); err != nil {
		return fmt.Errorf("failed to persist saving goals: %w", err)
	}
	return nil
}
