package store

import "github.com/hance08/duit/internal/model"

// DocumentStore is the persistence contract: a durable key/value store of
// self-describing text documents. An absent key is not an error.
type DocumentStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Repository is the ledger surface consumed by the service layer.
type Repository interface {
	// Transaction Operations
	Create(draft model.Transaction) (*model.Transaction, error)
	Update(id int64, draft model.Transaction) (*model.Transaction, error)
	Delete(id int64) error
	Get(id int64) (*model.Transaction, error)
	All() []model.Transaction

	// Saving Goal Operations
	Goals() model.SavingGoals
	SetGoal(monthKey string, amount int64) error

	Reset() error
	Close() error
}
