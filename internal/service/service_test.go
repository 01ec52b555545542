package service

import (
	"github.com/hance08/duit/internal/model"
	"github.com/hance08/duit/internal/store"
)

// fakeRepo is an in-memory store.Repository for service tests.
type fakeRepo struct {
	transactions []model.Transaction
	goals        model.SavingGoals
	nextID       int64
}

func newFakeRepo(transactions ...model.Transaction) *fakeRepo {
	nextID := int64(1)
	for _, t := range transactions {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	return &fakeRepo{
		transactions: transactions,
		goals:        model.SavingGoals{},
		nextID:       nextID,
	}
}

func (f *fakeRepo) Create(draft model.Transaction) (*model.Transaction, error) {
	draft.ID = f.nextID
	f.nextID++
	f.transactions = append(f.transactions, draft)
	return &draft, nil
}

func (f *fakeRepo) Update(id int64, draft model.Transaction) (*model.Transaction, error) {
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			draft.ID = id
			f.transactions[i] = draft
			return &draft, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeRepo) Delete(id int64) error {
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) Get(id int64) (*model.Transaction, error) {
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			t := f.transactions[i]
			return &t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeRepo) All() []model.Transaction {
	out := make([]model.Transaction, len(f.transactions))
	copy(out, f.transactions)
	return out
}

func (f *fakeRepo) Goals() model.SavingGoals {
	out := make(model.SavingGoals, len(f.goals))
	for k, v := range f.goals {
		out[k] = v
	}
	return out
}

func (f *fakeRepo) SetGoal(monthKey string, amount int64) error {
	if amount < 0 {
		return store.ErrInvalidGoal
	}
	f.goals[monthKey] = amount
	return nil
}

func (f *fakeRepo) Reset() error {
	f.transactions = nil
	f.goals = model.SavingGoals{}
	f.nextID = 1
	return nil
}

func (f *fakeRepo) Close() error { return nil }
