package main

import (
	"Fintar/internal/entity"
	"Fintar/pkg/utils"
	"sync"
	"time"

	netContext "golang.org/x/net/context"
)

// memoryStore keeps transactions for a single CLI run.
type memoryStore struct {
	mu           sync.Mutex
	utils        utils.IUtils
	transactions []entity.Transaction
}

func newMemoryStore() *memoryStore {
	return &memoryStore{utils: utils.New()}
}

func (m *memoryStore) CreateTransaction(_ netContext.Context, userID string, tx entity.Transaction) (entity.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	id, err := m.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, err
	}

	switch t := tx.(type) {
	case *entity.Expense:
		saved := *t
		saved.ID, saved.UserID = id, userID
		tx = &saved
	case *entity.Income:
		saved := *t
		saved.ID, saved.UserID = id, userID
		tx = &saved
	case *entity.Asset:
		saved := *t
		saved.ID, saved.UserID = id, userID
		tx = &saved
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, tx)
	return tx, nil
}

func (m *memoryStore) GetTransactions(_ netContext.Context, _ string) ([]entity.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.Transaction(nil), m.transactions...), nil
}
