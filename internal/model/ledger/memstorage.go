package ledger

// Реализация хранилища счетов в памяти процесса.
// Используется в тестах и при запуске без базы данных.

import (
	"context"
	"strings"
	"sync"

	types "ledgerbot/internal/model/bottypes"
)

// memAccount Данные одного счета в памяти.
type memAccount struct {
	transactions []types.Transaction
	settings     *types.AccountSettings
}

// MemStorage Хранилище счетов в памяти. Потокобезопасно.
type MemStorage struct {
	mu       sync.RWMutex
	accounts map[types.AccountID]*memAccount
}

// NewMemStorage Инициализация пустого хранилища.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		accounts: map[types.AccountID]*memAccount{},
	}
}

// account Получение счета с ленивым созданием. Вызывается под mu.Lock.
func (m *MemStorage) account(id types.AccountID) *memAccount {
	acc, ok := m.accounts[id]
	if !ok {
		acc = &memAccount{}
		m.accounts[id] = acc
	}
	return acc
}

func (m *MemStorage) AppendTransaction(_ context.Context, id types.AccountID, tx types.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc := m.account(id)
	acc.transactions = append(acc.transactions, tx)
	return nil
}

func (m *MemStorage) Transactions(_ context.Context, id types.AccountID, fragment string) ([]types.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}
	res := make([]types.Transaction, 0, len(acc.transactions))
	for _, tx := range acc.transactions {
		if fragment == "" || strings.Contains(tx.RecordedAt, fragment) {
			res = append(res, tx)
		}
	}
	return res, nil
}

func (m *MemStorage) DeleteByTimeFragment(_ context.Context, id types.AccountID, fragment string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return 0, nil
	}
	kept := acc.transactions[:0]
	removed := 0
	for _, tx := range acc.transactions {
		if strings.Contains(tx.RecordedAt, fragment) {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	acc.transactions = kept
	return removed, nil
}

func (m *MemStorage) ClearAccount(_ context.Context, id types.AccountID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.transactions = nil
	}
	return nil
}

func (m *MemStorage) Settings(_ context.Context, id types.AccountID) (types.AccountSettings, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, ok := m.accounts[id]
	if !ok || acc.settings == nil {
		return types.AccountSettings{}, false, nil
	}
	return *acc.settings, true, nil
}

func (m *MemStorage) SaveSettings(_ context.Context, id types.AccountID, settings types.AccountSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc := m.account(id)
	acc.settings = &settings
	return nil
}
