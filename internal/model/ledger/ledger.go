// Package ledger Учет транзакций по счетам: запись, выборка, итоги.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"ledgerbot/internal/helpers/timeutils"
	types "ledgerbot/internal/model/bottypes"
	"ledgerbot/internal/model/lederrors"
)

// AccountStorage Интерфейс хранилища счетов.
// Реализации: in-memory (тесты) и Postgres (internal/model/db).
type AccountStorage interface {
	// AppendTransaction Добавление транзакции в конец последовательности счета
	// (счет создается лениво).
	AppendTransaction(ctx context.Context, id types.AccountID, tx types.Transaction) error
	// Transactions История счета в порядке добавления. Непустой fragment
	// отбирает записи, время которых содержит его как подстроку.
	Transactions(ctx context.Context, id types.AccountID, fragment string) ([]types.Transaction, error)
	// DeleteByTimeFragment Удаление записей по подстроке времени, возвращает
	// количество удаленных.
	DeleteByTimeFragment(ctx context.Context, id types.AccountID, fragment string) (int, error)
	// ClearAccount Очистка последовательности транзакций (настройки не трогает).
	ClearAccount(ctx context.Context, id types.AccountID) error
	// Settings Настройки счета; второй результат false, если счет еще не настроен.
	Settings(ctx context.Context, id types.AccountID) (types.AccountSettings, bool, error)
	// SaveSettings Сохранение настроек счета.
	SaveSettings(ctx context.Context, id types.AccountID, settings types.AccountSettings) error
}

// Service Сервис учета. Владеет проверкой входных данных, генерацией
// локального времени записи и сериализацией изменений по счету.
type Service struct {
	storage         AccountStorage
	defaultSettings types.AccountSettings

	// Мьютексы по счетам: изменения одного счета выполняются строго
	// последовательно, даже если обработчики сообщений перекрываются.
	locksMu      sync.Mutex
	accountLocks map[types.AccountID]*sync.Mutex

	now func() time.Time // Подменяется в тестах.
}

// NewService Инициализация сервиса учета.
func NewService(storage AccountStorage, defaultCurrency types.Currency, defaultTimeZone string) *Service {
	return &Service{
		storage: storage,
		defaultSettings: types.AccountSettings{
			TimeZone: defaultTimeZone,
			Currency: defaultCurrency,
		},
		accountLocks: map[types.AccountID]*sync.Mutex{},
		now:          time.Now,
	}
}

// lockAccount Захват мьютекса счета. Возвращает функцию освобождения.
func (s *Service) lockAccount(id types.AccountID) func() {
	s.locksMu.Lock()
	lock, ok := s.accountLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.accountLocks[id] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// RecordTransaction Запись транзакции. Сумма должна быть строго положительной,
// валюта - из списка допустимых. Возвращает созданную запись с локальным
// временем счета.
func (s *Service) RecordTransaction(ctx context.Context, id types.AccountID, kind types.TransactionKind, amount decimal.Decimal, currency types.Currency) (types.Transaction, error) {
	if amount.Sign() <= 0 {
		return types.Transaction{}, errors.Wrapf(lederrors.ErrInvalidAmount, "сумма %s", amount)
	}
	if _, ok := types.ParseCurrency(string(currency)); !ok {
		return types.Transaction{}, errors.Wrapf(lederrors.ErrInvalidCurrency, "валюта %q", currency)
	}

	unlock := s.lockAccount(id)
	defer unlock()

	settings, err := s.settingsLocked(ctx, id)
	if err != nil {
		return types.Transaction{}, err
	}
	loc, err := timeutils.LoadZone(settings.TimeZone)
	if err != nil {
		// Сохраненная зона всегда проходила проверку; сбой здесь - ошибка данных.
		return types.Transaction{}, err
	}

	tx := types.Transaction{
		Kind:       kind,
		Amount:     amount,
		Currency:   currency,
		RecordedAt: timeutils.FormatInZone(s.now(), loc),
	}
	if err := s.storage.AppendTransaction(ctx, id, tx); err != nil {
		return types.Transaction{}, errors.Wrap(err, "append transaction")
	}
	return tx, nil
}

// Transactions История счета в порядке добавления, при непустом fragment -
// только записи с подходящим временем.
func (s *Service) Transactions(ctx context.Context, id types.AccountID, fragment string) ([]types.Transaction, error) {
	return s.storage.Transactions(ctx, id, fragment)
}

// ComputeTotals Итоги по счету. Всегда пересчитываются по текущей
// последовательности транзакций. Отсутствие счета - нормальное пустое
// состояние, а не ошибка: возвращаются нулевые итоги.
func (s *Service) ComputeTotals(ctx context.Context, id types.AccountID) (types.Totals, error) {
	txs, err := s.storage.Transactions(ctx, id, "")
	if err != nil {
		return types.Totals{}, err
	}
	totals := types.Totals{
		Deposit:    decimal.Zero,
		Withdrawal: decimal.Zero,
		Net:        decimal.Zero,
	}
	for _, tx := range txs {
		switch tx.Kind {
		case types.Deposit:
			totals.Deposit = totals.Deposit.Add(tx.Amount)
		case types.Withdrawal:
			totals.Withdrawal = totals.Withdrawal.Add(tx.Amount)
		}
	}
	totals.Net = totals.Deposit.Sub(totals.Withdrawal)
	return totals, nil
}

// DeleteByTimeFragment Удаление транзакций, время которых содержит подстроку.
// Ноль совпадений - не ошибка, повторный вызов вернет 0.
func (s *Service) DeleteByTimeFragment(ctx context.Context, id types.AccountID, fragment string) (int, error) {
	if fragment == "" {
		return 0, errors.Wrap(lederrors.ErrNotFound, "пустой фрагмент времени")
	}

	unlock := s.lockAccount(id)
	defer unlock()

	return s.storage.DeleteByTimeFragment(ctx, id, fragment)
}

// ClearAccount Очистка последовательности транзакций счета.
// Настройки счета остаются нетронутыми.
func (s *Service) ClearAccount(ctx context.Context, id types.AccountID) error {
	unlock := s.lockAccount(id)
	defer unlock()

	return s.storage.ClearAccount(ctx, id)
}

// Settings Настройки счета (значения по умолчанию, если счет не настраивался).
func (s *Service) Settings(ctx context.Context, id types.AccountID) (types.AccountSettings, error) {
	unlock := s.lockAccount(id)
	defer unlock()

	return s.settingsLocked(ctx, id)
}

// settingsLocked Чтение настроек с ленивым созданием. Вызывается под
// мьютексом счета.
func (s *Service) settingsLocked(ctx context.Context, id types.AccountID) (types.AccountSettings, error) {
	settings, ok, err := s.storage.Settings(ctx, id)
	if err != nil {
		return types.AccountSettings{}, err
	}
	if !ok {
		settings = s.defaultSettings
		if err := s.storage.SaveSettings(ctx, id, settings); err != nil {
			return types.AccountSettings{}, errors.Wrap(err, "save default settings")
		}
	}
	return settings, nil
}

// SetTimeZone Установка часового пояса счета. Некорректное имя зоны
// отклоняется, настройки не изменяются.
func (s *Service) SetTimeZone(ctx context.Context, id types.AccountID, zoneName string) error {
	if _, err := timeutils.LoadZone(zoneName); err != nil {
		return err
	}

	unlock := s.lockAccount(id)
	defer unlock()

	settings, err := s.settingsLocked(ctx, id)
	if err != nil {
		return err
	}
	settings.TimeZone = zoneName
	return s.storage.SaveSettings(ctx, id, settings)
}

// SetCurrency Установка валюты счета по умолчанию.
func (s *Service) SetCurrency(ctx context.Context, id types.AccountID, currencyName string) error {
	currency, ok := types.ParseCurrency(currencyName)
	if !ok {
		return errors.Wrapf(lederrors.ErrInvalidCurrency, "валюта %q", currencyName)
	}

	unlock := s.lockAccount(id)
	defer unlock()

	settings, err := s.settingsLocked(ctx, id)
	if err != nil {
		return err
	}
	settings.Currency = currency
	return s.storage.SaveSettings(ctx, id, settings)
}
