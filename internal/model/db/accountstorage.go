// Package db - Работа с хранилищами (базой данных).
package db

// Хранилище счетов и транзакций на Postgres (sqlx).
//
// Схема:
//   accounts(id TEXT PRIMARY KEY, time_zone TEXT, currency TEXT)
//   transactions(id BIGSERIAL PRIMARY KEY, account_id TEXT,
//                kind TEXT, amount NUMERIC, currency TEXT, recorded_at TEXT)
//
// recorded_at хранится строкой в локальном времени счета: удаление по
// фрагменту времени - это поиск подстроки в сериализованном значении.

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"ledgerbot/internal/helpers/dbutils"
	types "ledgerbot/internal/model/bottypes"
)

// transactionDB Тип, принимающий строку таблицы транзакций.
type transactionDB struct {
	Kind       string          `db:"kind"`
	Amount     decimal.Decimal `db:"amount"`
	Currency   string          `db:"currency"`
	RecordedAt string          `db:"recorded_at"`
}

// AccountStorage - Тип для хранилища счетов.
type AccountStorage struct {
	db *sqlx.DB
}

// NewAccountStorage - Инициализация хранилища счетов.
// db - *sqlx.DB - ссылка на подключение к БД.
func NewAccountStorage(db *sqlx.DB) *AccountStorage {
	return &AccountStorage{db: db}
}

// AppendTransaction Добавление транзакции в последовательность счета.
func (storage *AccountStorage) AppendTransaction(ctx context.Context, id types.AccountID, tx types.Transaction) error {
	// Запрос на добавление данных (именованные параметры).
	const sqlString = `
		INSERT INTO transactions (account_id, kind, amount, currency, recorded_at)
			VALUES (:account_id, :kind, :amount, :currency, :recorded_at);`

	args := map[string]any{
		"account_id":  string(id),
		"kind":        string(tx.Kind),
		"amount":      tx.Amount,
		"currency":    string(tx.Currency),
		"recorded_at": tx.RecordedAt,
	}

	if _, err := dbutils.NamedExec(ctx, storage.db, sqlString, args); err != nil {
		return err
	}
	return nil
}

// Transactions История счета в порядке добавления, при непустом fragment -
// только записи, время которых содержит его как подстроку.
func (storage *AccountStorage) Transactions(ctx context.Context, id types.AccountID, fragment string) ([]types.Transaction, error) {
	const sqlString = `
		SELECT kind, amount, currency, recorded_at
		FROM transactions
		WHERE account_id = $1
		  AND ($2 = '' OR recorded_at LIKE '%' || $2 || '%')
		ORDER BY id;`

	var recs []transactionDB
	// Выполнение запроса на выборку данных (запись в переменную recs).
	if err := dbutils.Select(ctx, storage.db, &recs, sqlString, string(id), fragment); err != nil {
		return nil, errors.Wrap(err, "Get transactions error")
	}

	result := make([]types.Transaction, len(recs))
	for ind, rec := range recs {
		result[ind] = types.Transaction{
			Kind:       types.TransactionKind(rec.Kind),
			Amount:     rec.Amount,
			Currency:   types.Currency(rec.Currency),
			RecordedAt: rec.RecordedAt,
		}
	}
	return result, nil
}

// DeleteByTimeFragment Удаление транзакций по подстроке времени.
// Возвращает количество удаленных записей (0 - не ошибка).
func (storage *AccountStorage) DeleteByTimeFragment(ctx context.Context, id types.AccountID, fragment string) (int, error) {
	const sqlString = `
		DELETE FROM transactions
		WHERE account_id = $1 AND recorded_at LIKE '%' || $2 || '%';`

	res, err := dbutils.Exec(ctx, storage.db, sqlString, string(id), fragment)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return int(affected), nil
}

// ClearAccount Очистка последовательности транзакций счета.
// Настройки счета (таблица accounts) не затрагиваются.
func (storage *AccountStorage) ClearAccount(ctx context.Context, id types.AccountID) error {
	const sqlString = `DELETE FROM transactions WHERE account_id = $1;`

	if _, err := dbutils.Exec(ctx, storage.db, sqlString, string(id)); err != nil {
		return err
	}
	return nil
}

// Settings Настройки счета. Второй результат false, если счет еще не настроен.
func (storage *AccountStorage) Settings(ctx context.Context, id types.AccountID) (types.AccountSettings, bool, error) {
	const sqlString = `SELECT time_zone, currency FROM accounts WHERE id = $1;`

	result, err := dbutils.GetMap(ctx, storage.db, sqlString, string(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.AccountSettings{}, false, nil
		}
		return types.AccountSettings{}, false, errors.Wrap(err, "Get account settings error")
	}
	// Приведение результата запроса к нужному типу.
	timeZone, ok := result["time_zone"].(string)
	if !ok {
		return types.AccountSettings{}, false, errors.New("Ошибка приведения типа результата запроса.")
	}
	currency, ok := result["currency"].(string)
	if !ok {
		return types.AccountSettings{}, false, errors.New("Ошибка приведения типа результата запроса.")
	}
	return types.AccountSettings{
		TimeZone: timeZone,
		Currency: types.Currency(currency),
	}, true, nil
}

// SaveSettings Сохранение настроек счета (insert или update).
func (storage *AccountStorage) SaveSettings(ctx context.Context, id types.AccountID, settings types.AccountSettings) error {
	const sqlString = `
		INSERT INTO accounts (id, time_zone, currency)
			VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET time_zone = $2, currency = $3;`

	if _, err := dbutils.Exec(ctx, storage.db, sqlString, string(id), settings.TimeZone, string(settings.Currency)); err != nil {
		return err
	}
	return nil
}
