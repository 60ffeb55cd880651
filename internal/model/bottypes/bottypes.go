// Package bottypes Общие типы предметной области: счета, транзакции, итоги.
package bottypes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionKind Вид транзакции:入款 (приход) или 出款 (расход).
type TransactionKind string

const (
	Deposit    TransactionKind = "deposit"
	Withdrawal TransactionKind = "withdrawal"
)

// Currency Код валюты транзакции.
type Currency string

// Используемые валюты.
const (
	CNY  Currency = "CNY"
	USD  Currency = "USD"
	EUR  Currency = "EUR"
	JPY  Currency = "JPY"
	USDT Currency = "USDT"
)

// Currencies Список допустимых валют.
var Currencies = []Currency{CNY, USD, EUR, JPY, USDT}

// ParseCurrency Распознавание кода валюты (без учета регистра).
func ParseCurrency(s string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Currencies {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// AccountID Идентификатор счета.
// Правило формирования единое для всех команд: личный чат -> счет пользователя
// ("user:<id>"), групповой чат -> счет чата ("chat:<id>").
type AccountID string

// NewAccountID Формирование идентификатора счета из контекста чата.
func NewAccountID(chatType string, chatID int64, userID int64) AccountID {
	if chatType == "private" {
		return AccountID("user:" + strconv.FormatInt(userID, 10))
	}
	return AccountID("chat:" + strconv.FormatInt(chatID, 10))
}

// ChatID Обратное преобразование идентификатора счета в идентификатор чата
// (для личного чата он совпадает с идентификатором пользователя).
func (id AccountID) ChatID() (int64, error) {
	parts := strings.SplitN(string(id), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("некорректный идентификатор счета: %q", id)
	}
	chatID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("некорректный идентификатор счета: %q", id)
	}
	return chatID, nil
}

// Transaction Запись о транзакции. После создания не изменяется.
type Transaction struct {
	Kind       TransactionKind
	Amount     decimal.Decimal // Всегда положительная сумма.
	Currency   Currency
	RecordedAt string // Локальное время счета в формате "2006-01-02 15:04:05".
}

// Totals Итоги по счету. Всегда пересчитываются по последовательности
// транзакций, отдельно не хранятся.
type Totals struct {
	Deposit    decimal.Decimal
	Withdrawal decimal.Decimal
	Net        decimal.Decimal
}

// AccountSettings Настройки счета. Создаются лениво при первом обращении,
// командой очистки счета не затрагиваются.
type AccountSettings struct {
	TimeZone string   // Имя зоны IANA.
	Currency Currency // Валюта по умолчанию для новых транзакций.
}

// ExchangeRate Курсы валют из внешнего источника в формате "USDT" = 7.25.
type ExchangeRate map[string]float64
