// Package lederrors Виды ошибок предметной области.
// Все виды, кроме ошибок стартовой конфигурации, перехватываются на границе
// обработки команды и превращаются в текстовый ответ пользователю.
package lederrors

import "github.com/pkg/errors"

var (
	// ErrInvalidAmount Сумма транзакции не положительное конечное число.
	ErrInvalidAmount = errors.New("некорректная сумма")
	// ErrInvalidExpression Выражение не удалось вычислить.
	ErrInvalidExpression = errors.New("некорректное выражение")
	// ErrInvalidTimeZone Неизвестное имя часового пояса IANA.
	ErrInvalidTimeZone = errors.New("некорректный часовой пояс")
	// ErrInvalidCurrency Неизвестный код валюты.
	ErrInvalidCurrency = errors.New("некорректная валюта")
	// ErrNotPermitted Недостаточный уровень прав для выполнения команды.
	ErrNotPermitted = errors.New("операция не разрешена")
	// ErrNotFound Счет или запись не найдены.
	ErrNotFound = errors.New("запись не найдена")
	// ErrUpstreamTimeout Внешний вызов не удался после всех повторов.
	ErrUpstreamTimeout = errors.New("внешний сервис недоступен")
)
