// Package timeutils Хелпер для операций с часовыми поясами и датами.
package timeutils

import (
	"time"

	"github.com/pkg/errors"

	"ledgerbot/internal/model/lederrors"
)

// RecordTimeLayout Формат локального времени записи транзакции.
const RecordTimeLayout = "2006-01-02 15:04:05"

// MonthLayout Формат префикса месяца (используется как фрагмент поиска "2006-01").
const MonthLayout = "2006-01"

// LoadZone Проверка и загрузка часового пояса по имени IANA.
// Пустое имя означает зону по умолчанию (UTC).
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(lederrors.ErrInvalidTimeZone, "зона %q", name)
	}
	return loc, nil
}

// FormatInZone Представление момента времени в указанной зоне
// в формате записи транзакции.
func FormatInZone(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(RecordTimeLayout)
}

// MonthPrefix Префикс текущего месяца в указанной зоне
// (фрагмент для отбора транзакций месяца).
func MonthPrefix(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(MonthLayout)
}
