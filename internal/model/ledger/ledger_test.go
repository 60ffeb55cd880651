package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	types "ledgerbot/internal/model/bottypes"
	"ledgerbot/internal/model/lederrors"
)

const (
	accChat types.AccountID = "chat:-1001"
	accUser types.AccountID = "user:42"
)

// newTestService Сервис на хранилище в памяти с фиксированным временем.
func newTestService() *Service {
	s := NewService(NewMemStorage(), types.CNY, "")
	s.now = func() time.Time {
		return time.Date(2024, 5, 17, 12, 30, 45, 0, time.UTC)
	}
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Test_RecordTransaction_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	tx, err := s.RecordTransaction(ctx, accChat, types.Deposit, dec("100.50"), types.CNY)
	assert.NoError(t, err)
	assert.Equal(t, "2024-05-17 12:30:45", tx.RecordedAt)

	totals, err := s.ComputeTotals(ctx, accChat)
	assert.NoError(t, err)
	assert.Equal(t, "100.5", totals.Deposit.String())
	assert.Equal(t, "0", totals.Withdrawal.String())
	assert.Equal(t, "100.5", totals.Net.String())
}

func Test_RecordTransaction_ShouldRejectNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	for _, amount := range []string{"0", "-5", "-0.01"} {
		_, err := s.RecordTransaction(ctx, accChat, types.Deposit, dec(amount), types.CNY)
		assert.True(t, errors.Is(err, lederrors.ErrInvalidAmount), "сумма %s", amount)
	}

	// Ни одна запись не сохранена.
	txs, err := s.Transactions(ctx, accChat, "")
	assert.NoError(t, err)
	assert.Empty(t, txs)
}

func Test_RecordTransaction_ShouldRejectUnknownCurrency(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	_, err := s.RecordTransaction(ctx, accChat, types.Deposit, dec("10"), types.Currency("BTC"))
	assert.True(t, errors.Is(err, lederrors.ErrInvalidCurrency))
}

func Test_ComputeTotals_EmptyAccountIsZero(t *testing.T) {
	// Отсутствие счета - нормальное пустое состояние, не ошибка.
	totals, err := newTestService().ComputeTotals(context.Background(), accChat)
	assert.NoError(t, err)
	assert.True(t, totals.Deposit.IsZero())
	assert.True(t, totals.Withdrawal.IsZero())
	assert.True(t, totals.Net.IsZero())
}

func Test_ComputeTotals_SumsByKind(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	for _, amount := range []string{"100", "250.25", "49.75"} {
		_, err := s.RecordTransaction(ctx, accChat, types.Deposit, dec(amount), types.CNY)
		assert.NoError(t, err)
	}
	for _, amount := range []string{"30", "70"} {
		_, err := s.RecordTransaction(ctx, accChat, types.Withdrawal, dec(amount), types.CNY)
		assert.NoError(t, err)
	}

	totals, err := s.ComputeTotals(ctx, accChat)
	assert.NoError(t, err)
	assert.Equal(t, "400", totals.Deposit.String())
	assert.Equal(t, "100", totals.Withdrawal.String())
	assert.Equal(t, "300", totals.Net.String())
}

func Test_ComputeTotals_AccountsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	// Чередование записей по двум счетам: итоги не зависят от порядка
	// вызовов между счетами.
	_, err := s.RecordTransaction(ctx, accChat, types.Deposit, dec("100"), types.CNY)
	assert.NoError(t, err)
	_, err = s.RecordTransaction(ctx, accUser, types.Deposit, dec("7"), types.CNY)
	assert.NoError(t, err)
	_, err = s.RecordTransaction(ctx, accChat, types.Withdrawal, dec("40"), types.CNY)
	assert.NoError(t, err)
	_, err = s.RecordTransaction(ctx, accUser, types.Withdrawal, dec("2"), types.CNY)
	assert.NoError(t, err)

	totalsChat, err := s.ComputeTotals(ctx, accChat)
	assert.NoError(t, err)
	assert.Equal(t, "60", totalsChat.Net.String())

	totalsUser, err := s.ComputeTotals(ctx, accUser)
	assert.NoError(t, err)
	assert.Equal(t, "5", totalsUser.Net.String())
}

func Test_Transactions_FilterByTimeFragment(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	_, err := s.RecordTransaction(ctx, accChat, types.Deposit, dec("1"), types.CNY)
	assert.NoError(t, err)
	s.now = func() time.Time {
		return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	}
	_, err = s.RecordTransaction(ctx, accChat, types.Deposit, dec("2"), types.CNY)
	assert.NoError(t, err)

	txs, err := s.Transactions(ctx, accChat, "2024-05")
	assert.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, "1", txs[0].Amount.String())

	all, err := s.Transactions(ctx, accChat, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func Test_DeleteByTimeFragment_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	_, err := s.RecordTransaction(ctx, accChat, types.Deposit, dec("100"), types.CNY)
	assert.NoError(t, err)
	_, err = s.RecordTransaction(ctx, accChat, types.Withdrawal, dec("30"), types.CNY)
	assert.NoError(t, err)

	removed, err := s.DeleteByTimeFragment(ctx, accChat, "2024-05-17")
	assert.NoError(t, err)
	assert.Equal(t, 2, removed)

	// Повторный вызов с тем же фрагментом: совпадений нет, это не ошибка.
	removed, err = s.DeleteByTimeFragment(ctx, accChat, "2024-05-17")
	assert.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func Test_ClearAccount_KeepsSettings(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	assert.NoError(t, s.SetTimeZone(ctx, accChat, "Asia/Shanghai"))
	_, err := s.RecordTransaction(ctx, accChat, types.Deposit, dec("100"), types.CNY)
	assert.NoError(t, err)

	assert.NoError(t, s.ClearAccount(ctx, accChat))

	txs, err := s.Transactions(ctx, accChat, "")
	assert.NoError(t, err)
	assert.Empty(t, txs)

	settings, err := s.Settings(ctx, accChat)
	assert.NoError(t, err)
	assert.Equal(t, "Asia/Shanghai", settings.TimeZone)
}

func Test_RecordTransaction_UsesAccountTimeZone(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	assert.NoError(t, s.SetTimeZone(ctx, accChat, "Asia/Shanghai"))

	// 12:30 UTC = 20:30 в Шанхае.
	tx, err := s.RecordTransaction(ctx, accChat, types.Deposit, dec("1"), types.CNY)
	assert.NoError(t, err)
	assert.Equal(t, "2024-05-17 20:30:45", tx.RecordedAt)
}

func Test_SetTimeZone_InvalidZoneLeavesSettingsUntouched(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	err := s.SetTimeZone(ctx, accChat, "Invalid/Zone")
	assert.True(t, errors.Is(err, lederrors.ErrInvalidTimeZone))

	settings, err := s.Settings(ctx, accChat)
	assert.NoError(t, err)
	assert.Equal(t, "", settings.TimeZone)
	assert.Equal(t, types.CNY, settings.Currency)
}

func Test_SetCurrency(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	assert.NoError(t, s.SetCurrency(ctx, accChat, "usdt"))
	settings, err := s.Settings(ctx, accChat)
	assert.NoError(t, err)
	assert.Equal(t, types.USDT, settings.Currency)

	err = s.SetCurrency(ctx, accChat, "BTC")
	assert.True(t, errors.Is(err, lederrors.ErrInvalidCurrency))
	settings, err = s.Settings(ctx, accChat)
	assert.NoError(t, err)
	assert.Equal(t, types.USDT, settings.Currency)
}
