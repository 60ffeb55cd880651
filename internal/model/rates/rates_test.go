package rates

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	mocks "ledgerbot/internal/mocks/rates"
	"ledgerbot/internal/model/bottypes"
	"ledgerbot/internal/model/lederrors"
)

func Test_ConvertToUSDT_ShouldDivideByRate(t *testing.T) {
	h := New(decimal.RequireFromString("6.8"), decimal.Zero, nil)

	// 70 CNY при курсе 6.8 - примерно 10.29 USDT.
	res := h.ConvertToUSDT(decimal.NewFromInt(70))
	assert.Equal(t, "10.29", res.String())
}

func Test_SetExchangeRate_LastWriteWins(t *testing.T) {
	h := New(decimal.RequireFromString("6.8"), decimal.Zero, nil)

	assert.NoError(t, h.SetExchangeRate(decimal.RequireFromString("7.25")))
	assert.Equal(t, "7.25", h.ExchangeRate().String())

	assert.NoError(t, h.SetExchangeRate(decimal.RequireFromString("7.1")))
	assert.Equal(t, "7.1", h.ExchangeRate().String())
}

func Test_SetExchangeRate_ShouldRejectNonPositive(t *testing.T) {
	h := New(decimal.RequireFromString("6.8"), decimal.Zero, nil)

	err := h.SetExchangeRate(decimal.Zero)
	assert.True(t, errors.Is(err, lederrors.ErrInvalidAmount))
	err = h.SetExchangeRate(decimal.NewFromInt(-1))
	assert.True(t, errors.Is(err, lederrors.ErrInvalidAmount))
	// Значение не изменилось.
	assert.Equal(t, "6.8", h.ExchangeRate().String())
}

func Test_SetFeeRate_ShouldValidateRange(t *testing.T) {
	h := New(decimal.RequireFromString("6.8"), decimal.Zero, nil)

	assert.NoError(t, h.SetFeeRate(decimal.RequireFromString("0.02")))
	assert.Equal(t, "0.02", h.FeeRate().String())

	err := h.SetFeeRate(decimal.NewFromInt(1))
	assert.True(t, errors.Is(err, lederrors.ErrInvalidAmount))
	err = h.SetFeeRate(decimal.RequireFromString("-0.1"))
	assert.True(t, errors.Is(err, lederrors.ErrInvalidAmount))
}

func Test_ApplyFee(t *testing.T) {
	h := New(decimal.RequireFromString("6.8"), decimal.RequireFromString("0.02"), nil)

	// 100 минус 2% комиссии.
	res := h.ApplyFee(decimal.NewFromInt(100))
	assert.Equal(t, "98", res.String())
}

func Test_UpdateFromSource_ShouldTakeUSDTRate(t *testing.T) {
	period := time.Now()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRateSource(ctrl)
	source.EXPECT().LoadExchangeRates().Return(bottypes.ExchangeRate{"USDT": 7.15, "USD": 7.1}, period, nil)

	h := New(decimal.RequireFromString("6.8"), decimal.Zero, source)
	err := h.UpdateFromSource()

	assert.NoError(t, err)
	assert.Equal(t, "7.15", h.ExchangeRate().String())
}

func Test_UpdateFromSource_ShouldFailWhenUSDTMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRateSource(ctrl)
	source.EXPECT().LoadExchangeRates().Return(bottypes.ExchangeRate{"USD": 7.1}, time.Now(), nil)

	h := New(decimal.RequireFromString("6.8"), decimal.Zero, source)
	err := h.UpdateFromSource()

	assert.True(t, errors.Is(err, lederrors.ErrNotFound))
	// Курс не изменился.
	assert.Equal(t, "6.8", h.ExchangeRate().String())
}
