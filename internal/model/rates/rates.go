// Package rates Текущий курс USDT и ставка комиссии.
// Одно общее значение на процесс, перезапись по принципу "последний победил".
package rates

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"ledgerbot/internal/logger"
	"ledgerbot/internal/model/bottypes"
	"ledgerbot/internal/model/lederrors"
)

// RateSource Внешний источник курсов валют.
type RateSource interface {
	// Загрузка курсов валют из открытого источника.
	LoadExchangeRates() (bottypes.ExchangeRate, time.Time, error)
}

// Holder Хранилище текущего курса и комиссии.
// Курс используется как простой делитель при пересчете итогов в USDT;
// история курсов не ведется.
type Holder struct {
	mu           sync.RWMutex
	exchangeRate decimal.Decimal // Курс: единиц валюты счета за 1 USDT.
	feeRate      decimal.Decimal // Доля комиссии, [0, 1).
	loadTime     time.Time       // Время последнего обновления из источника.
	source       RateSource      // Внешний источник (nil = автообновление выключено).
}

// New Инициализация хранилища курса.
func New(initialRate decimal.Decimal, initialFee decimal.Decimal, source RateSource) *Holder {
	if initialRate.Sign() <= 0 {
		initialRate = decimal.NewFromInt(1)
	}
	return &Holder{
		exchangeRate: initialRate,
		feeRate:      initialFee,
		source:       source,
	}
}

// ExchangeRate Текущий курс.
func (h *Holder) ExchangeRate() decimal.Decimal {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.exchangeRate
}

// SetExchangeRate Установка курса. Курс должен быть положительным.
func (h *Holder) SetExchangeRate(rate decimal.Decimal) error {
	if rate.Sign() <= 0 {
		return errors.Wrap(lederrors.ErrInvalidAmount, "курс должен быть положительным")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exchangeRate = rate
	return nil
}

// FeeRate Текущая ставка комиссии.
func (h *Holder) FeeRate() decimal.Decimal {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.feeRate
}

// SetFeeRate Установка ставки комиссии, от 0 включительно до 1.
func (h *Holder) SetFeeRate(fee decimal.Decimal) error {
	if fee.Sign() < 0 || fee.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return errors.Wrap(lederrors.ErrInvalidAmount, "ставка комиссии должна быть в пределах [0, 1)")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.feeRate = fee
	return nil
}

// ConvertToUSDT Пересчет суммы в USDT по текущему курсу (делитель),
// округление до двух знаков.
func (h *Holder) ConvertToUSDT(sum decimal.Decimal) decimal.Decimal {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return sum.DivRound(h.exchangeRate, 2)
}

// ApplyFee Сумма за вычетом комиссии.
func (h *Holder) ApplyFee(sum decimal.Decimal) decimal.Decimal {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return sum.Mul(decimal.NewFromInt(1).Sub(h.feeRate))
}

// UpdateFromSource Принудительное обновление курса из внешнего источника.
// Ручная установка курса после обновления перезапишет значение -
// "последняя запись побеждает".
func (h *Holder) UpdateFromSource() error {
	if h.source == nil {
		return nil
	}
	loaded, period, err := h.source.LoadExchangeRates()
	if err != nil {
		logger.Error("Ошибка загрузки курса из источника", "err", err)
		return err
	}
	rate, ok := loaded[string(bottypes.USDT)]
	if !ok || rate <= 0 {
		return errors.Wrap(lederrors.ErrNotFound, "источник не вернул курс USDT")
	}
	h.mu.Lock()
	h.exchangeRate = decimal.NewFromFloat(rate)
	h.loadTime = period
	h.mu.Unlock()
	return nil
}
