package ratesupdater

import (
	"context"
	"time"

	"ledgerbot/internal/logger"
)

type RatesHolder interface {
	UpdateFromSource() error
}

// ReplyCache Кэш сформированных ответов. Сбрасывается после успешного
// обновления курса: пересчитанные в USDT ответы устаревают все разом.
type ReplyCache interface {
	Clear()
}

// Run Процедура периодического обновления курса USDT из внешнего источника.
// Ошибка обновления логируется и не прерывает процесс: действующим остается
// последнее известное значение курса.
func Run(ctx context.Context, holder RatesHolder, replyCache ReplyCache, updatePeriod time.Duration) {
	// Создаем таймер на указанную периодичность.
	ticker := time.NewTicker(updatePeriod)
	// Запускаем горутину, обновляющую курс по таймеру.
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				// Завершение горутины.
				return
			case <-ticker.C:
				logger.Info("Обновление курса USDT из внешнего источника.")
				if err := holder.UpdateFromSource(); err != nil {
					logger.Error("Ошибка обновления курса:", "err", err)
					continue
				}
				replyCache.Clear()
			}
		}
	}()
}
