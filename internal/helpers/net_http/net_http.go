// Package net_http Обобщенный HTTP-клиент для получения JSON по URL
// с ограниченным числом повторов.
package net_http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"ledgerbot/internal/logger"
	"ledgerbot/internal/model/lederrors"
)

const (
	attemptTimeout = time.Second * 5        // Таймаут одной попытки.
	maxAttempts    = 3                      // Общее число попыток.
	retryBackoff   = time.Millisecond * 500 // Постоянная пауза между попытками (без роста).
)

type HttpClient[T any] struct {
	HttpClient http.Client
}

func New[T any]() *HttpClient[T] {
	return &HttpClient[T]{
		HttpClient: http.Client{
			Timeout: attemptTimeout,
		},
	}
}

// GetJsonByURL Отправка запроса по указанному URL, получение JSON и запись
// в указанную структуру. Делает не более maxAttempts попыток с постоянной
// паузой; после исчерпания попыток возвращает ErrUpstreamTimeout.
func (clt *HttpClient[T]) GetJsonByURL(ctx context.Context, url string, jsonStruct *T) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = clt.getJSON(ctx, url, jsonStruct)
		if lastErr == nil {
			return nil
		}
		logger.Warn("Неудачная попытка запроса", "url", url, "attempt", attempt, "err", lastErr)

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff):
			}
		}
	}
	return errors.Wrapf(lederrors.ErrUpstreamTimeout, "запрос %s: %v", url, lastErr)
}

// getJSON Одна попытка запроса с собственным таймаутом.
func (clt *HttpClient[T]) getJSON(ctx context.Context, url string, jsonStruct *T) error {
	ctx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	res, err := clt.HttpClient.Do(request)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, jsonStruct)
}
