package rates

// Пакет для загрузки курсов валют из внешнего JSON-источника.
// Ожидаемый формат ответа: {"timestamp": 123, "rates": {"USDT": 7.25}}.

import (
	"context"
	"time"

	"ledgerbot/internal/logger"
	types "ledgerbot/internal/model/bottypes"
)

type httpClient[T any] interface {
	GetJsonByURL(ctx context.Context, url string, jsonStruct *T) error
}

type Client struct {
	ctx        context.Context
	url        string
	httpClient httpClient[ExchangeRatesJson]
}

// ExchangeRatesJson Структура для загрузки курса валют из JSON.
type ExchangeRatesJson struct {
	Timestamp int64              `json:"timestamp"`
	Rates     types.ExchangeRate `json:"rates"`
}

func New(ctx context.Context, url string, httpClient httpClient[ExchangeRatesJson]) *Client {
	return &Client{
		ctx:        ctx,
		url:        url,
		httpClient: httpClient,
	}
}

// LoadExchangeRates Загрузка курсов валют.
func (client *Client) LoadExchangeRates() (types.ExchangeRate, time.Time, error) {
	var curExchangeRates ExchangeRatesJson
	// Получение JSON данных по заданному URL и перенос их в указанную структуру
	// (HTTP-клиент сам делает ограниченное число повторов).
	err := client.httpClient.GetJsonByURL(client.ctx, client.url, &curExchangeRates)
	if err != nil {
		logger.Error("Ошибка получения данных курсов валют по URL", "err", err)
		return nil, time.Time{}, err
	}
	period := time.Unix(curExchangeRates.Timestamp, 0)
	return curExchangeRates.Rates, period, nil
}
