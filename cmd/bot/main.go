package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"ledgerbot/internal/cache"
	ratesclient "ledgerbot/internal/clients/rates"
	"ledgerbot/internal/clients/tg"
	"ledgerbot/internal/config"
	"ledgerbot/internal/helpers/dbutils"
	"ledgerbot/internal/helpers/kafka"
	"ledgerbot/internal/helpers/net_http"
	"ledgerbot/internal/logger"
	"ledgerbot/internal/metrics"
	types "ledgerbot/internal/model/bottypes"
	"ledgerbot/internal/model/db"
	"ledgerbot/internal/model/ledger"
	"ledgerbot/internal/model/messages"
	"ledgerbot/internal/model/permissions"
	"ledgerbot/internal/model/rates"
	"ledgerbot/internal/tasks/ratesupdater"
	"ledgerbot/internal/tracing"
)

// Параметры по умолчанию (могут быть изменены через config)
var (
	mainCurrency       = types.CNY                  // Валюта счетов по умолчанию.
	defaultTimeZone    = "UTC"                      // Часовой пояс по умолчанию.
	exchangeRate       = decimal.NewFromInt(1)      // Начальный курс USDT.
	feeRate            = decimal.Zero               // Начальная ставка комиссии.
	connectionStringDB = ""                         // Строка подключения к базе данных.
	ratesURL           = ""                         // Адрес внешнего источника курсов (пусто - не опрашивать).
	ratesUpdatePeriod  = 30 * time.Minute           // Периодичность обновления курса из внешнего источника.
	kafkaTopic         = "ledgerbot"                // Наименование топика Kafka.
	brokersList        = []string{"localhost:9092"} // Список адресов брокеров сообщений (адрес Kafka).
)

func main() {

	logger.Info("Старт приложения")

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("Ошибка получения файла конфигурации:", "err", err)
	}

	// Изменение параметров по умолчанию из заданной конфигурации.
	setConfigSettings(cfg.GetConfig())

	// Оборачивание в Middleware функции обработки сообщения для метрик и трейсинга.
	tgProcessingFuncHandler := tg.HandlerFunc(tg.ProcessingMessages)
	tgProcessingFuncHandler = metrics.MetricsMiddleware(tgProcessingFuncHandler)
	tgProcessingFuncHandler = tracing.TracingMiddleware(tgProcessingFuncHandler)

	// Инициализация телеграм клиента.
	tgClient, err := tg.New(cfg, tgProcessingFuncHandler)
	if err != nil {
		logger.Fatal("Ошибка инициализации ТГ-клиента:", "err", err)
	}

	// Инициализация хранилища (подключение к базе данных).
	dbconn, err := dbutils.NewDBConnect(connectionStringDB)
	if err != nil {
		logger.Fatal("Ошибка подключения к базе данных:", "err", err)
	}
	// БД счетов и транзакций.
	accountStorage := db.NewAccountStorage(dbconn)

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer cancel()

	// Инициализация сервиса учета транзакций.
	ledgerService := ledger.NewService(accountStorage, mainCurrency, defaultTimeZone)

	// Инициализация реестра прав: владелец получает уровень суперадмина.
	permRegistry := permissions.NewRegistry(cfg.GetConfig().OwnerUserID)

	// Инициализация хранилища курса USDT. Внешний источник опрашивается
	// только при заданном адресе, иначе курс задается командой.
	var rateSource rates.RateSource
	if ratesURL != "" {
		httpClient := net_http.New[ratesclient.ExchangeRatesJson]()
		rateSource = ratesclient.New(ctx, ratesURL, httpClient)
	}
	ratesHolder := rates.New(exchangeRate, feeRate, rateSource)

	// Инициализация кэша для кэширования сформированных ответов.
	cacheLRU := cache.NewLRU(100)

	// Инициализация кафки для отправки запросов месячных отчетов в очередь.
	kafkaProducer, err := kafka.NewSyncProducer(brokersList, kafkaTopic)
	if err != nil {
		logger.Fatal("Ошибка инициализации кафки для отправки сообщений:", "err", err)
	}

	// Инициализация основной модели.
	msgModel := messages.New(ctx, tgClient, ledgerService, permRegistry, ratesHolder, cacheLRU, kafkaProducer)

	// Запуск периодического обновления курса из внешнего источника.
	if rateSource != nil {
		ratesupdater.Run(ctx, ratesHolder, cacheLRU, ratesUpdatePeriod)
	}

	// Запуск ТГ-клиента.
	tgClient.ListenUpdates(msgModel)

	logger.Info("Завершение приложения")
}

// setConfigSettings Замена параметров по умолчанию параметрами из конфиг.файла.
func setConfigSettings(cfg config.Config) {
	if c, ok := types.ParseCurrency(cfg.MainCurrency); ok {
		mainCurrency = c
	}
	if cfg.DefaultTimeZone != "" {
		defaultTimeZone = cfg.DefaultTimeZone
	}
	if r, err := decimal.NewFromString(cfg.ExchangeRate); err == nil && r.Sign() > 0 {
		exchangeRate = r
	}
	if f, err := decimal.NewFromString(cfg.FeeRate); err == nil && f.Sign() >= 0 {
		feeRate = f
	}
	if cfg.ConnectionStringDB != "" {
		connectionStringDB = cfg.ConnectionStringDB
	}
	if cfg.RatesURL != "" {
		ratesURL = cfg.RatesURL
	}
	if cfg.RatesUpdatePeriod > 0 {
		ratesUpdatePeriod = time.Duration(cfg.RatesUpdatePeriod) * time.Minute
	}
	if cfg.KafkaTopic != "" {
		kafkaTopic = cfg.KafkaTopic
	}
	if len(cfg.BrokersList) > 0 {
		brokersList = cfg.BrokersList
	}
}
