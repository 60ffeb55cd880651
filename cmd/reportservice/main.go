// Сервис генерации месячных отчетов.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"ledgerbot/internal/config"
	"ledgerbot/internal/helpers/dbutils"
	"ledgerbot/internal/helpers/kafka"
	"ledgerbot/internal/logger"
	types "ledgerbot/internal/model/bottypes"
	"ledgerbot/internal/model/db"
)

// Параметры по умолчанию (могут быть изменены через config)
var (
	connectionStringDB = ""                         // Строка подключения к базе данных.
	kafkaTopic         = "ledgerbot"                // Наименование топика Kafka.
	brokersList        = []string{"localhost:9092"} // Список адресов брокеров сообщений (адрес Kafka).
)

func main() {

	logger.Info("[Report service] Старт приложения")

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("[Report service] Ошибка получения файла конфигурации:", "err", err)
	}

	// Изменение параметров по умолчанию из заданной конфигурации.
	setConfigSettings(cfg.GetConfig())

	// Инициализация хранилища (подключение к базе данных).
	dbconn, err := dbutils.NewDBConnect(connectionStringDB)
	if err != nil {
		logger.Fatal("[Report service] Ошибка подключения к базе данных:", "err", err)
	}
	// БД счетов и транзакций.
	accountStorage := db.NewAccountStorage(dbconn)

	// Собственный ТГ-клиент сервиса для доставки отчетов.
	tgClient, err := tgbotapi.NewBotAPI(cfg.Token())
	if err != nil {
		logger.Fatal("[Report service] Ошибка инициализации ТГ-клиента:", "err", err)
	}

	// Инициализация кафки для получения сообщений из очереди.
	kafkaConsumer, err := kafka.NewConsumer(ctx, brokersList, kafkaTopic)
	if err != nil {
		logger.Fatal("[Report service] Ошибка инициализации кафки:", "err", err)
	}

	// Назначение функции, которая будет обрабатывать входящие сообщения из кафки.
	handlerFunc := func(ctx context.Context, key string, value string) error {
		return processReportRequest(ctx, accountStorage, tgClient, key, value)
	}

	// Запуск чтения сообщений из очереди.
	if err := kafkaConsumer.RunConsume(handlerFunc); err != nil {
		logger.Fatal("[Report service] Ошибка чтения кафки:", "err", err)
	}

	<-ctx.Done()
	logger.Info("[Report service] Завершение приложения")
}

// processReportRequest Обработка запроса отчета из кафки: ключ - счет,
// значение - месяц в формате "2006-01". Отчет формируется по записям
// счета за месяц и доставляется в исходный чат.
func processReportRequest(ctx context.Context, storage *db.AccountStorage, tgClient *tgbotapi.BotAPI, key string, value string) error {
	accID := types.AccountID(key)
	chatID, err := accID.ChatID()
	if err != nil {
		return errors.Wrap(err, "определение чата для отчета")
	}

	txs, err := storage.Transactions(ctx, accID, value)
	if err != nil {
		return errors.Wrap(err, "выборка записей для отчета")
	}

	report := formatMonthlyReport(value, txs)

	if _, err := tgClient.Send(tgbotapi.NewMessage(chatID, report)); err != nil {
		return errors.Wrap(err, "отправка отчета")
	}
	logger.Info("[Report service] Отчет отправлен", "account", key, "month", value)
	return nil
}

// formatMonthlyReport Текст месячного отчета: все записи месяца и итоги.
func formatMonthlyReport(month string, txs []types.Transaction) string {
	if len(txs) == 0 {
		return fmt.Sprintf("月报 %s:暂无记录。", month)
	}

	var deposit, withdrawal decimal.Decimal
	var res strings.Builder
	res.WriteString(fmt.Sprintf("月报 %s（共 %d 笔）:\n", month, len(txs)))
	for ind, tx := range txs {
		verb := "入款"
		if tx.Kind == types.Withdrawal {
			verb = "出款"
			withdrawal = withdrawal.Add(tx.Amount)
		} else {
			deposit = deposit.Add(tx.Amount)
		}
		res.WriteString(fmt.Sprintf("%d. %s %s %s  %s\n", ind+1, verb, tx.Amount, tx.Currency, tx.RecordedAt))
	}
	res.WriteString(fmt.Sprintf("总入款:%s\n总出款:%s\n净额:%s", deposit, withdrawal, deposit.Sub(withdrawal)))
	return res.String()
}

// setConfigSettings Замена параметров по умолчанию параметрами из конфиг.файла.
func setConfigSettings(cfg config.Config) {
	if cfg.ConnectionStringDB != "" {
		connectionStringDB = cfg.ConnectionStringDB
	}
	if cfg.KafkaTopic != "" {
		kafkaTopic = cfg.KafkaTopic
	}
	if len(cfg.BrokersList) > 0 {
		brokersList = cfg.BrokersList
	}
}
