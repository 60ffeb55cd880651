package metrics

import (
	"net/http"
	"regexp"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ledgerbot/internal/clients/tg"
	"ledgerbot/internal/logger"
	"ledgerbot/internal/model/messages"
)

type TgHandler interface {
	RunFunc(tgUpdate tgbotapi.Update, c *tg.Client, msgModel *messages.Model)
}

// Метрики.
var (
	InFlightRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tg",
		Subsystem: "messages",
		Name:      "messages_total", // Общее количество сообщений.
	})
	SummaryResponseTime = promauto.NewSummary(prometheus.SummaryOpts{
		Namespace: "tg",
		Subsystem: "messages",
		Name:      "summary_response_time_seconds", // Время обработки сообщений.
		Objectives: map[float64]float64{
			0.5:  0.1,
			0.9:  0.01,
			0.99: 0.001,
		},
	})
	HistogramResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tg",
			Subsystem: "messages",
			Name:      "histogram_response_time_seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"cmd"},
	)
)

// cmdLabels Определение метки команды по тексту сообщения.
var cmdLabels = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`^\+`), "deposit"},
	{regexp.MustCompile(`^(?:下拨|-)`), "withdrawal"},
	{regexp.MustCompile(`^(?:账单|Bill)`), "bill"},
	{regexp.MustCompile(`^(?:汇总|Summary)`), "summary"},
	{regexp.MustCompile(`^月报`), "monthly_report"},
	{regexp.MustCompile(`^删除操作人`), "revoke"},
	{regexp.MustCompile(`^删除`), "delete"},
	{regexp.MustCompile(`^清除`), "clear"},
	{regexp.MustCompile(`^设置汇率`), "set_rate"},
	{regexp.MustCompile(`^设置费率`), "set_fee"},
	{regexp.MustCompile(`^(?:设置币种|币种)`), "set_currency"},
	{regexp.MustCompile(`^(?:设置时区|时区)`), "set_timezone"},
	{regexp.MustCompile(`^设置操作人|^设置管理员`), "grant"},
	{regexp.MustCompile(`^计算`), "calc"},
	{regexp.MustCompile(`^/start|^/help|^帮助`), "help"},
}

func init() {
	// Для просмотра значений метрик по адресу http://127.0.0.1:8080/
	http.Handle("/", promhttp.Handler())
	logger.Info("Старт сервиса метрик.")
	go func() {
		err := http.ListenAndServe("0.0.0.0:8080", nil)
		if err != nil {
			logger.Error("Metrics public error", "err", err)
		}
	}()
}

// MetricsMiddleware Функция сбора метрик.
func MetricsMiddleware(next tg.HandlerFunc) tg.HandlerFunc {

	handler := tg.HandlerFunc(func(tgUpdate tgbotapi.Update, c *tg.Client, msgModel *messages.Model) {

		// Сохранение времени начала обработки сообщения.
		startTime := time.Now()
		// Выполнение процесса обработки сообщения.
		next.RunFunc(tgUpdate, c, msgModel)
		// Расчет продолжительности обработки сообщения.
		duration := time.Since(startTime)

		// Сохранение метрик продолжительности обработки.
		SummaryResponseTime.Observe(duration.Seconds())

		// Определение команды для сохранения в метрике.
		cmd := "none"
		if tgUpdate.Message != nil {
			for _, l := range cmdLabels {
				if l.re.MatchString(tgUpdate.Message.Text) {
					cmd = l.label
					break
				}
			}
		}
		HistogramResponseTime.
			WithLabelValues(cmd).
			Observe(duration.Seconds())

	})
	// Подсчет количества сообщений.
	InFlightRequests.Dec()

	return handler
}
