package messages

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"ledgerbot/internal/expr"
	"ledgerbot/internal/helpers/timeutils"
	"ledgerbot/internal/logger"
	types "ledgerbot/internal/model/bottypes"
	"ledgerbot/internal/model/lederrors"
	"ledgerbot/internal/model/permissions"
)

// Область "Константы и переменные": начало.

const (
	txtHelp = "记账机器人指令：\n" +
		"+<金额> 记录入款（+100u 记录 USDT 入款）\n" +
		"下拨<金额> 记录出款\n" +
		"账单 查看最近记录（可加时间片段：账单 2024-05）\n" +
		"汇总 查看入款出款汇总\n" +
		"月报 生成本月账单报表\n" +
		"删除 <时间片段> 删除指定时间的记录\n" +
		"清除 清除当前账单记录\n" +
		"设置汇率 <值> 设置 USDT 汇率\n" +
		"设置费率 <值> 设置费率\n" +
		"设置币种 <币种> 设置默认币种\n" +
		"设置时区 <时区名> 设置时区\n" +
		"设置操作人 <用户ID> / 删除操作人 <用户ID>\n" +
		"设置管理员 <用户ID>\n" +
		"计算 <表达式> 计算数学表达式"
	txtNotPermitted    = "您没有权限使用此指令。"
	txtBillEmpty       = "暂无账单记录。"
	txtCleared         = "已清除当前账单记录。"
	txtMonthlyQueued   = "月报生成中，请稍候..."
	txtMonthlyFailed   = "无法生成月报，请稍后重试。"
	txtInvalidAmount   = "请提供一个有效的金额。"
	txtInvalidExpr     = "无法计算该表达式。"
	txtInvalidZone     = "无效的时区，例如：Asia/Shanghai"
	txtInvalidCurrency = "无效的币种，可用：CNY、USD、EUR、JPY、USDT"
	txtNotFound        = "没有找到匹配的记录。"
	txtUpstreamFailed  = "服务暂时不可用，请稍后重试。"
	txtInternalError   = "处理失败，请稍后重试。"

	// billTailSize Количество последних транзакций в ответе "账单".
	billTailSize = 5
)

// Шаблоны команд. Порядок маршрутов имеет значение: формы с ключевыми
// словами (入款/下拨) проверяются раньше, чем общий шаблон арифметического
// выражения, иначе "+100" ушло бы в калькулятор.
var (
	reDeposit    = regexp.MustCompile(`^\+\s*(\d+(?:\.\d+)?)(u?)$`)
	reWithdrawal = regexp.MustCompile(`^(?:下拨|-)\s*(\d+(?:\.\d+)?)(u?)$`)
	reBill       = regexp.MustCompile(`^(?:账单|Bill)(?:\s+(\S+))?$`)
	reSummary    = regexp.MustCompile(`^(?:汇总|Summary)$`)
	reMonthly    = regexp.MustCompile(`^月报$`)
	reDelete     = regexp.MustCompile(`^删除\s+(.+)$`)
	reClear      = regexp.MustCompile(`^清除$`)
	reSetRate    = regexp.MustCompile(`^设置汇率\s+(\S+)$`)
	reSetFee     = regexp.MustCompile(`^设置费率\s+(\S+)$`)
	reSetCcy     = regexp.MustCompile(`^(?:设置币种|币种)\s+(\S+)$`)
	reSetZone    = regexp.MustCompile(`^(?:设置时区|时区)\s+(\S+)$`)
	reGrantOper  = regexp.MustCompile(`^设置操作人\s+(\d+)$`)
	reGrantAdmin = regexp.MustCompile(`^设置管理员\s+(\d+)$`)
	reRevoke     = regexp.MustCompile(`^删除操作人\s+(\d+)$`)
	reCalc       = regexp.MustCompile(`^计算\s+(.+)$`)
	reHelp       = regexp.MustCompile(`^(?:/start|/help|帮助)$`)
)

// Область "Константы и переменные": конец.

// Область "Внешний интерфейс": начало.

// MessageSender Интерфейс для отправки сообщений в чат.
type MessageSender interface {
	SendMessage(text string, chatID int64) error
}

// LedgerStore Интерфейс сервиса учета транзакций.
type LedgerStore interface {
	RecordTransaction(ctx context.Context, id types.AccountID, kind types.TransactionKind, amount decimal.Decimal, currency types.Currency) (types.Transaction, error)
	Transactions(ctx context.Context, id types.AccountID, fragment string) ([]types.Transaction, error)
	ComputeTotals(ctx context.Context, id types.AccountID) (types.Totals, error)
	DeleteByTimeFragment(ctx context.Context, id types.AccountID, fragment string) (int, error)
	ClearAccount(ctx context.Context, id types.AccountID) error
	Settings(ctx context.Context, id types.AccountID) (types.AccountSettings, error)
	SetTimeZone(ctx context.Context, id types.AccountID, zoneName string) error
	SetCurrency(ctx context.Context, id types.AccountID, currencyName string) error
}

// PermissionRegistry Интерфейс реестра прав.
type PermissionRegistry interface {
	Level(principalID int64) permissions.Level
	CheckLevel(principalID int64, required permissions.Level) bool
	Grant(actorID int64, targetID int64, level permissions.Level) error
	Revoke(actorID int64, targetID int64) error
}

// RatesKeeper Интерфейс хранилища курса USDT и ставки комиссии.
type RatesKeeper interface {
	ExchangeRate() decimal.Decimal
	SetExchangeRate(rate decimal.Decimal) error
	FeeRate() decimal.Decimal
	SetFeeRate(fee decimal.Decimal) error
	ConvertToUSDT(sum decimal.Decimal) decimal.Decimal
	ApplyFee(sum decimal.Decimal) decimal.Decimal
}

// LRUCache Интерфейс для работы с кэшем сформированных ответов.
type LRUCache interface {
	Add(key string, value any)
	Get(key string) any
	Remove(key string)
	Clear()
}

// kafkaProducer Интерфейс для отправки запросов месячных отчетов в кафку.
type kafkaProducer interface {
	SendMessage(key string, value string) (partition int32, offset int64, err error)
	GetTopic() string
}

// Model Модель бота (клиент, сервис учета, реестр прав, курсы).
type Model struct {
	ctx           context.Context
	tgClient      MessageSender      // Клиент.
	ledger        LedgerStore        // Сервис учета транзакций.
	perms         PermissionRegistry // Реестр прав.
	rates         RatesKeeper        // Курс USDT и комиссия.
	replyCache    LRUCache           // Кэш сформированных ответов.
	kafkaProducer kafkaProducer      // Очередь запросов месячных отчетов.
}

// New Генерация сущности модели бота.
func New(ctx context.Context, tgClient MessageSender, ledger LedgerStore, perms PermissionRegistry, rates RatesKeeper, replyCache LRUCache, kafka kafkaProducer) *Model {
	return &Model{
		ctx:           ctx,
		tgClient:      tgClient,
		ledger:        ledger,
		perms:         perms,
		rates:         rates,
		replyCache:    replyCache,
		kafkaProducer: kafka,
	}
}

// Message Структура входящего сообщения для обработки.
type Message struct {
	Text     string
	UserID   int64
	UserName string
	ChatID   int64
	ChatType string // private, group, supergroup, channel.
}

func (s *Model) GetCtx() context.Context {
	return s.ctx
}

func (s *Model) SetCtx(ctx context.Context) {
	s.ctx = ctx
}

// Область "Внешний интерфейс": конец.

// Область "Маршрутизация команд": начало.

// route Один маршрут: сопоставление текста и обработчик.
// match возвращает nil, если текст не подходит, иначе - захваченные аргументы.
type route struct {
	match   func(text string) []string
	level   permissions.Level
	handler func(s *Model, ctx context.Context, msg Message, args []string) (string, error)
}

// reMatch Сопоставление по регулярному выражению (без первой группы - всего текста).
func reMatch(re *regexp.Regexp) func(string) []string {
	return func(text string) []string {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return nil
		}
		return m[1:]
	}
}

// routes Упорядоченный список маршрутов: выигрывает первый подошедший.
// Фолбэк-калькулятор всегда последний.
var routes = []route{
	{match: reMatch(reHelp), level: permissions.None, handler: handleHelp},
	{match: reMatch(reDeposit), level: permissions.Operator, handler: handleDeposit},
	{match: reMatch(reWithdrawal), level: permissions.Operator, handler: handleWithdrawal},
	{match: reMatch(reBill), level: permissions.Operator, handler: handleBill},
	{match: reMatch(reSummary), level: permissions.Operator, handler: handleSummary},
	{match: reMatch(reMonthly), level: permissions.Operator, handler: handleMonthlyReport},
	{match: reMatch(reDelete), level: permissions.Admin, handler: handleDelete},
	{match: reMatch(reClear), level: permissions.Admin, handler: handleClear},
	{match: reMatch(reSetRate), level: permissions.Admin, handler: handleSetRate},
	{match: reMatch(reSetFee), level: permissions.Admin, handler: handleSetFee},
	{match: reMatch(reSetCcy), level: permissions.Admin, handler: handleSetCurrency},
	{match: reMatch(reSetZone), level: permissions.Admin, handler: handleSetTimeZone},
	{match: reMatch(reGrantOper), level: permissions.Admin, handler: handleGrantOperator},
	{match: reMatch(reGrantAdmin), level: permissions.SuperAdmin, handler: handleGrantAdmin},
	{match: reMatch(reRevoke), level: permissions.Admin, handler: handleRevoke},
	{match: reMatch(reCalc), level: permissions.None, handler: handleCalc},
	// Фолбэк: текст, похожий на арифметическое выражение, идет в калькулятор.
	{match: calcFallbackMatch, level: permissions.None, handler: handleCalc},
}

// calcFallbackMatch Фолбэк-сопоставление для калькулятора.
func calcFallbackMatch(text string) []string {
	if expr.IsExpression(text) {
		return []string{text}
	}
	return nil
}

// IncomingMessage Обработка входящего сообщения: поиск первого подходящего
// маршрута, проверка прав, выполнение операции, отправка ответа.
// Текст, не подошедший ни одному маршруту, молча игнорируется.
func (s *Model) IncomingMessage(msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(s.ctx, "IncomingMessage")
	s.ctx = ctx
	defer span.Finish()

	text := strings.TrimSpace(msg.Text)

	for _, r := range routes {
		args := r.match(text)
		if args == nil {
			continue
		}

		// Проверка уровня прав для маршрута.
		if r.level > permissions.None && !s.perms.CheckLevel(msg.UserID, r.level) {
			logger.Info("Отказ в доступе", "userID", msg.UserID, "text", text)
			return s.tgClient.SendMessage(txtNotPermitted, msg.ChatID)
		}

		reply, err := r.handler(s, ctx, msg, args)
		if err != nil {
			// Все виды ошибок превращаются в текстовый ответ,
			// процесс не падает.
			logger.Error("Ошибка обработки команды", "text", text, "err", err)
			return s.tgClient.SendMessage(errorReply(err), msg.ChatID)
		}
		if reply == "" {
			return nil
		}
		return s.tgClient.SendMessage(reply, msg.ChatID)
	}

	// Команда не распознана: молчаливое игнорирование.
	return nil
}

// errorReply Преобразование вида ошибки в текст ответа пользователю.
func errorReply(err error) string {
	switch {
	case errors.Is(err, lederrors.ErrInvalidAmount):
		return txtInvalidAmount
	case errors.Is(err, lederrors.ErrInvalidExpression):
		return txtInvalidExpr
	case errors.Is(err, lederrors.ErrInvalidTimeZone):
		return txtInvalidZone
	case errors.Is(err, lederrors.ErrInvalidCurrency):
		return txtInvalidCurrency
	case errors.Is(err, lederrors.ErrNotPermitted):
		return txtNotPermitted
	case errors.Is(err, lederrors.ErrNotFound):
		return txtNotFound
	case errors.Is(err, lederrors.ErrUpstreamTimeout):
		return txtUpstreamFailed
	}
	return txtInternalError
}

// accountID Идентификатор счета из контекста чата.
func accountID(msg Message) types.AccountID {
	return types.NewAccountID(msg.ChatType, msg.ChatID, msg.UserID)
}

// Область "Маршрутизация команд": конец.

// Область "Обработчики команд": начало.

func handleHelp(s *Model, _ context.Context, _ Message, _ []string) (string, error) {
	return txtHelp, nil
}

// handleDeposit Запись входящей транзакции (入款).
func handleDeposit(s *Model, ctx context.Context, msg Message, args []string) (string, error) {
	return s.recordTransaction(ctx, msg, types.Deposit, args[0], args[1])
}

// handleWithdrawal Запись исходящей транзакции (出款).
func handleWithdrawal(s *Model, ctx context.Context, msg Message, args []string) (string, error) {
	return s.recordTransaction(ctx, msg, types.Withdrawal, args[0], args[1])
}

// recordTransaction Общая часть записи транзакции: парсинг суммы, выбор
// валюты (суффикс "u" - USDT, иначе валюта счета), запись и ответ.
func (s *Model) recordTransaction(ctx context.Context, msg Message, kind types.TransactionKind, amountStr string, suffix string) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "recordTransaction")
	defer span.Finish()

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return "", errors.Wrapf(lederrors.ErrInvalidAmount, "сумма %q", amountStr)
	}

	id := accountID(msg)
	currency := types.USDT
	if suffix == "" {
		settings, err := s.ledger.Settings(ctx, id)
		if err != nil {
			return "", err
		}
		currency = settings.Currency
	}

	tx, err := s.ledger.RecordTransaction(ctx, id, kind, amount, currency)
	if err != nil {
		return "", err
	}
	s.invalidateReplyCache(id)

	verb := "入款"
	if kind == types.Withdrawal {
		verb = "出款"
	}
	reply := fmt.Sprintf("已记录%s:%s %s\n时间:%s", verb, tx.Amount, tx.Currency, tx.RecordedAt)
	if tx.Currency != types.USDT {
		reply += fmt.Sprintf("\n折合:%s USDT（汇率 %s）", s.rates.ConvertToUSDT(tx.Amount), s.rates.ExchangeRate())
	}
	return reply, nil
}

// handleBill Список транзакций счета: последние пять записей и общее
// количество. Необязательный аргумент - фрагмент времени для отбора.
func handleBill(s *Model, ctx context.Context, msg Message, args []string) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleBill")
	defer span.Finish()

	id := accountID(msg)
	fragment := args[0]

	// Кэшируется только полный (неотфильтрованный) ответ.
	cacheKey := billCacheKey(id)
	if fragment == "" {
		if cached, ok := s.replyCache.Get(cacheKey).(string); ok {
			return cached, nil
		}
	}

	txs, err := s.ledger.Transactions(ctx, id, fragment)
	if err != nil {
		return "", err
	}
	if len(txs) == 0 {
		return txtBillEmpty, nil
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("账单（最近 %d 笔，共 %d 笔）:\n", minInt(billTailSize, len(txs)), len(txs)))
	start := len(txs) - billTailSize
	if start < 0 {
		start = 0
	}
	for ind, tx := range txs[start:] {
		verb := "入款"
		if tx.Kind == types.Withdrawal {
			verb = "出款"
		}
		res.WriteString(fmt.Sprintf("%d. %s %s %s  %s\n", start+ind+1, verb, tx.Amount, tx.Currency, tx.RecordedAt))
	}
	reply := res.String()
	if fragment == "" {
		s.replyCache.Add(cacheKey, reply)
	}
	return reply, nil
}

// handleSummary Итоги по счету с пересчетом в USDT по текущему курсу.
func handleSummary(s *Model, ctx context.Context, msg Message, _ []string) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleSummary")
	defer span.Finish()

	id := accountID(msg)
	cacheKey := summaryCacheKey(id)
	if cached, ok := s.replyCache.Get(cacheKey).(string); ok {
		return cached, nil
	}

	totals, err := s.ledger.ComputeTotals(ctx, id)
	if err != nil {
		return "", err
	}
	settings, err := s.ledger.Settings(ctx, id)
	if err != nil {
		return "", err
	}

	// Пересчет в USDT: сначала комиссия, затем деление на курс.
	netUSDT := s.rates.ConvertToUSDT(s.rates.ApplyFee(totals.Net))

	reply := fmt.Sprintf("汇总:\n总入款:%s %s\n总出款:%s %s\n净额:%s %s\n净额（USDT）:%s（汇率 %s，费率 %s）",
		totals.Deposit, settings.Currency,
		totals.Withdrawal, settings.Currency,
		totals.Net, settings.Currency,
		netUSDT, s.rates.ExchangeRate(), s.rates.FeeRate())
	s.replyCache.Add(cacheKey, reply)
	return reply, nil
}

// handleMonthlyReport Запрос месячного отчета: отправка в кафку, отчет
// будет сформирован и доставлен отдельным сервисом.
func handleMonthlyReport(s *Model, ctx context.Context, msg Message, _ []string) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMonthlyReport")
	defer span.Finish()

	id := accountID(msg)
	settings, err := s.ledger.Settings(ctx, id)
	if err != nil {
		return "", err
	}
	loc, err := timeutils.LoadZone(settings.TimeZone)
	if err != nil {
		return "", err
	}

	monthFragment := timeutils.MonthPrefix(time.Now(), loc)
	p, o, err := s.kafkaProducer.SendMessage(string(id), monthFragment)
	if err != nil {
		logger.Error("Ошибка отправки сообщения в кафку", "err", err)
		return txtMonthlyFailed, nil
	}
	logger.Debug(fmt.Sprintf("[KAFKA] Successful to write message, topic %s, offset:%d, partition: %d", s.kafkaProducer.GetTopic(), o, p))
	return txtMonthlyQueued, nil
}

// handleDelete Удаление записей по фрагменту времени.
func handleDelete(s *Model, ctx context.Context, msg Message, args []string) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleDelete")
	defer span.Finish()

	id := accountID(msg)
	removed, err := s.ledger.DeleteByTimeFragment(ctx, id, strings.TrimSpace(args[0]))
	if err != nil {
		return "", err
	}
	s.invalidateReplyCache(id)
	if removed == 0 {
		return txtNotFound, nil
	}
	return fmt.Sprintf("已删除 %d 笔记录。", removed), nil
}

// handleClear Очистка последовательности транзакций (настройки счета остаются).
func handleClear(s *Model, ctx context.Context, msg Message, _ []string) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleClear")
	defer span.Finish()

	id := accountID(msg)
	if err := s.ledger.ClearAccount(ctx, id); err != nil {
		return "", err
	}
	s.invalidateReplyCache(id)
	return txtCleared, nil
}

// handleSetRate Установка курса USDT (общее значение процесса).
func handleSetRate(s *Model, _ context.Context, _ Message, args []string) (string, error) {
	rate, err := decimal.NewFromString(args[0])
	if err != nil {
		return "", errors.Wrapf(lederrors.ErrInvalidAmount, "курс %q", args[0])
	}
	if err := s.rates.SetExchangeRate(rate); err != nil {
		return "", err
	}
	// Курс общий для процесса: кэшированные ответы всех счетов устарели.
	s.replyCache.Clear()
	return fmt.Sprintf("已设置汇率:%s", rate), nil
}

// handleSetFee Установка ставки комиссии.
func handleSetFee(s *Model, _ context.Context, _ Message, args []string) (string, error) {
	fee, err := decimal.NewFromString(args[0])
	if err != nil {
		return "", errors.Wrapf(lederrors.ErrInvalidAmount, "ставка %q", args[0])
	}
	if err := s.rates.SetFeeRate(fee); err != nil {
		return "", err
	}
	// Ставка общая для процесса: кэшированные ответы всех счетов устарели.
	s.replyCache.Clear()
	return fmt.Sprintf("已设置费率:%s", fee), nil
}

// handleSetCurrency Установка валюты счета по умолчанию.
func handleSetCurrency(s *Model, ctx context.Context, msg Message, args []string) (string, error) {
	if err := s.ledger.SetCurrency(ctx, accountID(msg), args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("已设置币种:%s", strings.ToUpper(args[0])), nil
}

// handleSetTimeZone Установка часового пояса счета.
func handleSetTimeZone(s *Model, ctx context.Context, msg Message, args []string) (string, error) {
	if err := s.ledger.SetTimeZone(ctx, accountID(msg), args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("已设置时区:%s", args[0]), nil
}

// handleGrantOperator Выдача уровня оператора.
func handleGrantOperator(s *Model, _ context.Context, msg Message, args []string) (string, error) {
	targetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return "", errors.Wrapf(lederrors.ErrNotFound, "пользователь %q", args[0])
	}
	if err := s.perms.Grant(msg.UserID, targetID, permissions.Operator); err != nil {
		return "", err
	}
	return fmt.Sprintf("已设置操作人:%d", targetID), nil
}

// handleGrantAdmin Выдача уровня администратора (только владелец).
func handleGrantAdmin(s *Model, _ context.Context, msg Message, args []string) (string, error) {
	targetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return "", errors.Wrapf(lederrors.ErrNotFound, "пользователь %q", args[0])
	}
	if err := s.perms.Grant(msg.UserID, targetID, permissions.Admin); err != nil {
		return "", err
	}
	return fmt.Sprintf("已设置管理员:%d", targetID), nil
}

// handleRevoke Отзыв прав.
func handleRevoke(s *Model, _ context.Context, msg Message, args []string) (string, error) {
	targetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return "", errors.Wrapf(lederrors.ErrNotFound, "пользователь %q", args[0])
	}
	if err := s.perms.Revoke(msg.UserID, targetID); err != nil {
		return "", err
	}
	return fmt.Sprintf("已删除操作人:%d", targetID), nil
}

// handleCalc Вычисление арифметического выражения (изолированный
// вычислитель, никакого выполнения кода).
func handleCalc(s *Model, _ context.Context, _ Message, args []string) (string, error) {
	res, err := expr.Evaluate(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("计算结果:%s", res), nil
}

// Область "Обработчики команд": конец.

// Область "Служебные функции": начало.

// invalidateReplyCache Инвалидация кэшированных ответов счета после изменения.
func (s *Model) invalidateReplyCache(id types.AccountID) {
	s.replyCache.Remove(billCacheKey(id))
	s.replyCache.Remove(summaryCacheKey(id))
}

func billCacheKey(id types.AccountID) string {
	return string(id) + ":bill"
}

func summaryCacheKey(id types.AccountID) string {
	return string(id) + ":summary"
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Область "Служебные функции": конец.
