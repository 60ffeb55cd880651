package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"ledgerbot/internal/logger"
)

const configFile = "data/config.yaml"

type Config struct {
	Token              string   `yaml:"token"`              // Токен бота в телеграме.
	ConnectionStringDB string   `yaml:"ConnectionStringDB"` // Строка подключения к базе данных.
	OwnerUserID        int64    `yaml:"OwnerUserID"`        // Идентификатор владельца бота (единственный SuperAdmin).
	MainCurrency       string   `yaml:"MainCurrency"`       // Валюта счета по умолчанию.
	DefaultTimeZone    string   `yaml:"DefaultTimeZone"`    // Часовой пояс счета по умолчанию (IANA, пусто = UTC).
	ExchangeRate       string   `yaml:"ExchangeRate"`       // Стартовый курс USDT (делитель).
	FeeRate            string   `yaml:"FeeRate"`            // Стартовая ставка комиссии (например, "0.02").
	RatesURL           string   `yaml:"RatesURL"`           // URL внешнего источника курса (пусто = автообновление выключено).
	RatesUpdatePeriod  int64    `yaml:"RatesUpdatePeriod"`  // Периодичность обновления курса (в минутах).
	KafkaTopic         string   `yaml:"KafkaTopic"`         // Наименование топика Kafka для запросов месячных отчетов.
	BrokersList        []string `yaml:"BrokersList"`        // Список адресов брокеров сообщений (адрес Kafka).
}

type Service struct {
	config Config
}

// New Чтение файла конфигурации по стандартному пути.
func New() (*Service, error) {
	return NewFromFile(configFile)
}

// NewFromFile Чтение и проверка файла конфигурации.
// Отсутствие обязательных значений - фатальная ошибка запуска.
func NewFromFile(path string) (*Service, error) {
	s := &Service{}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Ошибка reading config file", "err", err)
		return nil, errors.Wrap(err, "reading config file")
	}

	if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
		logger.Error("Ошибка parsing yaml", "err", err)
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if err := validate(s.config); err != nil {
		return nil, err
	}

	return s, nil
}

// validate Проверка обязательных значений конфигурации.
func validate(cfg Config) error {
	if cfg.Token == "" {
		return errors.New("config: не задан токен бота (token)")
	}
	if cfg.ConnectionStringDB == "" {
		return errors.New("config: не задана строка подключения к БД (ConnectionStringDB)")
	}
	if cfg.OwnerUserID == 0 {
		return errors.New("config: не задан владелец бота (OwnerUserID)")
	}
	return nil
}

func (s *Service) Token() string {
	return s.config.Token
}

func (s *Service) GetConfig() Config {
	return s.config
}
