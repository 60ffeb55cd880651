// Package kafka Хелпер для работы с кафкой (очередь запросов месячных отчетов).
package kafka

import (
	"time"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
)

type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSyncProducer Инициализация синхронного продюсера для отправки
// запросов на формирование отчетов.
func NewSyncProducer(brokerList []string, topic string) (*KafkaProducer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0
	// Ожидание подтверждения от всех in-sync реплик.
	config.Producer.RequiredAcks = sarama.WaitForAll
	// Ограниченное число повторов с постоянной паузой между ними.
	config.Producer.Retry.Max = 3
	config.Producer.Retry.Backoff = time.Millisecond * 250
	// Успешно доставленные сообщения возвращаются в канал Successes.
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokerList, config)
	if err != nil {
		return &KafkaProducer{}, errors.Wrap(err, "Starting Sarama producer")
	}

	return &KafkaProducer{
		producer: producer,
		topic:    topic,
	}, nil
}

// SendMessage Отправка сообщения (ключ - идентификатор счета, значение - фрагмент месяца).
func (k *KafkaProducer) SendMessage(key string, value string) (partition int32, offset int64, err error) {
	msg := sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.StringEncoder(value),
	}
	p, o, err := k.producer.SendMessage(&msg)
	if err != nil {
		return 0, 0, err
	}
	return p, o, nil
}

func (k *KafkaProducer) GetTopic() string {
	return k.topic
}
