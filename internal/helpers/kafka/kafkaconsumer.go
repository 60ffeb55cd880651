// Package kafka Хелпер для работы с кафкой (очередь запросов месячных отчетов).
package kafka

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"

	"ledgerbot/internal/logger"
)

type KafkaConsumer struct {
	ctx      context.Context
	consumer sarama.ConsumerGroup
	topic    string
}

// NewConsumer Инициализация группы потребителей для чтения запросов отчетов.
func NewConsumer(ctx context.Context, brokerList []string, topic string) (*KafkaConsumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRange}

	kafkaConsumerGroup := topic + "-consumer-group"
	consumerGroup, err := sarama.NewConsumerGroup(brokerList, kafkaConsumerGroup, config)
	if err != nil {
		return &KafkaConsumer{}, errors.Wrap(err, "Starting consumer group")
	}

	return &KafkaConsumer{
		ctx:      ctx,
		consumer: consumerGroup,
		topic:    topic,
	}, nil
}

// RunConsume Запуск цикла чтения очереди. Сообщение помечается обработанным
// только при отсутствии ошибки обработчика - иначе оно будет перечитано.
func (c *KafkaConsumer) RunConsume(handlerFunc func(ctx context.Context, key string, value string) error) error {
	consumerGroupHandler := Consumer{
		ctx:         c.ctx,
		handlerFunc: handlerFunc,
	}
	err := c.consumer.Consume(c.ctx, []string{c.topic}, &consumerGroupHandler)
	if err != nil {
		return errors.Wrap(err, "consuming via handler")
	}
	return nil
}

// Consumer Реализация интерфейса sarama.ConsumerGroupHandler.
type Consumer struct {
	ctx         context.Context
	handlerFunc func(ctx context.Context, key string, value string) error
}

// Setup Вызывается в начале новой сессии, до ConsumeClaim.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Debug("consumer - setup")
	return nil
}

// Cleanup Вызывается в конце сессии после завершения всех ConsumeClaim.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Debug("consumer - cleanup")
	return nil
}

// ConsumeClaim Цикл чтения сообщений очереди.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		err := consumer.handlerFunc(consumer.ctx, string(message.Key), string(message.Value))
		if err == nil {
			session.MarkMessage(message, "")
		}
	}
	return nil
}
