package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Publisher публикует события записей в Kafka.
// Ключ сообщения - ID мастера, поэтому события одного календаря идут в одну партицию по порядку.
type Publisher struct {
	writer       MessageWriter
	writeTimeout time.Duration
	now          func() time.Time
	logger       Logger
}

// NewKafkaPublisher создает продюсер поверх kafka-go
func NewKafkaPublisher(brokers []string, topic string, writeTimeout time.Duration, logger Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("%w: at least one broker is required", ErrInvalidConfig)
	}
	if topic == "" {
		return nil, fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger: kafka.LoggerFunc(func(format string, v ...interface{}) {
			logger.Error("kafka writer: "+format, v...)
		}),
	}

	return NewPublisher(writer, writeTimeout, logger), nil
}

// NewPublisher создает публикатор поверх произвольного MessageWriter
func NewPublisher(writer MessageWriter, writeTimeout time.Duration, logger Logger) *Publisher {
	return &Publisher{
		writer:       writer,
		writeTimeout: writeTimeout,
		now:          time.Now,
		logger:       logger,
	}
}

// Publish отправляет событие о записи
func (p *Publisher) Publish(ctx context.Context, eventType Type, a *domain.Appointment) error {
	event := Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		OccurredAt:  p.now().UTC(),
		Appointment: snapshot(a),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, eventType, err)
	}

	if p.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.writeTimeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(a.StaffID),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s id=%s: %v", ErrPublish, eventType, a.ID, err)
	}

	p.logger.Info("Events: published %s for appointment id=%s", eventType, a.ID)
	return nil
}

// Close закрывает writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Noop публикатор для отключенных событий
type Noop struct{}

func (Noop) Publish(context.Context, Type, *domain.Appointment) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
