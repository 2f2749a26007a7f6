package notifier

import (
	"context"
	"time"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewKafkaWriter flushes every message on its own; Notify waits for the write.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

type KafkaNotifier struct {
	writer MessageWriter
}

func NewKafkaNotifier(writer MessageWriter) *KafkaNotifier {
	return &KafkaNotifier{writer: writer}
}

// Notify keys the message by request id so every event for a request lands on one partition.
func (n *KafkaNotifier) Notify(ctx context.Context, req *appointment.Request) error {
	data, err := encode(req)
	if err != nil {
		return errs.Wrap(err, "encode appointment request")
	}
	id := req.ID().String()
	msg := kafka.Message{
		Key:   []byte(id),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(id)},
			{Key: "event_type", Value: []byte(EventAppointmentRequested)},
		},
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "write appointment request to kafka")
	}
	return nil
}
