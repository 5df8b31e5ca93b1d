// Package kafka publishes assembled getaway reports to a Kafka topic for
// downstream consumers (caching layers, analytics, notification fan-out).
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/weekend-getaway-ranker/internal/config"
	"github.com/couchcryptid/weekend-getaway-ranker/internal/domain"
)

// Publisher produces report messages to the configured report topic.
// It implements service.ReportPublisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured report topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaReportTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish serializes and writes one report to the report topic.
func (p *Publisher) Publish(ctx context.Context, report domain.Report) error {
	msg, err := serializeReport(report)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeReport marshals a report into a Kafka message. The key is the
// normalized source city so all reports for one city land on one partition.
func serializeReport(report domain.Report) (kafkago.Message, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize report: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(domain.NormalizeKey(report.SourceCity)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "source_state", Value: []byte(report.SourceState)},
			{Key: "generated_at", Value: []byte(report.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
