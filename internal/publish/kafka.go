package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"chainsentry/internal/detect"

	"github.com/IBM/sarama"
)

const (
	SinkName     = "kafka"
	EnvelopeType = "signal"
)

var TimeNow = time.Now

// Envelope wraps every record written to the topic.
type Envelope struct {
	Type string          `json:"type"`
	TS   int64           `json:"ts"`
	Data json.RawMessage `json:"data"`
}

type KafkaPublisher struct {
	topic    string
	producer sarama.SyncProducer
}

// ProducerConfig returns the producer settings used for signal publication.
func ProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = "chainsentry"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	return cfg
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if topic == "" {
		return nil, errors.New("topic empty")
	}
	if len(brokers) == 0 {
		return nil, errors.New("no brokers")
	}

	p, err := sarama.NewSyncProducer(brokers, ProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewKafkaPublisherWithProducer(p, topic), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		topic:    topic,
		producer: producer,
	}
}

func (k *KafkaPublisher) Name() string {
	return SinkName
}

// Publish sends one message per signal, keyed by block number so a block's
// signals land on the same partition.
func (k *KafkaPublisher) Publish(ctx context.Context, signals []detect.Signal) error {
	if len(signals) == 0 {
		return nil
	}
	// SyncProducer has no ctx support, so a cancelled caller is only honoured before sending
	if err := ctx.Err(); err != nil {
		return err
	}

	ts := TimeNow().UnixMilli()
	msgs := make([]*sarama.ProducerMessage, 0, len(signals))
	for _, s := range signals {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode signal %s: %w", s.ID, err)
		}
		b, err := json.Marshal(Envelope{
			Type: EnvelopeType,
			TS:   ts,
			Data: data,
		})
		if err != nil {
			return fmt.Errorf("encode envelope: %w", err)
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: k.topic,
			Key:   sarama.StringEncoder(strconv.FormatUint(s.BlockNumber, 10)),
			Value: sarama.ByteEncoder(b),
		})
	}

	if err := k.producer.SendMessages(msgs); err != nil {
		return fmt.Errorf("kafka publish failed: %w", err)
	}
	return nil
}

func (k *KafkaPublisher) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
