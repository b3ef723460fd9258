package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type RewardsPublisher struct {
	writer *kafka.Writer
}

func NewRewardsPublisher(brokers []string) *RewardsPublisher {
	return &RewardsPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *RewardsPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return p.writer.WriteMessages(context.Background(), km...)
}

func (p *RewardsPublisher) PublishPlanChange(event PlanChangeEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Publish(TopicPlanEvents, domain.Message{Key: []byte(event.MerchantID), Value: v})
}

func (p *RewardsPublisher) PublishMerchantActivated(event MerchantActivatedEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Publish(TopicMerchantEvents, domain.Message{Key: []byte(event.MerchantID), Value: v})
}
