package kafka

import (
	"context"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type RewardsSubscriber struct {
	brokers []string
}

func NewRewardsSubscriber(brokers []string) *RewardsSubscriber {
	return &RewardsSubscriber{brokers: brokers}
}

func (s *RewardsSubscriber) Subscribe(topic, groupID string) (<-chan domain.Message, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: s.brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	out := make(chan domain.Message)
	go func() {
		defer reader.Close()
		for {
			m, err := reader.ReadMessage(context.Background())
			if err != nil {
				close(out)
				return
			}
			out <- domain.Message{Key: m.Key, Value: m.Value}
		}
	}()
	return out, nil
}
