package domain

// Message is a raw broker message. Key carries the merchant id so events
// for one merchant stay ordered within a partition.
type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

type SubscriberPort interface {
	Subscribe(topic, groupID string) (<-chan Message, error)
}
