package pubsub

import (
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// localClient stands in when no GCP project is configured. Published events
// are encoded and then only logged.
type localClient struct{}

// NewLocal returns a PubSubClient that never leaves the process.
func NewLocal() PubSubClient {
	return localClient{}
}

func (localClient) SendMessage(topic EventType, data any) error {
	payload, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	log.Debug("Pub/Sub disabled, dropping event", "topic", topic, "bytes", len(payload))
	return nil
}

func (localClient) ProcessMessage(data []byte, returnValue any) error {
	return decode(data, returnValue)
}

func (localClient) Close() {}
