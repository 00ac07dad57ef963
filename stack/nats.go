package stack

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/CPU-commits/RedInclusion/settings"
	"github.com/nats-io/nats.go"
)

var settingsData = settings.GetSettings()

type NatsClient struct {
	url string

	mu   sync.Mutex
	conn *nats.Conn
}

// Only a successful connection is kept, a failed dial is retried on the next publish
func (n *NatsClient) connect() (*nats.Conn, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn != nil && !n.conn.IsClosed() {
		return n.conn, nil
	}
	conn, err := nats.Connect(
		n.url,
		nats.Name("red_inclusion"),
		nats.Timeout(2*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}
	n.conn = conn
	return conn, nil
}

func (n *NatsClient) Publish(subject string, data []byte) error {
	conn, err := n.connect()
	if err != nil {
		return err
	}
	return conn.Publish(subject, data)
}

func (n *NatsClient) PublishEncode(subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return n.Publish(subject, payload)
}

func (n *NatsClient) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn != nil {
		n.conn.Close()
		n.conn = nil
	}
}

func NewNats() *NatsClient {
	url := nats.DefaultURL
	if settingsData.NATS_HOST != "" {
		url = fmt.Sprintf("nats://%s", settingsData.NATS_HOST)
	}
	return &NatsClient{
		url: url,
	}
}
