package report_test

import (
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// mockToken implements mqtt.Token with a fixed outcome.
type mockToken struct {
	err       error
	completed bool
}

func (t *mockToken) Wait() bool                     { return t.completed }
func (t *mockToken) WaitTimeout(time.Duration) bool { return t.completed }
func (t *mockToken) Error() error                   { return t.err }

func (t *mockToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	if t.completed {
		close(ch)
	}
	return ch
}

type publishedMessage struct {
	Topic    string
	QoS      byte
	Retained bool
	Payload  []byte
}

// mockPublisher records every publish and answers with a configurable token.
type mockPublisher struct {
	mu       sync.Mutex
	err      error
	stalled  bool
	messages []publishedMessage
}

func (p *mockPublisher) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	p.mu.Lock()
	defer p.mu.Unlock()
	body, _ := payload.([]byte)
	p.messages = append(p.messages, publishedMessage{Topic: topic, QoS: qos, Retained: retained, Payload: body})

	return &mockToken{err: p.err, completed: !p.stalled}
}

func (p *mockPublisher) Messages() []publishedMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedMessage, len(p.messages))
	copy(out, p.messages)

	return out
}
