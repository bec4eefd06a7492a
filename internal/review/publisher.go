package review

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/review/mock_publisher.go -package=mock_review

// DefaultSubject is the subject review events are published to.
const DefaultSubject = "cardstudy.reviews"

// Publisher delivers review events to other services.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Conn is the part of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
}

var _ Conn = (*nats.Conn)(nil)

// NATSPublisher publishes review events as JSON using NATS core pub/sub.
type NATSPublisher struct {
	conn    Conn
	subject string
}

// NewNATSPublisher creates a NATSPublisher. An empty subject uses DefaultSubject.
func NewNATSPublisher(conn Conn, subject string) *NATSPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSPublisher{conn: conn, subject: subject}
}

// Connect dials the NATS server at url.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name("cardstudy"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("nats.Connect(%s) > %w", url, err)
	}
	return nc, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("json.Marshal(event) > %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("conn.Publish(%s) > %w", p.subject, err)
	}
	return nil
}
