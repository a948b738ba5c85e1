// Package queue_publisher publishes accepted enquiries to RabbitMQ.  It
// implements booking.Notifier so the submission guard can hand acceptances
// to it directly.
package queue_publisher

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/party-bliss/internal/booking"
	q "github.com/iliyamo/party-bliss/internal/queue"
)

// Publisher sends EnquiryAcceptedEvent messages to a durable queue.  Each
// publish opens its own connection so a broker outage never outlives a
// single request.
type Publisher struct {
	URL   string
	Queue string
	// DialTimeout bounds connecting and the AMQP handshake.  Publishing runs
	// while the submitting form instance is locked.
	DialTimeout time.Duration
	// Fallback acknowledges the enquiry when publishing fails.
	Fallback booking.Notifier
}

// DefaultDialTimeout is used when DialTimeout is not set.
const DefaultDialTimeout = 2 * time.Second

// NewPublisher returns a publisher for url/queue.  fallback may be nil.
func NewPublisher(url, queue string, fallback booking.Notifier) *Publisher {
	if queue == "" {
		queue = "enquiry.accepted"
	}
	return &Publisher{URL: url, Queue: queue, DialTimeout: DefaultDialTimeout, Fallback: fallback}
}

// EnquiryAccepted publishes the acceptance.  On failure the fallback (if
// any) is notified and the publish error is returned.
func (p *Publisher) EnquiryAccepted(ctx context.Context, a booking.Acceptance) error {
	err := p.publish(ctx, q.NewEnquiryAcceptedEvent(a))
	if err != nil && p.Fallback != nil {
		_ = p.Fallback.EnquiryAccepted(ctx, a)
	}
	return err
}

func (p *Publisher) publish(ctx context.Context, event q.EnquiryAcceptedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	conn, err := amqp.DialConfig(p.URL, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout(ctx)),
	})
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	// idempotent; durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(p.Queue, true, false, false, false, nil); err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	return ch.PublishWithContext(ctx, "", p.Queue, false, false, pub)
}

// dialTimeout is DialTimeout, shortened to the time left on ctx.
func (p *Publisher) dialTimeout(ctx context.Context) time.Duration {
	d := p.DialTimeout
	if d <= 0 {
		d = DefaultDialTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < d {
			d = left
		}
	}
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}
