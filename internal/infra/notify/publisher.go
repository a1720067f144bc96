package notify

import (
	"context"
	"sync"
	"time"

	"enroll-ledger/internal/pkg/config"
	"enroll-ledger/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher delivers notification payloads to RabbitMQ. Messages are
// persistent and the queue is durable, so delivery survives broker
// restarts. Declared queues are remembered per channel.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	url      string
	declared map[string]struct{}
}

func NewPublisher(cfg config.AMQPConfig) (*Publisher, func(), error) {
	p := &Publisher{
		url:      cfg.URL,
		declared: make(map[string]struct{}),
	}

	if err := p.connect(); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.ch != nil {
			_ = p.ch.Close()
		}
		if p.conn != nil {
			_ = p.conn.Close()
		}
	}

	return p, cleanup, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "failed to open rabbitmq channel")
	}

	p.conn = conn
	p.ch = ch
	p.declared = make(map[string]struct{})
	return nil
}

// Publish sends one persistent JSON message to the named queue,
// reconnecting once if the channel died since the last publish.
func (p *Publisher) Publish(ctx context.Context, queue string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	if err := p.ensureQueue(queue); err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         payload,
	}

	if err := p.ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		return errs.Wrap(err, "failed to publish notification")
	}

	return nil
}

func (p *Publisher) ensureQueue(queue string) error {
	if _, ok := p.declared[queue]; ok {
		return nil
	}

	if _, err := p.ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "failed to declare notification queue")
	}

	p.declared[queue] = struct{}{}
	return nil
}
