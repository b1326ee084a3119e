package queue

import (
	"context"
	"errors"
	"sync"
)

var ErrBrokerClosed = errors.New("broker closed")

const memoryQueueSize = 1024

// MemoryBroker delivers messages between goroutines of one process. Messages
// are lost on restart and failed handlers are not retried.
type MemoryBroker struct {
	mu     sync.Mutex
	queues map[string]chan []byte
	closed bool
	done   chan struct{}
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		queues: make(map[string]chan []byte),
		done:   make(chan struct{}),
	}
}

func (b *MemoryBroker) queue(name string) (chan []byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBrokerClosed
	}

	q, ok := b.queues[name]
	if !ok {
		q = make(chan []byte, memoryQueueSize)
		b.queues[name] = q
	}
	return q, nil
}

func (b *MemoryBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	q, err := b.queue(queueName)
	if err != nil {
		return err
	}

	body := make([]byte, len(message))
	copy(body, message)

	select {
	case q <- body:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return ErrBrokerClosed
	}
}

func (b *MemoryBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	q, err := b.queue(queueName)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-b.done:
				return
			case msg := <-q:
				_ = handler(ctx, msg)
			}
		}
	}()

	return nil
}

func (b *MemoryBroker) Healthy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed
}

func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.done)
	}
	return nil
}
