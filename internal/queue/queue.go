package queue

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"velvetleash/server/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// Handler consumes one batch of boarding events.
type Handler func([]models.BoardingEvent) error

// EventQueue is an in-memory queue of boarding event batches
type EventQueue struct {
	items    chan []models.BoardingEvent
	done     chan struct{}
	stopped  chan struct{}
	maxSize  int
	closed   bool
	started  bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []Handler
}

// NewEventQueue creates a queue holding at most bufferSize pending batches
func NewEventQueue(bufferSize int, logger *logrus.Logger) *EventQueue {
	return &EventQueue{
		items:   make(chan []models.BoardingEvent, bufferSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		maxSize: bufferSize,
		logger:  logger,
	}
}

// Push adds a batch of events to the queue without blocking
func (q *EventQueue) Push(events []models.BoardingEvent) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.items <- events:
		q.logger.WithField("batch_size", len(events)).Debug("Pushed batch to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Publish pushes a single event. Failures are logged, never returned, so callers
// that already committed their change are not rolled back by a full queue.
func (q *EventQueue) Publish(event models.BoardingEvent) {
	if err := q.Push([]models.BoardingEvent{event}); err != nil {
		q.logger.WithError(err).WithFields(logrus.Fields{
			"event":      event.Type,
			"request_id": event.RequestID,
		}).Warn("Dropped boarding event")
	}
}

// Subscribe adds a handler that is called for each batch
func (q *EventQueue) Subscribe(handler Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins dispatching batches to subscribers. Calling it twice has no effect.
func (q *EventQueue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.started = true
	go q.process()
}

func (q *EventQueue) process() {
	defer close(q.stopped)
	for {
		select {
		case <-q.done:
			// Drain what was accepted before Close.
			for {
				select {
				case batch := <-q.items:
					q.dispatch(batch)
				default:
					return
				}
			}
		case batch := <-q.items:
			q.dispatch(batch)
		}
	}
}

func (q *EventQueue) dispatch(batch []models.BoardingEvent) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Handler failed to process batch")
		}
	}
}

// Close stops accepting events, delivers the ones already queued and waits for
// the dispatch loop to exit.
func (q *EventQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.done)
	started := q.started
	q.mu.Unlock()

	if started {
		<-q.stopped
	}
	return nil
}

// Len returns the number of batches waiting to be dispatched
func (q *EventQueue) Len() int {
	return len(q.items)
}

func (q *EventQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
