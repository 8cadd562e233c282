package processor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"velvetleash/server/config"
	"velvetleash/server/internal/models"
	"velvetleash/server/internal/queue"
)

// NotificationStore persists a batch of notifications atomically.
type NotificationStore interface {
	SaveNotifications(ctx context.Context, notifications []models.Notification) error
}

// NotificationProcessor turns boarding events from the queue into stored notifications
type NotificationProcessor struct {
	store     NotificationStore
	logger    *logrus.Logger
	config    *config.Config
	queue     *queue.EventQueue
	waitGroup sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	once      sync.Once
}

func NewNotificationProcessor(store NotificationStore, queue *queue.EventQueue, config *config.Config, logger *logrus.Logger) *NotificationProcessor {
	ctx, cancel := context.WithCancel(context.Background())
	return &NotificationProcessor{
		store:  store,
		queue:  queue,
		config: config,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start subscribes the processor to the queue. Subsequent calls are no-ops.
func (p *NotificationProcessor) Start() {
	p.once.Do(func() {
		p.queue.Subscribe(p.handle)
	})
}

// Stop cancels pending retries and waits for in-flight batches.
func (p *NotificationProcessor) Stop() {
	p.cancel()
	p.waitGroup.Wait()
}

func (p *NotificationProcessor) handle(batch []models.BoardingEvent) error {
	p.waitGroup.Add(1)
	defer p.waitGroup.Done()
	return p.processBatch(batch)
}

// processBatch stores the notifications for batch, retrying failed writes
func (p *NotificationProcessor) processBatch(batch []models.BoardingEvent) error {
	notifications := BuildNotifications(batch)
	if len(notifications) == 0 {
		return nil
	}

	maxRetries := p.config.Notifications.MaxRetries
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying notification batch, attempt %d of %d", attempt, maxRetries)
			select {
			case <-p.ctx.Done():
				return fmt.Errorf("notification batch abandoned: %w", p.ctx.Err())
			case <-time.After(p.config.Notifications.RetryDelay):
			}
		}

		err = p.store.SaveNotifications(p.ctx, notifications)
		if err == nil {
			p.logger.WithField("count", len(notifications)).Debug("Stored notifications")
			return nil
		}

		p.logger.WithError(err).Error("Failed to store notifications")
	}

	return fmt.Errorf("failed to process batch after %d attempts: %w", maxRetries+1, err)
}

// BuildNotifications maps each event to a notification for the request owner.
func BuildNotifications(events []models.BoardingEvent) []models.Notification {
	out := make([]models.Notification, 0, len(events))
	for _, e := range events {
		n, ok := notificationFor(e)
		if ok {
			out = append(out, n)
		}
	}
	return out
}

func notificationFor(e models.BoardingEvent) (models.Notification, bool) {
	if e.UserID == 0 {
		return models.Notification{}, false
	}

	requestID := e.RequestID
	n := models.Notification{
		UserID:            e.UserID,
		BoardingRequestID: &requestID,
		CreatedAt:         e.OccurredAt,
	}

	switch e.Type {
	case models.EventBoardingCreated:
		n.Type = models.NotificationBoardingCreated
		n.Title = "Boarding request saved"
		n.Message = fmt.Sprintf("Your boarding request #%d was saved. Total price: $%.2f.", e.RequestID, e.TotalPrice)
	case models.EventBoardingUpdated:
		n.Type = models.NotificationBoardingUpdated
		n.Title = "Boarding request updated"
		n.Message = fmt.Sprintf("Your boarding request #%d was updated. Total price: $%.2f.", e.RequestID, e.TotalPrice)
	case models.EventStatusChanged:
		n.Type = models.NotificationStatusChanged
		n.Title = fmt.Sprintf("Boarding request %s", e.Status)
		n.Message = fmt.Sprintf("Your boarding request #%d changed from %s to %s.", e.RequestID, e.Previous, e.Status)
	default:
		return models.Notification{}, false
	}
	return n, true
}
