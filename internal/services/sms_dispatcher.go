package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"project-hub.com/project-hub/internal/logging"
	"project-hub.com/project-hub/internal/queue"
	repository "project-hub.com/project-hub/internal/repositories"
	"project-hub.com/project-hub/internal/sms"
)

// SMSDispatcher texts pending notifications. A cron sweep finds
// notifications that have not been sent yet and queues them; workers claim
// each one, then send it while holding a send slot.
type SMSDispatcher struct {
	queue    chan repository.PendingSMS
	mu       sync.RWMutex
	closed   bool
	wg       sync.WaitGroup
	enqueued sync.Map
	repo     *repository.NotificationRepository
	tokens   queue.TokenManager
	sender   sms.Sender
	batch    int
	cron     *cron.Cron
}

func NewSMSDispatcher(
	repo *repository.NotificationRepository,
	tokens queue.TokenManager,
	sender sms.Sender,
	workers int,
	queueSize int,
	batch int,
) *SMSDispatcher {
	d := &SMSDispatcher{
		queue:  make(chan repository.PendingSMS, queueSize),
		repo:   repo,
		tokens: tokens,
		sender: sender,
		batch:  batch,
	}

	for i := 1; i <= workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	return d
}

// Start schedules the sweep, e.g. "@every 30s" or "*/5 * * * *".
func (d *SMSDispatcher) Start(schedule string) error {
	c := cron.New(cron.WithLocation(time.Local))
	if _, err := c.AddFunc(schedule, d.Sweep); err != nil {
		return err
	}
	d.cron = c
	c.Start()
	return nil
}

func (d *SMSDispatcher) Sweep() {
	d.sweep(context.Background())
}

func (d *SMSDispatcher) sweep(ctx context.Context) {
	if d.isClosed() {
		return
	}

	pending, err := d.repo.ListPendingSMS(ctx, d.batch)
	if err != nil {
		logging.Logger.Errorf("sms sweep: failed to list pending notifications: %v", err)
		return
	}

	for _, msg := range pending {
		if _, queueFull := d.enqueueIfNotPresent(msg); queueFull {
			logging.Logger.Warn("sms sweep: queue is full, remaining notifications wait for the next run")
			return
		}
	}
}

func (d *SMSDispatcher) worker(workerID int) {
	defer d.wg.Done()

	logging.Logger.Debugf("sms worker %d started", workerID)

	for msg := range d.queue {
		d.handle(workerID, msg)
	}

	logging.Logger.Debugf("sms worker %d stopped", workerID)
}

func (d *SMSDispatcher) handle(workerID int, msg repository.PendingSMS) {
	ctx := context.Background()
	defer d.untrackEnqueued(msg.NotificationID)

	entry := logging.Logger.WithFields(logging.Fields{
		"worker":          workerID,
		"notification_id": msg.NotificationID,
	})

	if err := d.tokens.AcquireToken(ctx); err != nil {
		if errors.Is(err, queue.ErrNoTokenAvailable) {
			entry.Debug("no send slot available, retrying on next sweep")
			return
		}
		entry.Errorf("failed to acquire send slot: %v", err)
		return
	}
	defer d.releaseToken(ctx, entry)

	// a sweep may hold a stale copy of a notification another worker has
	// already sent; the claim lets only one of them through
	claimed, err := d.repo.ClaimSMS(ctx, msg.NotificationID)
	if err != nil {
		entry.Errorf("failed to claim notification: %v", err)
		return
	}
	if !claimed {
		entry.Debug("notification already sent, skipping")
		return
	}

	body := msg.Message
	if msg.Link != nil && *msg.Link != "" {
		body += " " + *msg.Link
	}

	if err := d.sender.Send(ctx, sms.Message{
		NotificationID: msg.NotificationID,
		Phone:          msg.Phone,
		Body:           body,
	}); err != nil {
		entry.Warnf("failed to send sms: %v", err)
		if err := d.repo.ReleaseSMSClaim(ctx, msg.NotificationID); err != nil {
			entry.Errorf("failed to return notification to pending: %v", err)
		}
	}
}

func (d *SMSDispatcher) releaseToken(ctx context.Context, entry *logrus.Entry) {
	if err := d.tokens.ReleaseToken(ctx); err != nil {
		entry.Errorf("failed to release send slot: %v", err)
	}
}

// enqueueIfNotPresent reports whether msg was queued and whether the queue
// was full.
func (d *SMSDispatcher) enqueueIfNotPresent(msg repository.PendingSMS) (bool, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return false, false
	}
	if !d.trackEnqueued(msg.NotificationID) {
		return false, false
	}

	select {
	case d.queue <- msg:
		return true, false
	default:
		d.untrackEnqueued(msg.NotificationID)
		return false, true
	}
}

func (d *SMSDispatcher) trackEnqueued(id uint) bool {
	_, loaded := d.enqueued.LoadOrStore(id, struct{}{})
	return !loaded
}

func (d *SMSDispatcher) untrackEnqueued(id uint) {
	d.enqueued.Delete(id)
}

func (d *SMSDispatcher) isClosed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.closed
}

// Shutdown stops the schedule, waits for a running sweep to finish and
// drains the workers until ctx expires. Sweeps started afterwards do nothing.
func (d *SMSDispatcher) Shutdown(ctx context.Context) {
	if d.cron != nil {
		<-d.cron.Stop().Done()
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Logger.Info("sms dispatcher shut down cleanly")
	case <-ctx.Done():
		logging.Logger.Warn("sms dispatcher shutdown timed out")
	}
}
