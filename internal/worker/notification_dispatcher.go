package worker

import (
	"context"
	"log/slog"

	"enroll-ledger/internal/pkg/clock"
	"enroll-ledger/internal/pkg/config"
	"enroll-ledger/internal/pkg/errs"
	"enroll-ledger/internal/usecase/shared"

	"github.com/go-co-op/gocron/v2"
)

// Publisher delivers a notification payload to a queue.
type Publisher interface {
	Publish(ctx context.Context, queue string, payload []byte) error
}

// NotificationDispatcher drains queued notification jobs into the message
// broker. Jobs are claimed before publishing so a crashed dispatcher never
// loses them: stale claims are flipped back to queued by the recovery job.
type NotificationDispatcher struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	workerCfg config.WorkerConfig
	queueName string
	scheduler gocron.Scheduler
}

func NewNotificationDispatcher(
	uow shared.UnitOfWork,
	publisher Publisher,
	clk clock.Clock,
	cfg config.Config,
) (*NotificationDispatcher, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, errs.Wrap(err, "failed to create scheduler")
	}

	return &NotificationDispatcher{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		workerCfg: cfg.Worker,
		queueName: cfg.AMQP.QueueName,
		scheduler: scheduler,
	}, nil
}

func (d *NotificationDispatcher) Start(ctx context.Context) error {
	_, err := d.scheduler.NewJob(
		gocron.DurationJob(d.workerCfg.DispatchInterval),
		gocron.NewTask(func() {
			if err := d.DispatchOnce(ctx); err != nil {
				slog.Error("notification dispatch failed", "error", err.Error())
			}
		}),
	)
	if err != nil {
		return errs.Wrap(err, "failed to schedule dispatch job")
	}

	_, err = d.scheduler.NewJob(
		gocron.DurationJob(d.workerCfg.RecoveryInterval),
		gocron.NewTask(func() {
			if err := d.RecoverOnce(ctx); err != nil {
				slog.Error("stale claim recovery failed", "error", err.Error())
			}
		}),
	)
	if err != nil {
		return errs.Wrap(err, "failed to schedule recovery job")
	}

	d.scheduler.Start()
	slog.Info("notification dispatcher started",
		"dispatch_interval", d.workerCfg.DispatchInterval,
		"recovery_interval", d.workerCfg.RecoveryInterval,
	)
	return nil
}

func (d *NotificationDispatcher) Stop() error {
	return d.scheduler.Shutdown()
}

// DispatchOnce claims a batch of due jobs, publishes each, and records the
// outcome. Claiming and outcome recording run in separate transactions so a
// publish failure requeues only the job that failed.
func (d *NotificationDispatcher) DispatchOnce(ctx context.Context) error {
	var jobs []*shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var claimErr error
		jobs, claimErr = tx.Notifications().ClaimDueJobs(ctx, tx.DB(), d.clock.Now(), int32(d.workerCfg.BatchSize))
		return claimErr
	})
	if err != nil {
		return errs.Wrap(err, "failed to claim notification jobs")
	}

	for _, job := range jobs {
		d.deliver(ctx, job)
	}
	return nil
}

func (d *NotificationDispatcher) deliver(ctx context.Context, job *shared.NotificationJob) {
	publishErr := d.publisher.Publish(ctx, d.queueName, job.Payload)

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if publishErr != nil {
			return tx.Notifications().MarkJobFailed(ctx, tx.DB(), job.ID, publishErr.Error())
		}
		return tx.Notifications().MarkJobSent(ctx, tx.DB(), job.ID)
	})
	if err != nil {
		// The claim stays in place; recovery requeues it after the stale window.
		slog.Error("failed to record notification outcome",
			"job_id", job.ID,
			"topic", job.Topic,
			"error", err.Error(),
		)
		return
	}

	if publishErr != nil {
		slog.Warn("notification publish failed, job requeued",
			"job_id", job.ID,
			"topic", job.Topic,
			"attempts", job.Attempts,
			"error", publishErr.Error(),
		)
	}
}

// RecoverOnce requeues jobs whose claim outlived the stale window.
func (d *NotificationDispatcher) RecoverOnce(ctx context.Context) error {
	var recovered int64
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var recoverErr error
		claimedBefore := d.clock.Now().Add(-d.workerCfg.StaleClaimAfter)
		recovered, recoverErr = tx.Notifications().RecoverStaleJobs(ctx, tx.DB(), claimedBefore)
		return recoverErr
	})
	if err != nil {
		return errs.Wrap(err, "failed to recover stale notification claims")
	}

	if recovered > 0 {
		slog.Warn("recovered stale notification claims", "count", recovered)
	}
	return nil
}
