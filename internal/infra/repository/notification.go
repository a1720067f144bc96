package repository

import (
	"context"
	"time"

	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/infra/db"
	"enroll-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const createNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at)
VALUES ($1, $2, $3, $4, 'queued', $5)`

const claimDueJobsSQL = `
UPDATE notification_jobs
SET status = 'claimed', claimed_at = now(), attempts = attempts + 1, updated_at = now()
WHERE id IN (
	SELECT id FROM notification_jobs
	WHERE status = 'queued' AND run_at <= $1
	ORDER BY run_at ASC
	LIMIT $2
	FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, payload, run_at, attempts`

const markJobSentSQL = `
UPDATE notification_jobs
SET status = 'sent', updated_at = now()
WHERE id = $1`

const markJobFailedSQL = `
UPDATE notification_jobs
SET status = 'queued', claimed_at = NULL, last_error = $2, run_at = now() + interval '1 minute', updated_at = now()
WHERE id = $1`

const recoverStaleJobsSQL = `
UPDATE notification_jobs
SET status = 'queued', claimed_at = NULL, updated_at = now()
WHERE status = 'claimed' AND claimed_at < $1`

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if _, err := tx.Exec(ctx, createNotificationJobSQL, uuid.New(), kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDueJobs uses SKIP LOCKED so concurrent dispatcher runs never hand
// the same job to two workers.
func (r *NotificationRepository) ClaimDueJobs(ctx context.Context, tx db.DBTX, now time.Time, limit int32) ([]*shared.NotificationJob, error) {
	rows, err := tx.Query(ctx, claimDueJobsSQL, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due notification jobs", err)
	}
	defer rows.Close()

	var jobs []*shared.NotificationJob
	for rows.Next() {
		var job shared.NotificationJob
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &job.RunAt, &job.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, &job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read claimed notification jobs", err)
	}

	return jobs, nil
}

func (r *NotificationRepository) MarkJobSent(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, markJobSentSQL, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}

	return nil
}

// MarkJobFailed requeues the job with a short delay rather than dropping
// it; delivery is at-least-once.
func (r *NotificationRepository) MarkJobFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, lastError string) error {
	if _, err := tx.Exec(ctx, markJobFailedSQL, id, lastError); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}

	return nil
}

// RecoverStaleJobs requeues jobs whose worker died between claim and send.
func (r *NotificationRepository) RecoverStaleJobs(ctx context.Context, tx db.DBTX, claimedBefore time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, recoverStaleJobsSQL, claimedBefore)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to recover stale notification jobs", err)
	}

	return tag.RowsAffected(), nil
}
