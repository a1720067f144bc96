package shared

import (
	"context"
	"time"

	"enroll-ledger/internal/domain/enrollment"
	"enroll-ledger/internal/domain/section"
	"enroll-ledger/internal/domain/user"
	"enroll-ledger/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Serializable transaction for seat accounting, retried on 40001/40P01
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Sections() SectionRepository
	Enrollments() EnrollmentRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	SectionByID(ctx context.Context, id uuid.UUID) (*SectionSnapshot, error)
	EnrollmentBySessionID(ctx context.Context, externalSessionID string) (*EnrollmentSnapshot, error)
}

type SectionRepository interface {
	Create(ctx context.Context, tx db.DBTX, sec *section.Section) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*section.Section, error)
	SaveOccupancy(ctx context.Context, tx db.DBTX, sec *section.Section) error
}

type EnrollmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, enr *enrollment.Enrollment) (uuid.UUID, error)
	FindByExternalSessionID(ctx context.Context, tx db.DBTX, externalSessionID string) (*enrollment.Enrollment, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*enrollment.Enrollment, error)
	CountWaitlisted(ctx context.Context, tx db.DBTX, sectionID uuid.UUID) (int32, error)
	ListWaitlistedForUpdate(ctx context.Context, tx db.DBTX, sectionID uuid.UUID) ([]*enrollment.Enrollment, error)
	ClearWaitlistPositions(ctx context.Context, tx db.DBTX, sectionID uuid.UUID) error
	SetWaitlistPosition(ctx context.Context, tx db.DBTX, id uuid.UUID, position int32) error
	SavePromotion(ctx context.Context, tx db.DBTX, enr *enrollment.Enrollment) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDueJobs(ctx context.Context, tx db.DBTX, now time.Time, limit int32) ([]*NotificationJob, error)
	MarkJobSent(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	MarkJobFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, lastError string) error
	RecoverStaleJobs(ctx context.Context, tx db.DBTX, claimedBefore time.Time) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, usr *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
