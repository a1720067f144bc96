//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	reqdto "enroll-ledger/internal/handler/dto/request"
	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/pkg/clock"
	"enroll-ledger/internal/pkg/config"
	"enroll-ledger/internal/pkg/errs"
	"enroll-ledger/internal/usecase/commands"
	"enroll-ledger/tests/common/builder"
	commandsmock "enroll-ledger/tests/mock/commands"
	sharedmock "enroll-ledger/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	uow   *sharedmock.MockUnitOfWork
	reads *sharedmock.MockCommandReads
	cache *commandsmock.MockSessionCache
	clock *clock.MockClock
	svc   commands.CheckoutCommands
}

func newCheckoutFixture(t *testing.T, cfg config.CheckoutConfig) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &checkoutFixture{
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		reads: sharedmock.NewMockCommandReads(ctrl),
		cache: commandsmock.NewMockSessionCache(ctrl),
		clock: clock.NewMockClock(time.Unix(1_000_000_000, 0)),
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.svc = commands.NewCheckoutCommands(f.uow, f.cache, cfg, f.clock)
	return f
}

func validCheckoutConfig() config.CheckoutConfig {
	return config.CheckoutConfig{
		ProviderBaseURL:   "https://pay.example.com",
		SuccessURL:        "https://app.example.com/success",
		CancelURL:         "https://app.example.com/cancel",
		PriceFullCents:    50000,
		PriceDepositCents: 10000,
		SessionTTL:        30 * time.Second,
	}
}

func checkoutRequest(sectionID uuid.UUID, plan string) reqdto.CheckoutRequest {
	email := "student@example.com"
	return reqdto.CheckoutRequest{
		SectionID: sectionID,
		Plan:      plan,
		Email:     &email,
	}
}

func TestInitiateCheckout(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		f := newCheckoutFixture(t, validCheckoutConfig())

		snapshot := builder.NewSectionBuilder().WithEnrolledCount(1).BuildSnapshot()
		req := checkoutRequest(snapshot.ID, "FULL")

		f.reads.EXPECT().
			SectionByID(gomock.Any(), snapshot.ID).
			Return(snapshot, nil)
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return("", false, nil)
		f.cache.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		result, err := f.svc.InitiateCheckout(context.Background(), req)
		require.NoError(t, err)

		assert.False(t, result.Deduplicated)
		assert.NotEmpty(t, result.SessionID)
		assert.True(t, strings.HasPrefix(result.RedirectURL, "https://pay.example.com/checkout/"))
		assert.Contains(t, result.RedirectURL, "amount=50000")
	})

	t.Run("キャッシュ命中なら既存セッションを返す", func(t *testing.T) {
		f := newCheckoutFixture(t, validCheckoutConfig())

		snapshot := builder.NewSectionBuilder().BuildSnapshot()
		req := checkoutRequest(snapshot.ID, "DEPOSIT")

		f.reads.EXPECT().
			SectionByID(gomock.Any(), snapshot.ID).
			Return(snapshot, nil)
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return("https://pay.example.com/checkout/cached", true, nil)

		result, err := f.svc.InitiateCheckout(context.Background(), req)
		require.NoError(t, err)

		assert.True(t, result.Deduplicated)
		assert.Equal(t, "https://pay.example.com/checkout/cached", result.RedirectURL)
	})

	t.Run("重複トークンは10秒窓で安定する", func(t *testing.T) {
		f := newCheckoutFixture(t, validCheckoutConfig())

		snapshot := builder.NewSectionBuilder().BuildSnapshot()
		req := checkoutRequest(snapshot.ID, "FULL")

		f.reads.EXPECT().
			SectionByID(gomock.Any(), snapshot.ID).
			Return(snapshot, nil).
			Times(3)
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return("", false, nil).
			Times(3)
		f.cache.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(3)

		first, err := f.svc.InitiateCheckout(context.Background(), req)
		require.NoError(t, err)

		f.clock.Add(5 * time.Second)
		sameBucket, err := f.svc.InitiateCheckout(context.Background(), req)
		require.NoError(t, err)

		f.clock.Add(10 * time.Second)
		nextBucket, err := f.svc.InitiateCheckout(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, first.SessionID, sameBucket.SessionID)
		assert.NotEqual(t, first.SessionID, nextBucket.SessionID)
	})

	t.Run("キャッシュ読み取り失敗でも新規セッションを発行する", func(t *testing.T) {
		f := newCheckoutFixture(t, validCheckoutConfig())

		snapshot := builder.NewSectionBuilder().BuildSnapshot()
		req := checkoutRequest(snapshot.ID, "FULL")

		f.reads.EXPECT().
			SectionByID(gomock.Any(), snapshot.ID).
			Return(snapshot, nil)
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return("", false, errs.New("redis unavailable"))
		f.cache.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		result, err := f.svc.InitiateCheckout(context.Background(), req)
		require.NoError(t, err)

		assert.False(t, result.Deduplicated)
		assert.NotEmpty(t, result.RedirectURL)
	})

	t.Run("キャッシュ書き込み失敗でもセッションを返す", func(t *testing.T) {
		f := newCheckoutFixture(t, validCheckoutConfig())

		snapshot := builder.NewSectionBuilder().BuildSnapshot()
		req := checkoutRequest(snapshot.ID, "DEPOSIT")

		f.reads.EXPECT().
			SectionByID(gomock.Any(), snapshot.ID).
			Return(snapshot, nil)
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return("", false, nil)
		f.cache.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.New("redis unavailable"))

		result, err := f.svc.InitiateCheckout(context.Background(), req)
		require.NoError(t, err)

		assert.False(t, result.Deduplicated)
		assert.Contains(t, result.RedirectURL, "amount=10000")
	})

	t.Run("満席NG", func(t *testing.T) {
		f := newCheckoutFixture(t, validCheckoutConfig())

		snapshot := builder.NewSectionBuilder().AsFull().BuildSnapshot()
		req := checkoutRequest(snapshot.ID, "FULL")

		f.reads.EXPECT().
			SectionByID(gomock.Any(), snapshot.ID).
			Return(snapshot, nil)

		_, err := f.svc.InitiateCheckout(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrSectionFull)
	})

	t.Run("セクションが存在しないNG", func(t *testing.T) {
		f := newCheckoutFixture(t, validCheckoutConfig())
		req := checkoutRequest(uuid.New(), "FULL")

		f.reads.EXPECT().
			SectionByID(gomock.Any(), req.SectionID).
			Return(nil, infra.WrapRepoErr("section", nil, infra.KindNotFound))

		_, err := f.svc.InitiateCheckout(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrSectionNotFound)
	})

	t.Run("プロバイダ未設定は即時拒否", func(t *testing.T) {
		cfg := validCheckoutConfig()
		cfg.ProviderBaseURL = ""
		f := newCheckoutFixture(t, cfg)

		_, err := f.svc.InitiateCheckout(context.Background(), checkoutRequest(uuid.New(), "FULL"))
		assert.ErrorIs(t, err, commands.ErrCheckoutNotConfigured)
	})

	t.Run("価格未設定は即時拒否", func(t *testing.T) {
		cfg := validCheckoutConfig()
		cfg.PriceDepositCents = 0
		f := newCheckoutFixture(t, cfg)

		_, err := f.svc.InitiateCheckout(context.Background(), checkoutRequest(uuid.New(), "DEPOSIT"))
		assert.ErrorIs(t, err, commands.ErrCheckoutNotConfigured)
	})

	t.Run("無効なプランNG", func(t *testing.T) {
		f := newCheckoutFixture(t, validCheckoutConfig())

		req := checkoutRequest(uuid.New(), "full")
		_, err := f.svc.InitiateCheckout(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrInvalidPlan)
	})
}
