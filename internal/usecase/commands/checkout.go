package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"

	"enroll-ledger/internal/domain/enrollment"
	reqdto "enroll-ledger/internal/handler/dto/request"
	"enroll-ledger/internal/infra"
	"enroll-ledger/internal/pkg/clock"
	"enroll-ledger/internal/pkg/config"
	"enroll-ledger/internal/pkg/errs"
	"enroll-ledger/internal/usecase/shared"
)

var (
	ErrSectionNotFound       = errs.New("section not found")
	ErrSectionFull           = errs.New("section is full")
	ErrInvalidPlan           = errs.New("invalid plan")
	ErrCheckoutNotConfigured = errs.New("checkout is not configured")
	ErrCheckoutFailed        = errs.New("checkout failed")
)

// dedupBucketSeconds is the width of the duplicate-submission window: two
// checkouts for the same section and plan inside one bucket share a token.
const dedupBucketSeconds = 10

type CheckoutResult struct {
	SessionID    string
	RedirectURL  string
	Deduplicated bool
}

// SessionCache remembers which provider session a dedup token maps to.
type SessionCache interface {
	Get(ctx context.Context, token string) (string, bool, error)
	Put(ctx context.Context, token, handle string) error
}

type CheckoutCommands interface {
	InitiateCheckout(ctx context.Context, req reqdto.CheckoutRequest) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow   shared.UnitOfWork
	cache SessionCache
	cfg   config.CheckoutConfig
	clock clock.Clock
}

func NewCheckoutCommands(uow shared.UnitOfWork, cache SessionCache, cfg config.CheckoutConfig, clk clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:   uow,
		cache: cache,
		cfg:   cfg,
		clock: clk,
	}
}

// InitiateCheckout runs the pre-payment leg: an advisory capacity check
// against the current snapshot and the creation (or reuse) of a provider
// checkout session. The check is racy on purpose; the reconciler makes the
// binding decision later under the section row lock.
func (c *checkoutCommandsImpl) InitiateCheckout(ctx context.Context, req reqdto.CheckoutRequest) (*CheckoutResult, error) {
	sectionID, plan, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlan)
	}

	priceCents, err := c.priceFor(plan)
	if err != nil {
		return nil, err
	}

	snapshot, err := c.uow.CommandReads().SectionByID(ctx, sectionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	if snapshot.EnrolledCount >= snapshot.MaxCapacity {
		return nil, ErrSectionFull
	}

	token := c.dedupToken(sectionID.String(), plan)

	// The session cache is advisory dedup only. A broken cache costs a
	// duplicate provider session, never a failed checkout.
	handle, ok, err := c.cache.Get(ctx, token)
	if err != nil {
		slog.Warn("checkout session cache read failed, issuing a fresh session",
			"section_id", sectionID.String(), "error", err)
	} else if ok {
		return &CheckoutResult{
			SessionID:    token,
			RedirectURL:  handle,
			Deduplicated: true,
		}, nil
	}

	redirectURL := fmt.Sprintf("%s/checkout/%s?amount=%s&success_url=%s&cancel_url=%s",
		c.cfg.ProviderBaseURL,
		token,
		strconv.FormatInt(priceCents, 10),
		c.cfg.SuccessURL,
		c.cfg.CancelURL,
	)

	if err := c.cache.Put(ctx, token, redirectURL); err != nil {
		slog.Warn("checkout session cache write failed, dedup window lost",
			"section_id", sectionID.String(), "error", err)
	}

	return &CheckoutResult{
		SessionID:   token,
		RedirectURL: redirectURL,
	}, nil
}

// priceFor fails closed: a plan without a configured price cannot start a
// checkout, it never falls back to zero.
func (c *checkoutCommandsImpl) priceFor(plan enrollment.Plan) (int64, error) {
	if c.cfg.ProviderBaseURL == "" || c.cfg.SuccessURL == "" || c.cfg.CancelURL == "" {
		return 0, ErrCheckoutNotConfigured
	}

	var price int64
	switch plan {
	case enrollment.PlanFull:
		price = c.cfg.PriceFullCents
	case enrollment.PlanDeposit:
		price = c.cfg.PriceDepositCents
	default:
		return 0, ErrInvalidPlan
	}

	if price <= 0 {
		return 0, ErrCheckoutNotConfigured
	}
	return price, nil
}

func (c *checkoutCommandsImpl) dedupToken(sectionID string, plan enrollment.Plan) string {
	bucket := c.clock.Now().Unix() / dedupBucketSeconds
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%s:%d", sectionID, plan, bucket))
	return hex.EncodeToString(sum[:])
}
