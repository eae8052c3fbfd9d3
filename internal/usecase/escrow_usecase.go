package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"
)

var (
	ErrEscrowNotFound           = errors.New("escrow not found")
	ErrInvalidEscrowID          = errors.New("invalid escrow id")
	ErrQuoteNotAccepted         = errors.New("escrow is only enforced on accepted quotes")
	ErrEscrowAlreadyCompleted   = errors.New("escrow payment already completed")
	ErrEscrowGatewayUnavailable = errors.New("escrow gateway not configured")
)

const defaultEscrowGraceHours = 72

// IEscrowUseCase enforces the mandatory escrow payment on accepted quotes.
//
// Enforce is the only creator of escrow state and CompletePayment the only
// path to "completed"; there is deliberately no operation that marks a quote
// paid directly. Urgency is derived from the deadline on every read, never
// stored.

type IEscrowUseCase interface {
	Enforce(ctx context.Context, quoteID string) (entities.Escrow, error)
	GetStatus(ctx context.Context, quoteID string) (entities.Escrow, error)
	CompletePayment(ctx context.Context, escrowID string) (entities.Escrow, error)
}

type EscrowUseCase struct {
	escrowRepo interfaces.IEscrowRepository
	quoteRepo  interfaces.IQuoteRepository
	gateway    interfaces.IEscrowGateway
	graceHours int
	now        func() time.Time
}

var _ IEscrowUseCase = (*EscrowUseCase)(nil)

func NewEscrowUseCase(escrowRepo interfaces.IEscrowRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IEscrowGateway) *EscrowUseCase {
	return &EscrowUseCase{
		escrowRepo: escrowRepo,
		quoteRepo:  quoteRepo,
		gateway:    gateway,
		graceHours: escrowGraceHoursFromEnv(),
		now:        time.Now,
	}
}

// Enforce derives the payment requirement for an accepted quote. Idempotent:
// an existing escrow is returned unchanged, and the conditional create makes
// concurrent "became accepted" triggers collapse to a single escrow.
func (u *EscrowUseCase) Enforce(ctx context.Context, quoteID string) (entities.Escrow, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Escrow{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Escrow{}, err
	}
	if q.ID == "" {
		return entities.Escrow{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted {
		return entities.Escrow{}, fmt.Errorf("%w: status %s", ErrQuoteNotAccepted, q.Status)
	}

	if existing, err := u.escrowRepo.GetByQuoteID(ctx, quoteID); err != nil {
		return entities.Escrow{}, err
	} else if existing.QuoteID != "" {
		log.Printf("[escrow][usecase] enforce already exists quote_id=%s escrow_id=%s status=%s", quoteID, existing.EscrowID, existing.Status)
		return existing, nil
	}

	if u.gateway == nil {
		return entities.Escrow{}, ErrEscrowGatewayUnavailable
	}

	payload, err := json.Marshal(map[string]any{
		"external_reference": q.ID,
		"transaction_amount": q.Price,
		"description":        fmt.Sprintf("Escrow for quote %s", q.ID),
	})
	if err != nil {
		return entities.Escrow{}, err
	}

	log.Printf("[escrow][usecase] opening provider escrow quote_id=%s amount=%.2f", q.ID, q.Price)
	escrowID, providerStatus, providerResp, err := u.gateway.OpenEscrow(ctx, payload)
	if err != nil {
		log.Printf("[escrow][usecase] provider escrow failed quote_id=%s err=%v", q.ID, err)
		return entities.Escrow{}, err
	}
	log.Printf("[escrow][usecase] provider escrow opened quote_id=%s escrow_id=%s provider_status=%s", q.ID, escrowID, providerStatus)

	now := u.now().UTC()
	e := entities.Escrow{
		QuoteID:              q.ID,
		EscrowRequired:       true,
		EscrowID:             escrowID,
		Status:               entities.EscrowStatePending,
		TotalAmount:          q.Price,
		Commission:           entities.CommissionFor(q.Price),
		ManufacturerPayout:   entities.PayoutFor(q.Price),
		PaymentDeadline:      now.Add(time.Duration(u.graceHours) * time.Hour),
		CommunicationBlocked: true,
		MilestoneCount:       1,
		CreatedAt:            now,
		UpdatedAt:            now,
		ProviderPayloadRaw:   providerResp,
	}

	created, err := u.escrowRepo.Create(ctx, e)
	if err != nil {
		return entities.Escrow{}, err
	}
	if created.QuoteID == "" {
		// Lost the create race; the winner's escrow is the authoritative one.
		return u.escrowRepo.GetByQuoteID(ctx, quoteID)
	}
	return created, nil
}

func (u *EscrowUseCase) GetStatus(ctx context.Context, quoteID string) (entities.Escrow, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Escrow{}, ErrInvalidQuoteID
	}

	e, err := u.escrowRepo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Escrow{}, err
	}
	if e.QuoteID == "" {
		return entities.Escrow{}, ErrEscrowNotFound
	}
	return e, nil
}

// CompletePayment records the provider's payment-completed signal and lifts
// the communication block.
func (u *EscrowUseCase) CompletePayment(ctx context.Context, escrowID string) (entities.Escrow, error) {
	escrowID = strings.TrimSpace(escrowID)
	if escrowID == "" {
		return entities.Escrow{}, ErrInvalidEscrowID
	}

	e, err := u.escrowRepo.GetByEscrowID(ctx, escrowID)
	if err != nil {
		return entities.Escrow{}, err
	}
	if e.QuoteID == "" {
		return entities.Escrow{}, ErrEscrowNotFound
	}
	if e.Status == entities.EscrowStateCompleted {
		return entities.Escrow{}, ErrEscrowAlreadyCompleted
	}

	updated, err := u.escrowRepo.MarkCompleted(ctx, escrowID)
	if err != nil {
		return entities.Escrow{}, err
	}
	if updated.QuoteID == "" {
		// Conditional update lost to a concurrent completion.
		return entities.Escrow{}, ErrEscrowAlreadyCompleted
	}
	log.Printf("[escrow][usecase] payment completed quote_id=%s escrow_id=%s", updated.QuoteID, updated.EscrowID)
	return updated, nil
}

func escrowGraceHoursFromEnv() int {
	v := strings.TrimSpace(os.Getenv("ESCROW_GRACE_HOURS"))
	if v == "" {
		return defaultEscrowGraceHours
	}
	hours, err := strconv.Atoi(v)
	if err != nil || hours <= 0 {
		log.Printf("[escrow][usecase] invalid ESCROW_GRACE_HOURS=%q, using default %d", v, defaultEscrowGraceHours)
		return defaultEscrowGraceHours
	}
	return hours
}
