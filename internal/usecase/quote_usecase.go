package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidManufacturer  = errors.New("invalid manufacturer id")
	ErrOrderNotFound        = errors.New("order not found")
	ErrTemplateNotFound     = errors.New("quote template not found")
	ErrEmptyDescription     = errors.New("description must not be empty")
	ErrInvalidDeliveryDays  = errors.New("delivery days must be positive")
	ErrInvalidQuotePrice    = errors.New("quote price must be positive")
	ErrInvalidValidUntil    = errors.New("valid_until must be in the future")
	ErrInvalidInitialStatus = errors.New("quotes are created as draft or sent")
	ErrInvalidTransition    = errors.New("event not allowed in current status")
	ErrQuoteExpired         = errors.New("quote validity has elapsed")
	ErrEmptyReason          = errors.New("negotiation requires a message")
)

// systemActor is attributed to mutations the service performs on its own,
// such as lazy expiry on read and the stale-quote sweep.
var systemActor = entities.ChangedBy{ID: "system", Name: "quoteforge", Role: "system"}

// CreateQuoteInput carries everything needed to open a quote against an
// order. Template defaults fill any zero-valued field before validation.

type CreateQuoteInput struct {
	OrderID        string
	ManufacturerID string
	TemplateID     string
	Status         entities.QuoteStatus
	Currency       string
	DeliveryDays   int
	ValidUntil     time.Time
	Breakdown      entities.PricingBreakdown
	Description    string
	PaymentTerms   string
	Warranty       string
	Material       string
	Process        string
	Finish         string
	Tolerance      string
	Quantity       int
	Notes          string
	By             entities.ChangedBy
}

// TransitionInput parameterizes a lifecycle event.
//
// ExpectedVersion is the optimistic-concurrency token the caller read; zero
// means "whatever is current", which still leaves the commit CAS-guarded
// against writers racing between our read and write.

type TransitionInput struct {
	Reason          string
	ExpectedVersion int
	By              entities.ChangedBy
}

// IQuoteUseCase exposes quote lifecycle operations.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, input CreateQuoteInput) (entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	GetQuoteByOrderID(ctx context.Context, orderID string) (entities.Quote, error)
	Transition(ctx context.Context, quoteID string, event entities.QuoteEvent, input TransitionInput) (entities.Quote, error)
	ExpireStale(ctx context.Context) (int, error)
}

type QuoteUseCase struct {
	quoteRepo    interfaces.IQuoteRepository
	ledger       IVersionUseCase
	escrow       IEscrowUseCase
	orderService interfaces.IOrderService
	templateRepo interfaces.IQuoteTemplateRepository
	now          func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quoteRepo interfaces.IQuoteRepository,
	ledger IVersionUseCase,
	escrow IEscrowUseCase,
	orderService interfaces.IOrderService,
	templateRepo interfaces.IQuoteTemplateRepository,
) *QuoteUseCase {
	return &QuoteUseCase{
		quoteRepo:    quoteRepo,
		ledger:       ledger,
		escrow:       escrow,
		orderService: orderService,
		templateRepo: templateRepo,
		now:          time.Now,
	}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, input CreateQuoteInput) (entities.Quote, error) {
	input.OrderID = strings.TrimSpace(input.OrderID)
	if input.OrderID == "" {
		return entities.Quote{}, ErrInvalidOrderID
	}
	input.ManufacturerID = strings.TrimSpace(input.ManufacturerID)
	if input.ManufacturerID == "" {
		return entities.Quote{}, ErrInvalidManufacturer
	}

	if input.TemplateID != "" {
		if err := u.applyTemplateDefaults(ctx, &input); err != nil {
			return entities.Quote{}, err
		}
	}

	// The order service is an external collaborator; when wired it validates
	// the order reference and supplies the currency default.
	if u.orderService != nil {
		order, err := u.orderService.GetOrder(ctx, input.OrderID)
		if err != nil {
			return entities.Quote{}, err
		}
		if order.ID == "" {
			return entities.Quote{}, ErrOrderNotFound
		}
		if input.Currency == "" {
			input.Currency = order.Currency
		}
	}

	status := input.Status
	if status == "" {
		status = entities.QuoteStatusDraft
	}
	if status != entities.QuoteStatusDraft && status != entities.QuoteStatusSent {
		return entities.Quote{}, ErrInvalidInitialStatus
	}

	if strings.TrimSpace(input.Description) == "" {
		return entities.Quote{}, ErrEmptyDescription
	}
	if input.DeliveryDays <= 0 {
		return entities.Quote{}, ErrInvalidDeliveryDays
	}

	now := u.now().UTC()
	if input.ValidUntil.IsZero() || !input.ValidUntil.After(now) {
		return entities.Quote{}, ErrInvalidValidUntil
	}

	q := entities.Quote{
		ID:             uuid.NewString(),
		OrderID:        input.OrderID,
		ManufacturerID: input.ManufacturerID,
		Status:         status,
		Currency:       input.Currency,
		DeliveryDays:   input.DeliveryDays,
		ValidUntil:     input.ValidUntil.UTC(),
		Description:    strings.TrimSpace(input.Description),
		PaymentTerms:   input.PaymentTerms,
		Warranty:       input.Warranty,
		Material:       input.Material,
		Process:        input.Process,
		Finish:         input.Finish,
		Tolerance:      input.Tolerance,
		Quantity:       input.Quantity,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := q.ApplyBreakdown(input.Breakdown); err != nil {
		return entities.Quote{}, err
	}
	if q.Price <= 0 {
		return entities.Quote{}, ErrInvalidQuotePrice
	}

	created, err := u.quoteRepo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	if _, err := u.ledger.Commit(ctx, created, input.By, "quote created"); err != nil {
		return entities.Quote{}, err
	}
	created.CurrentVersion = 1
	log.Printf("[quote][usecase] created quote_id=%s order_id=%s status=%s price=%.2f", created.ID, created.OrderID, created.Status, created.Price)
	return created, nil
}

func (u *QuoteUseCase) applyTemplateDefaults(ctx context.Context, input *CreateQuoteInput) error {
	tpl, err := u.templateRepo.GetByID(ctx, strings.TrimSpace(input.TemplateID))
	if err != nil {
		return err
	}
	if tpl.ID == "" {
		return ErrTemplateNotFound
	}
	if input.Breakdown == (entities.PricingBreakdown{}) {
		input.Breakdown = tpl.Breakdown
	}
	if input.DeliveryDays == 0 {
		input.DeliveryDays = tpl.DeliveryDays
	}
	if input.PaymentTerms == "" {
		input.PaymentTerms = tpl.PaymentTerms
	}
	if input.Warranty == "" {
		input.Warranty = tpl.Warranty
	}
	if input.Material == "" {
		input.Material = tpl.Material
	}
	if input.Process == "" {
		input.Process = tpl.Process
	}
	if input.Finish == "" {
		input.Finish = tpl.Finish
	}
	if input.Tolerance == "" {
		input.Tolerance = tpl.Tolerance
	}
	if input.Notes == "" {
		input.Notes = tpl.Notes
	}
	return nil
}

// GetQuote loads a quote and applies lazy expiry: a quote read past its
// validity window in an expirable status is committed to expired first, so
// readers never observe a stale "sent" quote.
func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	return u.expireOnRead(ctx, q)
}

// GetQuoteByOrderID is the order-side read path; it applies the same lazy
// expiry as GetQuote so neither path can observe a stale expirable quote.
func (u *QuoteUseCase) GetQuoteByOrderID(ctx context.Context, orderID string) (entities.Quote, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Quote{}, ErrInvalidOrderID
	}
	q, err := u.quoteRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return u.expireOnRead(ctx, q)
}

func (u *QuoteUseCase) expireOnRead(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if !q.ExpiredAt(u.now().UTC()) {
		return q, nil
	}
	expired, err := u.Transition(ctx, q.ID, entities.QuoteEventExpire, TransitionInput{By: systemActor})
	if errors.Is(err, ErrVersionConflict) {
		// Another reader or the sweep expired it first.
		return u.quoteRepo.GetByID(ctx, q.ID)
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return expired, nil
}

// Transition drives the lifecycle state machine. Guards:
//   - submit: non-empty description, positive price and delivery days
//   - accept: quote not past validUntil (ErrQuoteExpired)
//   - negotiate: non-empty reason (the negotiation message)
//
// Every successful transition commits exactly one QuoteVersion. Accepting a
// quote additionally enforces escrow synchronously; the quote is accepted
// even if the provider call fails, and enforcement can be retried
// idempotently.
func (u *QuoteUseCase) Transition(ctx context.Context, quoteID string, event entities.QuoteEvent, input TransitionInput) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if input.ExpectedVersion > 0 && input.ExpectedVersion != q.CurrentVersion {
		return entities.Quote{}, fmt.Errorf("%w: expected version %d, current %d", ErrVersionConflict, input.ExpectedVersion, q.CurrentVersion)
	}

	next, ok := entities.NextStatus(q.Status, event)
	if !ok {
		return entities.Quote{}, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, q.Status)
	}

	now := u.now().UTC()
	switch event {
	case entities.QuoteEventSubmit:
		if strings.TrimSpace(q.Description) == "" {
			return entities.Quote{}, ErrEmptyDescription
		}
		if q.Price <= 0 {
			return entities.Quote{}, ErrInvalidQuotePrice
		}
		if q.DeliveryDays <= 0 {
			return entities.Quote{}, ErrInvalidDeliveryDays
		}
	case entities.QuoteEventAccept:
		if now.After(q.ValidUntil) {
			return entities.Quote{}, fmt.Errorf("%w: valid until %s", ErrQuoteExpired, q.ValidUntil.Format(time.RFC3339))
		}
	case entities.QuoteEventNegotiate:
		if strings.TrimSpace(input.Reason) == "" {
			return entities.Quote{}, ErrEmptyReason
		}
	}

	from := q.Status
	q.Status = next
	summary := transitionSummary(event, from, next, input.Reason)
	if _, err := u.ledger.Commit(ctx, q, input.By, summary); err != nil {
		return entities.Quote{}, err
	}
	q.CurrentVersion++
	q.UpdatedAt = now
	log.Printf("[quote][usecase] transition quote_id=%s event=%s from=%s to=%s version=%d", q.ID, event, from, next, q.CurrentVersion)

	if next == entities.QuoteStatusAccepted && u.escrow != nil {
		if _, err := u.escrow.Enforce(ctx, q.ID); err != nil {
			// The acceptance is committed; escrow enforcement is idempotent
			// and the caller retries via the escrow endpoint.
			log.Printf("[quote][usecase] escrow enforcement failed quote_id=%s err=%v", q.ID, err)
			return q, fmt.Errorf("quote accepted but escrow enforcement failed: %w", err)
		}
	}
	return q, nil
}

// ExpireStale sweeps quotes whose validity elapsed without a read touching
// them. Invoked by an external scheduler; the service owns no timers.
func (u *QuoteUseCase) ExpireStale(ctx context.Context) (int, error) {
	stale, err := u.quoteRepo.ListExpirable(ctx, u.now().UTC())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, q := range stale {
		if _, err := u.Transition(ctx, q.ID, entities.QuoteEventExpire, TransitionInput{By: systemActor}); err != nil {
			if errors.Is(err, ErrVersionConflict) || errors.Is(err, ErrInvalidTransition) {
				continue // raced with a reader or another sweep
			}
			return expired, err
		}
		expired++
	}
	return expired, nil
}

func transitionSummary(event entities.QuoteEvent, from, to entities.QuoteStatus, reason string) string {
	s := fmt.Sprintf("%s: %s -> %s", event, from, to)
	if strings.TrimSpace(reason) != "" {
		s += ": " + strings.TrimSpace(reason)
	}
	return s
}
