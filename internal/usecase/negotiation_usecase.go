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
)

var (
	ErrNegotiationNotFound      = errors.New("negotiation not found")
	ErrInvalidNegotiationID     = errors.New("invalid negotiation id")
	ErrEmptyMessage             = errors.New("negotiation message must not be empty")
	ErrInvalidRequestedPrice    = errors.New("requested price must be positive")
	ErrInvalidRequestedDays     = errors.New("requested delivery days must be positive")
	ErrNegotiationResolved      = errors.New("negotiation already resolved")
	ErrInvalidDecision          = errors.New("decision must be accepted or rejected")
	ErrQuoteNotNegotiable       = errors.New("quote does not accept negotiations in current status")
	ErrQuoteNotUnderNegotiation = errors.New("quote is not negotiating")
)

// NegotiationInput is a client counter-proposal request.

type NegotiationInput struct {
	Message               string
	RequestedPrice        *float64
	RequestedDeliveryDays *int
	By                    entities.ChangedBy
}

// INegotiationUseCase runs the negotiation sub-protocol of the quote
// lifecycle.

type INegotiationUseCase interface {
	Request(ctx context.Context, quoteID string, input NegotiationInput) (entities.Negotiation, error)
	Resolve(ctx context.Context, negotiationID string, decision entities.NegotiationStatus, by entities.ChangedBy) (entities.Quote, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Negotiation, error)
}

type NegotiationUseCase struct {
	negotiationRepo interfaces.INegotiationRepository
	quoteRepo       interfaces.IQuoteRepository
	quotes          IQuoteUseCase
	ledger          IVersionUseCase
	now             func() time.Time
}

var _ INegotiationUseCase = (*NegotiationUseCase)(nil)

func NewNegotiationUseCase(
	negotiationRepo interfaces.INegotiationRepository,
	quoteRepo interfaces.IQuoteRepository,
	quotes IQuoteUseCase,
	ledger IVersionUseCase,
) *NegotiationUseCase {
	return &NegotiationUseCase{
		negotiationRepo: negotiationRepo,
		quoteRepo:       quoteRepo,
		quotes:          quotes,
		ledger:          ledger,
		now:             time.Now,
	}
}

// Request opens a negotiation against a sent, viewed or already negotiating
// quote. The first negotiation moves the quote to "negotiating"; further
// counter-proposals attach to the same negotiating quote.
func (u *NegotiationUseCase) Request(ctx context.Context, quoteID string, input NegotiationInput) (entities.Negotiation, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Negotiation{}, ErrInvalidQuoteID
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return entities.Negotiation{}, ErrEmptyMessage
	}
	if input.RequestedPrice != nil && *input.RequestedPrice <= 0 {
		return entities.Negotiation{}, ErrInvalidRequestedPrice
	}
	if input.RequestedDeliveryDays != nil && *input.RequestedDeliveryDays <= 0 {
		return entities.Negotiation{}, ErrInvalidRequestedDays
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Negotiation{}, err
	}
	if q.ID == "" {
		return entities.Negotiation{}, ErrQuoteNotFound
	}

	negotiable := q.Status == entities.QuoteStatusNegotiating
	if !negotiable {
		_, negotiable = entities.NextStatus(q.Status, entities.QuoteEventNegotiate)
	}
	if !negotiable {
		return entities.Negotiation{}, fmt.Errorf("%w: status %s", ErrQuoteNotNegotiable, q.Status)
	}

	// Transition before persisting the record: a conflicting concurrent write
	// must not leave a pending negotiation attached to a non-negotiating
	// quote. The reverse failure (negotiating quote without a record) is
	// benign, the client's retry attaches to the negotiating quote.
	if q.Status != entities.QuoteStatusNegotiating {
		if _, err := u.quotes.Transition(ctx, q.ID, entities.QuoteEventNegotiate, TransitionInput{
			Reason:          message,
			ExpectedVersion: q.CurrentVersion,
			By:              input.By,
		}); err != nil {
			return entities.Negotiation{}, err
		}
	}

	n := entities.Negotiation{
		ID:                    newULID(),
		QuoteID:               q.ID,
		RequestedBy:           input.By,
		Message:               message,
		RequestedPrice:        input.RequestedPrice,
		RequestedDeliveryDays: input.RequestedDeliveryDays,
		Status:                entities.NegotiationStatusPending,
		CreatedAt:             u.now().UTC(),
	}
	created, err := u.negotiationRepo.Create(ctx, n)
	if err != nil {
		return entities.Negotiation{}, err
	}
	log.Printf("[negotiation][usecase] requested negotiation_id=%s quote_id=%s", created.ID, created.QuoteID)
	return created, nil
}

// Resolve settles a pending negotiation and sends the quote back to the
// client as a counter-offer:
//   - accepted: the requested price (breakdown rescaled proportionally, so
//     price stays derived) and delivery days become a new quote version
//   - rejected: the quote returns to "sent" at its original terms
//
// Either way the quote version commit happens first; the negotiation record
// is marked resolved only after the commit won the concurrency check.
func (u *NegotiationUseCase) Resolve(ctx context.Context, negotiationID string, decision entities.NegotiationStatus, by entities.ChangedBy) (entities.Quote, error) {
	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return entities.Quote{}, ErrInvalidNegotiationID
	}
	if decision != entities.NegotiationStatusAccepted && decision != entities.NegotiationStatusRejected {
		return entities.Quote{}, ErrInvalidDecision
	}

	n, err := u.negotiationRepo.GetByID(ctx, negotiationID)
	if err != nil {
		return entities.Quote{}, err
	}
	if n.ID == "" {
		return entities.Quote{}, ErrNegotiationNotFound
	}
	if n.Status != entities.NegotiationStatusPending {
		return entities.Quote{}, ErrNegotiationResolved
	}

	q, err := u.quoteRepo.GetByID(ctx, n.QuoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusNegotiating {
		return entities.Quote{}, fmt.Errorf("%w: status %s", ErrQuoteNotUnderNegotiation, q.Status)
	}

	next, ok := entities.NextStatus(q.Status, entities.QuoteEventCounterOffer)
	if !ok {
		return entities.Quote{}, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, entities.QuoteEventCounterOffer, q.Status)
	}

	var summary string
	if decision == entities.NegotiationStatusAccepted {
		if n.RequestedPrice != nil {
			if err := q.ApplyBreakdown(q.Breakdown.ScaledTo(*n.RequestedPrice)); err != nil {
				return entities.Quote{}, err
			}
		}
		if n.RequestedDeliveryDays != nil {
			q.DeliveryDays = *n.RequestedDeliveryDays
		}
		summary = fmt.Sprintf("negotiation %s accepted: counter-offer sent", n.ID)
	} else {
		summary = fmt.Sprintf("negotiation %s declined: original terms stand", n.ID)
	}
	q.Status = next

	if _, err := u.ledger.Commit(ctx, q, by, summary); err != nil {
		return entities.Quote{}, err
	}
	q.CurrentVersion++

	resolvedAt := u.now().UTC()
	if resolved, err := u.negotiationRepo.UpdateStatus(ctx, n.ID, decision, resolvedAt); err != nil {
		return entities.Quote{}, err
	} else if resolved.ID == "" {
		// Quote commit won the race but the negotiation was resolved by a
		// concurrent caller; the committed counter-offer stands.
		log.Printf("[negotiation][usecase] resolve raced negotiation_id=%s", n.ID)
	}
	log.Printf("[negotiation][usecase] resolved negotiation_id=%s quote_id=%s decision=%s", n.ID, q.ID, decision)
	return q, nil
}

func (u *NegotiationUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Negotiation, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.negotiationRepo.ListByQuoteID(ctx, quoteID)
}
