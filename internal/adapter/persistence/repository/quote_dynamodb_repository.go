package repository

import (
	"context"
	"time"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesOrderIDIndex     = "order_id-index"
)

type breakdownItem struct {
	Materials string `dynamodbav:"materials"`
	Labor     string `dynamodbav:"labor"`
	Overhead  string `dynamodbav:"overhead"`
	Shipping  string `dynamodbav:"shipping"`
	Taxes     string `dynamodbav:"taxes"`
}

type quoteItem struct {
	ID             string        `dynamodbav:"id"`
	OrderID        string        `dynamodbav:"order_id"`
	ManufacturerID string        `dynamodbav:"manufacturer_id"`
	Status         string        `dynamodbav:"status"`
	Price          string        `dynamodbav:"price"`
	Currency       string        `dynamodbav:"currency,omitempty"`
	DeliveryDays   int           `dynamodbav:"delivery_days"`
	ValidUntil     string        `dynamodbav:"valid_until"`
	Breakdown      breakdownItem `dynamodbav:"breakdown"`
	Description    string        `dynamodbav:"description,omitempty"`
	PaymentTerms   string        `dynamodbav:"payment_terms,omitempty"`
	Warranty       string        `dynamodbav:"warranty,omitempty"`
	Material       string        `dynamodbav:"material,omitempty"`
	Process        string        `dynamodbav:"process,omitempty"`
	Finish         string        `dynamodbav:"finish,omitempty"`
	Tolerance      string        `dynamodbav:"tolerance,omitempty"`
	Quantity       int           `dynamodbav:"quantity,omitempty"`
	Notes          string        `dynamodbav:"notes,omitempty"`
	CurrentVersion int           `dynamodbav:"current_version"`
	CreatedAt      string        `dynamodbav:"created_at"`
	UpdatedAt      string        `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// current_version is the optimistic-concurrency token; all writes after
// Create go through the version-ledger transaction, never through this
// repository.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListExpirable(ctx context.Context, now time.Time) ([]entities.Quote, error) {
	// Sweep path, low volume: a filtered scan keeps the table free of a
	// status GSI that only this maintenance call would use.
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status IN (:sent, :viewed, :negotiating) AND #valid_until < :now"),
		ExpressionAttributeNames: map[string]string{
			"#status":      "status",
			"#valid_until": "valid_until",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sent":        &types.AttributeValueMemberS{Value: string(entities.QuoteStatusSent)},
			":viewed":      &types.AttributeValueMemberS{Value: string(entities.QuoteStatusViewed)},
			":negotiating": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusNegotiating)},
			":now":         &types.AttributeValueMemberS{Value: formatDeadline(now)},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func toBreakdownItem(b entities.PricingBreakdown) breakdownItem {
	return breakdownItem{
		Materials: floatToString(b.Materials),
		Labor:     floatToString(b.Labor),
		Overhead:  floatToString(b.Overhead),
		Shipping:  floatToString(b.Shipping),
		Taxes:     floatToString(b.Taxes),
	}
}

func fromBreakdownItem(it breakdownItem) entities.PricingBreakdown {
	return entities.PricingBreakdown{
		Materials: stringToFloat(it.Materials),
		Labor:     stringToFloat(it.Labor),
		Overhead:  stringToFloat(it.Overhead),
		Shipping:  stringToFloat(it.Shipping),
		Taxes:     stringToFloat(it.Taxes),
	}
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:             q.ID,
		OrderID:        q.OrderID,
		ManufacturerID: q.ManufacturerID,
		Status:         string(q.Status),
		Price:          floatToString(q.Price),
		Currency:       q.Currency,
		DeliveryDays:   q.DeliveryDays,
		ValidUntil:     formatDeadline(q.ValidUntil),
		Breakdown:      toBreakdownItem(q.Breakdown),
		Description:    q.Description,
		PaymentTerms:   q.PaymentTerms,
		Warranty:       q.Warranty,
		Material:       q.Material,
		Process:        q.Process,
		Finish:         q.Finish,
		Tolerance:      q.Tolerance,
		Quantity:       q.Quantity,
		Notes:          q.Notes,
		CurrentVersion: q.CurrentVersion,
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:             it.ID,
		OrderID:        it.OrderID,
		ManufacturerID: it.ManufacturerID,
		Status:         entities.QuoteStatus(it.Status),
		Price:          stringToFloat(it.Price),
		Currency:       it.Currency,
		DeliveryDays:   it.DeliveryDays,
		ValidUntil:     parseDeadline(it.ValidUntil),
		Breakdown:      fromBreakdownItem(it.Breakdown),
		Description:    it.Description,
		PaymentTerms:   it.PaymentTerms,
		Warranty:       it.Warranty,
		Material:       it.Material,
		Process:        it.Process,
		Finish:         it.Finish,
		Tolerance:      it.Tolerance,
		Quantity:       it.Quantity,
		Notes:          it.Notes,
		CurrentVersion: it.CurrentVersion,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
