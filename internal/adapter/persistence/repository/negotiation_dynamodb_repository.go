package repository

import (
	"context"
	"errors"
	"time"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNegotiationsTableName = "negotiations"
	negotiationsQuoteIDIndex     = "quote_id-index"
)

type negotiationItem struct {
	ID                    string        `dynamodbav:"id"`
	QuoteID               string        `dynamodbav:"quote_id"`
	RequestedBy           changedByItem `dynamodbav:"requested_by"`
	Message               string        `dynamodbav:"message"`
	RequestedPrice        string        `dynamodbav:"requested_price,omitempty"`
	RequestedDeliveryDays int           `dynamodbav:"requested_delivery_days,omitempty"`
	Status                string        `dynamodbav:"status"`
	CreatedAt             string        `dynamodbav:"created_at"`
	ResolvedAt            string        `dynamodbav:"resolved_at,omitempty"`
}

// NegotiationDynamoRepository persists Negotiation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type NegotiationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INegotiationRepository = (*NegotiationDynamoRepository)(nil)

func NewNegotiationDynamoRepository(ddb *dynamodb.Client) *NegotiationDynamoRepository {
	return &NegotiationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NEGOTIATIONS_TABLE", defaultNegotiationsTableName),
	}
}

func (r *NegotiationDynamoRepository) Create(ctx context.Context, n entities.Negotiation) (entities.Negotiation, error) {
	av, err := attributevalue.MarshalMap(toNegotiationItem(n))
	if err != nil {
		return entities.Negotiation{}, err
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
		return entities.Negotiation{}, err
	}
	return n, nil
}

func (r *NegotiationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Negotiation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Negotiation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Negotiation{}, nil
	}

	var it negotiationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Negotiation{}, err
	}
	return fromNegotiationItem(it), nil
}

func (r *NegotiationDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Negotiation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(negotiationsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Negotiation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it negotiationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNegotiationItem(it))
	}
	return items, nil
}

func (r *NegotiationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.NegotiationStatus, resolvedAt time.Time) (entities.Negotiation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #resolved_at = :resolved_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#resolved_at": "resolved_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.NegotiationStatusPending)},
			":status":      &types.AttributeValueMemberS{Value: string(status)},
			":resolved_at": &types.AttributeValueMemberS{Value: formatTime(resolvedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Negotiation{}, nil
		}
		return entities.Negotiation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Negotiation{}, nil
	}

	var it negotiationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Negotiation{}, err
	}
	return fromNegotiationItem(it), nil
}

func toNegotiationItem(n entities.Negotiation) negotiationItem {
	it := negotiationItem{
		ID:          n.ID,
		QuoteID:     n.QuoteID,
		RequestedBy: changedByItem(n.RequestedBy),
		Message:     n.Message,
		Status:      string(n.Status),
		CreatedAt:   formatTime(n.CreatedAt),
	}
	if n.RequestedPrice != nil {
		it.RequestedPrice = floatToString(*n.RequestedPrice)
	}
	if n.RequestedDeliveryDays != nil {
		it.RequestedDeliveryDays = *n.RequestedDeliveryDays
	}
	if n.ResolvedAt != nil {
		it.ResolvedAt = formatTime(*n.ResolvedAt)
	}
	return it
}

func fromNegotiationItem(it negotiationItem) entities.Negotiation {
	n := entities.Negotiation{
		ID:          it.ID,
		QuoteID:     it.QuoteID,
		RequestedBy: entities.ChangedBy(it.RequestedBy),
		Message:     it.Message,
		Status:      entities.NegotiationStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
	}
	if it.RequestedPrice != "" {
		price := stringToFloat(it.RequestedPrice)
		n.RequestedPrice = &price
	}
	if it.RequestedDeliveryDays != 0 {
		days := it.RequestedDeliveryDays
		n.RequestedDeliveryDays = &days
	}
	if it.ResolvedAt != "" {
		resolved := parseTime(it.ResolvedAt)
		n.ResolvedAt = &resolved
	}
	return n
}
