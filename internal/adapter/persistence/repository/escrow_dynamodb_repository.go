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
	defaultEscrowsTableName = "escrows"
	escrowsEscrowIDIndex    = "escrow_id-index"
)

type escrowItem struct {
	QuoteID              string `dynamodbav:"quote_id"`
	EscrowRequired       bool   `dynamodbav:"escrow_required"`
	EscrowID             string `dynamodbav:"escrow_id"`
	Status               string `dynamodbav:"escrow_status"`
	TotalAmount          string `dynamodbav:"total_amount"`
	Commission           string `dynamodbav:"commission"`
	ManufacturerPayout   string `dynamodbav:"manufacturer_payout"`
	PaymentDeadline      string `dynamodbav:"payment_deadline"`
	CommunicationBlocked bool   `dynamodbav:"communication_blocked"`
	MilestoneCount       int    `dynamodbav:"milestone_count"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
	ProviderPayloadRaw   string `dynamodbav:"provider_payload_raw,omitempty"`
}

// EscrowDynamoRepository persists Escrow entities in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string) — one escrow per quote by construction
//   - GSI: escrow_id-index (PK: escrow_id) — provider callbacks resolve by
//     the provider-assigned id
//
// Create is conditional on the quote having no escrow yet; a lost race
// returns a zero-value entity instead of an error so the usecase re-reads
// the winner (idempotent enforcement).

type EscrowDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEscrowRepository = (*EscrowDynamoRepository)(nil)

func NewEscrowDynamoRepository(ddb *dynamodb.Client) *EscrowDynamoRepository {
	return &EscrowDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESCROWS_TABLE", defaultEscrowsTableName),
	}
}

func (r *EscrowDynamoRepository) Create(ctx context.Context, e entities.Escrow) (entities.Escrow, error) {
	av, err := attributevalue.MarshalMap(toEscrowItem(e))
	if err != nil {
		return entities.Escrow{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#qid)"),
		ExpressionAttributeNames: map[string]string{
			"#qid": "quote_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Escrow{}, nil
		}
		return entities.Escrow{}, err
	}
	return e, nil
}

func (r *EscrowDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Escrow, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Escrow{}, err
	}
	if len(out.Item) == 0 {
		return entities.Escrow{}, nil
	}

	var it escrowItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Escrow{}, err
	}
	return fromEscrowItem(it), nil
}

func (r *EscrowDynamoRepository) GetByEscrowID(ctx context.Context, escrowID string) (entities.Escrow, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(escrowsEscrowIDIndex),
		KeyConditionExpression: aws.String("escrow_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: escrowID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Escrow{}, err
	}
	if len(out.Items) == 0 {
		return entities.Escrow{}, nil
	}

	var it escrowItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Escrow{}, err
	}
	return fromEscrowItem(it), nil
}

func (r *EscrowDynamoRepository) MarkCompleted(ctx context.Context, escrowID string) (entities.Escrow, error) {
	existing, err := r.GetByEscrowID(ctx, escrowID)
	if err != nil {
		return entities.Escrow{}, err
	}
	if existing.QuoteID == "" {
		return entities.Escrow{}, nil
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: existing.QuoteID},
		},
		ConditionExpression: aws.String("#status = :pending"),
		UpdateExpression:    aws.String("SET #status = :completed, #blocked = :false, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "escrow_status",
			"#blocked":    "communication_blocked",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.EscrowStatePending)},
			":completed":  &types.AttributeValueMemberS{Value: string(entities.EscrowStateCompleted)},
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Escrow{}, nil
		}
		return entities.Escrow{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Escrow{}, nil
	}

	var it escrowItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Escrow{}, err
	}
	return fromEscrowItem(it), nil
}

func toEscrowItem(e entities.Escrow) escrowItem {
	return escrowItem{
		QuoteID:              e.QuoteID,
		EscrowRequired:       e.EscrowRequired,
		EscrowID:             e.EscrowID,
		Status:               string(e.Status),
		TotalAmount:          floatToString(e.TotalAmount),
		Commission:           floatToString(e.Commission),
		ManufacturerPayout:   floatToString(e.ManufacturerPayout),
		PaymentDeadline:      formatDeadline(e.PaymentDeadline),
		CommunicationBlocked: e.CommunicationBlocked,
		MilestoneCount:       e.MilestoneCount,
		CreatedAt:            formatTime(e.CreatedAt),
		UpdatedAt:            formatTime(e.UpdatedAt),
		ProviderPayloadRaw:   string(e.ProviderPayloadRaw),
	}
}

func fromEscrowItem(it escrowItem) entities.Escrow {
	e := entities.Escrow{
		QuoteID:              it.QuoteID,
		EscrowRequired:       it.EscrowRequired,
		EscrowID:             it.EscrowID,
		Status:               entities.EscrowState(it.Status),
		TotalAmount:          stringToFloat(it.TotalAmount),
		Commission:           stringToFloat(it.Commission),
		ManufacturerPayout:   stringToFloat(it.ManufacturerPayout),
		PaymentDeadline:      parseDeadline(it.PaymentDeadline),
		CommunicationBlocked: it.CommunicationBlocked,
		MilestoneCount:       it.MilestoneCount,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
	if it.ProviderPayloadRaw != "" {
		e.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return e
}
