package repository

import (
	"context"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuoteTemplatesTableName = "quote_templates"

type quoteTemplateItem struct {
	ID           string        `dynamodbav:"id"`
	Name         string        `dynamodbav:"name"`
	Breakdown    breakdownItem `dynamodbav:"breakdown"`
	DeliveryDays int           `dynamodbav:"delivery_days,omitempty"`
	PaymentTerms string        `dynamodbav:"payment_terms,omitempty"`
	Warranty     string        `dynamodbav:"warranty,omitempty"`
	Material     string        `dynamodbav:"material,omitempty"`
	Process      string        `dynamodbav:"process,omitempty"`
	Finish       string        `dynamodbav:"finish,omitempty"`
	Tolerance    string        `dynamodbav:"tolerance,omitempty"`
	Notes        string        `dynamodbav:"notes,omitempty"`
}

// QuoteTemplateDynamoRepository reads quote templates from DynamoDB.
// Template management belongs to another service; this repository is
// read-only.
//
// Table requirements:
//   - PK: id (string)

type QuoteTemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteTemplateRepository = (*QuoteTemplateDynamoRepository)(nil)

func NewQuoteTemplateDynamoRepository(ddb *dynamodb.Client) *QuoteTemplateDynamoRepository {
	return &QuoteTemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_TEMPLATES_TABLE", defaultQuoteTemplatesTableName),
	}
}

func (r *QuoteTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.QuoteTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteTemplate{}, nil
	}

	var it quoteTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteTemplate{}, err
	}
	return entities.QuoteTemplate{
		ID:           it.ID,
		Name:         it.Name,
		Breakdown:    fromBreakdownItem(it.Breakdown),
		DeliveryDays: it.DeliveryDays,
		PaymentTerms: it.PaymentTerms,
		Warranty:     it.Warranty,
		Material:     it.Material,
		Process:      it.Process,
		Finish:       it.Finish,
		Tolerance:    it.Tolerance,
		Notes:        it.Notes,
	}, nil
}
