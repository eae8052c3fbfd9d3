package repository

import (
	"context"
	"errors"
	"strconv"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuoteVersionsTableName = "quote_versions"
	quoteVersionsIDIndex          = "id-index"
)

type changedByItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name,omitempty"`
	Role string `dynamodbav:"role,omitempty"`
}

type changeItem struct {
	Field      string `dynamodbav:"field"`
	OldValue   string `dynamodbav:"old_value,omitempty"`
	NewValue   string `dynamodbav:"new_value,omitempty"`
	ChangeType string `dynamodbav:"change_type"`
}

type quoteSnapshotItem struct {
	Status       string        `dynamodbav:"status"`
	Price        string        `dynamodbav:"price"`
	Currency     string        `dynamodbav:"currency,omitempty"`
	DeliveryDays int           `dynamodbav:"delivery_days"`
	ValidUntil   string        `dynamodbav:"valid_until"`
	Breakdown    breakdownItem `dynamodbav:"breakdown"`
	Description  string        `dynamodbav:"description,omitempty"`
	PaymentTerms string        `dynamodbav:"payment_terms,omitempty"`
	Warranty     string        `dynamodbav:"warranty,omitempty"`
	Material     string        `dynamodbav:"material,omitempty"`
	Process      string        `dynamodbav:"process,omitempty"`
	Finish       string        `dynamodbav:"finish,omitempty"`
	Tolerance    string        `dynamodbav:"tolerance,omitempty"`
	Quantity     int           `dynamodbav:"quantity,omitempty"`
	Notes        string        `dynamodbav:"notes,omitempty"`
}

type quoteVersionItem struct {
	QuoteID       string            `dynamodbav:"quote_id"`
	VersionNumber int               `dynamodbav:"version_number"`
	ID            string            `dynamodbav:"id"`
	CreatedAt     string            `dynamodbav:"created_at"`
	CreatedBy     changedByItem     `dynamodbav:"created_by"`
	Snapshot      quoteSnapshotItem `dynamodbav:"snapshot"`
	Changes       []changeItem      `dynamodbav:"changes,omitempty"`
	IsCurrent     bool              `dynamodbav:"is_current"`
	ChangeSummary string            `dynamodbav:"change_summary,omitempty"`
}

// QuoteVersionDynamoRepository persists the append-only version ledger.
//
// Table requirements:
//   - PK: quote_id (string), SK: version_number (number)
//   - GSI: id-index (PK: id)
//
// Commit runs as a single TransactWriteItems call so the new version, the
// previous version's is_current flag and the quote's current_version token
// move together or not at all.

type QuoteVersionDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	quotesTableName string
}

var _ interfaces.IQuoteVersionRepository = (*QuoteVersionDynamoRepository)(nil)

func NewQuoteVersionDynamoRepository(ddb *dynamodb.Client) *QuoteVersionDynamoRepository {
	return &QuoteVersionDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("QUOTE_VERSIONS_TABLE", defaultQuoteVersionsTableName),
		quotesTableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteVersionDynamoRepository) Commit(ctx context.Context, q entities.Quote, v entities.QuoteVersion, expectedVersion int) error {
	versionAV, err := attributevalue.MarshalMap(toQuoteVersionItem(v))
	if err != nil {
		return err
	}
	quoteAV, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{
		{
			// The (quote_id, version_number) pair must be fresh; a duplicate
			// means a concurrent committer claimed this number first.
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                versionAV,
				ConditionExpression: aws.String("attribute_not_exists(#qid)"),
				ExpressionAttributeNames: map[string]string{
					"#qid": "quote_id",
				},
			},
		},
		{
			Put: &types.Put{
				TableName:           aws.String(r.quotesTableName),
				Item:                quoteAV,
				ConditionExpression: aws.String("#cv = :expected"),
				ExpressionAttributeNames: map[string]string{
					"#cv": "current_version",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expectedVersion)},
				},
			},
		},
	}

	if expectedVersion > 0 {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"quote_id":       &types.AttributeValueMemberS{Value: q.ID},
					"version_number": &types.AttributeValueMemberN{Value: strconv.Itoa(expectedVersion)},
				},
				UpdateExpression:    aws.String("SET #current = :false"),
				ConditionExpression: aws.String("attribute_exists(#qid)"),
				ExpressionAttributeNames: map[string]string{
					"#current": "is_current",
					"#qid":     "quote_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":false": &types.AttributeValueMemberBOOL{Value: false},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return interfaces.ErrVersionCommitConflict
				}
			}
		}
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrVersionCommitConflict
		}
		return err
	}
	return nil
}

func (r *QuoteVersionDynamoRepository) GetByNumber(ctx context.Context, quoteID string, versionNumber int) (entities.QuoteVersion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id":       &types.AttributeValueMemberS{Value: quoteID},
			"version_number": &types.AttributeValueMemberN{Value: strconv.Itoa(versionNumber)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteVersion{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteVersion{}, nil
	}

	var it quoteVersionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteVersion{}, err
	}
	return fromQuoteVersionItem(it), nil
}

func (r *QuoteVersionDynamoRepository) GetByID(ctx context.Context, versionID string) (entities.QuoteVersion, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quoteVersionsIDIndex),
		KeyConditionExpression: aws.String("id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: versionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.QuoteVersion{}, err
	}
	if len(out.Items) == 0 {
		return entities.QuoteVersion{}, nil
	}

	var it quoteVersionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.QuoteVersion{}, err
	}
	return fromQuoteVersionItem(it), nil
}

func (r *QuoteVersionDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteVersion, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	versions := make([]entities.QuoteVersion, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteVersionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		versions = append(versions, fromQuoteVersionItem(it))
	}
	return versions, nil
}

func toQuoteVersionItem(v entities.QuoteVersion) quoteVersionItem {
	changes := make([]changeItem, 0, len(v.Changes))
	for _, c := range v.Changes {
		changes = append(changes, changeItem{
			Field:      c.Field,
			OldValue:   c.OldValue,
			NewValue:   c.NewValue,
			ChangeType: string(c.ChangeType),
		})
	}
	return quoteVersionItem{
		QuoteID:       v.QuoteID,
		VersionNumber: v.VersionNumber,
		ID:            v.ID,
		CreatedAt:     formatTime(v.CreatedAt),
		CreatedBy:     changedByItem(v.CreatedBy),
		Snapshot:      toQuoteSnapshotItem(v.Snapshot),
		Changes:       changes,
		IsCurrent:     v.IsCurrent,
		ChangeSummary: v.ChangeSummary,
	}
}

func fromQuoteVersionItem(it quoteVersionItem) entities.QuoteVersion {
	changes := make([]entities.Change, 0, len(it.Changes))
	for _, c := range it.Changes {
		changes = append(changes, entities.Change{
			Field:      c.Field,
			OldValue:   c.OldValue,
			NewValue:   c.NewValue,
			ChangeType: entities.ChangeType(c.ChangeType),
		})
	}
	return entities.QuoteVersion{
		ID:            it.ID,
		QuoteID:       it.QuoteID,
		VersionNumber: it.VersionNumber,
		CreatedAt:     parseTime(it.CreatedAt),
		CreatedBy:     entities.ChangedBy(it.CreatedBy),
		Snapshot:      fromQuoteSnapshotItem(it.Snapshot),
		Changes:       changes,
		IsCurrent:     it.IsCurrent,
		ChangeSummary: it.ChangeSummary,
	}
}

func toQuoteSnapshotItem(s entities.QuoteSnapshot) quoteSnapshotItem {
	return quoteSnapshotItem{
		Status:       string(s.Status),
		Price:        floatToString(s.Price),
		Currency:     s.Currency,
		DeliveryDays: s.DeliveryDays,
		ValidUntil:   formatDeadline(s.ValidUntil),
		Breakdown:    toBreakdownItem(s.Breakdown),
		Description:  s.Description,
		PaymentTerms: s.PaymentTerms,
		Warranty:     s.Warranty,
		Material:     s.Material,
		Process:      s.Process,
		Finish:       s.Finish,
		Tolerance:    s.Tolerance,
		Quantity:     s.Quantity,
		Notes:        s.Notes,
	}
}

func fromQuoteSnapshotItem(it quoteSnapshotItem) entities.QuoteSnapshot {
	return entities.QuoteSnapshot{
		Status:       entities.QuoteStatus(it.Status),
		Price:        stringToFloat(it.Price),
		Currency:     it.Currency,
		DeliveryDays: it.DeliveryDays,
		ValidUntil:   parseDeadline(it.ValidUntil),
		Breakdown:    fromBreakdownItem(it.Breakdown),
		Description:  it.Description,
		PaymentTerms: it.PaymentTerms,
		Warranty:     it.Warranty,
		Material:     it.Material,
		Process:      it.Process,
		Finish:       it.Finish,
		Tolerance:    it.Tolerance,
		Quantity:     it.Quantity,
		Notes:        it.Notes,
	}
}
