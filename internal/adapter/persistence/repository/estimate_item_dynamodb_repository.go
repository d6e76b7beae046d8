package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"buildready/internal/domain/entities"
	"buildready/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimateItemsTableName = "estimate_items"
	itemEstimateIndex             = "estimate_id-index"
)

type estimateItemRecord struct {
	ID           string   `dynamodbav:"id"`
	EstimateID   string   `dynamodbav:"estimate_id"`
	MaterialID   string   `dynamodbav:"material_id,omitempty"`
	MaterialName string   `dynamodbav:"material_name"`
	Category     string   `dynamodbav:"category,omitempty"`
	Quantity     float64  `dynamodbav:"quantity"`
	Unit         string   `dynamodbav:"unit,omitempty"`
	UnitPrice    int64    `dynamodbav:"unit_price"`
	TotalPrice   int64    `dynamodbav:"total_price"`
	WasteFactor  *float64 `dynamodbav:"waste_factor,omitempty"`
	Description  string   `dynamodbav:"description,omitempty"`
	PriceSource  string   `dynamodbav:"price_source,omitempty"`
	Notes        string   `dynamodbav:"notes,omitempty"`
	CreatedAt    string   `dynamodbav:"created_at"`
	UpdatedAt    string   `dynamodbav:"updated_at"`
}

// EstimateItemDynamoRepository persists EstimateItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI estimate_id-index: estimate_id (string)

type EstimateItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateItemRepository = (*EstimateItemDynamoRepository)(nil)

func NewEstimateItemDynamoRepository(ddb *dynamodb.Client) *EstimateItemDynamoRepository {
	return &EstimateItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATE_ITEMS_TABLE", defaultEstimateItemsTableName),
	}
}

func (r *EstimateItemDynamoRepository) Create(ctx context.Context, it entities.EstimateItem) (entities.EstimateItem, error) {
	av, err := attributevalue.MarshalMap(toEstimateItemRecord(it))
	if err != nil {
		return entities.EstimateItem{}, err
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
		return entities.EstimateItem{}, err
	}
	return it, nil
}

// CreateBatch writes the seeded bill of materials one put at a time. The
// batch is small (12 rows) and a partial failure surfaces immediately.
func (r *EstimateItemDynamoRepository) CreateBatch(ctx context.Context, items []entities.EstimateItem) ([]entities.EstimateItem, error) {
	created := make([]entities.EstimateItem, 0, len(items))
	for _, it := range items {
		saved, err := r.Create(ctx, it)
		if err != nil {
			return created, err
		}
		created = append(created, saved)
	}
	return created, nil
}

func (r *EstimateItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateItem{}, nil
	}

	var rec estimateItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.EstimateItem{}, err
	}
	return fromEstimateItemRecord(rec), nil
}

func (r *EstimateItemDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateItem, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, itemEstimateIndex, "estimate_id", estimateID)
	if err != nil {
		return nil, err
	}
	items := make([]entities.EstimateItem, 0, len(raw))
	for _, item := range raw {
		var rec estimateItemRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromEstimateItemRecord(rec))
	}
	return items, nil
}

func (r *EstimateItemDynamoRepository) UpdateByID(ctx context.Context, id string, patch interfaces.EstimateItemPatch) (entities.EstimateItem, error) {
	expr := "SET #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}
	if patch.Quantity != nil {
		expr += ", #quantity = :quantity"
		vals[":quantity"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(*patch.Quantity, 'f', -1, 64)}
		names["#quantity"] = "quantity"
	}
	if patch.UnitPrice != nil {
		expr += ", #unit_price = :unit_price"
		vals[":unit_price"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*patch.UnitPrice, 10)}
		names["#unit_price"] = "unit_price"
	}
	if patch.TotalPrice != nil {
		expr += ", #total_price = :total_price"
		vals[":total_price"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*patch.TotalPrice, 10)}
		names["#total_price"] = "total_price"
	}
	if patch.WasteFactor != nil {
		expr += ", #waste_factor = :waste_factor"
		vals[":waste_factor"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(*patch.WasteFactor, 'f', -1, 64)}
		names["#waste_factor"] = "waste_factor"
	}
	if patch.Notes != nil {
		expr += ", #notes = :notes"
		vals[":notes"] = &types.AttributeValueMemberS{Value: *patch.Notes}
		names["#notes"] = "notes"
	}

	attrs, err := updateByID(ctx, r.ddb, r.tableName, "id", id, expr, vals, names)
	if err != nil {
		return entities.EstimateItem{}, err
	}
	if len(attrs) == 0 {
		return entities.EstimateItem{}, nil
	}
	var rec estimateItemRecord
	if err := attributevalue.UnmarshalMap(attrs, &rec); err != nil {
		return entities.EstimateItem{}, err
	}
	return fromEstimateItemRecord(rec), nil
}

func (r *EstimateItemDynamoRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, "id", id)
}

// DeleteByEstimateID is the cascade path. Individual delete failures are
// collected and the sweep continues; the caller decides how to report the
// partial failure.
func (r *EstimateItemDynamoRepository) DeleteByEstimateID(ctx context.Context, estimateID string) (int, error) {
	items, err := r.ListByEstimateID(ctx, estimateID)
	if err != nil {
		return 0, err
	}
	deleted := 0
	var errs []error
	for _, it := range items {
		found, err := r.DeleteByID(ctx, it.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if found {
			deleted++
		}
	}
	return deleted, errors.Join(errs...)
}

func toEstimateItemRecord(it entities.EstimateItem) estimateItemRecord {
	return estimateItemRecord{
		ID:           it.ID,
		EstimateID:   it.EstimateID,
		MaterialID:   it.MaterialID,
		MaterialName: it.MaterialName,
		Category:     it.Category,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		UnitPrice:    it.UnitPrice,
		TotalPrice:   it.TotalPrice,
		WasteFactor:  it.WasteFactor,
		Description:  it.Description,
		PriceSource:  it.PriceSource,
		Notes:        it.Notes,
		CreatedAt:    it.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    it.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItemRecord(rec estimateItemRecord) entities.EstimateItem {
	return entities.EstimateItem{
		ID:           rec.ID,
		EstimateID:   rec.EstimateID,
		MaterialID:   rec.MaterialID,
		MaterialName: rec.MaterialName,
		Category:     rec.Category,
		Quantity:     rec.Quantity,
		Unit:         rec.Unit,
		UnitPrice:    rec.UnitPrice,
		TotalPrice:   rec.TotalPrice,
		WasteFactor:  rec.WasteFactor,
		Description:  rec.Description,
		PriceSource:  rec.PriceSource,
		Notes:        rec.Notes,
		CreatedAt:    parseRFC3339(rec.CreatedAt),
		UpdatedAt:    parseRFC3339(rec.UpdatedAt),
	}
}
