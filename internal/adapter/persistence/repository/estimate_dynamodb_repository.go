package repository

import (
	"context"
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
	defaultEstimatesTableName = "estimates"
	estimateAccountIndex      = "account_id-index"
)

type estimateRecord struct {
	ID              string `dynamodbav:"id"`
	AccountID       string `dynamodbav:"account_id"`
	Name            string `dynamodbav:"name"`
	ProjectType     string `dynamodbav:"project_type"`
	TotalArea       int    `dynamodbav:"total_area"`
	TotalCost       int64  `dynamodbav:"total_cost"`
	Status          string `dynamodbav:"status"`
	ConfidenceScore *int   `dynamodbav:"confidence_score,omitempty"`
	Notes           string `dynamodbav:"notes,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI account_id-index: account_id (string)

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateRecord(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var rec estimateRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateRecord(rec), nil
}

func (r *EstimateDynamoRepository) ListByAccountID(ctx context.Context, accountID string) ([]entities.Estimate, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, estimateAccountIndex, "account_id", accountID)
	if err != nil {
		return nil, err
	}
	estimates := make([]entities.Estimate, 0, len(items))
	for _, item := range items {
		var rec estimateRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		estimates = append(estimates, fromEstimateRecord(rec))
	}
	return estimates, nil
}

func (r *EstimateDynamoRepository) UpdateDetailsByID(ctx context.Context, id string, patch interfaces.EstimatePatch) (entities.Estimate, error) {
	expr := "SET #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}
	if patch.Name != nil {
		expr += ", #name = :name"
		vals[":name"] = &types.AttributeValueMemberS{Value: *patch.Name}
		names["#name"] = "name"
	}
	if patch.Notes != nil {
		expr += ", #notes = :notes"
		vals[":notes"] = &types.AttributeValueMemberS{Value: *patch.Notes}
		names["#notes"] = "notes"
	}
	if patch.TotalCost != nil {
		expr += ", #total_cost = :total_cost"
		vals[":total_cost"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*patch.TotalCost, 10)}
		names["#total_cost"] = "total_cost"
	}

	return r.applyUpdate(ctx, id, expr, vals, names)
}

func (r *EstimateDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	return r.applyUpdate(ctx, id, expr, vals, names)
}

func (r *EstimateDynamoRepository) UpdateValidationByID(ctx context.Context, id string, score int, status entities.EstimateStatus) (entities.Estimate, error) {
	expr := "SET #status = :status, #confidence_score = :confidence_score, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":           &types.AttributeValueMemberS{Value: string(status)},
		":confidence_score": &types.AttributeValueMemberN{Value: strconv.Itoa(score)},
		":updated_at":       &types.AttributeValueMemberS{Value: nowRFC3339()},
	}
	names := map[string]string{
		"#status":           "status",
		"#confidence_score": "confidence_score",
		"#updated_at":       "updated_at",
	}
	return r.applyUpdate(ctx, id, expr, vals, names)
}

func (r *EstimateDynamoRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, "id", id)
}

func (r *EstimateDynamoRepository) applyUpdate(ctx context.Context, id, expr string, vals map[string]types.AttributeValue, names map[string]string) (entities.Estimate, error) {
	attrs, err := updateByID(ctx, r.ddb, r.tableName, "id", id, expr, vals, names)
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(attrs) == 0 {
		return entities.Estimate{}, nil
	}
	var rec estimateRecord
	if err := attributevalue.UnmarshalMap(attrs, &rec); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateRecord(rec), nil
}

func toEstimateRecord(e entities.Estimate) estimateRecord {
	return estimateRecord{
		ID:              e.ID,
		AccountID:       e.AccountID,
		Name:            e.Name,
		ProjectType:     string(e.ProjectType),
		TotalArea:       e.TotalArea,
		TotalCost:       e.TotalCost,
		Status:          string(e.Status),
		ConfidenceScore: e.ConfidenceScore,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateRecord(rec estimateRecord) entities.Estimate {
	return entities.Estimate{
		ID:              rec.ID,
		AccountID:       rec.AccountID,
		Name:            rec.Name,
		ProjectType:     entities.ProjectType(rec.ProjectType),
		TotalArea:       rec.TotalArea,
		TotalCost:       rec.TotalCost,
		Status:          entities.EstimateStatus(rec.Status),
		ConfidenceScore: rec.ConfidenceScore,
		Notes:           rec.Notes,
		CreatedAt:       parseRFC3339(rec.CreatedAt),
		UpdatedAt:       parseRFC3339(rec.UpdatedAt),
	}
}
