package repository

import (
	"context"
	"errors"
	"time"

	"buildready/internal/domain/entities"
	"buildready/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultValidationIssuesTableName = "validation_issues"
	issueEstimateIndex               = "estimate_id-index"
)

type validationIssueRecord struct {
	ID          string `dynamodbav:"id"`
	EstimateID  string `dynamodbav:"estimate_id"`
	Type        string `dynamodbav:"type"`
	Status      string `dynamodbav:"status"`
	Description string `dynamodbav:"description"`
	Resolution  string `dynamodbav:"resolution,omitempty"`
	AssignedTo  string `dynamodbav:"assigned_to,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ValidationIssueDynamoRepository persists ValidationIssue entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI estimate_id-index: estimate_id (string)

type ValidationIssueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IValidationIssueRepository = (*ValidationIssueDynamoRepository)(nil)

func NewValidationIssueDynamoRepository(ddb *dynamodb.Client) *ValidationIssueDynamoRepository {
	return &ValidationIssueDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VALIDATION_ISSUES_TABLE", defaultValidationIssuesTableName),
	}
}

func (r *ValidationIssueDynamoRepository) CreateBatch(ctx context.Context, issues []entities.ValidationIssue) ([]entities.ValidationIssue, error) {
	created := make([]entities.ValidationIssue, 0, len(issues))
	for _, is := range issues {
		av, err := attributevalue.MarshalMap(toValidationIssueRecord(is))
		if err != nil {
			return created, err
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
			return created, err
		}
		created = append(created, is)
	}
	return created, nil
}

func (r *ValidationIssueDynamoRepository) GetByID(ctx context.Context, id string) (entities.ValidationIssue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ValidationIssue{}, err
	}
	if len(out.Item) == 0 {
		return entities.ValidationIssue{}, nil
	}

	var rec validationIssueRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.ValidationIssue{}, err
	}
	return fromValidationIssueRecord(rec), nil
}

func (r *ValidationIssueDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.ValidationIssue, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, issueEstimateIndex, "estimate_id", estimateID)
	if err != nil {
		return nil, err
	}
	issues := make([]entities.ValidationIssue, 0, len(raw))
	for _, item := range raw {
		var rec validationIssueRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		issues = append(issues, fromValidationIssueRecord(rec))
	}
	return issues, nil
}

func (r *ValidationIssueDynamoRepository) ResolveByID(ctx context.Context, id, resolution, assignedTo string) (entities.ValidationIssue, error) {
	expr := "SET #status = :status, #resolution = :resolution, #assigned_to = :assigned_to, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":      &types.AttributeValueMemberS{Value: string(entities.IssueStatusResolved)},
		":resolution":  &types.AttributeValueMemberS{Value: resolution},
		":assigned_to": &types.AttributeValueMemberS{Value: assignedTo},
		":updated_at":  &types.AttributeValueMemberS{Value: nowRFC3339()},
	}
	names := map[string]string{
		"#status":      "status",
		"#resolution":  "resolution",
		"#assigned_to": "assigned_to",
		"#updated_at":  "updated_at",
	}

	attrs, err := updateByID(ctx, r.ddb, r.tableName, "id", id, expr, vals, names)
	if err != nil {
		return entities.ValidationIssue{}, err
	}
	if len(attrs) == 0 {
		return entities.ValidationIssue{}, nil
	}
	var rec validationIssueRecord
	if err := attributevalue.UnmarshalMap(attrs, &rec); err != nil {
		return entities.ValidationIssue{}, err
	}
	return fromValidationIssueRecord(rec), nil
}

func (r *ValidationIssueDynamoRepository) DeleteByEstimateID(ctx context.Context, estimateID string) (int, error) {
	issues, err := r.ListByEstimateID(ctx, estimateID)
	if err != nil {
		return 0, err
	}
	deleted := 0
	var errs []error
	for _, is := range issues {
		found, err := deleteByID(ctx, r.ddb, r.tableName, "id", is.ID)
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

func toValidationIssueRecord(is entities.ValidationIssue) validationIssueRecord {
	return validationIssueRecord{
		ID:          is.ID,
		EstimateID:  is.EstimateID,
		Type:        string(is.Type),
		Status:      string(is.Status),
		Description: is.Description,
		Resolution:  is.Resolution,
		AssignedTo:  is.AssignedTo,
		CreatedAt:   is.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   is.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromValidationIssueRecord(rec validationIssueRecord) entities.ValidationIssue {
	return entities.ValidationIssue{
		ID:          rec.ID,
		EstimateID:  rec.EstimateID,
		Type:        entities.IssueType(rec.Type),
		Status:      entities.IssueStatus(rec.Status),
		Description: rec.Description,
		Resolution:  rec.Resolution,
		AssignedTo:  rec.AssignedTo,
		CreatedAt:   parseRFC3339(rec.CreatedAt),
		UpdatedAt:   parseRFC3339(rec.UpdatedAt),
	}
}
