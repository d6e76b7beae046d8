package repository

import (
	"context"
	"time"

	"buildready/internal/domain/entities"
	"buildready/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOnboardingTableName = "onboarding_progress"

type onboardingRecord struct {
	AccountID         string `dynamodbav:"account_id"`
	StandardsSet      bool   `dynamodbav:"standards_set"`
	DocumentsUploaded bool   `dynamodbav:"documents_uploaded"`
	EstimateCreated   bool   `dynamodbav:"estimate_created"`
	EstimateSubmitted bool   `dynamodbav:"estimate_submitted"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// OnboardingDynamoRepository persists the onboarding checklist in DynamoDB.
//
// Table requirements:
//   - PK: account_id (string)

type OnboardingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOnboardingProgressRepository = (*OnboardingDynamoRepository)(nil)

func NewOnboardingDynamoRepository(ddb *dynamodb.Client) *OnboardingDynamoRepository {
	return &OnboardingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ONBOARDING_TABLE", defaultOnboardingTableName),
	}
}

func (r *OnboardingDynamoRepository) GetByAccountID(ctx context.Context, accountID string) (entities.OnboardingProgress, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"account_id": &types.AttributeValueMemberS{Value: accountID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OnboardingProgress{}, err
	}
	if len(out.Item) == 0 {
		return entities.OnboardingProgress{}, nil
	}

	var rec onboardingRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.OnboardingProgress{}, err
	}
	return entities.OnboardingProgress{
		AccountID:         rec.AccountID,
		StandardsSet:      rec.StandardsSet,
		DocumentsUploaded: rec.DocumentsUploaded,
		EstimateCreated:   rec.EstimateCreated,
		EstimateSubmitted: rec.EstimateSubmitted,
		UpdatedAt:         parseRFC3339(rec.UpdatedAt),
	}, nil
}

func (r *OnboardingDynamoRepository) Upsert(ctx context.Context, p entities.OnboardingProgress) (entities.OnboardingProgress, error) {
	av, err := attributevalue.MarshalMap(onboardingRecord{
		AccountID:         p.AccountID,
		StandardsSet:      p.StandardsSet,
		DocumentsUploaded: p.DocumentsUploaded,
		EstimateCreated:   p.EstimateCreated,
		EstimateSubmitted: p.EstimateSubmitted,
		UpdatedAt:         p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.OnboardingProgress{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.OnboardingProgress{}, err
	}
	return p, nil
}

func (r *OnboardingDynamoRepository) DeleteByAccountID(ctx context.Context, accountID string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, "account_id", accountID)
}
