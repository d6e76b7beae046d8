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

const defaultStandardsTableName = "company_standards"

type standardsRecord struct {
	AccountID            string            `dynamodbav:"account_id"`
	DrywallWastePct      float64           `dynamodbav:"drywall_waste_pct"`
	FlooringWastePct     float64           `dynamodbav:"flooring_waste_pct"`
	CeilingHeightInches  int               `dynamodbav:"ceiling_height_inches"`
	FlooringInstallation string            `dynamodbav:"flooring_installation"`
	PreferredHVACBrand   string            `dynamodbav:"preferred_hvac_brand"`
	Advanced             map[string]string `dynamodbav:"advanced,omitempty"`
	CreatedAt            string            `dynamodbav:"created_at"`
	UpdatedAt            string            `dynamodbav:"updated_at"`
}

// StandardsDynamoRepository persists CompanyStandards in DynamoDB.
//
// Table requirements:
//   - PK: account_id (string), one record per account, upsert semantics.

type StandardsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStandardsRepository = (*StandardsDynamoRepository)(nil)

func NewStandardsDynamoRepository(ddb *dynamodb.Client) *StandardsDynamoRepository {
	return &StandardsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STANDARDS_TABLE", defaultStandardsTableName),
	}
}

func (r *StandardsDynamoRepository) Upsert(ctx context.Context, s entities.CompanyStandards) (entities.CompanyStandards, error) {
	av, err := attributevalue.MarshalMap(toStandardsRecord(s))
	if err != nil {
		return entities.CompanyStandards{}, err
	}

	// Plain put: replacing the previous record is the contract.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CompanyStandards{}, err
	}
	return s, nil
}

func (r *StandardsDynamoRepository) GetByAccountID(ctx context.Context, accountID string) (entities.CompanyStandards, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"account_id": &types.AttributeValueMemberS{Value: accountID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CompanyStandards{}, err
	}
	if len(out.Item) == 0 {
		return entities.CompanyStandards{}, nil
	}

	var rec standardsRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.CompanyStandards{}, err
	}
	return fromStandardsRecord(rec), nil
}

func (r *StandardsDynamoRepository) DeleteByAccountID(ctx context.Context, accountID string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, "account_id", accountID)
}

func toStandardsRecord(s entities.CompanyStandards) standardsRecord {
	return standardsRecord{
		AccountID:            s.AccountID,
		DrywallWastePct:      s.DrywallWastePct,
		FlooringWastePct:     s.FlooringWastePct,
		CeilingHeightInches:  s.CeilingHeightInches,
		FlooringInstallation: s.FlooringInstallation,
		PreferredHVACBrand:   s.PreferredHVACBrand,
		Advanced:             s.Advanced,
		CreatedAt:            s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromStandardsRecord(rec standardsRecord) entities.CompanyStandards {
	return entities.CompanyStandards{
		AccountID:            rec.AccountID,
		DrywallWastePct:      rec.DrywallWastePct,
		FlooringWastePct:     rec.FlooringWastePct,
		CeilingHeightInches:  rec.CeilingHeightInches,
		FlooringInstallation: rec.FlooringInstallation,
		PreferredHVACBrand:   rec.PreferredHVACBrand,
		Advanced:             rec.Advanced,
		CreatedAt:            parseRFC3339(rec.CreatedAt),
		UpdatedAt:            parseRFC3339(rec.UpdatedAt),
	}
}
