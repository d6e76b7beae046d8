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

const (
	defaultDocumentsTableName = "pricing_documents"
	documentAccountIndex      = "account_id-index"
)

type pricingDocumentRecord struct {
	ID          string `dynamodbav:"id"`
	AccountID   string `dynamodbav:"account_id"`
	Filename    string `dynamodbav:"filename"`
	ContentType string `dynamodbav:"content_type,omitempty"`
	SizeBytes   int64  `dynamodbav:"size_bytes"`
	StoredPath  string `dynamodbav:"stored_path"`
	UploadedAt  string `dynamodbav:"uploaded_at"`
}

// PricingDocumentDynamoRepository persists pricing-document metadata in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI account_id-index: account_id (string)

type PricingDocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingDocumentRepository = (*PricingDocumentDynamoRepository)(nil)

func NewPricingDocumentDynamoRepository(ddb *dynamodb.Client) *PricingDocumentDynamoRepository {
	return &PricingDocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *PricingDocumentDynamoRepository) Create(ctx context.Context, d entities.PricingDocument) (entities.PricingDocument, error) {
	av, err := attributevalue.MarshalMap(pricingDocumentRecord{
		ID:          d.ID,
		AccountID:   d.AccountID,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		StoredPath:  d.StoredPath,
		UploadedAt:  d.UploadedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.PricingDocument{}, err
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
		return entities.PricingDocument{}, err
	}
	return d, nil
}

func (r *PricingDocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PricingDocument, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingDocument{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingDocument{}, nil
	}

	var rec pricingDocumentRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.PricingDocument{}, err
	}
	return fromPricingDocumentRecord(rec), nil
}

func (r *PricingDocumentDynamoRepository) ListByAccountID(ctx context.Context, accountID string) ([]entities.PricingDocument, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, documentAccountIndex, "account_id", accountID)
	if err != nil {
		return nil, err
	}
	docs := make([]entities.PricingDocument, 0, len(raw))
	for _, item := range raw {
		var rec pricingDocumentRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		docs = append(docs, fromPricingDocumentRecord(rec))
	}
	return docs, nil
}

func (r *PricingDocumentDynamoRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, "id", id)
}

func fromPricingDocumentRecord(rec pricingDocumentRecord) entities.PricingDocument {
	return entities.PricingDocument{
		ID:          rec.ID,
		AccountID:   rec.AccountID,
		Filename:    rec.Filename,
		ContentType: rec.ContentType,
		SizeBytes:   rec.SizeBytes,
		StoredPath:  rec.StoredPath,
		UploadedAt:  parseRFC3339(rec.UploadedAt),
	}
}
