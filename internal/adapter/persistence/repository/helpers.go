package repository

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// parseRFC3339 reads a stored timestamp, falling back to the zero time for
// a corrupt value so a bad row does not fail the whole read.
func parseRFC3339(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil && s != "" {
		log.Printf("[repository] unparseable timestamp %q err=%v", s, err)
	}
	return t
}

// updateByID runs a guarded UpdateItem: the row must exist, and the updated
// attributes are returned. A failed existence condition yields (nil, nil) so
// callers can map it to their not-found convention.
func updateByID(
	ctx context.Context,
	ddb *dynamodb.Client,
	table, keyAttr, id, updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (map[string]types.AttributeValue, error) {
	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyAttr: &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#key)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#key": keyAttr}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil, nil
		}
		return nil, err
	}
	return out.Attributes, nil
}

// deleteByID removes a row and reports whether it existed.
func deleteByID(ctx context.Context, ddb *dynamodb.Client, table, keyAttr, id string) (bool, error) {
	out, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyAttr: &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// queryIndex pages through a GSI equality query and returns the raw items.
func queryIndex(ctx context.Context, ddb *dynamodb.Client, table, index, keyAttr, value string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#k = :v"),
			ExpressionAttributeNames: map[string]string{
				"#k": keyAttr,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
