package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoDB keeps items keyed by a single string hash key and understands
// just the condition expressions the repositories issue.
type fakeDynamoDB struct {
	mu       sync.Mutex
	hashKey  string
	items    map[string]map[string]types.AttributeValue
	pageSize int
	puts     []*dynamodb.PutItemInput
	queries  []*dynamodb.QueryInput
}

func newFakeDynamoDB(hashKey string) *fakeDynamoDB {
	return &fakeDynamoDB{hashKey: hashKey, items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[stringAttr(in.Key[f.hashKey])]}, nil
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, in)

	key := stringAttr(in.Item[f.hashKey])
	existing, exists := f.items[key]
	switch aws.ToString(in.ConditionExpression) {
	case "":
	case "attribute_not_exists(#id)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	case "attribute_exists(#id) AND #version = :expected_version AND #status = :expected_status":
		if !exists ||
			numberAttr(existing["version"]) != numberAttr(in.ExpressionAttributeValues[":expected_version"]) ||
			stringAttr(existing["status"]) != stringAttr(in.ExpressionAttributeValues[":expected_status"]) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("stale")}
		}
	default:
		panic("unexpected condition " + aws.ToString(in.ConditionExpression))
	}
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

// Query matches the index hash key and orders by created_at, paged by
// pageSize when set.
func (f *fakeDynamoDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, in)

	var attr, want string
	for k, v := range in.ExpressionAttributeValues {
		want = stringAttr(v)
		switch k {
		case ":oid":
			attr = "owner_id"
		case ":pid":
			attr = "proposal_id"
		}
	}
	var matched []map[string]types.AttributeValue
	for _, it := range f.items {
		if stringAttr(it[attr]) == want {
			matched = append(matched, it)
		}
	}
	sortItems(matched, "created_at", !aws.ToBool(in.ScanIndexForward) && in.ScanIndexForward != nil)

	start := 0
	if in.ExclusiveStartKey != nil {
		start, _ = strconv.Atoi(stringAttr(in.ExclusiveStartKey["offset"]))
	}
	end := len(matched)
	out := &dynamodb.QueryOutput{}
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberS{Value: strconv.Itoa(end)},
		}
	}
	out.Items = matched[start:end]
	return out, nil
}

func sortItems(items []map[string]types.AttributeValue, attr string, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := stringAttr(items[i][attr]), stringAttr(items[j][attr])
		if desc {
			return a > b
		}
		return a < b
	})
}

func stringAttr(v types.AttributeValue) string {
	if s, ok := v.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func numberAttr(v types.AttributeValue) string {
	if n, ok := v.(*types.AttributeValueMemberN); ok {
		return n.Value
	}
	return ""
}
