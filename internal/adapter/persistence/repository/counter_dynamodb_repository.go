package repository

import (
	"context"
	"fmt"
	"strconv"

	"auto_service_queue/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CounterSeed is the value a fresh counter starts from; the first issued number is CounterSeed+1.
const CounterSeed = 6000

// CounterDynamoRepository issues sequence numbers with an atomic ADD-style update.
//
// Table requirements:
//   - PK: name (string), attribute seq (number)

type CounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: countersTable(),
	}
}

func (r *CounterDynamoRepository) Next(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("SET #seq = if_not_exists(#seq, :start) + :inc"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":start": &types.AttributeValueMemberN{Value: strconv.Itoa(CounterSeed)},
			":inc":   &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	return seqFromAttributes(out.Attributes)
}

func seqFromAttributes(attrs map[string]types.AttributeValue) (int64, error) {
	n, ok := attrs["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter update returned no seq attribute")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
