package repository

import (
	"context"
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type waitTimeEstimateItem struct {
	CustomerID               string   `dynamodbav:"customer_id"`
	RequestedServiceTypes    []string `dynamodbav:"requested_service_types"`
	EstimatedWaitTimeMinutes int      `dynamodbav:"estimated_wait_time_minutes"`
	CreatedAt                string   `dynamodbav:"created_at"`
	ExpiresAt                int64    `dynamodbav:"expires_at"`
}

// WaitTimeEstimateDynamoRepository persists WaitTimeEstimate entities in DynamoDB.
//
// Table requirements:
//   - PK: customer_id (string)
//   - TTL: expires_at (epoch seconds)
//
// TTL deletion is lazy, so reads drop expired rows themselves.

type WaitTimeEstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IWaitTimeEstimateRepository = (*WaitTimeEstimateDynamoRepository)(nil)

func NewWaitTimeEstimateDynamoRepository(ddb *dynamodb.Client) *WaitTimeEstimateDynamoRepository {
	return &WaitTimeEstimateDynamoRepository{
		ddb:       ddb,
		tableName: estimatesTable(),
		now:       time.Now,
	}
}

func (r *WaitTimeEstimateDynamoRepository) Upsert(ctx context.Context, e entities.WaitTimeEstimate) (entities.WaitTimeEstimate, error) {
	av, err := attributevalue.MarshalMap(toWaitTimeEstimateItem(e))
	if err != nil {
		return entities.WaitTimeEstimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.WaitTimeEstimate{}, err
	}
	return e, nil
}

func (r *WaitTimeEstimateDynamoRepository) GetByCustomerID(ctx context.Context, customerID string) (entities.WaitTimeEstimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WaitTimeEstimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.WaitTimeEstimate{}, nil
	}

	var it waitTimeEstimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WaitTimeEstimate{}, err
	}
	e := fromWaitTimeEstimateItem(it)
	if e.IsExpired(r.now()) {
		return entities.WaitTimeEstimate{}, nil
	}
	return e, nil
}

func toWaitTimeEstimateItem(e entities.WaitTimeEstimate) waitTimeEstimateItem {
	services := e.RequestedServiceTypes
	if services == nil {
		services = []string{}
	}
	return waitTimeEstimateItem{
		CustomerID:               e.CustomerID,
		RequestedServiceTypes:    services,
		EstimatedWaitTimeMinutes: e.EstimatedWaitTimeMinutes,
		CreatedAt:                formatTime(e.CreatedAt),
		ExpiresAt:                e.ExpiresAt.Unix(),
	}
}

func fromWaitTimeEstimateItem(it waitTimeEstimateItem) entities.WaitTimeEstimate {
	var expiresAt time.Time
	if it.ExpiresAt > 0 {
		expiresAt = time.Unix(it.ExpiresAt, 0).UTC()
	}
	return entities.WaitTimeEstimate{
		CustomerID:               it.CustomerID,
		RequestedServiceTypes:    it.RequestedServiceTypes,
		EstimatedWaitTimeMinutes: it.EstimatedWaitTimeMinutes,
		CreatedAt:                parseTime(it.CreatedAt),
		ExpiresAt:                expiresAt,
	}
}
