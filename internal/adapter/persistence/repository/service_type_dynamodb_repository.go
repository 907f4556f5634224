package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	batchGetLimit       = 100
	batchGetMaxAttempts = 5
)

// batchGetBaseDelay is doubled on every retry of unprocessed keys.
var batchGetBaseDelay = 50 * time.Millisecond

type serviceTypeItem struct {
	Name                     string `dynamodbav:"name"`
	EstimatedDurationMinutes int    `dynamodbav:"estimated_duration_minutes"`
	Description              string `dynamodbav:"description,omitempty"`
	CreatedAt                string `dynamodbav:"created_at"`
	UpdatedAt                string `dynamodbav:"updated_at"`
}

// ServiceTypeDynamoRepository persists the service catalog in DynamoDB.
//
// Table requirements:
//   - PK: name (string)

type ServiceTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceTypeRepository = (*ServiceTypeDynamoRepository)(nil)

func NewServiceTypeDynamoRepository(ddb *dynamodb.Client) *ServiceTypeDynamoRepository {
	return &ServiceTypeDynamoRepository{
		ddb:       ddb,
		tableName: serviceTypesTable(),
	}
}

func (r *ServiceTypeDynamoRepository) List(ctx context.Context) ([]entities.ServiceType, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.ServiceType, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it serviceTypeItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromServiceTypeItem(it))
		}
	}
	return items, nil
}

// FindByNames batch-reads the catalog. Unknown names are simply absent from the result.
func (r *ServiceTypeDynamoRepository) FindByNames(ctx context.Context, names []string) ([]entities.ServiceType, error) {
	keys := serviceTypeKeys(names)
	found := make([]entities.ServiceType, 0, len(keys))

	for start := 0; start < len(keys); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(keys) {
			end = len(keys)
		}

		pending := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys[start:end], ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt >= batchGetMaxAttempts {
				return nil, fmt.Errorf("batch get service types: unprocessed keys after %d attempts", attempt)
			}
			if attempt > 0 {
				log.Printf("[service-type][repository] retrying unprocessed keys attempt=%d", attempt)
				if err := sleepCtx(ctx, batchGetBaseDelay<<(attempt-1)); err != nil {
					return nil, err
				}
			}
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it serviceTypeItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				found = append(found, fromServiceTypeItem(it))
			}
			pending = out.UnprocessedKeys
		}
	}
	return found, nil
}

func (r *ServiceTypeDynamoRepository) Upsert(ctx context.Context, st entities.ServiceType) (entities.ServiceType, error) {
	av, err := attributevalue.MarshalMap(toServiceTypeItem(st))
	if err != nil {
		return entities.ServiceType{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ServiceType{}, err
	}
	return st, nil
}

// serviceTypeKeys de-duplicates names; BatchGetItem rejects repeated keys.
func serviceTypeKeys(names []string) []map[string]types.AttributeValue {
	seen := make(map[string]struct{}, len(names))
	keys := make([]map[string]types.AttributeValue, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		keys = append(keys, map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: n},
		})
	}
	return keys
}

func toServiceTypeItem(st entities.ServiceType) serviceTypeItem {
	return serviceTypeItem{
		Name:                     st.Name,
		EstimatedDurationMinutes: st.EstimatedDurationMinutes,
		Description:              st.Description,
		CreatedAt:                formatTime(st.CreatedAt),
		UpdatedAt:                formatTime(st.UpdatedAt),
	}
}

func fromServiceTypeItem(it serviceTypeItem) entities.ServiceType {
	return entities.ServiceType{
		Name:                     it.Name,
		EstimatedDurationMinutes: it.EstimatedDurationMinutes,
		Description:              it.Description,
		CreatedAt:                parseTime(it.CreatedAt),
		UpdatedAt:                parseTime(it.UpdatedAt),
	}
}
