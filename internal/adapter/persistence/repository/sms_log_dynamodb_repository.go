package repository

import (
	"context"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type smsLogItem struct {
	ID           string `dynamodbav:"id"`
	CustomerID   string `dynamodbav:"customer_id"`
	JobID        string `dynamodbav:"job_id,omitempty"`
	PhoneNumber  string `dynamodbav:"phone_number"`
	Message      string `dynamodbav:"message"`
	Status       string `dynamodbav:"status"`
	ProviderSID  string `dynamodbav:"provider_sid,omitempty"`
	JobStatus    string `dynamodbav:"job_status"`
	ErrorMessage string `dynamodbav:"error_message,omitempty"`
	Attempts     int    `dynamodbav:"attempts"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// SmsLogDynamoRepository persists SmsLog entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id, SK: created_at)

type SmsLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISmsLogRepository = (*SmsLogDynamoRepository)(nil)

func NewSmsLogDynamoRepository(ddb *dynamodb.Client) *SmsLogDynamoRepository {
	return &SmsLogDynamoRepository{
		ddb:       ddb,
		tableName: smsLogsTable(),
	}
}

func (r *SmsLogDynamoRepository) Create(ctx context.Context, l entities.SmsLog) (entities.SmsLog, error) {
	av, err := attributevalue.MarshalMap(toSmsLogItem(l))
	if err != nil {
		return entities.SmsLog{}, err
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
		return entities.SmsLog{}, err
	}
	return l, nil
}

// ListByCustomerID returns the customer's SMS history, newest first.
func (r *SmsLogDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.SmsLog, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(smsLogsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	items := make([]entities.SmsLog, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it smsLogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromSmsLogItem(it))
		}
	}
	return items, nil
}

func toSmsLogItem(l entities.SmsLog) smsLogItem {
	return smsLogItem{
		ID:           l.ID,
		CustomerID:   l.CustomerID,
		JobID:        l.JobID,
		PhoneNumber:  l.PhoneNumber,
		Message:      l.Message,
		Status:       string(l.Status),
		ProviderSID:  l.ProviderSID,
		JobStatus:    string(l.JobStatus),
		ErrorMessage: l.ErrorMessage,
		Attempts:     l.Attempts,
		CreatedAt:    formatTime(l.CreatedAt),
	}
}

func fromSmsLogItem(it smsLogItem) entities.SmsLog {
	return entities.SmsLog{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		JobID:        it.JobID,
		PhoneNumber:  it.PhoneNumber,
		Message:      it.Message,
		Status:       entities.SmsStatus(it.Status),
		ProviderSID:  it.ProviderSID,
		JobStatus:    entities.JobStatus(it.JobStatus),
		ErrorMessage: it.ErrorMessage,
		Attempts:     it.Attempts,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
