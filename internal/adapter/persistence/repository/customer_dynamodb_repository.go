package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type jobItem struct {
	ID                    string   `dynamodbav:"id"`
	RequestedServiceTypes []string `dynamodbav:"requested_service_types"`
	Message               string   `dynamodbav:"message,omitempty"`
	Status                string   `dynamodbav:"status"`
	StartTime             string   `dynamodbav:"start_time,omitempty"`
	CompletionTime        string   `dynamodbav:"completion_time,omitempty"`
	CreatedAt             string   `dynamodbav:"created_at"`
	UpdatedAt             string   `dynamodbav:"updated_at"`
}

type customerItem struct {
	ID                     string    `dynamodbav:"id"`
	CustomerSequenceNumber int64     `dynamodbav:"customer_sequence_number"`
	Name                   string    `dynamodbav:"name"`
	Phone                  string    `dynamodbav:"phone"`
	Vehicle                string    `dynamodbav:"vehicle"`
	Message                string    `dynamodbav:"message,omitempty"`
	Jobs                   []jobItem `dynamodbav:"jobs"`
	HasActiveJobs          bool      `dynamodbav:"has_active_jobs"`
	Version                int64     `dynamodbav:"version"`
	CreatedAt              string    `dynamodbav:"created_at"`
	UpdatedAt              string    `dynamodbav:"updated_at"`
}

type jobIndexItem struct {
	JobID      string `dynamodbav:"job_id"`
	CustomerID string `dynamodbav:"customer_id"`
}

// CustomerDynamoRepository persists Customer entities with their jobs embedded.
//
// Table requirements:
//   - customers, PK: id (string)
//   - job_index, PK: job_id (string) -> customer_id
//
// has_active_jobs is a denormalized flag kept for the queue scan.

type CustomerDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	jobIndexTable string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:           ddb,
		tableName:     customersTable(),
		jobIndexTable: jobIndexTable(),
	}
}

// Create writes the customer and one job_index entry per job in a single transaction.
func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}}
	for _, j := range c.Jobs {
		put, err := r.jobIndexPut(j.ID, c.ID)
		if err != nil {
			return entities.Customer{}, err
		}
		writes = append(writes, put)
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.jobIndexTable),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var idx jobIndexItem
	if err := attributevalue.UnmarshalMap(out.Item, &idx); err != nil {
		return entities.Customer{}, err
	}
	return r.GetByID(ctx, idx.CustomerID)
}

func (r *CustomerDynamoRepository) AppendJob(ctx context.Context, customerID string, job entities.Job, expectedVersion int64) (entities.Customer, error) {
	jobAV, err := attributevalue.Marshal(toJobItem(job))
	if err != nil {
		return entities.Customer{}, err
	}
	put, err := r.jobIndexPut(job.ID, customerID)
	if err != nil {
		return entities.Customer{}, err
	}

	update := types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: customerID},
			},
			UpdateExpression:    aws.String("SET #jobs = list_append(#jobs, :job), #active = :active, #version = #version + :one, #updated_at = :now"),
			ConditionExpression: aws.String("#version = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#jobs":       "jobs",
				"#active":     "has_active_jobs",
				"#version":    "version",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":job":      &types.AttributeValueMemberL{Value: []types.AttributeValue{jobAV}},
				":active":   &types.AttributeValueMemberBOOL{Value: job.Status.IsActive()},
				":one":      &types.AttributeValueMemberN{Value: "1"},
				":now":      &types.AttributeValueMemberS{Value: formatTime(time.Now())},
				":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			},
		},
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{update, put},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.Customer{}, interfaces.ErrVersionConflict
		}
		return entities.Customer{}, err
	}
	return r.GetByID(ctx, customerID)
}

// UpdateJob replaces jobs[position] in place and stores the recomputed
// has_active_jobs flag in the same write, conditional on the customer version.
func (r *CustomerDynamoRepository) UpdateJob(ctx context.Context, customerID string, position int, job entities.Job, expectedVersion int64, hasActiveJobs bool) (entities.Customer, error) {
	jobAV, err := attributevalue.Marshal(toJobItem(job))
	if err != nil {
		return entities.Customer{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: customerID},
		},
		UpdateExpression:    aws.String(fmt.Sprintf("SET #jobs[%d] = :job, #active = :active, #version = #version + :one, #updated_at = :now", position)),
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#jobs":       "jobs",
			"#active":     "has_active_jobs",
			"#version":    "version",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job":      jobAV,
			":active":   &types.AttributeValueMemberBOOL{Value: hasActiveJobs},
			":one":      &types.AttributeValueMemberN{Value: "1"},
			":now":      &types.AttributeValueMemberS{Value: formatTime(time.Now())},
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Customer{}, interfaces.ErrVersionConflict
		}
		return entities.Customer{}, err
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

// ListWithActiveJobs scans for customers flagged with pending/started jobs.
func (r *CustomerDynamoRepository) ListWithActiveJobs(ctx context.Context) ([]entities.Customer, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#active = :true"),
		ExpressionAttributeNames: map[string]string{
			"#active": "has_active_jobs",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})

	customers := make([]entities.Customer, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it customerItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			c := fromCustomerItem(it)
			if c.HasActiveJobs() {
				customers = append(customers, c)
			}
		}
	}
	return customers, nil
}

func (r *CustomerDynamoRepository) jobIndexPut(jobID, customerID string) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(jobIndexItem{JobID: jobID, CustomerID: customerID})
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.jobIndexTable),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#job_id)"),
			ExpressionAttributeNames: map[string]string{"#job_id": "job_id"},
		},
	}, nil
}

func toCustomerItem(c entities.Customer) customerItem {
	jobs := make([]jobItem, 0, len(c.Jobs))
	for _, j := range c.Jobs {
		jobs = append(jobs, toJobItem(j))
	}
	return customerItem{
		ID:                     c.ID,
		CustomerSequenceNumber: c.CustomerSequenceNumber,
		Name:                   c.Name,
		Phone:                  c.Phone,
		Vehicle:                c.Vehicle,
		Message:                c.Message,
		Jobs:                   jobs,
		HasActiveJobs:          c.HasActiveJobs(),
		Version:                c.Version,
		CreatedAt:              formatTime(c.CreatedAt),
		UpdatedAt:              formatTime(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	jobs := make([]entities.Job, 0, len(it.Jobs))
	for _, j := range it.Jobs {
		jobs = append(jobs, fromJobItem(j))
	}
	return entities.Customer{
		ID:                     it.ID,
		CustomerSequenceNumber: it.CustomerSequenceNumber,
		Name:                   it.Name,
		Phone:                  it.Phone,
		Vehicle:                it.Vehicle,
		Message:                it.Message,
		Jobs:                   jobs,
		Version:                it.Version,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
}

func toJobItem(j entities.Job) jobItem {
	services := j.RequestedServiceTypes
	if services == nil {
		services = []string{}
	}
	return jobItem{
		ID:                    j.ID,
		RequestedServiceTypes: services,
		Message:               j.Message,
		Status:                string(j.Status),
		StartTime:             formatTimePtr(j.StartTime),
		CompletionTime:        formatTimePtr(j.CompletionTime),
		CreatedAt:             formatTime(j.CreatedAt),
		UpdatedAt:             formatTime(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:                    it.ID,
		RequestedServiceTypes: it.RequestedServiceTypes,
		Message:               it.Message,
		Status:                entities.JobStatus(it.Status),
		StartTime:             parseTimePtr(it.StartTime),
		CompletionTime:        parseTimePtr(it.CompletionTime),
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}
