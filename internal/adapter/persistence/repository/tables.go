package repository

import (
	"auto_service_queue/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName    = "customers"
	defaultJobIndexTableName     = "job_index"
	defaultServiceTypesTableName = "service_types"
	defaultEstimatesTableName    = "wait_time_estimates"
	defaultCountersTableName     = "counters"
	defaultSmsLogsTableName      = "sms_logs"

	smsLogsCustomerIDIndex = "customer_id-index"
	estimatesTTLAttribute  = "expires_at"
)

func customersTable() string    { return getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName) }
func jobIndexTable() string     { return getenvDefault("JOB_INDEX_TABLE", defaultJobIndexTableName) }
func serviceTypesTable() string { return getenvDefault("SERVICE_TYPES_TABLE", defaultServiceTypesTableName) }
func estimatesTable() string    { return getenvDefault("WAIT_TIME_ESTIMATES_TABLE", defaultEstimatesTableName) }
func countersTable() string     { return getenvDefault("COUNTERS_TABLE", defaultCountersTableName) }
func smsLogsTable() string      { return getenvDefault("SMS_LOGS_TABLE", defaultSmsLogsTableName) }

// TableSpecs lists every table the repositories read or write, on-demand billing.
func TableSpecs() []database.TableSpec {
	return []database.TableSpec{
		{Input: hashKeyTable(customersTable(), "id")},
		{Input: hashKeyTable(jobIndexTable(), "job_id")},
		{Input: hashKeyTable(serviceTypesTable(), "name")},
		{Input: hashKeyTable(estimatesTable(), "customer_id"), TTLAttribute: estimatesTTLAttribute},
		{Input: hashKeyTable(countersTable(), "name")},
		{Input: smsLogsTableInput()},
	}
}

func hashKeyTable(name, key string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
		},
	}
}

func smsLogsTableInput() *dynamodb.CreateTableInput {
	in := hashKeyTable(smsLogsTable(), "id")
	in.AttributeDefinitions = append(in.AttributeDefinitions,
		types.AttributeDefinition{AttributeName: aws.String("customer_id"), AttributeType: types.ScalarAttributeTypeS},
		types.AttributeDefinition{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
	)
	in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{
		{
			IndexName: aws.String(smsLogsCustomerIDIndex),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("customer_id"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		},
	}
	return in
}
