package repository

import (
	"errors"
	"testing"
	"time"

	"auto_service_queue/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerItem_KeepsJobTimestampsAndActiveFlag(t *testing.T) {
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	started := created.Add(time.Hour)
	c := entities.Customer{
		ID:                     "cust-1",
		CustomerSequenceNumber: 6001,
		Name:                   "Ana",
		Phone:                  "+15551234567",
		Vehicle:                "Civic",
		Version:                2,
		Jobs: []entities.Job{
			{ID: "job-1", Status: entities.JobStatusCompleted, StartTime: &started, CompletionTime: &started, CreatedAt: created, UpdatedAt: created},
			{ID: "job-2", Status: entities.JobStatusStarted, StartTime: &started, CreatedAt: created, UpdatedAt: started},
		},
		CreatedAt: created,
		UpdatedAt: started,
	}

	it := toCustomerItem(c)
	assert.True(t, it.HasActiveJobs)
	assert.Equal(t, []string{}, it.Jobs[0].RequestedServiceTypes)

	av, err := attributevalue.MarshalMap(it)
	require.NoError(t, err)
	_, isNumber := av["version"].(*types.AttributeValueMemberN)
	assert.True(t, isNumber)
	jobs, ok := av["jobs"].(*types.AttributeValueMemberL)
	require.True(t, ok)
	second := jobs.Value[1].(*types.AttributeValueMemberM)
	_, hasCompletion := second.Value["completion_time"]
	assert.False(t, hasCompletion, "unset completion time must be omitted")

	var back customerItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &back))
	got := fromCustomerItem(back)
	assert.Equal(t, c.CustomerSequenceNumber, got.CustomerSequenceNumber)
	assert.Nil(t, got.Jobs[1].CompletionTime)
	require.NotNil(t, got.Jobs[1].StartTime)
	assert.True(t, got.Jobs[1].StartTime.Equal(started))
	assert.Equal(t, entities.JobStatusCompleted, got.Jobs[0].Status)
}

func TestCustomerItem_InactiveWhenAllJobsCompleted(t *testing.T) {
	c := entities.Customer{ID: "cust-1", Jobs: []entities.Job{{ID: "job-1", Status: entities.JobStatusCompleted}}}
	assert.False(t, toCustomerItem(c).HasActiveJobs)
}

func TestWaitTimeEstimateItem_ExpiresAtIsEpochSeconds(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	e := entities.NewWaitTimeEstimate("cust-1", []string{"Oil Change"}, 30, now)

	av, err := attributevalue.MarshalMap(toWaitTimeEstimateItem(e))
	require.NoError(t, err)
	n, ok := av["expires_at"].(*types.AttributeValueMemberN)
	require.True(t, ok, "ttl attribute must be a number")
	assert.Equal(t, "1742202000", n.Value)

	var it waitTimeEstimateItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	back := fromWaitTimeEstimateItem(it)
	assert.True(t, back.ExpiresAt.Equal(e.ExpiresAt))
	assert.Equal(t, 30, back.EstimatedWaitTimeMinutes)
}

func TestServiceTypeKeys_Dedupes(t *testing.T) {
	keys := serviceTypeKeys([]string{"Oil Change", "", "Tune Up", "Oil Change"})
	require.Len(t, keys, 2)
	assert.Equal(t, "Tune Up", keys[1]["name"].(*types.AttributeValueMemberS).Value)
}

func TestSeqFromAttributes(t *testing.T) {
	seq, err := seqFromAttributes(map[string]types.AttributeValue{
		"seq": &types.AttributeValueMemberN{Value: "6001"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6001), seq)

	_, err = seqFromAttributes(map[string]types.AttributeValue{})
	assert.Error(t, err)
}

func TestConditionFailureDetection(t *testing.T) {
	assert.True(t, isConditionalCheckFailed(&types.ConditionalCheckFailedException{}))
	assert.False(t, isConditionalCheckFailed(errors.New("boom")))

	cancelled := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
	assert.True(t, isTransactionConditionFailed(cancelled))
	assert.False(t, isTransactionConditionFailed(&types.TransactionCanceledException{}))
}

func TestTableSpecs(t *testing.T) {
	t.Setenv("CUSTOMERS_TABLE", "shop-customers")

	specs := TableSpecs()
	names := make(map[string]string, len(specs))
	for _, s := range specs {
		names[s.Name()] = s.TTLAttribute
	}
	assert.Len(t, specs, 6)
	assert.Contains(t, names, "shop-customers")
	assert.Equal(t, "expires_at", names[defaultEstimatesTableName])

	for _, s := range specs {
		if s.Name() == defaultSmsLogsTableName {
			require.Len(t, s.Input.GlobalSecondaryIndexes, 1)
			assert.Equal(t, smsLogsCustomerIDIndex, *s.Input.GlobalSecondaryIndexes[0].IndexName)
		}
	}
}

func TestTimeHelpers(t *testing.T) {
	assert.Equal(t, "", formatTime(time.Time{}))
	assert.Nil(t, parseTimePtr(""))
	assert.Nil(t, parseTimePtr("not-a-time"))
	ts := time.Date(2025, 1, 2, 3, 4, 5, 6, time.UTC)
	assert.True(t, parseTimePtr(formatTimePtr(&ts)).Equal(ts))
}
