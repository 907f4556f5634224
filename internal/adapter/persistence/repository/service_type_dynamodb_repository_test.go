package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBatchGetDelay(t *testing.T, d time.Duration) {
	t.Helper()
	prev := batchGetBaseDelay
	batchGetBaseDelay = d
	t.Cleanup(func() { batchGetBaseDelay = prev })
}

func serviceTypeRow(name, minutes string) map[string]any {
	return map[string]any{
		"name":                       map[string]string{"S": name},
		"estimated_duration_minutes": map[string]string{"N": minutes},
	}
}

func TestServiceTypeDynamoRepository_FindByNamesRetriesUnprocessedKeys(t *testing.T) {
	withBatchGetDelay(t, 5*time.Millisecond)
	fake, client := newFakeDynamo(t)
	repo := NewServiceTypeDynamoRepository(client)

	var calledAt []time.Time
	fake.handle("BatchGetItem", func(map[string]any) (int, any) {
		calledAt = append(calledAt, time.Now())
		switch len(calledAt) {
		case 1:
			return http.StatusOK, map[string]any{
				"Responses": map[string]any{repo.tableName: []any{serviceTypeRow("Oil Change", "30")}},
				"UnprocessedKeys": map[string]any{repo.tableName: map[string]any{
					"Keys": []any{map[string]any{"name": map[string]string{"S": "Brake Repair"}}},
				}},
			}
		case 2:
			return http.StatusOK, map[string]any{
				"Responses": map[string]any{repo.tableName: []any{}},
				"UnprocessedKeys": map[string]any{repo.tableName: map[string]any{
					"Keys": []any{map[string]any{"name": map[string]string{"S": "Brake Repair"}}},
				}},
			}
		default:
			return http.StatusOK, map[string]any{
				"Responses": map[string]any{repo.tableName: []any{serviceTypeRow("Brake Repair", "60")}},
			}
		}
	})

	got, err := repo.FindByNames(context.Background(), []string{"Oil Change", "Brake Repair"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Oil Change", got[0].Name)
	assert.Equal(t, 60, got[1].EstimatedDurationMinutes)

	require.Len(t, calledAt, 3)
	assert.GreaterOrEqual(t, calledAt[1].Sub(calledAt[0]), 5*time.Millisecond)
	assert.GreaterOrEqual(t, calledAt[2].Sub(calledAt[1]), 10*time.Millisecond)
}

func TestServiceTypeDynamoRepository_FindByNamesStopsWhenContextDone(t *testing.T) {
	withBatchGetDelay(t, time.Hour)
	fake, client := newFakeDynamo(t)
	repo := NewServiceTypeDynamoRepository(client)

	fake.handle("BatchGetItem", func(map[string]any) (int, any) {
		return http.StatusOK, map[string]any{
			"UnprocessedKeys": map[string]any{repo.tableName: map[string]any{
				"Keys": []any{map[string]any{"name": map[string]string{"S": "Oil Change"}}},
			}},
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := repo.FindByNames(ctx, []string{"Oil Change"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	assert.Equal(t, 1, fake.count("BatchGetItem"))
}

func TestServiceTypeDynamoRepository_FindByNamesGivesUp(t *testing.T) {
	withBatchGetDelay(t, time.Millisecond)
	fake, client := newFakeDynamo(t)
	repo := NewServiceTypeDynamoRepository(client)

	fake.handle("BatchGetItem", func(map[string]any) (int, any) {
		return http.StatusOK, map[string]any{
			"UnprocessedKeys": map[string]any{repo.tableName: map[string]any{
				"Keys": []any{map[string]any{"name": map[string]string{"S": "Oil Change"}}},
			}},
		}
	})

	_, err := repo.FindByNames(context.Background(), []string{"Oil Change"})
	require.Error(t, err)
	assert.Equal(t, batchGetMaxAttempts, fake.count("BatchGetItem"))
}
