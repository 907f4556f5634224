package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableActiveTimeout = 2 * time.Minute

// TableSpec describes a table the service needs, plus its optional TTL attribute.
type TableSpec struct {
	Input        *dynamodb.CreateTableInput
	TTLAttribute string
}

func (s TableSpec) Name() string {
	return aws.ToString(s.Input.TableName)
}

// EnsureTables creates missing tables and enables TTL where configured.
// Existing tables are left untouched. It returns the names it created.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, specs []TableSpec) ([]string, error) {
	created := make([]string, 0, len(specs))
	for _, spec := range specs {
		name := spec.Name()

		_, err := ddb.CreateTable(ctx, spec.Input)
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Printf("[db][bootstrap] table exists name=%s", name)
				continue
			}
			return created, fmt.Errorf("create table %s: %w", name, err)
		}

		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, tableActiveTimeout); err != nil {
			return created, fmt.Errorf("wait for table %s: %w", name, err)
		}

		if spec.TTLAttribute != "" {
			_, err := ddb.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
				TableName: aws.String(name),
				TimeToLiveSpecification: &types.TimeToLiveSpecification{
					AttributeName: aws.String(spec.TTLAttribute),
					Enabled:       aws.Bool(true),
				},
			})
			if err != nil {
				return created, fmt.Errorf("enable ttl on %s: %w", name, err)
			}
		}

		log.Printf("[db][bootstrap] table created name=%s ttl=%q", name, spec.TTLAttribute)
		created = append(created, name)
	}
	return created, nil
}
