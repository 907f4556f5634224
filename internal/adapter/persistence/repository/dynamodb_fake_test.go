package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"auto_service_queue/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/require"
)

// fakeDynamo answers DynamoDB JSON-protocol calls with per-operation handlers.
// Requests are served one at a time, like a single item partition.
type fakeDynamo struct {
	mu       sync.Mutex
	handlers map[string]func(body map[string]any) (int, any)
	calls    map[string]int
}

func newFakeDynamo(t *testing.T) (*fakeDynamo, *dynamodb.Client) {
	t.Helper()
	f := &fakeDynamo{
		handlers: map[string]func(map[string]any) (int, any){},
		calls:    map[string]int{},
	}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)

	t.Setenv("DYNAMODB_ENDPOINT", srv.URL)
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "local")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "local")

	client, err := database.ConnectDynamoDB(context.Background())
	require.NoError(t, err)
	return f, client
}

func (f *fakeDynamo) handle(op string, h func(body map[string]any) (int, any)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[op] = h
}

func (f *fakeDynamo) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeDynamo) serve(w http.ResponseWriter, req *http.Request) {
	op := strings.TrimPrefix(req.Header.Get("X-Amz-Target"), "DynamoDB_20120810.")
	raw, _ := io.ReadAll(req.Body)
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++

	h, ok := f.handlers[op]
	if !ok {
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"__type":"com.amazon.coral.validate#ValidationException","message":"unexpected operation ` + op + `"}`))
		return
	}
	status, resp := h(body)
	out, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

// attr digs a typed value out of a decoded request, e.g. attr(body, "ExpressionAttributeValues", ":start", "N").
func attr(body map[string]any, path ...string) string {
	var cur any = body
	for _, p := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[p]
	}
	s, _ := cur.(string)
	return s
}
