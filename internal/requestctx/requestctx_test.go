package requestctx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_Empty(t *testing.T) {
	assert.Equal(t, "", Path(context.Background()))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestMiddleware_StoresPathWithoutQuery(t *testing.T) {
	var got string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Path(r.Context())
	}))

	req := httptest.NewRequest("GET", "/users?page=3&size=10", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "/users", got)
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", RequestID(ctx))
}
