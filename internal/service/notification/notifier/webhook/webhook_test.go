package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/catalog-insight/internal/catalog"
	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	"github.com/darkkaiser/catalog-insight/internal/service/fetcher"
	"github.com/darkkaiser/catalog-insight/internal/service/notification/notifier"
)

func TestNotifier_Notify(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "200 OK", status: http.StatusOK},
		{name: "202 Accepted", status: http.StatusAccepted},
		{name: "204 No Content", status: http.StatusNoContent},
		{name: "400 Bad Request", status: http.StatusBadRequest, wantErr: true},
		{name: "500 Internal Server Error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			type received struct {
				body      []byte
				requestID string
			}
			receivedC := make(chan received, 1)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				receivedC <- received{body: body, requestID: r.Header.Get(RequestIDHeader)}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			n := New(srv.URL, fetcher.NewHTTPFetcher())
			p := catalog.Product{ID: "42", Name: "Wireless Earbuds", Price: 89.99}

			err := n.Notify(context.Background(), notifier.Alert{ProductID: "42", Product: &p})
			if tt.wantErr {
				require.Error(t, err)
				var statusErr *fetcher.HTTPStatusError
				assert.ErrorAs(t, err, &statusErr)
			} else {
				require.NoError(t, err)
			}

			got := <-receivedC

			// 본문에는 상품 ID만 담긴다.
			assert.JSONEq(t, `{"product_id":"42"}`, string(got.body))

			_, parseErr := uuid.Parse(got.requestID)
			assert.NoError(t, parseErr)
		})
	}
}

func TestNotifier_Notify_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	n := New(url, fetcher.NewHTTPFetcher())
	err := n.Notify(context.Background(), notifier.Alert{ProductID: "1"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))
}

func TestNotifier_ID(t *testing.T) {
	assert.Equal(t, ID, New("http://localhost", fetcher.NewHTTPFetcher()).ID())
}

func TestPayload_JSON(t *testing.T) {
	b, err := json.Marshal(Payload{ProductID: "P-1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"product_id":"P-1"}`, string(b))
}
