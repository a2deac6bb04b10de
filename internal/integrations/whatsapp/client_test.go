package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

func newClient(url string) *Client {
	return NewClient(Config{
		BaseURL:       url,
		PhoneNumberID: "1234",
		Token:         "secret",
		CountryPrefix: "55",
		Language:      "pt_BR",
		Timeout:       time.Second,
	}, logger.Nop())
}

func TestSendTemplate_Success(t *testing.T) {
	var got templateMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1234/messages", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	resp, err := newClient(srv.URL).SendTemplate(context.Background(), "11999990000", "confirmacaoagenda")
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "wamid.1", resp.Messages[0].ID)

	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "5511999990000", got.To)
	assert.Equal(t, "template", got.Type)
	assert.Equal(t, "confirmacaoagenda", got.Template.Name)
	assert.Equal(t, "pt_BR", got.Template.Language.Code)
}

func TestSendTemplate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		retryAfter string
		retryable  bool
		wantWait   time.Duration
	}{
		{name: "invalid recipient", status: http.StatusBadRequest, body: `{"error":{"message":"invalid parameter","code":100}}`},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`, retryAfter: "7", retryable: true, wantWait: 7 * time.Second},
		{name: "server error", status: http.StatusBadGateway, body: `oops`, retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newClient(srv.URL).SendTemplate(context.Background(), "11999990000", "confirmacaoagenda")
			require.Error(t, err)

			apiErr, ok := IsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantWait, apiErr.RetryAfter)
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}
}

func TestSendTemplate_ParsesGraphError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"template not found","type":"OAuthException","code":132001}}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).SendTemplate(context.Background(), "11999990000", "missing")
	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 132001, apiErr.Code)
	assert.Equal(t, "template not found", apiErr.Message)
}

func TestSendTemplate_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newClient(url).SendTemplate(context.Background(), "11999990000", "confirmacaoagenda")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsRetryable(err))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "*******0000", maskPhone("11999990000"))
	assert.Equal(t, "123", maskPhone("123"))
}
