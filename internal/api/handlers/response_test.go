package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?day=29&month=2&year=2024", nil)
	date, err := QueryDate(req)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", date.Format("2006-01-02"))

	req = httptest.NewRequest(http.MethodGet, "/?day=29&month=2&year=2025", nil)
	_, err = QueryDate(req)
	assert.True(t, IsDateError(err))

	req = httptest.NewRequest(http.MethodGet, "/?day=1&month=2", nil)
	_, err = QueryDate(req)
	assert.Error(t, err)
}

func TestPathInt64(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := PathInt64(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "0"})
	_, err = PathInt64(req, "id")
	assert.Error(t, err)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "занято")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":409,"message":"занято"}`, rec.Body.String())
}
