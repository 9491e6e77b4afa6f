package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetTodayInvalidDate(t *testing.T) {
	h := NewAlmanacHandler(nil, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/today?date=2026/08/29", nil)
	rec := httptest.NewRecorder()

	h.GetToday(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("GetToday status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
