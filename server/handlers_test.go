package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"creator-boost/internal/apperr"
)

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		kind apperr.Kind
		want int
	}{
		{apperr.Validation, http.StatusBadRequest},
		{apperr.InvalidInput, http.StatusBadRequest},
		{apperr.MissingCredential, http.StatusUnauthorized},
		{apperr.NotFound, http.StatusNotFound},
		{apperr.RequestFailed, http.StatusBadGateway},
		{apperr.EmptyResult, http.StatusInternalServerError},
		{apperr.Unknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusForKind(tt.kind); got != tt.want {
			t.Errorf("statusForKind(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, apperr.New(apperr.NotFound, "video not found"), nil)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error != "video not found" {
		t.Errorf("Error = %q", body.Error)
	}
	if body.Kind != "not_found" {
		t.Errorf("Kind = %q", body.Kind)
	}
	if body.Partial != nil {
		t.Errorf("Partial = %v, want omitted", body.Partial)
	}
}

func TestWriteErrorCarriesPartial(t *testing.T) {
	rec := httptest.NewRecorder()
	partial := map[string]string{"benchmark_video": "still here"}
	writeError(rec, apperr.New(apperr.RequestFailed, "generation failed"), partial)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Partial == nil {
		t.Error("Partial missing from error response")
	}
}

func TestDecodeBodyRejectsInvalidJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/consult", strings.NewReader("{not json"))

	var payload struct{ Keyword string }
	if decodeBody(rec, req, &payload) {
		t.Error("decodeBody should reject malformed JSON")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
