// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brewkit/beerxml/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code errors.ErrorCode
		want int
	}{
		{"invalid request", errors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{"invalid document", errors.ErrCodeInvalidDocument, http.StatusUnprocessableEntity},
		{"payload too large", errors.ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{"not found", errors.ErrCodeNotFound, http.StatusNotFound},
		{"method not allowed", errors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"rate limit", errors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"unavailable", errors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"timeout", errors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{"internal", errors.ErrCodeInternal, http.StatusInternalServerError},
		{"unknown defaults to internal", errors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want bool
	}{
		{errors.ErrCodeInvalidRequest, false},
		{errors.ErrCodeInvalidDocument, false},
		{errors.ErrCodePayloadTooLarge, false},
		{errors.ErrCodeNotFound, false},
		{errors.ErrCodeTimeout, true},
		{errors.ErrCodeUnavailable, true},
		{errors.ErrCodeRateLimitExceeded, true},
		{errors.ErrCodeInternal, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := retryableFromCode(tt.code); got != tt.want {
				t.Fatalf("retryableFromCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	if got := mergeDetails(nil, map[string]any{}); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}

	got := mergeDetails(map[string]any{"a": 1, "shared": "old"}, map[string]any{"b": 2, "shared": "new"})
	if got["a"].(int) != 1 || got["b"].(int) != 2 || got["shared"].(string) != "new" {
		t.Fatalf("unexpected merge result %#v", got)
	}
}

func TestWriteError_WritesErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/recipes", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, errors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Code != string(errors.ErrCodeInvalidRequest) || resp.RequestID != "req-123" || resp.Retryable {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Details["k"].(string) != "v" {
		t.Fatalf("expected details to include k=v, got %#v", resp.Details)
	}
}

func TestWriteErrorFromErr_StructuredError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/recipes", nil)
	w := httptest.NewRecorder()

	cause := stderrors.New("XML syntax error on line 3")
	err := errors.WrapWithContext(errors.ErrCodeInvalidDocument, "failed to parse BeerXML document", cause,
		map[string]any{"bytes": 120})

	WriteErrorFromErr(w, req, err, "fallback", map[string]any{"extra": "yes"})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}

	var resp ErrorResponse
	if uerr := json.Unmarshal(w.Body.Bytes(), &resp); uerr != nil {
		t.Fatalf("failed to unmarshal response: %v", uerr)
	}
	if resp.Message != "failed to parse BeerXML document" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if resp.Retryable {
		t.Fatal("expected retryable=false")
	}
	if resp.Details["extra"].(string) != "yes" || resp.Details["error"].(string) != cause.Error() {
		t.Fatalf("unexpected details %#v", resp.Details)
	}
	if resp.RequestID == "" {
		t.Fatal("expected generated request id")
	}
}

func TestWriteErrorFromErr_NonStructuredFallsBackToInternal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteErrorFromErr(w, req, stderrors.New("boom"), "fallback", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Code != string(errors.ErrCodeInternal) || resp.Message != "fallback" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Details["error"].(string) != "boom" {
		t.Fatalf("expected details error=boom, got %#v", resp.Details)
	}
}
