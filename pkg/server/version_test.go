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
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"no header", "", DefaultAPIVersion},
		{"plain json", "application/json", DefaultAPIVersion},
		{"vendor v1", "application/vnd.beerxml.v1+json", "v1"},
		{"vendor with params", "text/html, application/vnd.beerxml.v1+json;q=0.9", "v1"},
		{"unsupported version", "application/vnd.beerxml.v9+json", DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if got := negotiateAPIVersion(req); got != tt.want {
				t.Errorf("negotiateAPIVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsValidAPIVersion(t *testing.T) {
	if !isValidAPIVersion("v1") {
		t.Error("expected v1 to be valid")
	}
	if isValidAPIVersion("v2") {
		t.Error("expected v2 to be invalid")
	}
}
