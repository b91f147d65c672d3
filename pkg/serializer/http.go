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


package serializer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/brewkit/beerxml/pkg/defaults"
	"github.com/brewkit/beerxml/pkg/errors"
)

// RespondJSON writes a JSON response with the given status code. The body is
// encoded before any header is written so a failed encoding never produces a
// partial response.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

// FetcherUserAgent is sent with every document download.
const FetcherUserAgent = "beerxml-fetcher/1.0"

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// Fetcher downloads documents over HTTP with bounded time and size.
type Fetcher struct {
	UserAgent string
	MaxBytes  int64
	Client    *http.Client
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) FetcherOption {
	return func(f *Fetcher) {
		f.UserAgent = userAgent
	}
}

// WithTimeout sets the total request timeout.
func WithTimeout(timeout time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if timeout > 0 {
			f.Client.Timeout = timeout
		}
	}
}

// WithMaxBytes caps the accepted response body size.
func WithMaxBytes(n int64) FetcherOption {
	return func(f *Fetcher) {
		f.MaxBytes = n
	}
}

// WithClient replaces the HTTP client.
func WithClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		if client != nil {
			f.Client = client
		}
	}
}

// NewFetcher creates a Fetcher with the package defaults.
func NewFetcher(options ...FetcherOption) *Fetcher {
	f := &Fetcher{
		UserAgent: FetcherUserAgent,
		MaxBytes:  defaults.MaxDocumentBytes,
		Client: &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newTransport(),
		},
	}
	for _, opt := range options {
		opt(f)
	}
	return f
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		MaxIdleConns:          10,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// Fetch downloads url and returns its body.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "url is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to create request for "+url, err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "request failed for "+url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeNotFound, fmt.Sprintf("document not found: %s", url))
	case resp.StatusCode != http.StatusOK:
		return nil, errors.NewWithContext(errors.ErrCodeUnavailable, "failed to fetch document",
			map[string]any{"url": url, "status": resp.Status})
	}

	body := io.Reader(resp.Body)
	if f.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, f.MaxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to read response from "+url, err)
	}
	if f.MaxBytes > 0 && int64(len(data)) > f.MaxBytes {
		return nil, errors.NewWithContext(errors.ErrCodePayloadTooLarge, "document exceeds size limit",
			map[string]any{"url": url, "limit": f.MaxBytes})
	}
	return data, nil
}
