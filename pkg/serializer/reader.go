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
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/brewkit/beerxml/pkg/errors"
)

// StdinSource selects standard input in Open.
const StdinSource = "-"

// Open returns a reader over a document source: "-" for stdin, an http(s) URL
// downloaded through fetcher, or a local file path. The caller closes it.
func Open(ctx context.Context, source string, fetcher *Fetcher) (io.ReadCloser, error) {
	src := strings.TrimSpace(source)
	switch {
	case src == "":
		return nil, errors.New(errors.ErrCodeInvalidRequest, "document source is empty")
	case src == StdinSource:
		return io.NopCloser(os.Stdin), nil
	case IsURL(src):
		if fetcher == nil {
			fetcher = NewFetcher()
		}
		data, err := fetcher.Fetch(ctx, src)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}

	f, err := os.Open(src)
	if err != nil {
		code := errors.ErrCodeInternal
		if stderrors.Is(err, os.ErrNotExist) {
			code = errors.ErrCodeNotFound
		}
		return nil, errors.WrapWithContext(code, "failed to open document", err, map[string]any{"path": src})
	}
	return f, nil
}

// IsURL reports whether source names an http or https resource.
func IsURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
