/*
   Copyright 2026 The Packline Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"fmt"

	"google.golang.org/grpc/codes"

	"packline.dev/status/apis"
	"packline.dev/status/kind"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options.
//  3. Validate every entry: kinds must belong to the closed set, HTTP
//     statuses must be well-formed.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate an option that registered an
// unknown kind or a malformed HTTP status.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with a builder pre-seeded with package-level defaults.
	b := newBuilder()

	// (1) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (2) Validate the assembled tables.
	for k, v := range b.httpByKind {
		if !k.Valid() {
			return nil, fmt.Errorf("mapper: HTTP rule for unknown kind %d", int(k))
		}
		if v < 100 || v > 599 {
			return nil, fmt.Errorf("mapper: invalid HTTP status %d for kind %q", v, k)
		}
	}
	for k := range b.grpcByKind {
		if !k.Valid() {
			return nil, fmt.Errorf("mapper: gRPC rule for unknown kind %d", int(k))
		}
	}

	// (3) Freeze everything into a read-only snapshot.
	m := &mapper{
		httpByKind: freezeHTTP(b.httpByKind),
		grpcByKind: freezeGRPC(b.grpcByKind),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation combining per-kind tables
// with hard fallbacks. Lookups are O(1) and safe for concurrent use once
// constructed.
type mapper struct {
	// httpByKind holds the HTTP status for a given kind.
	httpByKind map[kind.Kind]int

	// grpcByKind holds the gRPC status for a given kind.
	grpcByKind map[kind.Kind]codes.Code

	// fallbackHTTP is used when there is no entry at all for a kind.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no entry at all for a kind.
	// Typically codes.Unknown.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind.
//
// Resolution order:
//  1. the per-kind entry (library default or option-supplied);
//  2. the ultimate fallback — HTTP must never be zero.
func (m *mapper) HTTPStatus(k kind.Kind) int {
	if v, ok := m.httpByKind[k]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCCode resolves a gRPC status code for the given kind, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCCode(k kind.Kind) codes.Code {
	if v, ok := m.grpcByKind[k]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC for the same kind. This keeps the two
// transport decisions consistent for a single logical failure.
func (m *mapper) Status(k kind.Kind) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k),
		GRPC: m.GRPCCode(k),
	}
}
