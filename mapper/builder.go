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
	"net/http"

	"google.golang.org/grpc/codes"

	"packline.dev/status/kind"
)

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpByKind holds per-kind HTTP statuses. Seeded with library
	// defaults, then overwritten by options.
	httpByKind map[kind.Kind]int
	// grpcByKind holds per-kind gRPC statuses, same layering as httpByKind.
	grpcByKind map[kind.Kind]codes.Code

	// global fallbacks used when a kind has no entry at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates a builder pre-seeded with the library defaults, copied
// into builder-owned maps so option application never touches the package
// level tables.
func newBuilder() *builder {
	b := &builder{
		httpByKind: make(map[kind.Kind]int, len(defaultHTTP)),
		grpcByKind: make(map[kind.Kind]codes.Code, len(defaultGRPC)),

		// hard fallbacks if the kind was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Unknown,
	}
	for k, v := range defaultHTTP {
		b.httpByKind[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcByKind[k] = v
	}
	return b
}
