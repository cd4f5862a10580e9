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

// Package mapper provides deterministic, immutable mappings from status
// kinds (packline.dev/status/kind) to transport-level statuses for HTTP and
// gRPC.
//
// Transport layers (HTTP handlers, gRPC servers) need to turn a failure's
// kind into a concrete status code. Package mapper does that in a way that
// is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per kind;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// A Mapper resolves statuses in the following order:
//
//  1. the per-kind entry (library default, possibly replaced via options);
//  2. the ultimate fallback (500 / codes.Unknown) for a kind the snapshot
//     has never heard of.
//
// Build one with New and reuse it at every transport edge:
//
//	m, err := mapper.New(
//		mapper.WithHTTPStatus(kind.IOError, http.StatusBadGateway),
//	)
package mapper
