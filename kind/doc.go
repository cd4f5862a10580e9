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

// Package kind defines the closed set of failure categories a status can
// carry, together with the canonical string form of each category.
//
// A "kind" is the top-level, machine-readable classification of a status,
// such as KeyError, TypeError or IOError. The set of kinds is fixed: new
// categories are a breaking change to the wire contract and must not be
// introduced by callers.
//
// Each kind has exactly one canonical string (see the table in kind.go).
// These strings are the only externally visible encoding of a kind: any
// component that persists or transmits a kind as text must use them verbatim
// to stay interoperable with FromString on the receiving side.
//
// Both lookup directions are deliberately total:
//
//   - Kind.String falls back to the UnknownError string for a kind outside
//     the table;
//   - FromString falls back to IOError for a string outside the table.
//
// The two fallbacks differ on purpose. Existing peers depend on the decode
// side resolving unrecognized input to IOError, so it must not be changed to
// mirror the encode side.
package kind
