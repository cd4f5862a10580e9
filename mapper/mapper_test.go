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
	"testing"

	"google.golang.org/grpc/codes"

	"packline.dev/status/kind"
)

func TestDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// Spot-check the canonical defaults from defaults.go
	check := func(k kind.Kind, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(k)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%v) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				k, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(kind.OK, 200, codes.OK)
	check(kind.TypeError, 400, codes.InvalidArgument)
	check(kind.Invalid, 400, codes.InvalidArgument)
	check(kind.KeyError, 404, codes.NotFound)
	check(kind.OutOfMemory, 507, codes.ResourceExhausted)
	check(kind.IOError, 500, codes.Internal)
	check(kind.UnknownError, 500, codes.Unknown)
}

func TestOptions_ReplaceDefaults(t *testing.T) {
	m, err := New(
		WithHTTPStatus(kind.IOError, http.StatusBadGateway),
		WithGRPCCode(kind.IOError, codes.Unavailable),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.IOError)
	if st.HTTP != http.StatusBadGateway {
		t.Fatalf("HTTP override must win; got %d, want %d", st.HTTP, http.StatusBadGateway)
	}
	if st.GRPC != codes.Unavailable {
		t.Fatalf("gRPC override must win; got %v, want %v", st.GRPC, codes.Unavailable)
	}
	// other kinds keep their defaults
	if got := m.HTTPStatus(kind.KeyError); got != 404 {
		t.Fatalf("unrelated kind changed: got %d, want 404", got)
	}
}

func TestNew_RejectsUnknownKind(t *testing.T) {
	if _, err := New(WithHTTPStatus(kind.Kind(42), 500)); err == nil {
		t.Fatal("New must reject a rule for an unknown kind")
	}
	if _, err := New(WithGRPCCode(kind.Kind(-3), codes.Internal)); err == nil {
		t.Fatal("New must reject a gRPC rule for an unknown kind")
	}
}

func TestNew_RejectsMalformedHTTPStatus(t *testing.T) {
	for _, bad := range []int{0, 42, 600, -1} {
		if _, err := New(WithHTTPStatus(kind.Invalid, bad)); err == nil {
			t.Fatalf("New must reject HTTP status %d", bad)
		}
	}
}

func TestSnapshot_IndependentOfLaterOptions(t *testing.T) {
	// Two mappers built from different options must not see each other's
	// rules; the builder must also never leak into the package defaults.
	m1, err := New(WithHTTPStatus(kind.KeyError, http.StatusGone))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m2, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m1.HTTPStatus(kind.KeyError); got != http.StatusGone {
		t.Fatalf("m1 lost its rule: got %d", got)
	}
	if got := m2.HTTPStatus(kind.KeyError); got != http.StatusNotFound {
		t.Fatalf("m2 must keep the library default: got %d", got)
	}
}
