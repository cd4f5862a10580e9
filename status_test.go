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

package status

import (
	"testing"

	"packline.dev/status/kind"
)

func TestOK(t *testing.T) {
	s := OK()
	if !s.IsOK() {
		t.Fatal("OK().IsOK() = false")
	}
	if s.Kind() != kind.OK {
		t.Fatalf("OK().Kind() = %v, want kind.OK", s.Kind())
	}
	if s.Message() != "" {
		t.Fatalf("OK().Message() = %q, want empty", s.Message())
	}
	if s.String() != "OK" {
		t.Fatalf("OK().String() = %q, want %q", s.String(), "OK")
	}
}

func TestZeroValueIsOK(t *testing.T) {
	var s Status
	if !s.IsOK() {
		t.Fatal("zero Status must be success")
	}
	if s.String() != "OK" {
		t.Fatalf("zero Status String() = %q, want %q", s.String(), "OK")
	}
}

func TestNew_EveryFailureKind(t *testing.T) {
	failureKinds := []kind.Kind{
		kind.OutOfMemory, kind.KeyError, kind.TypeError,
		kind.Invalid, kind.IOError, kind.UnknownError,
	}
	for _, k := range failureKinds {
		t.Run(k.String(), func(t *testing.T) {
			s := New(k, "boom")
			if s.IsOK() {
				t.Fatal("failure status reports IsOK")
			}
			if s.Kind() != k {
				t.Fatalf("Kind() = %v, want %v", s.Kind(), k)
			}
			if s.Message() != "boom" {
				t.Fatalf("Message() = %q, want %q", s.Message(), "boom")
			}
			if s.KindString() != k.String() {
				t.Fatalf("KindString() = %q, want %q", s.KindString(), k.String())
			}
		})
	}
}

func TestNew_PanicsOnOKKind(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("New(kind.OK, ...) must panic")
		}
	}()
	_ = New(kind.OK, "x")
}

func TestString_Format(t *testing.T) {
	tests := []struct {
		name string
		s    Status
		want string
	}{
		{"type error with message", TypeError("bad shape"), "Type error: bad shape"},
		{"key error", KeyError("id 7 not registered"), "Key error: id 7 not registered"},
		{"io error", IOError("short read"), "IOError: short read"},
		{"empty message keeps separator", Invalid(""), "Invalid: "},
		{"success has no separator", OK(), "OK"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCopy_IsIndependent(t *testing.T) {
	src := KeyError("missing key")
	cp := src

	// Overwriting the source must not affect the copy.
	src = OK()
	if src.IsOK() != true {
		t.Fatal("source not overwritten")
	}
	if cp.IsOK() || cp.Kind() != kind.KeyError || cp.Message() != "missing key" {
		t.Fatalf("copy changed after source overwrite: %v", cp)
	}

	// And overwriting with another failure releases nothing shared either.
	src = TypeError("other")
	if cp.Message() != "missing key" {
		t.Fatalf("copy message changed: %q", cp.Message())
	}
	_ = src
}

func TestConvenienceConstructorsAndPredicates(t *testing.T) {
	tests := []struct {
		name string
		s    Status
		kind kind.Kind
		pred func(Status) bool
	}{
		{"OutOfMemory", OutOfMemory("m"), kind.OutOfMemory, Status.IsOutOfMemory},
		{"KeyError", KeyError("m"), kind.KeyError, Status.IsKeyError},
		{"TypeError", TypeError("m"), kind.TypeError, Status.IsTypeError},
		{"Invalid", Invalid("m"), kind.Invalid, Status.IsInvalid},
		{"IOError", IOError("m"), kind.IOError, Status.IsIOError},
		{"Unknown", Unknown("m"), kind.UnknownError, Status.IsUnknownError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.s.Kind() != tt.kind {
				t.Fatalf("Kind() = %v, want %v", tt.s.Kind(), tt.kind)
			}
			if !tt.pred(tt.s) {
				t.Fatal("predicate returned false for its own kind")
			}
			if tt.s.IsOK() {
				t.Fatal("failure reports IsOK")
			}
		})
	}
	if OK().IsIOError() || OK().IsUnknownError() {
		t.Fatal("predicates must be false for success")
	}
}
