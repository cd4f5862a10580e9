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

// Package apis defines the public Go-level contracts for status handling.
//
// The goal of this package is to provide small, composable types that other
// packages can depend on without importing the concrete status
// implementation. It is the surface that HTTP adapters, gRPC adapters and
// application code can target: the capability interface for errors that
// carry a status kind, the Mapper contract that projects kinds onto
// transport status codes, and the small serializable views shared by the
// adapters.
//
// This package must remain lightweight; it only depends on the kind package
// and the gRPC codes package.
package apis
