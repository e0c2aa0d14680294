// Copyright 2025 Poiesic Systems
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


// Package storage provides the document store abstraction layer for melodex.
//
// This package defines the MediaRepository interface that decouples storage
// implementation from the ingestion and search logic, along with the binary
// serialization of core types (mus-go, generated via go generate in core).
//
// # Constructor Return Type Pattern
//
// Public backend constructors return interface types to enforce abstraction
// and enable alternative backends; internal constructors may return concrete
// types within the implementation package.
//
// # Duplicate Handling
//
// Source keys are unique. AddMediaRecord performs the existence check and
// the insert inside one storage transaction, so a concurrent ingestion of
// the same key surfaces as ErrDuplicateKey on exactly one side rather than
// producing two records. Callers treat ErrDuplicateKey as the expected
// "already ingested" outcome.
//
// # Usage
//
//	repo, err := badger.NewMediaRepository(backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// Use in tests with in-memory storage:
//
//	repo, backend, err := badger.NewMemoryRepository()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines.
package storage
