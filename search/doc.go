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


// Package search provides embedding-based similarity search over the stored
// media corpus.
//
// Rank implements the scoring engine: cosine similarity of the query vector
// against every stored embedding, stable-sorted descending, truncated to the
// top K. The Searcher type wires the engine to the embedding service and the
// media repository for end-to-end text queries.
package search
