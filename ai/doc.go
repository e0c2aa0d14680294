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


// Package ai provides abstractions for the external AI collaborators of
// Melodex: the text embedding service and the metadata/lyrics analysis
// service. The core domain and pipeline code depend only on these
// abstractions, never on a concrete client.
//
// # Design Principles
//
// The package is designed around two key interfaces:
//
//   - Embedder: Generates fixed-dimension vector embeddings from text
//   - Analyzer: Returns normalized track metadata for a source URL
//
// # Implementation Packages
//
//   - ai/openai: Embedder implementation for OpenAI-compatible APIs
//   - ai/lyrics: Analyzer implementation for the analysis service HTTP API
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewEmbedder, lyrics.NewClient) return INTERFACE
// types to enforce abstraction. Mock constructors return CONCRETE types so
// tests can inject behavior and make assertions (CallCount, WithXFunc).
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithEmbeddingModel("text-embedding-3-small"))
//	embedder, err := openai.NewEmbedder(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vector, err := embedder.EmbedText(ctx, "a ballad about rain")
package ai
