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


package core

import "fmt"

// ValidateMediaRecord validates a MediaRecord according to domain rules.
//
// Validation rules:
//   - SourceKey must not be empty
//   - BlobId must not be empty (a record never exists without its blob)
//   - Embedding must not be empty
//   - Embedding must have length dimension, when dimension > 0
//
// NOT validated:
//   - ID (derived from SourceKey by the repository when 0)
//   - Keywords/Moods/Themes/Flags (optional analysis output)
func ValidateMediaRecord(record *MediaRecord, dimension int) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidMediaRecord)
	}

	if record.SourceKey == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMediaRecord, ErrEmptySourceKey)
	}

	if record.BlobId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMediaRecord, ErrEmptyBlobId)
	}

	if len(record.Embedding) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMediaRecord, ErrEmptyEmbedding)
	}

	if dimension > 0 && len(record.Embedding) != dimension {
		return fmt.Errorf("%w: %w: expected %d, got %d",
			ErrInvalidMediaRecord, ErrEmbeddingDimension, dimension, len(record.Embedding))
	}

	return nil
}
