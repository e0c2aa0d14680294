package badger

import (
	"fmt"

	"github.com/poiesic/melodex/core"
)

// Key prefixes for different data types
const (
	mediaRecordPrefix = "medrec"
)

// makeMediaRecordKey generates a key for a media record by ID. The ID is a
// BLAKE2b hash of the source key, so the same source key always maps to the
// same primary key; no secondary index is needed for source key lookups.
func makeMediaRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", mediaRecordPrefix, id))
}
