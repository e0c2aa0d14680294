package lyrics

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// orderedValues decodes a JSON object of string keys to string values into
// the sequence of its values, in document order. encoding/json map decoding
// would randomize the order, and the composed embedding text must be
// reproducible for the same service response, so the object is walked with
// the token decoder instead. A JSON null or an absent field decodes to nil.
type orderedValues []string

func (o *orderedValues) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*o = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	values := []string{}
	for dec.More() {
		// Key token, discarded; only the values feed the composed text.
		if _, err := dec.Token(); err != nil {
			return err
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		values = append(values, value)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	*o = values
	return nil
}
