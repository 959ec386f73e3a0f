package hierarchy

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ExternalNode is one entry of an externally supplied object tree.
// Read-only input; ids are assigned by the external system and opaque
// here beyond equality.
type ExternalNode struct {
	ObjectID int            `json:"objectid"`
	Name     string         `json:"name"`
	Objects  []ExternalNode `json:"objects,omitempty"`
}

// ErrMalformedPayload wraps every parse or schema failure of an external
// tree payload. Callers treat it as "no external hierarchy supplied".
var ErrMalformedPayload = errors.New("malformed external tree payload")

// ParseTree decodes an external hierarchy payload: a JSON document with
// the root object list nested under "data"."objects". Unparseable text or
// a missing/empty object list yields ErrMalformedPayload.
func ParseTree(data []byte) ([]ExternalNode, error) {
	var payload struct {
		Data struct {
			Objects []ExternalNode `json:"objects"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if len(payload.Data.Objects) == 0 {
		return nil, fmt.Errorf("%w: no objects under data", ErrMalformedPayload)
	}
	return payload.Data.Objects, nil
}
