package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidID = errors.New("id must be an integer or a numeric string")

// ID is a row id that multipart forms and select widgets may send as a string.
type ID int

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return ErrInvalidID
		}

		*id = ID(v)
		return nil
	}

	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return ErrInvalidID
	}

	*id = ID(v)
	return nil
}

// Ptr converts an optional id, keeping nil as nil.
func (id *ID) Ptr() *int {
	if id == nil {
		return nil
	}

	v := int(*id)
	return &v
}

func Ints(ids []ID) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = append(out, int(id))
	}
	return out
}
