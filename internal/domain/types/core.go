package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CharacterID identifies a character on the remote service.
type CharacterID string

// String returns the string form of the identifier.
func (id CharacterID) String() string { return string(id) }

// UnmarshalJSON accepts the id as a JSON string or number.
func (id *CharacterID) UnmarshalJSON(b []byte) error {
	s, err := decodeID(b)
	if err != nil {
		return fmt.Errorf("character id: %w", err)
	}
	*id = CharacterID(s)
	return nil
}

// AnimationID identifies an animation product on the remote service.
type AnimationID string

// String returns the string form of the identifier.
func (id AnimationID) String() string { return string(id) }

// UnmarshalJSON accepts the id as a JSON string or number.
func (id *AnimationID) UnmarshalJSON(b []byte) error {
	s, err := decodeID(b)
	if err != nil {
		return fmt.Errorf("animation id: %w", err)
	}
	*id = AnimationID(s)
	return nil
}

// decodeID returns the text of a string or number literal. A number keeps
// its literal digits. null decodes to the empty id.
func decodeID(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		err := json.Unmarshal(b, &s)
		return s, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return "", fmt.Errorf("want string or number, got %s", b)
	}
	return n.String(), nil
}

// ModelExtension is the file extension of every downloaded model.
const ModelExtension = "fbx"
