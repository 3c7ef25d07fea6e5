package types

// Character is the rig animations are retargeted onto. The remote service
// keeps exactly one primary character per session.
type Character struct {
	ID   CharacterID `json:"primary_character_id"`
	Name string      `json:"primary_character_name"`
}
