package dto

import "encoding/json"

// RegisterRequest defines the registration payload. Skill lists arriving as
// anything other than JSON arrays are coerced to empty rather than rejected.
type RegisterRequest struct {
	Name                string          `json:"name" validate:"required"`
	Email               string          `json:"email" validate:"required,email"`
	Password            string          `json:"password" validate:"required,min=6"`
	Contact             *string         `json:"contact"`
	College             *string         `json:"college"`
	ProfessionalDetails *string         `json:"professionalDetails"`
	SkillsToTeach       json.RawMessage `json:"skillsToTeach"`
	SkillsToLearn       json.RawMessage `json:"skillsToLearn"`
}

// StringsOrEmpty decodes a raw skill list, treating non-array input as empty.
func StringsOrEmpty(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

// LoginRequest defines the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
