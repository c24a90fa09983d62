package dto

// AddSkillRequest creates a catalog entry.
type AddSkillRequest struct {
	SkillName   string  `json:"skillName" validate:"required"`
	Description *string `json:"description"`
}

// TeachSkillRequest associates the caller as a teacher of a named skill.
type TeachSkillRequest struct {
	SkillName string `json:"skillName" validate:"required"`
}

// UpdateSkillRequest is a partial update of a catalog entry. The skill ID may
// arrive in the body when the path parameter is absent; the path wins.
type UpdateSkillRequest struct {
	SkillID     string  `json:"skillId"`
	SkillName   *string `json:"skillName"`
	Description *string `json:"description"`
}
