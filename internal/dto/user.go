package dto

// UpdateProfileRequest is a partial profile update: omitted fields are left
// unchanged.
type UpdateProfileRequest struct {
	Name                *string  `json:"name"`
	Email               *string  `json:"email" validate:"omitempty,email"`
	Contact             *string  `json:"contact"`
	College             *string  `json:"college"`
	ProfessionalDetails *string  `json:"professionalDetails"`
	SkillsToTeach       []string `json:"skillsToTeach"`
	SkillsToLearn       []string `json:"skillsToLearn"`
}

// AddTeachSkillsRequest appends skills to the caller's teaching list.
type AddTeachSkillsRequest struct {
	Skills []string `json:"skills" validate:"required"`
}

// SkillNamesResponse lists plain skill names attached to an account.
type SkillNamesResponse struct {
	Skills []string `json:"skills"`
}

// BookmarksResponse returns the caller's bookmark set after a mutation.
type BookmarksResponse struct {
	Bookmarks []string `json:"bookmarks"`
}
