package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/service"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
	"github.com/skillswap/skillswap-api/pkg/response"
)

// UserHandler wires HTTP endpoints to the user service.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new handler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// Profile godoc
// @Summary Get profile
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	user, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Partial update; omitted fields are left unchanged
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, user)
}

// SharedSkills godoc
// @Summary Skills the caller teaches
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users/shared-skills [get]
func (h *UserHandler) SharedSkills(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	skills, err := h.service.SharedSkills(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.SkillNamesResponse{Skills: skills})
}

// SkillsToLearn godoc
// @Summary Skills the caller wants to learn
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users/skills/learn [get]
func (h *UserHandler) SkillsToLearn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	skills, err := h.service.SkillsToLearn(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.SkillNamesResponse{Skills: skills})
}

// AddSkillsToTeach godoc
// @Summary Append skills to the caller's teaching list
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.AddTeachSkillsRequest true "Skill names"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users/skills/teach [post]
func (h *UserHandler) AddSkillsToTeach(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.AddTeachSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "skills must be an array"))
		return
	}

	skills, err := h.service.AddSkillsToTeach(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.SkillNamesResponse{Skills: skills})
}

// MyRecordings godoc
// @Summary Recordings of sessions the caller taught or attended
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users/recordings [get]
func (h *UserHandler) MyRecordings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	recordings, err := h.service.MyRecordings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, recordings)
}

// Bookmark godoc
// @Summary Bookmark a recording
// @Tags Users
// @Produce json
// @Param id path string true "Recording ID"
// @Success 200 {object} response.Envelope
// @Router /users/recordings/{id}/bookmark [post]
func (h *UserHandler) Bookmark(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	bookmarks, err := h.service.Bookmark(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.BookmarksResponse{Bookmarks: bookmarks})
}

// RemoveBookmark godoc
// @Summary Remove a recording bookmark
// @Tags Users
// @Produce json
// @Param id path string true "Recording ID"
// @Success 200 {object} response.Envelope
// @Router /users/recordings/{id}/bookmark [delete]
func (h *UserHandler) RemoveBookmark(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	bookmarks, err := h.service.RemoveBookmark(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dto.BookmarksResponse{Bookmarks: bookmarks})
}
