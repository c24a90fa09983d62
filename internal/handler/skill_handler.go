package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/service"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
	"github.com/skillswap/skillswap-api/pkg/response"
)

// SkillHandler wires HTTP endpoints to the skill service.
type SkillHandler struct {
	service *service.SkillService
}

// NewSkillHandler creates a new handler.
func NewSkillHandler(svc *service.SkillService) *SkillHandler {
	return &SkillHandler{service: svc}
}

// Add godoc
// @Summary Add a catalog entry
// @Tags Skills
// @Accept json
// @Produce json
// @Param payload body dto.AddSkillRequest true "Skill payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /skills/add [post]
func (h *SkillHandler) Add(c *gin.Context) {
	var req dto.AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "skillName is required"))
		return
	}

	skill, err := h.service.AddSkill(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, skill)
}

// List godoc
// @Summary List the skill catalog
// @Description Full catalog ordered by descending creation time
// @Tags Skills
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, skills)
}

// ListByUser godoc
// @Summary Skills an account teaches or is learning
// @Tags Skills
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Envelope
// @Router /skills/user/{userId} [get]
func (h *SkillHandler) ListByUser(c *gin.Context) {
	skills, err := h.service.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, skills)
}

// BrowseToLearn godoc
// @Summary Skills available to learn
// @Description Skills whose teaching set is non-empty
// @Tags Skills
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /skills/learn [get]
func (h *SkillHandler) BrowseToLearn(c *gin.Context) {
	skills, err := h.service.BrowseToLearn(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, skills)
}

// Teach godoc
// @Summary Add a skill to the caller's teaching set
// @Tags Skills
// @Accept json
// @Produce json
// @Param payload body dto.TeachSkillRequest true "Skill name"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /skills/teach [post]
func (h *SkillHandler) Teach(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.TeachSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "skillName is required"))
		return
	}

	skill, err := h.service.AddSkillToTeach(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, skill)
}

// ExpressInterest godoc
// @Summary Express interest in learning a skill
// @Tags Skills
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skills/{id}/interest [post]
func (h *SkillHandler) ExpressInterest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	skill, err := h.service.ExpressInterest(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, skill)
}

// RemoveInterest godoc
// @Summary Remove interest in a skill
// @Tags Skills
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skills/{id}/interest [delete]
func (h *SkillHandler) RemoveInterest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	skill, err := h.service.RemoveInterest(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, skill)
}

// Update godoc
// @Summary Update a catalog entry
// @Tags Skills
// @Accept json
// @Produce json
// @Param id path string true "Skill ID"
// @Param payload body dto.UpdateSkillRequest true "Skill payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skills/update/{id} [put]
func (h *SkillHandler) Update(c *gin.Context) {
	var req dto.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid skill payload"))
		return
	}

	skill, err := h.service.UpdateSkill(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, skill)
}

// Delete godoc
// @Summary Delete a catalog entry
// @Tags Skills
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skills/delete/{id} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
	skillID := c.Param("id")
	if skillID == "" {
		var body struct {
			SkillID string `json:"skillId"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			skillID = body.SkillID
		}
	}

	if err := h.service.DeleteSkill(c.Request.Context(), skillID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Skill deleted successfully", nil)
}
