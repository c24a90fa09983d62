package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/service"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
	"github.com/skillswap/skillswap-api/pkg/response"
)

// SessionHandler wires HTTP endpoints to the session service.
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new handler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// Create godoc
// @Summary Create a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body dto.CreateSessionRequest true "Session payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /sessions/create [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "missing required fields"))
		return
	}

	session, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, session)
}

// MySessions godoc
// @Summary Sessions for the caller, grouped by role
// @Tags Sessions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /sessions/my-sessions [get]
func (h *SessionHandler) MySessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	sessions, err := h.service.MySessions(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, sessions)
}

// Detail godoc
// @Summary Session details with populated accounts
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sessions/{id} [get]
func (h *SessionHandler) Detail(c *gin.Context) {
	detail, err := h.service.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, detail)
}

// SetGMeetLink godoc
// @Summary Set the session's meeting link and notify learners
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.SetGMeetLinkRequest true "Meeting link"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sessions/{id}/gmeet [post]
func (h *SessionHandler) SetGMeetLink(c *gin.Context) {
	var req dto.SetGMeetLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "gmeetLink is required"))
		return
	}

	session, err := h.service.SetGMeetLink(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "GMeet link set and learners notified", session)
}

// TrackAttendance godoc
// @Summary Track attendance for a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.TrackAttendanceRequest true "Learner"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sessions/attend/{id} [post]
func (h *SessionHandler) TrackAttendance(c *gin.Context) {
	var req dto.TrackAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "userId is required"))
		return
	}

	session, err := h.service.TrackAttendance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Attendance tracked successfully", session)
}

// Record godoc
// @Summary Save a recording for a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.RecordSessionRequest true "Recording URL"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /sessions/record/{id} [post]
func (h *SessionHandler) Record(c *gin.Context) {
	var req dto.RecordSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "recordingUrl is required"))
		return
	}

	recording, err := h.service.RecordSession(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, recording)
}

// Recordings godoc
// @Summary List recordings captured for a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/record/{id} [get]
func (h *SessionHandler) Recordings(c *gin.Context) {
	recordings, err := h.service.SessionRecordings(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, recordings)
}
