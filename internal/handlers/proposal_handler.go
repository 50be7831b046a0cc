package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/httpresp"
	"github.com/MobiPetApp/mobipet-server/internal/middleware"
	uc "github.com/MobiPetApp/mobipet-server/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type ProposalHandler struct {
	proposeUC  *uc.ProposeTime
	respondUC  *uc.RespondToProposal
	withdrawUC *uc.WithdrawProposal
	listUC     *uc.ListProposals
}

func NewProposalHandler(
	proposeUC *uc.ProposeTime,
	respondUC *uc.RespondToProposal,
	withdrawUC *uc.WithdrawProposal,
	listUC *uc.ListProposals,
) *ProposalHandler {
	return &ProposalHandler{
		proposeUC:  proposeUC,
		respondUC:  respondUC,
		withdrawUC: withdrawUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateProposalRequest struct {
	AppointmentID     uint   `json:"appointment_id" binding:"required"`
	ProposedDate      string `json:"proposed_date" binding:"required"`
	ProposedTimeRange string `json:"proposed_time_range" binding:"required"`
	ProposedExactTime string `json:"proposed_exact_time"`
	Message           string `json:"message"`
}

type RespondProposalRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted declined"`
}

// ======================================================
// CREATE (vet counter-offer)
// ======================================================

func (h *ProposalHandler) Create(c *gin.Context) {
	vetID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid proposal data.")
		return
	}

	p, err := h.proposeUC.Execute(c.Request.Context(), uc.ProposeTimeInput{
		AppointmentID:     req.AppointmentID,
		VetID:             vetID,
		ProposedDate:      req.ProposedDate,
		ProposedTimeRange: req.ProposedTimeRange,
		ProposedExactTime: req.ProposedExactTime,
		Message:           req.Message,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, p)
}

// ======================================================
// RESPOND (owner accepts / declines)
// ======================================================

func (h *ProposalHandler) Respond(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	proposalID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid proposal id.")
		return
	}

	var req RespondProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status must be accepted or declined.")
		return
	}

	ap, err := h.respondUC.Execute(c.Request.Context(), proposalID, ownerID, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "appointment": ap})
}

// ======================================================
// WITHDRAW (vet hard-deletes own offer)
// ======================================================

func (h *ProposalHandler) Withdraw(c *gin.Context) {
	vetID := c.MustGet(middleware.ContextUserID).(uint)

	proposalID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid proposal id.")
		return
	}

	ap, err := h.withdrawUC.Execute(c.Request.Context(), proposalID, vetID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "appointment": ap})
}

// ======================================================
// LIST
// ======================================================

func (h *ProposalHandler) List(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	appointmentID, err := parseID(c.Query("appointment_id"))
	if err != nil {
		httperr.BadRequest(c, "missing_appointment_id", "appointment_id is required.")
		return
	}

	proposals, err := h.listUC.Execute(c.Request.Context(), appointmentID, callerID, role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, proposals)
}
