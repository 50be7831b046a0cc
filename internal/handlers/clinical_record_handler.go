package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/middleware"
	uc "github.com/MobiPetApp/mobipet-server/internal/usecase/appointment"
)

type ClinicalRecordHandler struct {
	getUC    *uc.GetClinicalRecord
	upsertUC *uc.UpsertClinicalRecord
}

func NewClinicalRecordHandler(
	getUC *uc.GetClinicalRecord,
	upsertUC *uc.UpsertClinicalRecord,
) *ClinicalRecordHandler {
	return &ClinicalRecordHandler{
		getUC:    getUC,
		upsertUC: upsertUC,
	}
}

type UpsertClinicalRecordRequest struct {
	Diagnosis         string `json:"diagnosis"`
	Treatment         string `json:"treatment"`
	SharedNotes       string `json:"shared_notes"`
	ConfidentialNotes string `json:"confidential_notes"`
	FollowUpDate      string `json:"follow_up_date"`
	FollowUpType      string `json:"follow_up_type"`
}

func (h *ClinicalRecordHandler) Get(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	appointmentID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	rec, err := h.getUC.Execute(c.Request.Context(), appointmentID, callerID, role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, rec)
}

func (h *ClinicalRecordHandler) Put(c *gin.Context) {
	vetID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpsertClinicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid clinical record data.")
		return
	}

	rec, err := h.upsertUC.Execute(c.Request.Context(), uc.UpsertClinicalRecordInput{
		AppointmentID:     appointmentID,
		VetID:             vetID,
		Diagnosis:         req.Diagnosis,
		Treatment:         req.Treatment,
		SharedNotes:       req.SharedNotes,
		ConfidentialNotes: req.ConfidentialNotes,
		FollowUpDate:      req.FollowUpDate,
		FollowUpType:      req.FollowUpType,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, rec)
}
