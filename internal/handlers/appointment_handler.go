package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/httpresp"
	"github.com/MobiPetApp/mobipet-server/internal/middleware"
	uc "github.com/MobiPetApp/mobipet-server/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *uc.CreateBooking
	acceptUC   *uc.AcceptJob
	declineUC  *uc.DeclineJob
	completeUC *uc.CompleteVisit
	cancelUC   *uc.CancelBooking
	listUC     *uc.ListBuckets
}

func NewAppointmentHandler(
	createUC *uc.CreateBooking,
	acceptUC *uc.AcceptJob,
	declineUC *uc.DeclineJob,
	completeUC *uc.CompleteVisit,
	cancelUC *uc.CancelBooking,
	listUC *uc.ListBuckets,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		acceptUC:   acceptUC,
		declineUC:  declineUC,
		completeUC: completeUC,
		cancelUC:   cancelUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PetID      uint     `json:"pet_id" binding:"required"`
	ServiceIDs []string `json:"service_ids" binding:"required"`

	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`

	Address        string   `json:"address" binding:"required"`
	AdditionalInfo string   `json:"additional_info"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`

	Notes string `json:"notes"`

	VetID *uint `json:"vet_id"`
}

type StatusActionRequest struct {
	Action  string `json:"action" binding:"required,oneof=accept decline"`
	Message string `json:"message"`
}

type CompleteAppointmentRequest struct {
	AdditionalServices []struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	} `json:"additional_services"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), uc.CreateBookingInput{
		PetOwnerID:     ownerID,
		PetID:          req.PetID,
		ServiceIDs:     req.ServiceIDs,
		Date:           req.Date,
		TimeSlot:       req.TimeSlot,
		Address:        req.Address,
		AdditionalInfo: req.AdditionalInfo,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Notes:          req.Notes,
		VetID:          req.VetID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (incoming / ongoing / past)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	buckets, err := h.listUC.Execute(c.Request.Context(), userID, role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, buckets)
}

// ======================================================
// STATUS ACTION (accept / decline)
// ======================================================

func (h *AppointmentHandler) StatusAction(c *gin.Context) {
	vetID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req StatusActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Action must be accept or decline.")
		return
	}

	switch req.Action {
	case "accept":
		ap, err := h.acceptUC.Execute(c.Request.Context(), appointmentID, vetID)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "appointment": ap})

	case "decline":
		ap, err := h.declineUC.Execute(c.Request.Context(), appointmentID, vetID, req.Message)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "appointment": ap})
	}
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	vetID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", "Invalid completion data.")
		return
	}

	in := uc.CompleteVisitInput{
		AppointmentID: appointmentID,
		VetID:         vetID,
	}
	for _, svc := range req.AdditionalServices {
		in.AdditionalServices = append(in.AdditionalServices, uc.AdditionalServiceInput{
			Name:  svc.Name,
			Price: svc.Price,
		})
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// CANCEL (destructive delete)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), appointmentID, ownerID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true})
}

// ======================================================
// HELPERS
// ======================================================

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}
