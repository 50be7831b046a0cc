package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/middleware"
	"github.com/MobiPetApp/mobipet-server/internal/models"
	"github.com/MobiPetApp/mobipet-server/internal/payments"
)

type PaymentHandler struct {
	db       *gorm.DB
	checkout *payments.Checkout
}

func NewPaymentHandler(db *gorm.DB, checkout *payments.Checkout) *PaymentHandler {
	return &PaymentHandler{
		db:       db,
		checkout: checkout,
	}
}

// Checkout hands back the hosted pay URL for one of the caller's bookings.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND pet_owner_id = ?", appointmentID, ownerID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if ap.Paid {
		httperr.Conflict(c, "already_paid", "This appointment is already paid.")
		return
	}

	if h.checkout == nil {
		httperr.Respond(c, httperr.ErrDependency("checkout_unavailable", "Payments are not configured."))
		return
	}

	ref := uuid.NewString()
	url, err := h.checkout.CreateForAppointment(c.Request.Context(), &ap, ref)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.db.
		Model(&ap).
		Update("payment_reference", ref).Error; err != nil {
		httperr.Internal(c, "failed_to_save_reference", "Could not start checkout.")
		return
	}

	c.JSON(200, gin.H{"checkout_url": url, "reference": ref})
}

type paymentWebhookRequest struct {
	ExternalReference string `json:"external_reference"`
	Status            string `json:"status"`
}

// Webhook acknowledges processor callbacks. The processor retries on non-2xx,
// so unknown references are answered with 200 and logged.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req paymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ExternalReference == "" {
		c.JSON(200, gin.H{"received": true})
		return
	}

	if req.Status != "approved" {
		c.JSON(200, gin.H{"received": true})
		return
	}

	res := h.db.
		Model(&models.Appointment{}).
		Where("payment_reference = ?", req.ExternalReference).
		Update("paid", true)

	if res.Error != nil {
		log.Println("payments: webhook update failed:", res.Error)
	} else if res.RowsAffected == 0 {
		log.Println("payments: webhook for unknown reference", req.ExternalReference)
	}

	c.JSON(200, gin.H{"received": true})
}
