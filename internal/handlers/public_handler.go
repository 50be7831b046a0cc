package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
)

// PublicHandler serves the unauthenticated booking metadata: the fixed
// service catalog and the visit windows.
type PublicHandler struct{}

func NewPublicHandler() *PublicHandler {
	return &PublicHandler{}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	c.JSON(200, gin.H{"services": domain.Catalog()})
}

func (h *PublicHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(200, gin.H{"time_slots": domain.TimeSlots()})
}
