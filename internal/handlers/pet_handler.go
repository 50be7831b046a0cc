package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/httpresp"
	"github.com/MobiPetApp/mobipet-server/internal/middleware"
	"github.com/MobiPetApp/mobipet-server/internal/models"
	"github.com/MobiPetApp/mobipet-server/internal/storage"
)

const maxPetImageBytes = 10 << 20

type PetHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewPetHandler(db *gorm.DB, uploader *storage.Uploader) *PetHandler {
	return &PetHandler{
		db:       db,
		uploader: uploader,
	}
}

type CreatePetRequest struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required"`
	Breed string `json:"breed"`
}

func (h *PetHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var pets []models.Pet
	if err := h.db.
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Could not load pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid pet data.")
		return
	}

	pet := models.Pet{
		OwnerID: ownerID,
		Name:    req.Name,
		Type:    req.Type,
		Breed:   req.Breed,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Could not create the pet.")
		return
	}

	httpresp.Created(c, pet)
}

// UploadImage re-encodes the picture as WebP and stores it in the object
// store; the pet row keeps only the resulting URL.
func (h *PetHandler) UploadImage(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	petID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid pet id.")
		return
	}

	var pet models.Pet
	if err := h.db.
		Where("id = ? AND owner_id = ?", petID, ownerID).
		First(&pet).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet not found.")
		return
	}

	if h.uploader == nil {
		httperr.Respond(c, httperr.ErrDependency("storage_unavailable", "Image storage is not configured."))
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Attach an image file.")
		return
	}
	defer file.Close()

	encoded, err := storage.EncodeWebP(file)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if len(encoded) > maxPetImageBytes {
		httperr.BadRequest(c, "image_too_large", "The image is too large.")
		return
	}

	url, err := h.uploader.Put(c.Request.Context(), storage.PetImageKey(), "image/webp", encoded)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.db.
		Model(&pet).
		Update("image", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Could not save the image URL.")
		return
	}

	c.JSON(200, gin.H{"image": url})
}
