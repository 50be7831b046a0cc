package notify

import (
	"context"

	"gorm.io/gorm"

	"github.com/MobiPetApp/mobipet-server/internal/models"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateNotification(
	ctx context.Context,
	n *models.Notification,
) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *GormStore) ListEnabledVets(
	ctx context.Context,
) ([]models.User, error) {

	var vets []models.User
	if err := s.db.WithContext(ctx).
		Where("role = ? AND is_enabled = ?", "vet", true).
		Find(&vets).Error; err != nil {
		return nil, err
	}
	return vets, nil
}

func (s *GormStore) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

var _ Store = (*GormStore)(nil)
