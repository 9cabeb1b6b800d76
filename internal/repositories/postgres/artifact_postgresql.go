package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campuskit/coursegen-service/internal/models"
	"github.com/campuskit/coursegen-service/internal/repositories"
)

type ArtifactPostgreSQL struct {
	db *gorm.DB
}

func NewArtifactPostgreSQL(db *gorm.DB) repositories.ArtifactRepository {
	return &ArtifactPostgreSQL{db: db}
}

func (a *ArtifactPostgreSQL) Create(ctx context.Context, artifact *models.Artifact) error {
	if err := a.db.WithContext(ctx).Create(artifact).Error; err != nil {
		return fmt.Errorf("failed to create artifact: %w", err)
	}
	return nil
}

func (a *ArtifactPostgreSQL) GetByID(ctx context.Context, id string) (*models.Artifact, error) {
	var artifact models.Artifact
	if err := a.db.WithContext(ctx).
		Where("id = ?", id).
		First(&artifact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("artifact not found with ID %s", id)
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}
	return &artifact, nil
}
