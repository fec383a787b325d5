package models

import (
	"context"
	"time"

	"github.com/smoothestguy/commandx_backend/config"
	"github.com/smoothestguy/commandx_backend/utils"
)

// Location is a named area within a project (floor, wing, unit) that
// payment items can optionally reference.
type Location struct {
	ID          int       `gorm:"primary_key" json:"id"`
	ProjectId   int       `gorm:"index;not null" json:"project_id" binding:"required"`
	Name        string    `gorm:"size:255;not null" json:"name" binding:"required"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewLocation struct {
	ProjectId   int    `json:"project_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func CreateLocation(ctx context.Context, input *NewLocation) (*Location, error) {
	if input.Name == "" {
		return nil, utils.NewValidationError("location name is required")
	}
	if err := utils.ValidateResourceId[Project](ctx, input.ProjectId); err != nil {
		return nil, err
	}

	location := Location{
		ProjectId:   input.ProjectId,
		Name:        input.Name,
		Description: input.Description,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func DeleteLocation(ctx context.Context, id int) (*Location, error) {
	location, err := utils.FetchModel[Location](ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

func ListLocations(ctx context.Context, projectId int) ([]*Location, error) {
	db := config.GetDB()
	var locations []*Location
	if err := db.WithContext(ctx).Where("project_id = ?", projectId).Order("id").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
