package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smoothestguy/commandx_backend/config"
	"github.com/smoothestguy/commandx_backend/utils"
)

type Project struct {
	ID          int             `gorm:"primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Description string          `gorm:"type:text" json:"description"`
	Address     string          `gorm:"size:255" json:"address"`
	Budget      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"budget"`
	ActualCost  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"actual_cost"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	Status      ProjectStatus   `gorm:"size:50;not null;default:'planning'" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProject struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	Status      ProjectStatus   `json:"status"`
}

func (input *NewProject) validate() error {
	if len(input.Name) < 3 {
		return utils.NewValidationError("project name must be at least 3 characters")
	}
	if input.Budget.IsNegative() {
		return utils.NewValidationError("budget cannot be negative")
	}
	return nil
}

func CreateProject(ctx context.Context, input *NewProject) (*Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = ProjectStatusPlanning
	}
	project := Project{
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Budget:      input.Budget,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      status,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func UpdateProject(ctx context.Context, id int, input *NewProject) (*Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	project, err := utils.FetchModel[Project](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	updates := map[string]interface{}{
		"Name":        input.Name,
		"Description": input.Description,
		"Address":     input.Address,
		"Budget":      input.Budget,
		"StartDate":   input.StartDate,
		"EndDate":     input.EndDate,
	}
	if input.Status != "" {
		updates["Status"] = input.Status
	}
	if err := db.WithContext(ctx).Model(project).Updates(updates).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func DeleteProject(ctx context.Context, id int) (*Project, error) {
	project, err := utils.FetchModel[Project](ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func GetProject(ctx context.Context, id int) (*Project, error) {
	return utils.FetchModel[Project](ctx, id)
}

func ListProjects(ctx context.Context, status *ProjectStatus) ([]*Project, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	if status != nil && *status != "" {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	var projects []*Project
	if err := dbCtx.Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
