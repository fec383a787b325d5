package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smoothestguy/commandx_backend/config"
	"github.com/smoothestguy/commandx_backend/utils"
)

type Personnel struct {
	ID         int             `gorm:"primary_key" json:"id"`
	Name       string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Email      string          `gorm:"size:100" json:"email"`
	Phone      string          `gorm:"size:20" json:"phone"`
	JobTitle   string          `gorm:"size:100" json:"job_title"`
	HourlyRate decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"hourly_rate"`
	IsActive   *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewPersonnel struct {
	Name       string          `json:"name" binding:"required"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	JobTitle   string          `json:"job_title"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	IsActive   *bool           `json:"is_active"`
}

// TimeLog is one day's worked hours for one person on one project.
type TimeLog struct {
	ID          int             `gorm:"primary_key" json:"id"`
	PersonnelId int             `gorm:"index;not null" json:"personnel_id" binding:"required"`
	ProjectId   int             `gorm:"index;not null" json:"project_id" binding:"required"`
	WorkDate    time.Time       `gorm:"not null" json:"work_date" binding:"required"`
	Hours       decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"hours"`
	Notes       string          `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewTimeLog struct {
	PersonnelId int             `json:"personnel_id" binding:"required"`
	ProjectId   int             `json:"project_id" binding:"required"`
	WorkDate    time.Time       `json:"work_date" binding:"required"`
	Hours       decimal.Decimal `json:"hours"`
	Notes       string          `json:"notes"`
}

func (input *NewPersonnel) validate() error {
	if input.Name == "" {
		return utils.NewValidationError("name is required")
	}
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return utils.NewValidationError("invalid email")
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return utils.NewValidationError("invalid phone: %s", err.Error())
		}
	}
	if input.HourlyRate.IsNegative() {
		return utils.NewValidationError("hourly rate cannot be negative")
	}
	return nil
}

func CreatePersonnel(ctx context.Context, input *NewPersonnel) (*Personnel, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	person := Personnel{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		JobTitle:   input.JobTitle,
		HourlyRate: input.HourlyRate,
		IsActive:   &isActive,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func UpdatePersonnel(ctx context.Context, id int, input *NewPersonnel) (*Personnel, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	person, err := utils.FetchModel[Personnel](ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"Name":       input.Name,
		"Email":      input.Email,
		"Phone":      input.Phone,
		"JobTitle":   input.JobTitle,
		"HourlyRate": input.HourlyRate,
	}
	if input.IsActive != nil {
		updates["IsActive"] = input.IsActive
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(person).Updates(updates).Error; err != nil {
		return nil, err
	}
	return person, nil
}

func DeletePersonnel(ctx context.Context, id int) (*Personnel, error) {
	person, err := utils.FetchModel[Personnel](ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(person).Error; err != nil {
		return nil, err
	}
	return person, nil
}

func ListPersonnel(ctx context.Context) ([]*Personnel, error) {
	return utils.FetchAllModels[Personnel](ctx)
}

func CreateTimeLog(ctx context.Context, input *NewTimeLog) (*TimeLog, error) {
	if !input.Hours.IsPositive() {
		return nil, utils.NewValidationError("hours must be greater than zero")
	}
	if input.Hours.GreaterThan(decimal.NewFromInt(24)) {
		return nil, utils.NewValidationError("hours cannot exceed 24 for a single day")
	}
	if err := utils.ValidateResourceId[Personnel](ctx, input.PersonnelId); err != nil {
		return nil, err
	}
	if err := utils.ValidateResourceId[Project](ctx, input.ProjectId); err != nil {
		return nil, err
	}

	timeLog := TimeLog{
		PersonnelId: input.PersonnelId,
		ProjectId:   input.ProjectId,
		WorkDate:    input.WorkDate,
		Hours:       input.Hours,
		Notes:       input.Notes,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&timeLog).Error; err != nil {
		return nil, err
	}
	return &timeLog, nil
}

func DeleteTimeLog(ctx context.Context, id int) (*TimeLog, error) {
	timeLog, err := utils.FetchModel[TimeLog](ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(timeLog).Error; err != nil {
		return nil, err
	}
	return timeLog, nil
}

func ListTimeLogs(ctx context.Context, projectId *int, personnelId *int) ([]*TimeLog, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	if projectId != nil && *projectId > 0 {
		dbCtx = dbCtx.Where("project_id = ?", *projectId)
	}
	if personnelId != nil && *personnelId > 0 {
		dbCtx = dbCtx.Where("personnel_id = ?", *personnelId)
	}
	var logs []*TimeLog
	if err := dbCtx.Order("work_date").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// SumProjectHours totals logged hours for a project, recomputed from the
// current rows on every call.
func SumProjectHours(ctx context.Context, projectId int) (decimal.Decimal, error) {
	db := config.GetDB()
	total := decimal.Zero
	err := db.WithContext(ctx).Model(&TimeLog{}).
		Where("project_id = ?", projectId).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
