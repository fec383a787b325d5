package models

import (
	"context"
	"time"

	"github.com/smoothestguy/commandx_backend/config"
	"github.com/smoothestguy/commandx_backend/utils"
)

type Subcontractor struct {
	ID          int       `gorm:"primary_key" json:"id"`
	CompanyName string    `gorm:"size:255;not null" json:"company_name" binding:"required"`
	ContactName string    `gorm:"size:255" json:"contact_name"`
	Email       string    `gorm:"size:100" json:"email"`
	Phone       string    `gorm:"size:20" json:"phone"`
	Address     string    `gorm:"size:255" json:"address"`
	Trade       string    `gorm:"size:100" json:"trade"`
	IsActive    *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewSubcontractor struct {
	CompanyName string `json:"company_name" binding:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Trade       string `json:"trade"`
	IsActive    *bool  `json:"is_active"`
}

func (input *NewSubcontractor) validate() error {
	if input.CompanyName == "" {
		return utils.NewValidationError("company name is required")
	}
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return utils.NewValidationError("invalid email")
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return utils.NewValidationError("invalid phone: %s", err.Error())
		}
	}
	return nil
}

func CreateSubcontractor(ctx context.Context, input *NewSubcontractor) (*Subcontractor, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	sub := Subcontractor{
		CompanyName: input.CompanyName,
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		Trade:       input.Trade,
		IsActive:    &isActive,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func UpdateSubcontractor(ctx context.Context, id int, input *NewSubcontractor) (*Subcontractor, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	sub, err := utils.FetchModel[Subcontractor](ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"CompanyName": input.CompanyName,
		"ContactName": input.ContactName,
		"Email":       input.Email,
		"Phone":       input.Phone,
		"Address":     input.Address,
		"Trade":       input.Trade,
	}
	if input.IsActive != nil {
		updates["IsActive"] = input.IsActive
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(sub).Updates(updates).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func DeleteSubcontractor(ctx context.Context, id int) (*Subcontractor, error) {
	sub, err := utils.FetchModel[Subcontractor](ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func GetSubcontractor(ctx context.Context, id int) (*Subcontractor, error) {
	return utils.FetchModel[Subcontractor](ctx, id)
}

func ListSubcontractors(ctx context.Context) ([]*Subcontractor, error) {
	return utils.FetchAllModels[Subcontractor](ctx)
}
