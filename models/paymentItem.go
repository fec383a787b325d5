package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smoothestguy/commandx_backend/config"
	"github.com/smoothestguy/commandx_backend/utils"
)

type PaymentItem struct {
	ID          int    `gorm:"primary_key" json:"id"`
	ProjectId   int    `gorm:"index;not null" json:"project_id" binding:"required"`
	WorkOrderId *int   `gorm:"index" json:"work_order_id"`
	LocationId  *int   `gorm:"index" json:"location_id"`
	Description string `gorm:"size:255;not null" json:"description" binding:"required"`
	ItemCode    string `gorm:"size:100" json:"item_code"`
	Category    string `gorm:"size:100;default:'GENERAL'" json:"category"`

	UnitOfMeasure    string          `gorm:"size:50;not null" json:"unit_of_measure" binding:"required"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unit_price"`
	OriginalQuantity decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"original_quantity"`
	ActualQuantity   decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"actual_quantity"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total_price"`
	ActualTotalPrice decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"actual_total_price"`

	Status ItemStatus `gorm:"size:50;not null;default:'pending'" json:"status"`

	QcApprovalStatus           ApprovalStatus `gorm:"size:20;not null;default:'pending'" json:"qc_approval_status"`
	QcApprovalComments         string         `gorm:"type:text" json:"qc_approval_comments"`
	QcApprovalDate             *time.Time     `json:"qc_approval_date"`
	SupervisorApprovalStatus   ApprovalStatus `gorm:"size:20;not null;default:'pending'" json:"supervisor_approval_status"`
	SupervisorApprovalComments string         `gorm:"type:text" json:"supervisor_approval_comments"`
	SupervisorApprovalDate     *time.Time     `json:"supervisor_approval_date"`
	AccountantApprovalStatus   ApprovalStatus `gorm:"size:20;not null;default:'pending'" json:"accountant_approval_status"`
	AccountantApprovalComments string         `gorm:"type:text" json:"accountant_approval_comments"`
	AccountantApprovalDate     *time.Time     `json:"accountant_approval_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewPaymentItem is the create payload. TotalPrice is accepted for wire
// compatibility but always recomputed server-side; the client value is
// advisory only.
type NewPaymentItem struct {
	ProjectId        int              `json:"project_id" binding:"required" validate:"required,gt=0"`
	WorkOrderId      *int             `json:"work_order_id"`
	LocationId       *int             `json:"location_id"`
	Description      string           `json:"description" validate:"required,min=3"`
	ItemCode         string           `json:"item_code"`
	Category         string           `json:"category"`
	UnitOfMeasure    string           `json:"unit_of_measure" validate:"required"`
	UnitPrice        decimal.Decimal  `json:"unit_price"`
	OriginalQuantity decimal.Decimal  `json:"original_quantity"`
	ActualQuantity   *decimal.Decimal `json:"actual_quantity"`
	TotalPrice       *decimal.Decimal `json:"total_price"`
	Status           ItemStatus       `json:"status"`
}

// UpdatePaymentItemInput carries a partial update; nil fields are untouched.
// Client-sent totals are discarded and recomputed from the merged factors.
type UpdatePaymentItemInput struct {
	WorkOrderId      *int             `json:"work_order_id"`
	LocationId       *int             `json:"location_id"`
	Description      *string          `json:"description"`
	ItemCode         *string          `json:"item_code"`
	Category         *string          `json:"category"`
	UnitOfMeasure    *string          `json:"unit_of_measure"`
	UnitPrice        *decimal.Decimal `json:"unit_price"`
	OriginalQuantity *decimal.Decimal `json:"original_quantity"`
	ActualQuantity   *decimal.Decimal `json:"actual_quantity"`
	TotalPrice       *decimal.Decimal `json:"total_price"`
	Status           *ItemStatus      `json:"status"`
}

// ComputeItemTotals is the single authoritative derived-field computation:
// total = unitPrice * originalQuantity, actualTotal = unitPrice * actualQuantity.
func ComputeItemTotals(unitPrice, originalQuantity, actualQuantity decimal.Decimal) (total, actualTotal decimal.Decimal) {
	total = unitPrice.Mul(originalQuantity)
	actualTotal = unitPrice.Mul(actualQuantity)
	return total, actualTotal
}

func validateItemPricing(unitPrice, originalQuantity decimal.Decimal, actualQuantity *decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return utils.NewValidationError("unit price must be greater than zero")
	}
	if !originalQuantity.IsPositive() {
		return utils.NewValidationError("original quantity must be greater than zero")
	}
	if actualQuantity != nil && !actualQuantity.IsPositive() {
		return utils.NewValidationError("actual quantity must be greater than zero")
	}
	return nil
}

func (input *NewPaymentItem) validate(ctx context.Context) error {
	if err := utils.GetValidator().Struct(input); err != nil {
		return utils.NewValidationError(err.Error())
	}
	if err := validateItemPricing(input.UnitPrice, input.OriginalQuantity, input.ActualQuantity); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Project](ctx, input.ProjectId); err != nil {
		return err
	}
	if input.WorkOrderId != nil && *input.WorkOrderId > 0 {
		if err := utils.ValidateResourceId[WorkOrder](ctx, *input.WorkOrderId); err != nil {
			return err
		}
	}
	if input.LocationId != nil && *input.LocationId > 0 {
		if err := utils.ValidateResourceId[Location](ctx, *input.LocationId); err != nil {
			return err
		}
	}
	return nil
}

func CreatePaymentItem(ctx context.Context, input *NewPaymentItem) (*PaymentItem, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	// actual quantity defaults to the original quantity when absent
	actualQuantity := input.OriginalQuantity
	if input.ActualQuantity != nil {
		actualQuantity = *input.ActualQuantity
	}
	total, actualTotal := ComputeItemTotals(input.UnitPrice, input.OriginalQuantity, actualQuantity)

	category := input.Category
	if category == "" {
		category = CategoryGeneral
	}
	status := input.Status
	if status == "" {
		status = ItemStatusPending
	}

	item := PaymentItem{
		ProjectId:        input.ProjectId,
		WorkOrderId:      input.WorkOrderId,
		LocationId:       input.LocationId,
		Description:      input.Description,
		ItemCode:         input.ItemCode,
		Category:         category,
		UnitOfMeasure:    input.UnitOfMeasure,
		UnitPrice:        input.UnitPrice,
		OriginalQuantity: input.OriginalQuantity,
		ActualQuantity:   actualQuantity,
		TotalPrice:       total,
		ActualTotalPrice: actualTotal,
		Status:           status,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func UpdatePaymentItem(ctx context.Context, id int, input *UpdatePaymentItemInput) (*PaymentItem, error) {
	item, err := utils.FetchModel[PaymentItem](ctx, id)
	if err != nil {
		return nil, err
	}

	// merge factors first so the recomputed totals always reflect the
	// post-update state
	unitPrice := item.UnitPrice
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}
	originalQuantity := item.OriginalQuantity
	if input.OriginalQuantity != nil {
		originalQuantity = *input.OriginalQuantity
	}
	actualQuantity := item.ActualQuantity
	if input.ActualQuantity != nil {
		actualQuantity = *input.ActualQuantity
	}

	if input.Description != nil && len(*input.Description) < 3 {
		return nil, utils.NewValidationError("description must be at least 3 characters")
	}
	if input.UnitOfMeasure != nil && *input.UnitOfMeasure == "" {
		return nil, utils.NewValidationError("unit of measure is required")
	}
	if err := validateItemPricing(unitPrice, originalQuantity, &actualQuantity); err != nil {
		return nil, err
	}
	if input.WorkOrderId != nil && *input.WorkOrderId > 0 {
		if err := utils.ValidateResourceId[WorkOrder](ctx, *input.WorkOrderId); err != nil {
			return nil, err
		}
	}
	if input.LocationId != nil && *input.LocationId > 0 {
		if err := utils.ValidateResourceId[Location](ctx, *input.LocationId); err != nil {
			return nil, err
		}
	}

	total, actualTotal := ComputeItemTotals(unitPrice, originalQuantity, actualQuantity)

	updates := map[string]interface{}{
		"UnitPrice":        unitPrice,
		"OriginalQuantity": originalQuantity,
		"ActualQuantity":   actualQuantity,
		"TotalPrice":       total,
		"ActualTotalPrice": actualTotal,
	}
	if input.WorkOrderId != nil {
		updates["WorkOrderId"] = input.WorkOrderId
	}
	if input.LocationId != nil {
		updates["LocationId"] = input.LocationId
	}
	if input.Description != nil {
		updates["Description"] = *input.Description
	}
	if input.ItemCode != nil {
		updates["ItemCode"] = *input.ItemCode
	}
	if input.Category != nil && *input.Category != "" {
		updates["Category"] = *input.Category
	}
	if input.UnitOfMeasure != nil {
		updates["UnitOfMeasure"] = *input.UnitOfMeasure
	}
	if input.Status != nil && *input.Status != "" {
		updates["Status"] = *input.Status
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func DeletePaymentItem(ctx context.Context, id int) (*PaymentItem, error) {
	item, err := utils.FetchModel[PaymentItem](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(item).Error; err != nil {
		return nil, err
	}

	// Best-effort cleanup of attached document rows. A failure here is
	// logged, not surfaced: the item row is already gone.
	if err := db.WithContext(ctx).
		Where("reference_type = ? AND reference_id = ?", "payment_items", id).
		Delete(&Document{}).Error; err != nil {
		config.LogError(config.GetLogger(), "paymentItem.go", "DeletePaymentItem", "delete documents", id, err)
	}
	return item, nil
}

func GetPaymentItem(ctx context.Context, id int) (*PaymentItem, error) {
	return utils.FetchModel[PaymentItem](ctx, id)
}

type PaymentItemFilter struct {
	ProjectId   *int
	WorkOrderId *int
	LocationId  *int
	Category    *string
	Unassigned  *bool
}

func ListPaymentItems(ctx context.Context, filter PaymentItemFilter) ([]*PaymentItem, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	if filter.ProjectId != nil && *filter.ProjectId > 0 {
		dbCtx = dbCtx.Where("project_id = ?", *filter.ProjectId)
	}
	if filter.WorkOrderId != nil && *filter.WorkOrderId > 0 {
		dbCtx = dbCtx.Where("work_order_id = ?", *filter.WorkOrderId)
	}
	if filter.LocationId != nil && *filter.LocationId > 0 {
		dbCtx = dbCtx.Where("location_id = ?", *filter.LocationId)
	}
	if filter.Category != nil && *filter.Category != "" {
		dbCtx = dbCtx.Where("category = ?", *filter.Category)
	}
	if filter.Unassigned != nil && *filter.Unassigned {
		dbCtx = dbCtx.Where("work_order_id IS NULL")
	}
	var items []*PaymentItem
	if err := dbCtx.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
