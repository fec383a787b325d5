package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smoothestguy/commandx_backend/config"
	"github.com/smoothestguy/commandx_backend/utils"
)

type WorkOrder struct {
	ID                  int             `gorm:"primary_key" json:"id"`
	ProjectId           int             `gorm:"index;not null" json:"project_id" binding:"required"`
	SubcontractorId     *int            `gorm:"index" json:"subcontractor_id"`
	Description         string          `gorm:"size:255;not null" json:"description" binding:"required"`
	AmountBilled        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount_billed"`
	AmountPaid          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount_paid"`
	RetainagePercentage decimal.Decimal `gorm:"type:decimal(8,4);default:0" json:"retainage_percentage"`
	Status              WorkOrderStatus `gorm:"size:50;not null;default:'draft'" json:"status"`
	IssuedDate          *time.Time      `json:"issued_date"`
	DueDate             *time.Time      `json:"due_date"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewWorkOrder struct {
	ProjectId           int             `json:"project_id" binding:"required"`
	SubcontractorId     *int            `json:"subcontractor_id"`
	Description         string          `json:"description" binding:"required"`
	AmountBilled        decimal.Decimal `json:"amount_billed"`
	AmountPaid          decimal.Decimal `json:"amount_paid"`
	RetainagePercentage decimal.Decimal `json:"retainage_percentage"`
	Status              WorkOrderStatus `json:"status"`
	IssuedDate          *time.Time      `json:"issued_date"`
	DueDate             *time.Time      `json:"due_date"`
}

// PaymentStatusFor classifies a billed/paid pair. The order of checks
// matters: billed == 0 resolves to "Not Billed" even when paid is also 0.
func PaymentStatusFor(billed, paid decimal.Decimal) PaymentStatus {
	if billed.IsZero() {
		return PaymentStatusNotBilled
	}
	if paid.IsZero() {
		return PaymentStatusUnpaid
	}
	if paid.LessThan(billed) {
		return PaymentStatusPartiallyPaid
	}
	return PaymentStatusPaid
}

// PaymentStatus derives the payment state from the stored amounts.
func (w *WorkOrder) PaymentStatus() PaymentStatus {
	return PaymentStatusFor(w.AmountBilled, w.AmountPaid)
}

// Retainage returns amount_billed * retainage_percentage / 100.
func (w *WorkOrder) Retainage() decimal.Decimal {
	return w.AmountBilled.Mul(w.RetainagePercentage).Div(decimal.NewFromInt(100))
}

func (input *NewWorkOrder) validate(ctx context.Context) error {
	if len(input.Description) < 3 {
		return utils.NewValidationError("description must be at least 3 characters")
	}
	if input.AmountBilled.IsNegative() || input.AmountPaid.IsNegative() {
		return utils.NewValidationError("billed and paid amounts cannot be negative")
	}
	if input.RetainagePercentage.IsNegative() || input.RetainagePercentage.GreaterThan(decimal.NewFromInt(100)) {
		return utils.NewValidationError("retainage percentage must be between 0 and 100")
	}
	if err := utils.ValidateResourceId[Project](ctx, input.ProjectId); err != nil {
		return err
	}
	if input.SubcontractorId != nil && *input.SubcontractorId > 0 {
		if err := utils.ValidateResourceId[Subcontractor](ctx, *input.SubcontractorId); err != nil {
			return err
		}
	}
	return nil
}

func CreateWorkOrder(ctx context.Context, input *NewWorkOrder) (*WorkOrder, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = WorkOrderStatusDraft
	}
	workOrder := WorkOrder{
		ProjectId:           input.ProjectId,
		SubcontractorId:     input.SubcontractorId,
		Description:         input.Description,
		AmountBilled:        input.AmountBilled,
		AmountPaid:          input.AmountPaid,
		RetainagePercentage: input.RetainagePercentage,
		Status:              status,
		IssuedDate:          input.IssuedDate,
		DueDate:             input.DueDate,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&workOrder).Error; err != nil {
		return nil, err
	}
	return &workOrder, nil
}

func UpdateWorkOrder(ctx context.Context, id int, input *NewWorkOrder) (*WorkOrder, error) {
	workOrder, err := utils.FetchModel[WorkOrder](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"ProjectId":           input.ProjectId,
		"SubcontractorId":     input.SubcontractorId,
		"Description":         input.Description,
		"AmountBilled":        input.AmountBilled,
		"AmountPaid":          input.AmountPaid,
		"RetainagePercentage": input.RetainagePercentage,
		"IssuedDate":          input.IssuedDate,
		"DueDate":             input.DueDate,
	}
	if input.Status != "" {
		updates["Status"] = input.Status
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(workOrder).Updates(updates).Error; err != nil {
		return nil, err
	}
	return workOrder, nil
}

func DeleteWorkOrder(ctx context.Context, id int) (*WorkOrder, error) {
	workOrder, err := utils.FetchModel[WorkOrder](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	// detach items first so they go back to the unassigned pool
	if err := tx.WithContext(ctx).Model(&PaymentItem{}).
		Where("work_order_id = ?", id).
		Updates(map[string]interface{}{"WorkOrderId": nil, "Status": ItemStatusPending}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.WithContext(ctx).Delete(workOrder).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return workOrder, nil
}

func GetWorkOrder(ctx context.Context, id int) (*WorkOrder, error) {
	return utils.FetchModel[WorkOrder](ctx, id)
}

func ListWorkOrders(ctx context.Context, projectId *int) ([]*WorkOrder, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	if projectId != nil && *projectId > 0 {
		dbCtx = dbCtx.Where("project_id = ?", *projectId)
	}
	var workOrders []*WorkOrder
	if err := dbCtx.Order("id").Find(&workOrders).Error; err != nil {
		return nil, err
	}
	return workOrders, nil
}
