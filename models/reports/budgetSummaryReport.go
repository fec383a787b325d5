package reports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smoothestguy/commandx_backend/models"
	"github.com/smoothestguy/commandx_backend/utils"
)

// BudgetSummary is recomputed from the current row set on every read.
// There is no maintained aggregate: concurrent writes during the read can
// yield a best-effort snapshot, so callers must treat it as advisory.
type BudgetSummary struct {
	ProjectId            int             `json:"project_id"`
	TotalBudget          decimal.Decimal `json:"total_budget"`
	AssignedAmount       decimal.Decimal `json:"assigned_amount"`
	UnassignedAmount     decimal.Decimal `json:"unassigned_amount"`
	AssignedPercentage   decimal.Decimal `json:"assigned_percentage"`
	WorkOrdersCount      int             `json:"work_orders_count"`
	PaymentItemsCount    int             `json:"payment_items_count"`
	UnassignedItemsCount int             `json:"unassigned_items_count"`
	TotalBilled          decimal.Decimal `json:"total_billed"`
	TotalPaid            decimal.Decimal `json:"total_paid"`
	Outstanding          decimal.Decimal `json:"outstanding"`
	TotalRetainage       decimal.Decimal `json:"total_retainage"`
}

// SummarizeBudget aggregates already-fetched rows. Kept pure so the
// rollup arithmetic is testable without a database.
func SummarizeBudget(projectId int, budget decimal.Decimal, items []*models.PaymentItem, workOrders []*models.WorkOrder) *BudgetSummary {
	summary := BudgetSummary{
		ProjectId:        projectId,
		TotalBudget:      budget,
		AssignedAmount:   decimal.Zero,
		UnassignedAmount: decimal.Zero,
		TotalBilled:      decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalRetainage:   decimal.Zero,
	}

	for _, item := range items {
		summary.PaymentItemsCount++
		if item.WorkOrderId != nil {
			summary.AssignedAmount = summary.AssignedAmount.Add(item.TotalPrice)
		} else {
			summary.UnassignedItemsCount++
			summary.UnassignedAmount = summary.UnassignedAmount.Add(item.TotalPrice)
		}
	}
	summary.AssignedPercentage = utils.SafePercentage(summary.AssignedAmount, budget)

	for _, workOrder := range workOrders {
		summary.WorkOrdersCount++
		summary.TotalBilled = summary.TotalBilled.Add(workOrder.AmountBilled)
		summary.TotalPaid = summary.TotalPaid.Add(workOrder.AmountPaid)
		summary.TotalRetainage = summary.TotalRetainage.Add(workOrder.Retainage())
	}
	summary.Outstanding = summary.TotalBilled.Sub(summary.TotalPaid)

	return &summary
}

// GetProjectBudgetSummary loads the project's current payment items and
// work orders and rolls them up.
func GetProjectBudgetSummary(ctx context.Context, projectId int) (*BudgetSummary, error) {
	project, err := models.GetProject(ctx, projectId)
	if err != nil {
		return nil, err
	}

	items, err := models.ListPaymentItems(ctx, models.PaymentItemFilter{ProjectId: &projectId})
	if err != nil {
		return nil, err
	}
	workOrders, err := models.ListWorkOrders(ctx, &projectId)
	if err != nil {
		return nil, err
	}

	return SummarizeBudget(projectId, project.Budget, items, workOrders), nil
}
