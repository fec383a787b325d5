package reports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smoothestguy/commandx_backend/models"
)

// WorkOrderPaymentRow is the accounting view of one work order.
type WorkOrderPaymentRow struct {
	WorkOrderId         int                  `json:"work_order_id"`
	Description         string               `json:"description"`
	SubcontractorId     *int                 `json:"subcontractor_id"`
	AmountBilled        decimal.Decimal      `json:"amount_billed"`
	AmountPaid          decimal.Decimal      `json:"amount_paid"`
	Outstanding         decimal.Decimal      `json:"outstanding"`
	RetainagePercentage decimal.Decimal      `json:"retainage_percentage"`
	Retainage           decimal.Decimal      `json:"retainage"`
	PaymentStatus       models.PaymentStatus `json:"payment_status"`
}

type WorkOrderPaymentsReport struct {
	ProjectId      int                    `json:"project_id"`
	Rows           []*WorkOrderPaymentRow `json:"rows"`
	TotalBilled    decimal.Decimal        `json:"total_billed"`
	TotalPaid      decimal.Decimal        `json:"total_paid"`
	Outstanding    decimal.Decimal        `json:"outstanding"`
	TotalRetainage decimal.Decimal        `json:"total_retainage"`
}

// BuildWorkOrderPaymentsReport classifies and totals already-fetched work
// orders; pure for testability.
func BuildWorkOrderPaymentsReport(projectId int, workOrders []*models.WorkOrder) *WorkOrderPaymentsReport {
	report := WorkOrderPaymentsReport{
		ProjectId:      projectId,
		TotalBilled:    decimal.Zero,
		TotalPaid:      decimal.Zero,
		TotalRetainage: decimal.Zero,
	}
	for _, workOrder := range workOrders {
		row := WorkOrderPaymentRow{
			WorkOrderId:         workOrder.ID,
			Description:         workOrder.Description,
			SubcontractorId:     workOrder.SubcontractorId,
			AmountBilled:        workOrder.AmountBilled,
			AmountPaid:          workOrder.AmountPaid,
			Outstanding:         workOrder.AmountBilled.Sub(workOrder.AmountPaid),
			RetainagePercentage: workOrder.RetainagePercentage,
			Retainage:           workOrder.Retainage(),
			PaymentStatus:       workOrder.PaymentStatus(),
		}
		report.Rows = append(report.Rows, &row)
		report.TotalBilled = report.TotalBilled.Add(row.AmountBilled)
		report.TotalPaid = report.TotalPaid.Add(row.AmountPaid)
		report.TotalRetainage = report.TotalRetainage.Add(row.Retainage)
	}
	report.Outstanding = report.TotalBilled.Sub(report.TotalPaid)
	return &report
}

func GetWorkOrderPaymentsReport(ctx context.Context, projectId int) (*WorkOrderPaymentsReport, error) {
	if _, err := models.GetProject(ctx, projectId); err != nil {
		return nil, err
	}
	workOrders, err := models.ListWorkOrders(ctx, &projectId)
	if err != nil {
		return nil, err
	}
	return BuildWorkOrderPaymentsReport(projectId, workOrders), nil
}
