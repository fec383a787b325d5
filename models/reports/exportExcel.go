package reports

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportBudgetSummaryExcel renders a project's budget summary and its
// per-work-order payment rows as a workbook.
func ExportBudgetSummaryExcel(ctx context.Context, projectId int) (*excelize.File, error) {
	summary, err := GetProjectBudgetSummary(ctx, projectId)
	if err != nil {
		return nil, err
	}
	payments, err := GetWorkOrderPaymentsReport(ctx, projectId)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Budget Summary"
	f.SetSheetName("Sheet1", sheet)

	headers := [][]interface{}{
		{"Total Budget", summary.TotalBudget.String()},
		{"Assigned Amount", summary.AssignedAmount.String()},
		{"Unassigned Amount", summary.UnassignedAmount.String()},
		{"Assigned %", summary.AssignedPercentage.StringFixed(2)},
		{"Payment Items", summary.PaymentItemsCount},
		{"Unassigned Items", summary.UnassignedItemsCount},
		{"Work Orders", summary.WorkOrdersCount},
		{"Total Billed", summary.TotalBilled.String()},
		{"Total Paid", summary.TotalPaid.String()},
		{"Outstanding", summary.Outstanding.String()},
		{"Total Retainage", summary.TotalRetainage.String()},
	}
	for i, row := range headers {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	woSheet := "Work Orders"
	if _, err := f.NewSheet(woSheet); err != nil {
		return nil, err
	}
	title := []interface{}{"ID", "Description", "Billed", "Paid", "Outstanding", "Retainage", "Payment Status"}
	if err := f.SetSheetRow(woSheet, "A1", &title); err != nil {
		return nil, err
	}
	for i, row := range payments.Rows {
		cells := []interface{}{
			row.WorkOrderId,
			row.Description,
			row.AmountBilled.String(),
			row.AmountPaid.String(),
			row.Outstanding.String(),
			row.Retainage.String(),
			string(row.PaymentStatus),
		}
		if err := f.SetSheetRow(woSheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return nil, err
		}
	}

	return f, nil
}
