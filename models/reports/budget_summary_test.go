package reports_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smoothestguy/commandx_backend/models"
	"github.com/smoothestguy/commandx_backend/models/reports"
)

func item(total string, workOrderId *int) *models.PaymentItem {
	return &models.PaymentItem{
		TotalPrice:  decimal.RequireFromString(total),
		WorkOrderId: workOrderId,
	}
}

func TestSummarizeBudgetEmptyProject(t *testing.T) {
	summary := reports.SummarizeBudget(1, decimal.NewFromInt(50000), nil, nil)
	if summary.PaymentItemsCount != 0 || summary.WorkOrdersCount != 0 {
		t.Fatalf("expected zero counts, got items=%d workOrders=%d", summary.PaymentItemsCount, summary.WorkOrdersCount)
	}
	if !summary.AssignedAmount.IsZero() || !summary.UnassignedAmount.IsZero() {
		t.Fatalf("expected zero amounts, got assigned=%s unassigned=%s", summary.AssignedAmount, summary.UnassignedAmount)
	}
	if !summary.AssignedPercentage.IsZero() {
		t.Fatalf("expected zero percentage, got %s", summary.AssignedPercentage)
	}
	if !summary.Outstanding.IsZero() {
		t.Fatalf("expected zero outstanding, got %s", summary.Outstanding)
	}
}

func TestSummarizeBudgetPartitionsByAssignment(t *testing.T) {
	workOrderId := 7
	items := []*models.PaymentItem{
		item("100", &workOrderId),
		item("250.50", &workOrderId),
		item("49.50", nil),
		item("600", nil),
	}

	summary := reports.SummarizeBudget(1, decimal.NewFromInt(2000), items, nil)

	if summary.PaymentItemsCount != 4 {
		t.Fatalf("expected 4 items, got %d", summary.PaymentItemsCount)
	}
	if summary.UnassignedItemsCount != 2 {
		t.Fatalf("expected 2 unassigned items, got %d", summary.UnassignedItemsCount)
	}
	if !summary.AssignedAmount.Equal(decimal.RequireFromString("350.50")) {
		t.Fatalf("expected assigned 350.50, got %s", summary.AssignedAmount)
	}
	if !summary.UnassignedAmount.Equal(decimal.RequireFromString("649.50")) {
		t.Fatalf("expected unassigned 649.50, got %s", summary.UnassignedAmount)
	}

	// Assigned and unassigned always partition the item total.
	sum := summary.AssignedAmount.Add(summary.UnassignedAmount)
	if !sum.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("assigned+unassigned should equal 1000, got %s", sum)
	}

	// 350.50 of 2000 is 17.525 percent.
	if !summary.AssignedPercentage.Equal(decimal.RequireFromString("17.525")) {
		t.Fatalf("expected percentage 17.525, got %s", summary.AssignedPercentage)
	}
}

func TestSummarizeBudgetZeroBudgetPercentage(t *testing.T) {
	workOrderId := 1
	items := []*models.PaymentItem{item("500", &workOrderId)}
	summary := reports.SummarizeBudget(1, decimal.Zero, items, nil)
	if !summary.AssignedPercentage.IsZero() {
		t.Fatalf("expected zero percentage on zero budget, got %s", summary.AssignedPercentage)
	}
}

func TestSummarizeBudgetWorkOrderTotals(t *testing.T) {
	workOrders := []*models.WorkOrder{
		{AmountBilled: decimal.NewFromInt(1000), AmountPaid: decimal.NewFromInt(400), RetainagePercentage: decimal.NewFromInt(10)},
		{AmountBilled: decimal.NewFromInt(500), AmountPaid: decimal.NewFromInt(500), RetainagePercentage: decimal.Zero},
	}

	summary := reports.SummarizeBudget(1, decimal.NewFromInt(10000), nil, workOrders)

	if summary.WorkOrdersCount != 2 {
		t.Fatalf("expected 2 work orders, got %d", summary.WorkOrdersCount)
	}
	if !summary.TotalBilled.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected billed 1500, got %s", summary.TotalBilled)
	}
	if !summary.TotalPaid.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("expected paid 900, got %s", summary.TotalPaid)
	}
	if !summary.Outstanding.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected outstanding 600, got %s", summary.Outstanding)
	}
	// 1000 billed at 10 percent retainage.
	if !summary.TotalRetainage.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected retainage 100, got %s", summary.TotalRetainage)
	}
}

func TestBuildWorkOrderPaymentsReport(t *testing.T) {
	subId := 3
	workOrders := []*models.WorkOrder{
		{ID: 1, Description: "Rough-in electrical", SubcontractorId: &subId, AmountBilled: decimal.NewFromInt(1000), AmountPaid: decimal.NewFromInt(400), RetainagePercentage: decimal.NewFromInt(10)},
		{ID: 2, Description: "Drywall", AmountBilled: decimal.Zero, AmountPaid: decimal.Zero},
	}

	report := reports.BuildWorkOrderPaymentsReport(9, workOrders)

	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}
	first := report.Rows[0]
	if first.PaymentStatus != models.PaymentStatusPartiallyPaid {
		t.Fatalf("expected Partially Paid, got %q", first.PaymentStatus)
	}
	if !first.Outstanding.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected row outstanding 600, got %s", first.Outstanding)
	}
	if !first.Retainage.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected row retainage 100, got %s", first.Retainage)
	}
	if report.Rows[1].PaymentStatus != models.PaymentStatusNotBilled {
		t.Fatalf("expected Not Billed, got %q", report.Rows[1].PaymentStatus)
	}
	if !report.TotalBilled.Equal(decimal.NewFromInt(1000)) || !report.TotalPaid.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("unexpected totals billed=%s paid=%s", report.TotalBilled, report.TotalPaid)
	}
	if !report.Outstanding.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected total outstanding 600, got %s", report.Outstanding)
	}
}
