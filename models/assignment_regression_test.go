package models_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smoothestguy/commandx_backend/config"
	"github.com/smoothestguy/commandx_backend/models"
	"github.com/smoothestguy/commandx_backend/models/reports"
	"github.com/smoothestguy/commandx_backend/utils"
)

func TestAssignItemsPartialFailureAndBudgetRollup(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	ctx := context.Background()

	redisName, redisPort := startRedisContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(redisName) })

	pgName, pgPort := startPostgresContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(pgName) })

	// Wire env for config.Connect* helpers.
	t.Setenv("REDIS_ADDRESS", fmt.Sprintf("127.0.0.1:%s", redisPort))
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "testpw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", pgPort)
	t.Setenv("DB_NAME", "commandx_test")
	t.Setenv("DB_SSLMODE", "disable")

	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()
	models.MigrateTable()

	ctx = utils.SetUserIdInContext(ctx, 1)
	ctx = utils.SetUserNameInContext(ctx, "Test")
	ctx = utils.SetUsernameInContext(ctx, "test@local")

	project, err := models.CreateProject(ctx, &models.NewProject{
		Name:   "Riverside Tower",
		Budget: decimal.NewFromInt(100000),
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	workOrder, err := models.CreateWorkOrder(ctx, &models.NewWorkOrder{
		ProjectId:           project.ID,
		Description:         "Electrical rough-in, floors 1-3",
		AmountBilled:        decimal.NewFromInt(1000),
		AmountPaid:          decimal.NewFromInt(400),
		RetainagePercentage: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("CreateWorkOrder: %v", err)
	}

	newItem := func(desc, price, qty string) *models.PaymentItem {
		t.Helper()
		item, err := models.CreatePaymentItem(ctx, &models.NewPaymentItem{
			ProjectId:        project.ID,
			Description:      desc,
			UnitOfMeasure:    "EA",
			UnitPrice:        decimal.RequireFromString(price),
			OriginalQuantity: decimal.RequireFromString(qty),
		})
		if err != nil {
			t.Fatalf("CreatePaymentItem(%s): %v", desc, err)
		}
		return item
	}

	itemA := newItem("Panel install", "25.00", "4")
	itemB := newItem("Conduit run", "10.50", "10")

	if !itemA.TotalPrice.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("itemA total: expected 100, got %s", itemA.TotalPrice)
	}

	// One id in the batch does not exist; the other two must still land.
	result, err := models.AssignItemsToWorkOrder(ctx, workOrder.ID, []int{itemA.ID, itemB.ID, 999999})
	if err != nil {
		t.Fatalf("AssignItemsToWorkOrder: %v", err)
	}
	if result.AssignedCount != 2 {
		t.Fatalf("expected 2 assigned, got %d", result.AssignedCount)
	}
	if len(result.Failed) != 1 || result.Failed[0].ItemId != 999999 {
		t.Fatalf("expected one failure for item 999999, got %+v", result.Failed)
	}
	if !result.IsPartialFailure() {
		t.Fatalf("expected partial failure")
	}
	if !result.TotalAssignedAmount.Equal(decimal.NewFromInt(205)) {
		t.Fatalf("expected assigned amount 205, got %s", result.TotalAssignedAmount)
	}

	assigned, err := models.GetPaymentItem(ctx, itemA.ID)
	if err != nil {
		t.Fatalf("GetPaymentItem: %v", err)
	}
	if assigned.WorkOrderId == nil || *assigned.WorkOrderId != workOrder.ID {
		t.Fatalf("itemA not assigned to work order %d: %+v", workOrder.ID, assigned.WorkOrderId)
	}
	if assigned.Status != models.ItemStatusInProgress {
		t.Fatalf("expected in_progress, got %s", assigned.Status)
	}

	// Approvals: qc and supervisor are not enough, accountant closes it out.
	qcCtx := utils.SetUserRoleInContext(ctx, string(models.UserRoleQcManager))
	if _, err := models.RecordApproval(qcCtx, itemA.ID, &models.ApprovalDecision{Decision: models.ApprovalStatusApproved}); err != nil {
		t.Fatalf("qc RecordApproval: %v", err)
	}
	supCtx := utils.SetUserRoleInContext(ctx, string(models.UserRoleSupervisor))
	if _, err := models.RecordApproval(supCtx, itemA.ID, &models.ApprovalDecision{Decision: models.ApprovalStatusApproved}); err != nil {
		t.Fatalf("supervisor RecordApproval: %v", err)
	}
	midway, err := models.GetPaymentItem(ctx, itemA.ID)
	if err != nil {
		t.Fatalf("GetPaymentItem: %v", err)
	}
	if midway.Status == models.ItemStatusApproved {
		t.Fatalf("item approved before accountant decision")
	}
	accCtx := utils.SetUserRoleInContext(ctx, string(models.UserRoleAccountant))
	final, err := models.RecordApproval(accCtx, itemA.ID, &models.ApprovalDecision{Decision: models.ApprovalStatusApproved, Comments: "ok to pay"})
	if err != nil {
		t.Fatalf("accountant RecordApproval: %v", err)
	}
	if final.Status != models.ItemStatusApproved {
		t.Fatalf("expected approved after all tracks, got %s", final.Status)
	}

	// A worker may not record decisions on any track.
	workerCtx := utils.SetUserRoleInContext(ctx, string(models.UserRoleWorker))
	if _, err := models.RecordApproval(workerCtx, itemA.ID, &models.ApprovalDecision{Decision: models.ApprovalStatusApproved}); err == nil {
		t.Fatalf("expected permission denied for worker")
	}

	// Rollup over the live rows.
	summary, err := reports.GetProjectBudgetSummary(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetProjectBudgetSummary: %v", err)
	}
	if summary.PaymentItemsCount != 2 || summary.UnassignedItemsCount != 0 {
		t.Fatalf("unexpected counts: items=%d unassigned=%d", summary.PaymentItemsCount, summary.UnassignedItemsCount)
	}
	if !summary.AssignedAmount.Equal(decimal.NewFromInt(205)) {
		t.Fatalf("expected assigned 205, got %s", summary.AssignedAmount)
	}
	if !summary.TotalRetainage.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected retainage 100, got %s", summary.TotalRetainage)
	}

	// Updating one factor recomputes both totals from the merged state; the
	// stored quantity of 10 is used and the client-sent total is discarded.
	updated, err := models.UpdatePaymentItem(ctx, itemB.ID, &models.UpdatePaymentItemInput{
		UnitPrice:  utils.DecimalPtr(decimal.RequireFromString("12.00")),
		TotalPrice: utils.DecimalPtr(decimal.NewFromInt(999)),
	})
	if err != nil {
		t.Fatalf("UpdatePaymentItem: %v", err)
	}
	if !updated.TotalPrice.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected recomputed total 120, got %s", updated.TotalPrice)
	}
	if !updated.ActualTotalPrice.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected recomputed actual total 120, got %s", updated.ActualTotalPrice)
	}
	persisted, err := models.GetPaymentItem(ctx, itemB.ID)
	if err != nil {
		t.Fatalf("GetPaymentItem after update: %v", err)
	}
	if !persisted.TotalPrice.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("persisted total: expected 120, got %s", persisted.TotalPrice)
	}
	if !persisted.UnitPrice.Equal(decimal.RequireFromString("12.00")) {
		t.Fatalf("persisted unit price: expected 12.00, got %s", persisted.UnitPrice)
	}

	// Deleting the work order sends its items back to the unassigned pool.
	if _, err := models.DeleteWorkOrder(ctx, workOrder.ID); err != nil {
		t.Fatalf("DeleteWorkOrder: %v", err)
	}
	detached, err := models.GetPaymentItem(ctx, itemA.ID)
	if err != nil {
		t.Fatalf("GetPaymentItem after detach: %v", err)
	}
	if detached.WorkOrderId != nil {
		t.Fatalf("expected item detached, still assigned to %d", *detached.WorkOrderId)
	}
	if detached.Status != models.ItemStatusPending {
		t.Fatalf("expected pending after detach, got %s", detached.Status)
	}
}

func startRedisContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("commandx-test-redis-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-p", "127.0.0.1:0:6379",
		"redis:7-alpine",
	)
	if err != nil {
		t.Fatalf("start redis container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "6379/tcp")
	if err != nil {
		t.Fatalf("redis docker port: %v", err)
	}
	// wait until ready
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "redis-cli", "ping")
		if err == nil {
			return name, port
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatalf("redis did not become ready")
	return "", ""
}

func startPostgresContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("commandx-test-postgres-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-e", "POSTGRES_PASSWORD=testpw",
		"-e", "POSTGRES_DB=commandx_test",
		"-p", "127.0.0.1:0:5432",
		"postgres:16-alpine",
	)
	if err != nil {
		t.Fatalf("start postgres container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "5432/tcp")
	if err != nil {
		t.Fatalf("postgres docker port: %v", err)
	}
	// wait until ready
	deadline := time.Now().Add(120 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "pg_isready", "-U", "postgres")
		if err == nil {
			return name, port
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("postgres did not become ready")
	return "", ""
}

func dockerHostPort(container, portProto string) (string, error) {
	out, err := dockerRun("port", container, portProto)
	if err != nil {
		return "", fmt.Errorf("docker port: %w: %s", err, out)
	}
	// Example: "127.0.0.1:49154\n"
	re := regexp.MustCompile(`:(\d+)`)
	m := re.FindStringSubmatch(out)
	if len(m) != 2 {
		return "", fmt.Errorf("unexpected docker port output: %q", out)
	}
	return m[1], nil
}

func dockerRmForce(container string) error {
	if strings.TrimSpace(container) == "" {
		return nil
	}
	_, err := dockerRun("rm", "-f", container)
	return err
}

func dockerRun(args ...string) (string, error) {
	cmd := exec.Command("docker", args...)
	b, err := cmd.CombinedOutput()
	return string(b), err
}
