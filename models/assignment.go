package models

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/smoothestguy/commandx_backend/config"
	"github.com/smoothestguy/commandx_backend/utils"
)

type AssignmentFailure struct {
	ItemId int    `json:"item_id"`
	Error  string `json:"error"`
}

// AssignmentResult reports a bulk assignment outcome. Items are updated
// independently, so partial success is a real possible outcome and callers
// must surface it instead of assuming all-or-nothing.
type AssignmentResult struct {
	WorkOrderId          int                 `json:"work_order_id"`
	WorkOrderDescription string              `json:"work_order_description"`
	AssignedCount        int                 `json:"assigned_count"`
	AssignedItemIds      []int               `json:"assigned_item_ids"`
	Failed               []AssignmentFailure `json:"failed"`
	TotalAssignedAmount  decimal.Decimal     `json:"total_assigned_amount"`
}

func (r *AssignmentResult) IsPartialFailure() bool {
	return len(r.Failed) > 0 && r.AssignedCount > 0
}

// AssignItemsToWorkOrder sets work_order_id and status=in_progress on each
// item. Validation failures reject before any write; once writing starts,
// each item is applied on its own and failures are collected per item.
func AssignItemsToWorkOrder(ctx context.Context, workOrderId int, itemIds []int) (*AssignmentResult, error) {
	if workOrderId <= 0 {
		return nil, utils.NewValidationError("work order is required")
	}
	if len(itemIds) == 0 {
		return nil, utils.NewValidationError("no payment items selected")
	}

	workOrder, err := utils.FetchModel[WorkOrder](ctx, workOrderId)
	if err != nil {
		return nil, err
	}

	// Best-effort lock to narrow the concurrent-assignment window.
	// Correctness must not depend on it: per-item writes remain
	// last-write-wins when redis is down or the lock is contended.
	logger := config.GetLogger()
	var lock *redislock.Lock
	if redisLock := config.GetRedisLock(); redisLock != nil {
		lock, err = redisLock.Obtain(ctx, fmt.Sprintf("lock:assign:%d", workOrderId), 30*time.Second, nil)
		if err != nil {
			userName, _ := utils.GetUserNameFromContext(ctx)
			logger.WithFields(logrus.Fields{
				"field":         "AssignItemsToWorkOrder",
				"work_order_id": workOrderId,
				"user_name":     userName,
			}).Warn("could not obtain redis lock; proceeding without redis lock")
			lock = nil
		}
	}
	defer func() {
		if lock == nil {
			return
		}
		if releaseErr := lock.Release(ctx); releaseErr != nil {
			logger.WithFields(logrus.Fields{
				"field":         "AssignItemsToWorkOrder",
				"work_order_id": workOrderId,
			}).Warn("failed to release redis lock: " + releaseErr.Error())
		}
	}()

	db := config.GetDB()
	result := AssignmentResult{
		WorkOrderId:          workOrder.ID,
		WorkOrderDescription: workOrder.Description,
		TotalAssignedAmount:  decimal.Zero,
	}

	for _, itemId := range utils.UniqueSlice(itemIds) {
		item, err := utils.FetchModel[PaymentItem](ctx, itemId)
		if err != nil {
			result.Failed = append(result.Failed, AssignmentFailure{ItemId: itemId, Error: err.Error()})
			continue
		}
		err = db.WithContext(ctx).Model(item).Updates(map[string]interface{}{
			"WorkOrderId": workOrderId,
			"Status":      ItemStatusInProgress,
		}).Error
		if err != nil {
			result.Failed = append(result.Failed, AssignmentFailure{ItemId: itemId, Error: err.Error()})
			continue
		}
		result.AssignedItemIds = append(result.AssignedItemIds, itemId)
		result.AssignedCount++
		result.TotalAssignedAmount = result.TotalAssignedAmount.Add(item.TotalPrice)
	}

	return &result, nil
}
