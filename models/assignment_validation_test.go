package models_test

import (
	"context"
	"errors"
	"testing"

	"github.com/smoothestguy/commandx_backend/models"
	"github.com/smoothestguy/commandx_backend/utils"
)

// Guard failures must reject before any database access, so these cases run
// without a connected store.
func TestAssignItemsRejectsBadInputBeforeAnyWrite(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name        string
		workOrderId int
		itemIds     []int
	}{
		{"zero work order", 0, []int{1}},
		{"negative work order", -3, []int{1}},
		{"nil item ids", 5, nil},
		{"empty item ids", 5, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := models.AssignItemsToWorkOrder(ctx, tc.workOrderId, tc.itemIds)
			if result != nil {
				t.Fatalf("expected nil result, got %+v", result)
			}
			if !errors.Is(err, utils.ErrorValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
