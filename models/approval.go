package models

import (
	"context"
	"time"

	"github.com/smoothestguy/commandx_backend/config"
	"github.com/smoothestguy/commandx_backend/utils"
)

// TrackForRole maps a caller's role to the single approval track it may
// record decisions on. Roles without a mapping may not approve at all.
func TrackForRole(role UserRole) (ApprovalTrack, bool) {
	switch role {
	case UserRoleQcManager:
		return ApprovalTrackQc, true
	case UserRoleSupervisor, UserRoleProjectManager:
		return ApprovalTrackSupervisor, true
	case UserRoleAccountant, UserRoleFinanceManager:
		return ApprovalTrackAccountant, true
	}
	return "", false
}

// DeriveOverallStatus re-runs the full derivation over the three tracks:
// any rejected track wins, all-approved yields approved. When neither holds
// and the current status is a derived one that the tracks no longer support,
// it reverts to pending (if allowDowngrade); any other lifecycle status is
// left unchanged.
func DeriveOverallStatus(current ItemStatus, qc, supervisor, accountant ApprovalStatus, allowDowngrade bool) ItemStatus {
	if qc == ApprovalStatusRejected || supervisor == ApprovalStatusRejected || accountant == ApprovalStatusRejected {
		return ItemStatusRejected
	}
	if qc == ApprovalStatusApproved && supervisor == ApprovalStatusApproved && accountant == ApprovalStatusApproved {
		return ItemStatusApproved
	}
	if allowDowngrade && (current == ItemStatusApproved || current == ItemStatusRejected) {
		return ItemStatusPending
	}
	return current
}

type ApprovalDecision struct {
	Decision ApprovalStatus `json:"decision" binding:"required"`
	Comments string         `json:"comments"`
}

// RecordApproval stores the caller's decision on the track mapped to their
// role and re-derives the item's overall status. Recording the same decision
// twice overwrites the track fields and re-runs the derivation.
func RecordApproval(ctx context.Context, itemId int, input *ApprovalDecision) (*PaymentItem, error) {
	if input.Decision != ApprovalStatusApproved && input.Decision != ApprovalStatusRejected {
		return nil, utils.NewValidationError("decision must be approved or rejected")
	}

	role, ok := utils.GetUserRoleFromContext(ctx)
	if !ok || role == "" {
		return nil, utils.ErrorPermissionDenied
	}
	track, ok := TrackForRole(UserRole(role))
	if !ok {
		return nil, utils.ErrorPermissionDenied
	}

	item, err := utils.FetchModel[PaymentItem](ctx, itemId)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{}
	switch track {
	case ApprovalTrackQc:
		item.QcApprovalStatus = input.Decision
		item.QcApprovalComments = input.Comments
		item.QcApprovalDate = &now
		updates["QcApprovalStatus"] = input.Decision
		updates["QcApprovalComments"] = input.Comments
		updates["QcApprovalDate"] = &now
	case ApprovalTrackSupervisor:
		item.SupervisorApprovalStatus = input.Decision
		item.SupervisorApprovalComments = input.Comments
		item.SupervisorApprovalDate = &now
		updates["SupervisorApprovalStatus"] = input.Decision
		updates["SupervisorApprovalComments"] = input.Comments
		updates["SupervisorApprovalDate"] = &now
	case ApprovalTrackAccountant:
		item.AccountantApprovalStatus = input.Decision
		item.AccountantApprovalComments = input.Comments
		item.AccountantApprovalDate = &now
		updates["AccountantApprovalStatus"] = input.Decision
		updates["AccountantApprovalComments"] = input.Comments
		updates["AccountantApprovalDate"] = &now
	}

	derived := DeriveOverallStatus(
		item.Status,
		item.QcApprovalStatus,
		item.SupervisorApprovalStatus,
		item.AccountantApprovalStatus,
		config.ApprovalStatusDowngrade(),
	)
	if derived != item.Status {
		item.Status = derived
		updates["Status"] = derived
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return item, nil
}
