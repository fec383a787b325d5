package models_test

import (
	"testing"

	"github.com/smoothestguy/commandx_backend/models"
)

func TestTrackForRole(t *testing.T) {
	cases := []struct {
		role     models.UserRole
		track    models.ApprovalTrack
		expected bool
	}{
		{models.UserRoleQcManager, models.ApprovalTrackQc, true},
		{models.UserRoleSupervisor, models.ApprovalTrackSupervisor, true},
		{models.UserRoleProjectManager, models.ApprovalTrackSupervisor, true},
		{models.UserRoleAccountant, models.ApprovalTrackAccountant, true},
		{models.UserRoleFinanceManager, models.ApprovalTrackAccountant, true},
		{models.UserRoleAdmin, "", false},
		{models.UserRoleWorker, "", false},
		{models.UserRole("unknown"), "", false},
	}
	for _, tc := range cases {
		track, ok := models.TrackForRole(tc.role)
		if ok != tc.expected {
			t.Fatalf("TrackForRole(%s): expected ok=%v, got %v", tc.role, tc.expected, ok)
		}
		if track != tc.track {
			t.Fatalf("TrackForRole(%s): expected track %q, got %q", tc.role, tc.track, track)
		}
	}
}

func TestDeriveOverallStatus(t *testing.T) {
	const (
		pending  = models.ApprovalStatusPending
		approved = models.ApprovalStatusApproved
		rejected = models.ApprovalStatusRejected
	)
	cases := []struct {
		name           string
		current        models.ItemStatus
		qc, sup, acc   models.ApprovalStatus
		allowDowngrade bool
		expected       models.ItemStatus
	}{
		{"all pending stays", models.ItemStatusPending, pending, pending, pending, true, models.ItemStatusPending},
		{"one rejection wins", models.ItemStatusPending, approved, rejected, approved, true, models.ItemStatusRejected},
		{"rejection beats two approvals", models.ItemStatusInProgress, approved, approved, rejected, true, models.ItemStatusRejected},
		{"two approvals are not enough", models.ItemStatusPending, approved, approved, pending, true, models.ItemStatusPending},
		{"all three approved", models.ItemStatusPending, approved, approved, approved, true, models.ItemStatusApproved},
		{"approved reverts when track cleared", models.ItemStatusApproved, approved, approved, pending, true, models.ItemStatusPending},
		{"rejected reverts when track cleared", models.ItemStatusRejected, pending, pending, pending, true, models.ItemStatusPending},
		{"downgrade disabled keeps approved", models.ItemStatusApproved, approved, approved, pending, false, models.ItemStatusApproved},
		{"lifecycle status untouched", models.ItemStatusInProgress, approved, pending, pending, true, models.ItemStatusInProgress},
		{"completed untouched", models.ItemStatusCompleted, pending, pending, pending, true, models.ItemStatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := models.DeriveOverallStatus(tc.current, tc.qc, tc.sup, tc.acc, tc.allowDowngrade)
			if got != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestDeriveOverallStatusSequence(t *testing.T) {
	// Walk a full sign-off: qc approves, supervisor approves, item is still
	// pending until the accountant weighs in.
	status := models.ItemStatusPending
	status = models.DeriveOverallStatus(status, models.ApprovalStatusApproved, models.ApprovalStatusPending, models.ApprovalStatusPending, true)
	if status != models.ItemStatusPending {
		t.Fatalf("after qc approval: expected pending, got %s", status)
	}
	status = models.DeriveOverallStatus(status, models.ApprovalStatusApproved, models.ApprovalStatusApproved, models.ApprovalStatusPending, true)
	if status != models.ItemStatusPending {
		t.Fatalf("after supervisor approval: expected pending, got %s", status)
	}
	status = models.DeriveOverallStatus(status, models.ApprovalStatusApproved, models.ApprovalStatusApproved, models.ApprovalStatusApproved, true)
	if status != models.ItemStatusApproved {
		t.Fatalf("after accountant approval: expected approved, got %s", status)
	}
}
