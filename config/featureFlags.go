package config

import (
	"os"
	"strings"
)

// ApprovalStatusDowngrade controls whether an item's overall status may
// revert from approved/rejected back to pending when a reviewer changes a
// prior decision. When off, an item that once reached approved/rejected
// keeps that status unless another track rejects it.
//
// Set via env:
// - APPROVAL_STATUS_DOWNGRADE=false (default: enabled)
func ApprovalStatusDowngrade() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("APPROVAL_STATUS_DOWNGRADE")))
	if v == "" {
		return true
	}
	return v == "1" || v == "true" || v == "yes" || v == "y"
}
