package models

// ItemStatus is the lifecycle status of a payment item.
type ItemStatus string

const (
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusInProgress ItemStatus = "in_progress"
	ItemStatusCompleted  ItemStatus = "completed"
	ItemStatusApproved   ItemStatus = "approved"
	ItemStatusRejected   ItemStatus = "rejected"
)

// ApprovalStatus is the state of a single approval track.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// ApprovalTrack identifies one of the three independent review tracks.
type ApprovalTrack string

const (
	ApprovalTrackQc         ApprovalTrack = "qc"
	ApprovalTrackSupervisor ApprovalTrack = "supervisor"
	ApprovalTrackAccountant ApprovalTrack = "accountant"
)

type UserRole string

const (
	UserRoleAdmin          UserRole = "admin"
	UserRoleQcManager      UserRole = "qc_manager"
	UserRoleSupervisor     UserRole = "supervisor"
	UserRoleProjectManager UserRole = "project_manager"
	UserRoleAccountant     UserRole = "accountant"
	UserRoleFinanceManager UserRole = "finance_manager"
	UserRoleWorker         UserRole = "worker"
)

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type WorkOrderStatus string

const (
	WorkOrderStatusDraft      WorkOrderStatus = "draft"
	WorkOrderStatusIssued     WorkOrderStatus = "issued"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

// PaymentStatus is derived from amount_billed/amount_paid, never stored.
type PaymentStatus string

const (
	PaymentStatusNotBilled     PaymentStatus = "Not Billed"
	PaymentStatusUnpaid        PaymentStatus = "Unpaid"
	PaymentStatusPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentStatusPaid          PaymentStatus = "Paid"
)

// Categories are enum-like free text; these are the values the UI offers.
const (
	CategoryElectrical = "ELECTRICAL"
	CategoryPlumbing   = "PLUMBING"
	CategoryHvac       = "HVAC"
	CategoryMaterials  = "MATERIALS"
	CategoryLabor      = "LABOR"
	CategoryGeneral    = "GENERAL"
)
