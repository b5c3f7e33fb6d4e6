package constants

const (
	ROLE_ADMIN       = "admin"
	ROLE_COORDINATOR = "coordinator"
)

const (
	STATUS_PENDING  = "pending"
	STATUS_APPROVED = "approved"
	STATUS_REJECTED = "rejected"
)

const (
	REGISTRATION_INDIVIDUAL  = "individual"
	REGISTRATION_COORDINATOR = "coordinator"
)

// Bulk actions accepted by the dashboard.
const (
	ACTION_APPROVE       = "approve"
	ACTION_REJECT        = "reject"
	ACTION_DELETE        = "delete"
	ACTION_SEND_REMINDER = "send_reminder"
	ACTION_CUSTOM_EMAIL  = "custom_email"
)

var BULK_ACTIONS = []string{ACTION_APPROVE, ACTION_REJECT, ACTION_DELETE, ACTION_SEND_REMINDER}

// Recipient groups for a custom email.
const (
	RECIPIENTS_SELECTED = "selected"
	RECIPIENTS_PENDING  = "pending"
	RECIPIENTS_APPROVED = "approved"
	RECIPIENTS_ALL      = "all"
)

var RECIPIENT_GROUPS = []string{RECIPIENTS_SELECTED, RECIPIENTS_PENDING, RECIPIENTS_APPROVED, RECIPIENTS_ALL}

// Storage namespaces owned by this service.
const (
	DRAFT_NAMESPACE   = "rccg-ticket-storage"
	SESSION_NAMESPACE = "rccg_user"
	OPERATION_CHANNEL = "rccg:operations"
)

const (
	DRAFT_COOKIE  = "draft_id"
	ACCESS_COOKIE = "access_token"
)

const TICKET_REF_PREFIX = "R63T"
