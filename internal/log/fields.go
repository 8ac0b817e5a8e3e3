package log

// Common field names for structured logging
const (
	FieldComponent    = "component"
	FieldError        = "error"
	FieldUsername     = "username"
	FieldKind         = "kind"
	FieldCategory     = "category"
	FieldAmountCents  = "amount_cents"
	FieldSpentCents   = "spent_cents"
	FieldLimitCents   = "limit_cents"
	FieldBalanceCents = "balance_cents"
	FieldLevel        = "level"
	FieldBackend      = "backend"
	FieldUsers        = "users"
)

// ComponentApp is the default component attached to every log line.
const ComponentApp = "app"
