package entity

// Order lifecycle: in-progress is the initial state, delivered and cancelled
// are terminal.
const (
	OrderStatusInProgress = "in-progress"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusInProgress, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// TerminalOrderStatus reports whether s permits no further transitions.
func TerminalOrderStatus(s string) bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransition reports whether an order may move from one status to another.
// A no-op transition (from == to) is always permitted so repeated updates
// stay idempotent; terminal states cannot be left.
func CanTransition(from, to string) bool {
	if !ValidOrderStatus(from) || !ValidOrderStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	return !TerminalOrderStatus(from)
}
