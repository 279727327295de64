package entity

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentStatusFromString maps free-form input onto the closed status set,
// falling back to pending.
func PaymentStatusFromString(s string) PaymentStatus {
	switch PaymentStatus(s) {
	case PaymentStatusPaid:
		return PaymentStatusPaid
	case PaymentStatusFailed:
		return PaymentStatusFailed
	default:
		return PaymentStatusPending
	}
}
