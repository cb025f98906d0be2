package planning

// OrderType distinguishes make-to-stock production (replenishes shelf
// inventory) from make-to-order production (goes directly to a customer,
// bypassing shelf stock).
type OrderType string

const (
	OrderTypeMTS OrderType = "MTS"
	OrderTypeMTO OrderType = "MTO"
)

// IsValid checks if the order type is valid
func (t OrderType) IsValid() bool {
	return t == OrderTypeMTS || t == OrderTypeMTO
}

// String returns the string representation of OrderType
func (t OrderType) String() string {
	return string(t)
}
