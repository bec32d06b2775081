package entities

// Order is the commerce platform's view of an order. It is owned remotely,
// the tracking service only reads it when assigning a delivery.
type Order struct {
	ID                  int64
	Number              string
	Status              OrderStatusType
	CustomerName        string
	CustomerPhone       string
	ShippingAddress     string
	DeliveryCoordinates *Coordinates
}

type OrderStatusType string

const (
	OrderProcessing OrderStatusType = "processing"
	OrderCancelled  OrderStatusType = "cancelled"
	OrderCompleted  OrderStatusType = "completed"
	OrderRefunded   OrderStatusType = "refunded"
)

func (s OrderStatusType) String() string {
	return string(s)
}
