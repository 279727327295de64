package event

const OrderPlacedDestination string = "order_placed"
const OrderPlacedConsumerPayment string = "order_placed_payment"

type OrderPlacedMessage struct {
	OrderID    string  `json:"order_id"`
	Number     int64   `json:"number"`
	CustomerID string  `json:"customer_id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
}
