package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeBalanceUpdate is for messages that update coin balances.
	MessageTypeBalanceUpdate MessageType = "balanceUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// BalanceUpdatePayload is the payload for a balanceUpdate message.
type BalanceUpdatePayload struct {
	UserID         string `json:"user_id"`
	TransactionID  string `json:"transaction_id"`
	Change         int64  `json:"change"`
	TotalCoins     int64  `json:"total_coins"`
	FreeCoins      int64  `json:"free_coins"`
	PurchasedCoins int64  `json:"purchased_coins"`
}
