package models

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestDeclined  RequestStatus = "declined"
	RequestCancelled RequestStatus = "cancelled"
)

// BuyRequest is a peer-to-peer offer to buy an owned property. While pending,
// Amount is reserved inside the buyer's LockedMoney. Once terminal the record
// is never mutated again.
type BuyRequest struct {
	Id           string        `json:"id"`
	FromPlayerId string        `json:"fromPlayerId"`
	ToPlayerId   string        `json:"toPlayerId"`
	PropertyId   int           `json:"propertyId"`
	Amount       int           `json:"amount"`
	Status       RequestStatus `json:"status"`
	CreatedAt    int64         `json:"createdAt"`
}
