package response

import "github.com/google/uuid"

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type WithdrawResponse struct {
	Amount int64 `json:"amount"`
}

type SweepResponse struct {
	Amount int64 `json:"amount"`
}

type OwedResponse struct {
	Account uuid.UUID `json:"account"`
	Owed    int64     `json:"owed"`
}

type LedgerResponse struct {
	TotalHeld int64 `json:"total_held"`
	BPS       int64 `json:"bps"`
}
