package request

import "github.com/google/uuid"

type CreateSlotRequest struct {
	StartTime        int64  `json:"start_time" binding:"required"`
	DurationMins     int64  `json:"duration_mins" binding:"required"`
	CancelCutoffMins int64  `json:"cancel_cutoff_mins"`
	MinOverlapMins   int64  `json:"min_overlap_mins"`
	Reserved         int64  `json:"reserved"`
	Price            *int64 `json:"price,omitempty"` // nil: host base price applies at booking time
}

type SetBasePriceRequest struct {
	Price int64 `json:"price"`
}

type CreateSessionRequest struct {
	Host         *uuid.UUID `json:"host,omitempty"` // nil or zero: any host
	WindowStart  int64      `json:"window_start" binding:"required"`
	WindowEnd    int64      `json:"window_end" binding:"required"`
	DurationMins int64      `json:"duration_mins" binding:"required"`
	Price        int64      `json:"price"`
	Deadline     int64      `json:"deadline" binding:"required"`
}

type AcceptRequestRequest struct {
	StartTime        int64 `json:"start_time" binding:"required"`
	CancelCutoffMins int64 `json:"cancel_cutoff_mins"`
	MinOverlapMins   int64 `json:"min_overlap_mins"`
	Reserved         int64 `json:"reserved"`
}

type BookRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
}

type AttestRequest struct {
	Outcome      string `json:"outcome" binding:"required"`
	EvidenceHash string `json:"evidence_hash"`
}

type SetParamRequest struct {
	Value int64 `json:"value"`
}

type TransferOwnershipRequest struct {
	Candidate uuid.UUID `json:"candidate" binding:"required"`
}
