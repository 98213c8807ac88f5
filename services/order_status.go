package services

import "github.com/samber/lo"

// Fulfillment stages in display order. "confirmed" sits before the sequence
// on purpose: tracking shows no progress until the kitchen picks the order
// up and an external process moves the status along.
const (
	StagePending        = "pending"
	StagePreparing      = "preparing"
	StageOutForDelivery = "out_for_delivery"
	StageDelivered      = "delivered"
)

var stageSequence = []string{StagePending, StagePreparing, StageOutForDelivery, StageDelivered}

var stageLabels = map[string]string{
	StagePending:        "Order Received",
	StagePreparing:      "Preparing",
	StageOutForDelivery: "Out for Delivery",
	StageDelivered:      "Delivered",
}

func StageSequence() []string {
	out := make([]string, len(stageSequence))
	copy(out, stageSequence)
	return out
}

type StatusProgress struct {
	Stage    int     `json:"stage"` // -1 when the status is not a tracking stage
	Stages   int     `json:"stages"`
	Label    string  `json:"label,omitempty"`
	Fraction float64 `json:"fraction"` // (stage+1)/stages, 0 when unknown
}

// ProjectStatus maps a stored status string onto the stage sequence.
// Unknown statuses yield no progress rather than an error.
func ProjectStatus(status string) StatusProgress {
	idx := lo.IndexOf(stageSequence, status)
	p := StatusProgress{Stage: idx, Stages: len(stageSequence)}
	if idx < 0 {
		return p
	}
	p.Label = stageLabels[status]
	p.Fraction = float64(idx+1) / float64(len(stageSequence))
	return p
}
