package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LotteryResult represents one published draw result for a (day, slot) pair.
// ResultNumber is kept as a string throughout: leading zeros are significant
// and the value must never be stored or compared numerically.
type LotteryResult struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DrawDate     string             `bson:"drawDate" json:"drawDate"` // YYYY-MM-DD, local calendar day
	SlotTime     string             `bson:"slotTime" json:"slotTime"` // 24-hour HH:MM
	ResultNumber string             `bson:"resultNumber" json:"resultNumber"`
	CreatedBy    string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SlotState is the viewer-facing state of one board slot.
type SlotState string

const (
	// SlotStateHidden means the slot's draw time has not arrived; the result,
	// if one were already stored, must not be revealed.
	SlotStateHidden SlotState = "HIDDEN"
	// SlotStatePending means the draw time has passed but no result has been
	// published yet.
	SlotStatePending SlotState = "PENDING"
	// SlotStatePublished means the result digits are disclosed.
	SlotStatePublished SlotState = "PUBLISHED"
)

// BoardSlot is one (slot, disclosed-or-hidden result) entry of the viewer
// read model. ResultNumber is populated only in the PUBLISHED state.
type BoardSlot struct {
	SlotTime     string    `json:"slotTime"`
	Active       bool      `json:"active"`
	State        SlotState `json:"state"`
	ResultNumber string    `json:"resultNumber,omitempty"`
}

// Board is the viewer read model for one calendar day. GeneratedAt echoes
// the single clock sample the whole board was evaluated against, and Date
// echoes the requested day so clients can drop responses that arrive after
// the selection has moved on.
type Board struct {
	Date        string      `json:"date"` // YYYY-MM-DD
	GeneratedAt time.Time   `json:"generatedAt"`
	Slots       []BoardSlot `json:"slots"`
}

// HomeBoard bundles the boards the landing page shows.
type HomeBoard struct {
	Today     *Board `json:"today"`
	Yesterday *Board `json:"yesterday"`
}
