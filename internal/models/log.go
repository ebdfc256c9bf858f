package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StepOutcome string

const (
	OutcomeCreated StepOutcome = "created"
	OutcomeExists  StepOutcome = "exists"
	OutcomeUpdated StepOutcome = "updated"
	OutcomeSkipped StepOutcome = "skipped"
	OutcomeFailed  StepOutcome = "failed"
)

// BootstrapLog records one step of a bootstrap run.
type BootstrapLog struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	RunID      string             `json:"runId" bson:"runId"`
	Step       string             `json:"step" bson:"step"`
	Collection string             `json:"collection,omitempty" bson:"collection,omitempty"`
	Outcome    StepOutcome        `json:"outcome" bson:"outcome"`
	Detail     string             `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp  time.Time          `json:"timestamp" bson:"timestamp"`
}
