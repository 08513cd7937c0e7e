package deletion

import (
	"fmt"

	"github.com/example/dormant/internal/core/effects"
	"github.com/example/dormant/internal/core/roster"
)

// Outcome values recorded in the deletion log.
const (
	OutcomeDeleted = "deleted"
	OutcomeFailed  = "failed"
)

// Outcome is the result of one attempted deletion.
type Outcome struct {
	Contact roster.Contact
	Err     error
}

// Reason returns the failure reason, or "" on success.
func (o Outcome) Reason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// PlanBatch produces one delete effect per contact, in selection order.
func PlanBatch(batchID string, contacts []roster.Contact) []effects.DeleteContactEffect {
	effs := make([]effects.DeleteContactEffect, len(contacts))
	for i, c := range contacts {
		effs[i] = effects.DeleteContactEffect{BatchID: batchID, Contact: c}
	}
	return effs
}

// PlanAudit turns batch outcomes into deletion-log entries plus a summary log line.
func PlanAudit(batchID string, outcomes []Outcome) []effects.Effect {
	effs := make([]effects.Effect, 0, len(outcomes)+1)
	succeeded, failed := Tally(outcomes)

	for _, o := range outcomes {
		rec := effects.RecordDeletionEffect{
			BatchID: batchID,
			Contact: o.Contact,
			Outcome: OutcomeDeleted,
		}
		if o.Err != nil {
			rec.Outcome = OutcomeFailed
			rec.Reason = o.Reason()
		}
		effs = append(effs, rec)
	}

	level := "info"
	if len(failed) > 0 {
		level = "warn"
	}
	effs = append(effs, effects.LogEffect{
		Level:   level,
		Message: fmt.Sprintf("deletion batch finished: %d deleted, %d failed", succeeded, len(failed)),
		Fields: map[string]any{
			"batch_id":  batchID,
			"succeeded": succeeded,
			"failed":    len(failed),
		},
	})
	return effs
}

// Tally splits outcomes into a success count and the failed outcomes.
func Tally(outcomes []Outcome) (succeeded int, failed []Outcome) {
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
			continue
		}
		succeeded++
	}
	return succeeded, failed
}
