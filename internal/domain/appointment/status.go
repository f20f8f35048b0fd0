package appointment

import (
	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/models"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// completed and cancelled are terminal: no transition leaves them.

type Transition string

const (
	TransitionConfirm  Transition = "confirm"
	TransitionComplete Transition = "complete"
	TransitionCancel   Transition = "cancel"
)

// rule is one row of the transition table: which statuses a transition
// may leave from, where it lands, and which roles may drive it.
type rule struct {
	From  []Status
	To    Status
	Roles []string
}

// The whole lifecycle as data, so the rule set is auditable in one place.
var transitions = map[Transition]rule{
	TransitionConfirm: {
		From:  []Status{StatusPending},
		To:    StatusConfirmed,
		Roles: []string{models.RoleStaff, models.RoleAdmin},
	},
	TransitionComplete: {
		From:  []Status{StatusConfirmed},
		To:    StatusCompleted,
		Roles: []string{models.RoleStaff, models.RoleAdmin},
	},
	TransitionCancel: {
		From:  []Status{StatusPending, StatusConfirmed},
		To:    StatusCancelled,
		Roles: []string{models.RoleCustomer, models.RoleStaff, models.RoleAdmin},
	},
}

// Next validates a transition against the table and returns the target
// status. Bad source status and bad role are reported separately so a
// repeated confirm surfaces as invalid_state, not as a role problem.
func Next(tr Transition, current Status, role string) (Status, error) {
	r, ok := transitions[tr]
	if !ok {
		return "", httperr.ErrValidation("invalid_transition")
	}

	roleOK := false
	for _, allowed := range r.Roles {
		if allowed == role {
			roleOK = true
			break
		}
	}
	if !roleOK {
		return "", httperr.ErrForbidden("role_not_allowed")
	}

	for _, from := range r.From {
		if from == current {
			return r.To, nil
		}
	}
	return "", httperr.ErrValidation("invalid_state")
}

func InitialStatus() Status {
	return StatusPending
}

// NonCancelled are the statuses that hold a slot for overlap purposes.
func NonCancelled() []string {
	return []string{
		string(StatusPending),
		string(StatusConfirmed),
		string(StatusCompleted),
	}
}
