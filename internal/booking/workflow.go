package booking

import (
	"context"
	"time"

	domain "github.com/glowline/salon-scheduler/internal/domain/appointment"
	"github.com/glowline/salon-scheduler/internal/httperr"
	"github.com/glowline/salon-scheduler/internal/models"
	"github.com/glowline/salon-scheduler/internal/session"
	ucappointment "github.com/glowline/salon-scheduler/internal/usecase/appointment"
)

type Step int

const (
	StepSelectService Step = iota
	StepSelectStaffAndTime
	StepReview
	StepSubmitting
	StepConfirmed
)

type FailureReason string

const ReasonSlotNoLongerAvailable FailureReason = "slot_no_longer_available"

// SlotSource yields the current availability for a staff/date/service
// triple. The workflow always asks again right before advancing; it
// never trusts slots rendered earlier.
type SlotSource interface {
	Execute(ctx context.Context, in domain.AvailabilityInput) ([]domain.TimeSlot, error)
}

// Creator hands the finished draft to the appointment lifecycle.
type Creator interface {
	Execute(ctx context.Context, in ucappointment.CreateAppointmentInput) (*models.Appointment, error)
}

// Workflow is the booking wizard: it collects service, staff, date and
// time across steps, validating forward progress, and finally emits an
// appointment-creation request stamped with the session's user. One
// workflow instance serves one caller; it is cooperative, not
// goroutine-safe.
type Workflow struct {
	slots   SlotSource
	creator Creator
	sess    *session.Session

	step    Step
	failure FailureReason

	service *models.Service
	staffID uint
	date    time.Time
	slot    string
	notes   string

	submitting bool
	refreshed  []domain.TimeSlot
	result     *models.Appointment
}

func NewWorkflow(slots SlotSource, creator Creator, sess *session.Session) *Workflow {
	return &Workflow{
		slots:   slots,
		creator: creator,
		sess:    sess,
		step:    StepSelectService,
	}
}

func (w *Workflow) Step() Step                        { return w.step }
func (w *Workflow) Failure() FailureReason            { return w.failure }
func (w *Workflow) Result() *models.Appointment       { return w.result }
func (w *Workflow) RefreshedSlots() []domain.TimeSlot { return w.refreshed }

// ------------------------------
// Forward steps
// ------------------------------

// SelectService starts or restarts the wizard with a service from the
// active catalog. Picking a different service from a later step throws
// away staff/date/time: forward progress is never silently trusted.
func (w *Workflow) SelectService(svc *models.Service) error {
	if w.submitting || w.terminal() {
		return httperr.ErrValidation("workflow_not_editable")
	}
	if svc == nil || !svc.Active {
		return httperr.ErrValidation("service_not_found")
	}

	if w.service != nil && w.service.ID != svc.ID {
		w.staffID = 0
		w.date = time.Time{}
		w.slot = ""
	}

	w.service = svc
	w.step = StepSelectStaffAndTime
	return nil
}

// ChooseSlot records staff, date and start time. The slot must appear
// in a fresh availability run, which guards against a slot going stale
// while the user was deliberating.
func (w *Workflow) ChooseSlot(ctx context.Context, staffID uint, date time.Time, start string) error {
	if w.submitting || w.terminal() {
		return httperr.ErrValidation("workflow_not_editable")
	}
	if w.service == nil || w.step < StepSelectStaffAndTime {
		return httperr.ErrValidation("service_not_selected")
	}
	if staffID == 0 || date.IsZero() || start == "" {
		return httperr.ErrValidation("slot_required")
	}

	current, err := w.slots.Execute(ctx, domain.AvailabilityInput{
		StaffID:   staffID,
		ServiceID: w.service.ID,
		Date:      date,
	})
	if err != nil {
		return err
	}

	found := false
	for _, s := range current {
		if s.Start == start {
			found = true
			break
		}
	}
	if !found {
		return httperr.ErrConflict("slot_no_longer_available")
	}

	w.staffID = staffID
	w.date = date
	w.slot = start
	w.step = StepReview
	return nil
}

func (w *Workflow) SetNotes(notes string) {
	w.notes = notes
}

// Back is always permitted and keeps previously entered values.
func (w *Workflow) Back() {
	switch w.step {
	case StepReview:
		w.step = StepSelectStaffAndTime
	case StepSelectStaffAndTime:
		w.step = StepSelectService
	}
}

// ------------------------------
// Submission
// ------------------------------

// Submit packages the draft and hands it to the lifecycle. A second
// call while a submit is in flight is a no-op, not a duplicate
// request. A conflict sends the caller back to slot selection with
// availability already re-fetched; any other failure leaves the
// wizard resumable at Review.
func (w *Workflow) Submit(ctx context.Context) error {
	if w.submitting {
		return nil
	}
	if w.step != StepReview {
		return httperr.ErrValidation("workflow_incomplete")
	}
	if w.service == nil || w.staffID == 0 || w.date.IsZero() || w.slot == "" {
		return httperr.ErrValidation("workflow_incomplete")
	}

	w.submitting = true
	w.step = StepSubmitting
	defer func() { w.submitting = false }()

	ap, err := w.creator.Execute(ctx, ucappointment.CreateAppointmentInput{
		CustomerID: w.sess.User.ID,
		StaffID:    w.staffID,
		ServiceID:  w.service.ID,
		Date:       w.date.Format("2006-01-02"),
		Time:       w.slot,
		Notes:      w.notes,
	})

	if err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			w.failure = ReasonSlotNoLongerAvailable
			w.step = StepSelectStaffAndTime
			w.slot = ""

			if fresh, ferr := w.slots.Execute(ctx, domain.AvailabilityInput{
				StaffID:   w.staffID,
				ServiceID: w.service.ID,
				Date:      w.date,
			}); ferr == nil {
				w.refreshed = fresh
			}
			return err
		}

		// Transient failures keep all entered state.
		w.step = StepReview
		return err
	}

	w.result = ap
	w.step = StepConfirmed
	w.reset()
	return nil
}

func (w *Workflow) terminal() bool {
	return w.step == StepConfirmed
}

func (w *Workflow) reset() {
	w.service = nil
	w.staffID = 0
	w.date = time.Time{}
	w.slot = ""
	w.notes = ""
	w.failure = ""
	w.refreshed = nil
}
