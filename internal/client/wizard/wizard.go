// Package wizard implements the multi-step registration flow as an explicit
// state machine, independent of any UI. Field values accumulate in a draft
// across four fixed steps; each "next" is gated on that step's required
// fields, and only the final step performs the one atomic submission.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

// State is the wizard's position in the flow.
type State int

const (
	StateBasic State = iota + 1
	StatePersonal
	StateProfessional
	StatePreferences
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateBasic:
		return "basic"
	case StatePersonal:
		return "personal"
	case StateProfessional:
		return "professional"
	case StatePreferences:
		return "preferences"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MinPasswordLength mirrors the server's floor so the wizard blocks short
// passwords before any request is made.
const MinPasswordLength = 6

// Password rule violations are distinct from missing-field failures: the user
// filled the fields, the values just don't pass.
var (
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrNoServiceChosen  = errors.New("select at least one service of interest")
)

// MissingFieldsError reports which required fields of the current step are
// empty.
type MissingFieldsError struct {
	State  State
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("step %s: required fields missing: %v", e.State, e.Fields)
}

// Draft is the transient accumulator. It is never persisted; it either becomes
// one atomic registration call or is discarded.
type Draft struct {
	// Step 1 — basic
	Name            string
	Email           string
	Password        string
	ConfirmPassword string

	// Step 2 — personal
	Phone       string
	DateOfBirth string
	Address     domain.Address
	Gender      string

	// Step 3 — professional
	Employment string
	Education  string

	// Step 4 — preferences
	SalaryExpectation  string
	PreferredLocation  string
	InterestedServices []string
}

// Resume is a file accepted into the draft after passing the client-side gate.
// The content is buffered in full so a failed submission can be retried
// without re-reading the source.
type Resume struct {
	Filename string
	Data     []byte
}

// Size returns the buffered content length in bytes.
func (r *Resume) Size() int64 { return int64(len(r.Data)) }

// Result is what a successful submission yields.
type Result struct {
	Token string
	User  *domain.User
}

// Registrar performs the single atomic multipart registration. The HTTP
// client implements it; tests substitute a stub.
type Registrar interface {
	RegisterDetailed(ctx context.Context, draft Draft, resume *Resume) (*Result, error)
}

// Wizard drives one registration attempt. Not goroutine-safe; it models a
// single user's cooperative flow.
type Wizard struct {
	state     State
	draft     Draft
	resume    *Resume
	registrar Registrar
	failure   error
}

func New(registrar Registrar) *Wizard {
	return &Wizard{state: StateBasic, registrar: registrar}
}

func (w *Wizard) State() State { return w.state }

// Draft exposes the accumulator for field edits. Edits are allowed in any
// collecting state; they never trigger validation on their own.
func (w *Wizard) Draft() *Draft { return &w.draft }

// Resume returns the currently attached file, if any.
func (w *Wizard) Resume() *Resume { return w.resume }

// Failure returns the error that moved the wizard to StateFailed.
func (w *Wizard) Failure() error { return w.failure }

// AttachResume validates the file against the size cap and document allow-list
// before accepting it, then buffers the content so every submission attempt
// sends the complete file. On rejection the draft, including any previously
// attached resume, is left untouched.
func (w *Wizard) AttachResume(filename string, size int64, content io.Reader) error {
	if err := domain.ValidateResumeUpload(filename, size); err != nil {
		return err
	}

	// The declared size passed the gate; cap the read anyway in case the
	// source delivers more than it claimed.
	data, err := io.ReadAll(io.LimitReader(content, domain.MaxUploadBytes+1))
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	if err := domain.ValidateResumeUpload(filename, int64(len(data))); err != nil {
		return err
	}

	w.resume = &Resume{Filename: filename, Data: data}
	return nil
}

// RemoveResume detaches a previously accepted file.
func (w *Wizard) RemoveResume() { w.resume = nil }

// Next advances one step when the current step's gate passes. The step counter
// never moves on a validation failure.
func (w *Wizard) Next() error {
	switch w.state {
	case StateBasic:
		if err := w.validateBasic(); err != nil {
			return err
		}
		w.state = StatePersonal
	case StatePersonal:
		if err := requireFields(StatePersonal, field{"phone", w.draft.Phone}, field{"dateOfBirth", w.draft.DateOfBirth}); err != nil {
			return err
		}
		w.state = StateProfessional
	case StateProfessional:
		if err := requireFields(StateProfessional, field{"employment", w.draft.Employment}, field{"education", w.draft.Education}); err != nil {
			return err
		}
		w.state = StatePreferences
	default:
		return fmt.Errorf("cannot advance from %s", w.state)
	}
	return nil
}

// Prev steps back without validation and without discarding entered data.
// From StateFailed it returns to the preferences step so the user can correct
// and resubmit.
func (w *Wizard) Prev() {
	switch w.state {
	case StatePersonal:
		w.state = StateBasic
	case StateProfessional:
		w.state = StatePersonal
	case StatePreferences:
		w.state = StateProfessional
	case StateFailed:
		w.state = StatePreferences
	}
}

// Submit performs the one atomic registration from the final step. On success
// the draft is discarded and the wizard is terminal; on failure the draft is
// preserved, the cause is retained, and the user may return via Prev and
// resubmit.
func (w *Wizard) Submit(ctx context.Context) (*Result, error) {
	if w.state != StatePreferences {
		return nil, fmt.Errorf("cannot submit from %s", w.state)
	}
	if len(w.draft.InterestedServices) == 0 {
		return nil, ErrNoServiceChosen
	}

	w.state = StateSubmitting
	result, err := w.registrar.RegisterDetailed(ctx, w.draft, w.resume)
	if err != nil {
		w.state = StateFailed
		w.failure = err
		return nil, err
	}

	w.state = StateSucceeded
	w.failure = nil
	w.draft = Draft{}
	w.resume = nil
	return result, nil
}

// validateBasic checks presence first, then the password rules, so a missing
// field and a rule violation surface as different error kinds.
func (w *Wizard) validateBasic() error {
	if err := requireFields(StateBasic,
		field{"name", w.draft.Name},
		field{"email", w.draft.Email},
		field{"password", w.draft.Password},
		field{"confirmPassword", w.draft.ConfirmPassword},
	); err != nil {
		return err
	}
	if len(w.draft.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if w.draft.Password != w.draft.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

type field struct {
	name  string
	value string
}

func requireFields(state State, fields ...field) error {
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{State: state, Fields: missing}
	}
	return nil
}
