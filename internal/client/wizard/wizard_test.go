package wizard

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

type stubRegistrar struct {
	calls   int
	last    Draft
	resume  *Resume
	resumes [][]byte
	err     error
}

func (s *stubRegistrar) RegisterDetailed(_ context.Context, draft Draft, resume *Resume) (*Result, error) {
	s.calls++
	s.last = draft
	s.resume = resume
	if resume != nil {
		s.resumes = append(s.resumes, append([]byte(nil), resume.Data...))
	}
	if s.err != nil {
		return nil, s.err
	}
	return &Result{
		Token: "token",
		User: &domain.User{
			ID:               "1",
			Name:             draft.Name,
			Email:            draft.Email,
			Role:             domain.RoleUser,
			ProfileCompleted: true,
		},
	}, nil
}

func fillBasic(w *Wizard) {
	d := w.Draft()
	d.Name = "Ava"
	d.Email = "ava@x.com"
	d.Password = "secret1"
	d.ConfirmPassword = "secret1"
}

func fillPersonal(w *Wizard) {
	d := w.Draft()
	d.Phone = "555-0101"
	d.DateOfBirth = "1992-04-01"
}

func fillProfessional(w *Wizard) {
	d := w.Draft()
	d.Employment = "analyst"
	d.Education = "BSc"
}

func advanceTo(t *testing.T, w *Wizard, target State) {
	t.Helper()
	steps := []func(*Wizard){fillBasic, fillPersonal, fillProfessional}
	for i := 0; w.State() != target; i++ {
		steps[i](w)
		if err := w.Next(); err != nil {
			t.Fatalf("advance from %s: %v", w.State(), err)
		}
	}
}

func TestWizard_StartsAtBasic(t *testing.T) {
	w := New(&stubRegistrar{})
	if w.State() != StateBasic {
		t.Fatalf("expected initial state basic, got %s", w.State())
	}
}

func TestWizard_MissingFieldsBlockNext(t *testing.T) {
	w := New(&stubRegistrar{})
	w.Draft().Name = "Ava"

	err := w.Next()
	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if w.State() != StateBasic {
		t.Fatalf("step advanced despite missing fields")
	}
	if len(missing.Fields) != 3 {
		t.Fatalf("expected 3 missing fields, got %v", missing.Fields)
	}
}

func TestWizard_PasswordMismatchIsDistinctFromMissingFields(t *testing.T) {
	w := New(&stubRegistrar{})
	fillBasic(w)
	w.Draft().ConfirmPassword = "different"

	err := w.Next()
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	var missing *MissingFieldsError
	if errors.As(err, &missing) {
		t.Fatalf("mismatch must not be reported as missing fields")
	}
	if w.State() != StateBasic {
		t.Fatalf("step advanced despite password mismatch")
	}
}

func TestWizard_ShortPasswordBlocked(t *testing.T) {
	w := New(&stubRegistrar{})
	fillBasic(w)
	w.Draft().Password = "tiny"
	w.Draft().ConfirmPassword = "tiny"

	if err := w.Next(); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if w.State() != StateBasic {
		t.Fatalf("step advanced despite short password")
	}
}

func TestWizard_PrevKeepsData(t *testing.T) {
	w := New(&stubRegistrar{})
	advanceTo(t, w, StatePersonal)
	w.Draft().Phone = "555-0101"

	w.Prev()
	if w.State() != StateBasic {
		t.Fatalf("expected basic after prev, got %s", w.State())
	}
	if w.Draft().Phone != "555-0101" || w.Draft().Name != "Ava" {
		t.Fatalf("prev discarded entered data")
	}
}

func TestWizard_SubmitRequiresServiceSelection(t *testing.T) {
	reg := &stubRegistrar{}
	w := New(reg)
	advanceTo(t, w, StatePreferences)

	if _, err := w.Submit(context.Background()); !errors.Is(err, ErrNoServiceChosen) {
		t.Fatalf("expected ErrNoServiceChosen, got %v", err)
	}
	if reg.calls != 0 {
		t.Fatalf("no network call may happen without a service selection")
	}
}

func TestWizard_SubmitHappyPathWithoutResume(t *testing.T) {
	reg := &stubRegistrar{}
	w := New(reg)
	advanceTo(t, w, StatePreferences)
	w.Draft().InterestedServices = []string{"resume-review"}

	result, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if w.State() != StateSucceeded {
		t.Fatalf("expected succeeded, got %s", w.State())
	}
	if reg.calls != 1 {
		t.Fatalf("expected exactly one registration call, got %d", reg.calls)
	}
	if reg.resume != nil {
		t.Fatalf("no resume was attached, yet one was submitted")
	}
	if !result.User.ProfileCompleted {
		t.Fatalf("expected a completed profile in the result")
	}
	if w.Draft().Name != "" {
		t.Fatalf("draft must be discarded after success")
	}
}

func TestWizard_OversizedResumeRejectedBeforeSubmit(t *testing.T) {
	reg := &stubRegistrar{}
	w := New(reg)
	advanceTo(t, w, StatePreferences)
	w.Draft().InterestedServices = []string{"resume-review"}

	err := w.AttachResume("resume.pdf", 15<<20, bytes.NewReader(nil))
	if !errors.Is(err, domain.ErrUploadRejected) {
		t.Fatalf("expected ErrUploadRejected, got %v", err)
	}
	if reg.calls != 0 {
		t.Fatalf("rejection must happen before any network call")
	}
	if w.Resume() != nil {
		t.Fatalf("rejected file must not enter the draft")
	}
	if w.Draft().Name != "Ava" || len(w.Draft().InterestedServices) != 1 {
		t.Fatalf("draft fields must remain intact after a rejected upload")
	}
}

func TestWizard_WrongTypeResumeRejected(t *testing.T) {
	w := New(&stubRegistrar{})
	if err := w.AttachResume("malware.exe", 100, bytes.NewReader(nil)); !errors.Is(err, domain.ErrUploadRejected) {
		t.Fatalf("expected ErrUploadRejected, got %v", err)
	}
}

func TestWizard_FailedSubmitPreservesDraftAndAllowsRetry(t *testing.T) {
	reg := &stubRegistrar{err: domain.ErrEmailTaken}
	w := New(reg)
	advanceTo(t, w, StatePreferences)
	w.Draft().InterestedServices = []string{"resume-review"}

	resumeContent := []byte("%PDF-1.4 full resume body")
	if err := w.AttachResume("resume.pdf", int64(len(resumeContent)), bytes.NewReader(resumeContent)); err != nil {
		t.Fatalf("AttachResume: %v", err)
	}

	if _, err := w.Submit(context.Background()); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if w.State() != StateFailed {
		t.Fatalf("expected failed state, got %s", w.State())
	}
	if !errors.Is(w.Failure(), domain.ErrEmailTaken) {
		t.Fatalf("failure cause not retained")
	}
	if w.Draft().Name != "Ava" {
		t.Fatalf("draft lost on failed submission")
	}
	if w.Resume() == nil {
		t.Fatalf("resume lost on failed submission")
	}

	// Correct the email and retry.
	w.Prev()
	if w.State() != StatePreferences {
		t.Fatalf("expected preferences after prev from failed, got %s", w.State())
	}
	w.Draft().Email = "ava2@x.com"
	reg.err = nil

	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if w.State() != StateSucceeded {
		t.Fatalf("expected succeeded after retry, got %s", w.State())
	}
	if reg.calls != 2 {
		t.Fatalf("expected two registration calls, got %d", reg.calls)
	}
	if reg.last.Email != "ava2@x.com" {
		t.Fatalf("corrected draft not submitted")
	}

	// Both attempts must carry the complete file, not a drained reader.
	if len(reg.resumes) != 2 {
		t.Fatalf("expected a resume on both attempts, got %d", len(reg.resumes))
	}
	for i, data := range reg.resumes {
		if !bytes.Equal(data, resumeContent) {
			t.Fatalf("attempt %d submitted %d resume bytes, want %d", i+1, len(data), len(resumeContent))
		}
	}
}

func TestWizard_SubmitOnlyFromPreferences(t *testing.T) {
	w := New(&stubRegistrar{})
	if _, err := w.Submit(context.Background()); err == nil {
		t.Fatalf("submit from basic must fail")
	}
}
