package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"nko_site_go/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmissionState is the lifecycle flag of a LeadFlow
type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateSubmitting
)

func (s SubmissionState) String() string {
	if s == StateSubmitting {
		return "submitting"
	}
	return "idle"
}

// MarshalText renders the state as "idle" or "submitting" in JSON
func (s SubmissionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SubmissionState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "idle":
		*s = StateIdle
	case "submitting":
		*s = StateSubmitting
	default:
		return fmt.Errorf("unknown submission state %q", text)
	}
	return nil
}

// NotificationKind tells the UI how to style a notification
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Visitor-facing texts of the contact form
const (
	LeadSuccessTitle      = "Успешно!"
	LeadErrorTitle        = "Ошибка"
	LeadValidationMessage = "Пожалуйста, заполните все поля"
	LeadSuccessMessage    = "Ваша заявка отправлена. Мы свяжемся с вами в ближайшее время."
	LeadFailureMessage    = "Не удалось отправить заявку. Попробуйте позже или позвоните нам."
)

var (
	ErrLeadValidation    = errors.New("all lead fields are required")
	ErrLeadRequestFailed = errors.New("lead request failed")
	ErrLeadBusy          = errors.New("lead submission already in progress")
	ErrLeadLocked        = errors.New("lead draft is locked while submitting")
)

// Notifier shows a message to the visitor
type Notifier interface {
	Notify(kind NotificationKind, title, message string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(NotificationKind, string, string) {}

// LeadSender delivers a submission to the lead endpoint.
// A nil error means the endpoint accepted the lead.
type LeadSender interface {
	Send(ctx context.Context, lead models.LeadSubmission) (*models.LeadResponse, error)
}

// LeadSnapshot is a copy of the flow's observable state
type LeadSnapshot struct {
	Draft models.LeadSubmission `json:"draft"`
	State SubmissionState       `json:"state"`
}

// Submitting reports whether the form must be rendered disabled
func (s LeadSnapshot) Submitting() bool {
	return s.State == StateSubmitting
}

// LeadObserver is told about every draft or state change
type LeadObserver interface {
	OnChange(snapshot LeadSnapshot)
}

// LeadObserverFunc adapts a function to LeadObserver
type LeadObserverFunc func(snapshot LeadSnapshot)

func (f LeadObserverFunc) OnChange(snapshot LeadSnapshot) { f(snapshot) }

// LeadFlow owns one visitor's contact form draft and drives its submission.
//
// The draft may be edited only while the flow is idle. Submit moves the flow to
// StateSubmitting for the duration of exactly one call to the LeadSender and always
// returns it to StateIdle afterwards, whatever the outcome.
type LeadFlow struct {
	sender   LeadSender
	notifier Notifier
	log      *zap.SugaredLogger

	mu           sync.Mutex
	draft        models.LeadSubmission
	state        SubmissionState
	observers    map[int]LeadObserver
	nextObserver int
}

// NewLeadFlow creates an idle flow with an empty draft
func NewLeadFlow(sender LeadSender, notifier Notifier, log *zap.SugaredLogger) *LeadFlow {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &LeadFlow{
		sender:    sender,
		notifier:  notifier,
		log:       log,
		observers: make(map[int]LeadObserver),
	}
}

// Snapshot returns the current draft and state
func (f *LeadFlow) Snapshot() LeadSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return LeadSnapshot{Draft: f.draft, State: f.state}
}

// Subscribe registers an observer and returns a function that removes it
func (f *LeadFlow) Subscribe(observer LeadObserver) func() {
	f.mu.Lock()
	id := f.nextObserver
	f.nextObserver++
	f.observers[id] = observer
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.observers, id)
		f.mu.Unlock()
	}
}

// UpdateField sets one field of the draft
func (f *LeadFlow) UpdateField(field models.LeadField, value string) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrLeadLocked
	}
	if err := f.draft.Set(field, value); err != nil {
		f.mu.Unlock()
		return err
	}
	snapshot, observers := f.snapshotLocked()
	f.mu.Unlock()

	emit(observers, snapshot)
	return nil
}

// Submit validates the draft and sends it to the lead endpoint.
//
// It returns ErrLeadBusy if a submission is already running, ErrLeadValidation if
// a field is empty, and an error matching ErrLeadRequestFailed if the endpoint did
// not accept the lead. The visitor always sees a fixed message; server error
// details stay in the returned error.
func (f *LeadFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrLeadBusy
	}
	draft := f.draft
	if !draft.Complete() {
		f.mu.Unlock()
		f.notifier.Notify(NotifyError, LeadErrorTitle, LeadValidationMessage)
		return ErrLeadValidation
	}
	f.state = StateSubmitting
	snapshot, observers := f.snapshotLocked()
	f.mu.Unlock()

	emit(observers, snapshot)
	defer f.finish()

	log := f.log.With("attempt", uuid.NewString())
	resp, err := f.sender.Send(ctx, draft)
	if err == nil && (resp == nil || !resp.Success) {
		err = &LeadRequestError{Err: errors.New("endpoint did not confirm the lead")}
	}
	if err != nil {
		if !errors.Is(err, ErrLeadRequestFailed) {
			err = &LeadRequestError{Err: err}
		}
		log.Warnw("lead submission failed", "error", err)
		f.notifier.Notify(NotifyError, LeadErrorTitle, LeadFailureMessage)
		return fmt.Errorf("submit lead: %w", err)
	}

	f.mu.Lock()
	f.draft = models.LeadSubmission{}
	f.mu.Unlock()

	log.Infow("lead submitted", "lead_id", resp.LeadID, "email_sent", resp.EmailSent)
	f.notifier.Notify(NotifySuccess, LeadSuccessTitle, LeadSuccessMessage)
	return nil
}

// finish returns the flow to idle. It runs deferred so a failing or panicking
// sender cannot leave the form disabled.
func (f *LeadFlow) finish() {
	f.mu.Lock()
	f.state = StateIdle
	snapshot, observers := f.snapshotLocked()
	f.mu.Unlock()

	emit(observers, snapshot)
}

func (f *LeadFlow) snapshotLocked() (LeadSnapshot, []LeadObserver) {
	observers := make([]LeadObserver, 0, len(f.observers))
	for _, o := range f.observers {
		observers = append(observers, o)
	}
	return LeadSnapshot{Draft: f.draft, State: f.state}, observers
}

func emit(observers []LeadObserver, snapshot LeadSnapshot) {
	for _, o := range observers {
		o.OnChange(snapshot)
	}
}
