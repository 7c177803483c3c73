package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"nko_site_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeSender records calls and answers with a scripted response
type fakeSender struct {
	mu    sync.Mutex
	calls []models.LeadSubmission

	resp  *models.LeadResponse
	err   error
	panic bool
	// block, when set, is waited on before answering
	block chan struct{}
	// entered is closed when the first call starts
	entered chan struct{}
}

func (s *fakeSender) Send(ctx context.Context, lead models.LeadSubmission) (*models.LeadResponse, error) {
	s.mu.Lock()
	s.calls = append(s.calls, lead)
	if s.entered != nil && len(s.calls) == 1 {
		close(s.entered)
	}
	s.mu.Unlock()

	if s.block != nil {
		<-s.block
	}
	if s.panic {
		panic("sender exploded")
	}
	return s.resp, s.err
}

func (s *fakeSender) Calls() []models.LeadSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.LeadSubmission(nil), s.calls...)
}

// recordingNotifier collects notifications in order
type recordingNotifier struct {
	mu    sync.Mutex
	kinds []NotificationKind
	msgs  []string
}

func (n *recordingNotifier) Notify(kind NotificationKind, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.kinds = append(n.kinds, kind)
	n.msgs = append(n.msgs, message)
}

func (n *recordingNotifier) Last() (NotificationKind, string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.kinds) == 0 {
		return "", ""
	}
	return n.kinds[len(n.kinds)-1], n.msgs[len(n.msgs)-1]
}

func (n *recordingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.kinds)
}

func newTestFlow(t *testing.T, sender *fakeSender) (*LeadFlow, *recordingNotifier) {
	notifier := &recordingNotifier{}
	return NewLeadFlow(sender, notifier, zaptest.NewLogger(t).Sugar()), notifier
}

func fillDraft(t *testing.T, flow *LeadFlow, name, phone, email string) {
	require.NoError(t, flow.UpdateField(models.LeadFieldName, name))
	require.NoError(t, flow.UpdateField(models.LeadFieldPhone, phone))
	require.NoError(t, flow.UpdateField(models.LeadFieldEmail, email))
}

func TestLeadFlowStartsIdleAndEmpty(t *testing.T) {
	flow, _ := newTestFlow(t, &fakeSender{})

	snapshot := flow.Snapshot()
	assert.Equal(t, StateIdle, snapshot.State)
	assert.True(t, snapshot.Draft.IsEmpty())
}

func TestLeadFlowUpdateField(t *testing.T) {
	flow, _ := newTestFlow(t, &fakeSender{})

	require.NoError(t, flow.UpdateField(models.LeadFieldName, "Иван"))
	require.NoError(t, flow.UpdateField(models.LeadFieldName, ""))
	require.NoError(t, flow.UpdateField(models.LeadFieldEmail, "   "))

	draft := flow.Snapshot().Draft
	assert.Equal(t, "", draft.Name)
	assert.Equal(t, "   ", draft.Email)

	assert.ErrorIs(t, flow.UpdateField(models.LeadField("fax"), "1"), models.ErrUnknownLeadField)
}

func TestLeadFlowSubmitValidation(t *testing.T) {
	cases := []struct {
		name                string
		fname, phone, email string
	}{
		{"all empty", "", "", ""},
		{"missing name", "", "+79991234567", "a@b.ru"},
		{"missing phone", "Иван", "", "a@b.ru"},
		{"missing email", "Иван", "+79991234567", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := &fakeSender{resp: &models.LeadResponse{Success: true}}
			flow, notifier := newTestFlow(t, sender)
			fillDraft(t, flow, tc.fname, tc.phone, tc.email)

			var states []SubmissionState
			flow.Subscribe(LeadObserverFunc(func(s LeadSnapshot) { states = append(states, s.State) }))

			err := flow.Submit(context.Background())

			assert.ErrorIs(t, err, ErrLeadValidation)
			assert.Empty(t, sender.Calls(), "no network call on validation failure")
			assert.Empty(t, states, "no state transition on validation failure")
			kind, msg := notifier.Last()
			assert.Equal(t, NotifyError, kind)
			assert.Equal(t, LeadValidationMessage, msg)
			assert.Equal(t, StateIdle, flow.Snapshot().State)
		})
	}
}

func TestLeadFlowWithoutNotifier(t *testing.T) {
	sender := &fakeSender{resp: &models.LeadResponse{Success: true}}
	flow := NewLeadFlow(sender, nil, nil)

	assert.ErrorIs(t, flow.Submit(context.Background()), ErrLeadValidation)

	fillDraft(t, flow, "Иван", "+79991234567", "a@b.ru")
	assert.NoError(t, flow.Submit(context.Background()))
	assert.Len(t, sender.Calls(), 1)
	assert.Equal(t, StateIdle, flow.Snapshot().State)
}

func TestLeadFlowSubmitSuccess(t *testing.T) {
	sender := &fakeSender{resp: &models.LeadResponse{Success: true}}
	flow, notifier := newTestFlow(t, sender)
	fillDraft(t, flow, "Иван", "+79991234567", "a@b.ru")

	var states []SubmissionState
	flow.Subscribe(LeadObserverFunc(func(s LeadSnapshot) { states = append(states, s.State) }))

	require.NoError(t, flow.Submit(context.Background()))

	calls := sender.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.LeadSubmission{Name: "Иван", Phone: "+79991234567", Email: "a@b.ru"}, calls[0])

	snapshot := flow.Snapshot()
	assert.Equal(t, models.LeadSubmission{}, snapshot.Draft)
	assert.Equal(t, StateIdle, snapshot.State)
	assert.Equal(t, []SubmissionState{StateSubmitting, StateIdle}, states)

	kind, msg := notifier.Last()
	assert.Equal(t, NotifySuccess, kind)
	assert.Equal(t, LeadSuccessMessage, msg)
}

func TestLeadFlowSubmitFailureKeepsDraft(t *testing.T) {
	cases := []struct {
		name   string
		sender *fakeSender
	}{
		{
			name:   "success false with server error",
			sender: &fakeSender{resp: &models.LeadResponse{Success: false, Error: "x"}, err: &LeadRequestError{StatusCode: 200, ServerError: "x"}},
		},
		{
			name:   "sender returns unconfirmed response without error",
			sender: &fakeSender{resp: &models.LeadResponse{Success: false}},
		},
		{
			name:   "nil response",
			sender: &fakeSender{},
		},
		{
			name:   "network error",
			sender: &fakeSender{err: errors.New("connection refused")},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flow, notifier := newTestFlow(t, tc.sender)
			fillDraft(t, flow, "Иван", "+79991234567", "a@b.ru")

			err := flow.Submit(context.Background())

			assert.ErrorIs(t, err, ErrLeadRequestFailed)
			assert.Len(t, tc.sender.Calls(), 1)

			snapshot := flow.Snapshot()
			assert.Equal(t, StateIdle, snapshot.State)
			assert.Equal(t, models.LeadSubmission{Name: "Иван", Phone: "+79991234567", Email: "a@b.ru"}, snapshot.Draft)

			kind, msg := notifier.Last()
			assert.Equal(t, NotifyError, kind)
			assert.Equal(t, LeadFailureMessage, msg)
			assert.NotContains(t, msg, "x")
			assert.Equal(t, 1, notifier.Count())
		})
	}
}

func TestLeadFlowServerErrorStaysInReturnedError(t *testing.T) {
	sender := &fakeSender{err: &LeadRequestError{StatusCode: 400, ServerError: "Validation error"}}
	flow, notifier := newTestFlow(t, sender)
	fillDraft(t, flow, "Иван", "+79991234567", "a@b.ru")

	err := flow.Submit(context.Background())

	var reqErr *LeadRequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 400, reqErr.StatusCode)
	assert.Equal(t, "Validation error", reqErr.ServerError)

	_, msg := notifier.Last()
	assert.Equal(t, LeadFailureMessage, msg)
}

func TestLeadFlowReturnsToIdleWhenSenderPanics(t *testing.T) {
	sender := &fakeSender{panic: true}
	flow, _ := newTestFlow(t, sender)
	fillDraft(t, flow, "Иван", "+79991234567", "a@b.ru")

	assert.Panics(t, func() { _ = flow.Submit(context.Background()) })
	assert.Equal(t, StateIdle, flow.Snapshot().State)
}

func TestLeadFlowLocksWhileSubmitting(t *testing.T) {
	sender := &fakeSender{
		resp:    &models.LeadResponse{Success: true},
		block:   make(chan struct{}),
		entered: make(chan struct{}),
	}
	flow, notifier := newTestFlow(t, sender)
	fillDraft(t, flow, "Иван", "+79991234567", "a@b.ru")

	done := make(chan error, 1)
	go func() { done <- flow.Submit(context.Background()) }()
	<-sender.entered

	assert.True(t, flow.Snapshot().Submitting())
	assert.ErrorIs(t, flow.UpdateField(models.LeadFieldName, "Пётр"), ErrLeadLocked)
	assert.ErrorIs(t, flow.Submit(context.Background()), ErrLeadBusy)
	assert.Equal(t, 0, notifier.Count(), "a rejected re-entrant submit shows nothing")

	close(sender.block)
	require.NoError(t, <-done)

	assert.Len(t, sender.Calls(), 1)
	assert.Equal(t, StateIdle, flow.Snapshot().State)
}

func TestLeadFlowResubmitAfterSuccessFailsValidation(t *testing.T) {
	sender := &fakeSender{resp: &models.LeadResponse{Success: true}}
	flow, notifier := newTestFlow(t, sender)
	fillDraft(t, flow, "Иван", "+79991234567", "a@b.ru")

	require.NoError(t, flow.Submit(context.Background()))
	kind, _ := notifier.Last()
	assert.Equal(t, NotifySuccess, kind)

	err := flow.Submit(context.Background())
	assert.ErrorIs(t, err, ErrLeadValidation)
	assert.Len(t, sender.Calls(), 1)

	kind, msg := notifier.Last()
	assert.Equal(t, NotifyError, kind)
	assert.Equal(t, LeadValidationMessage, msg)
}

func TestLeadFlowRetryAfterFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("timeout")}
	flow, _ := newTestFlow(t, sender)
	fillDraft(t, flow, "Иван", "+79991234567", "a@b.ru")

	require.Error(t, flow.Submit(context.Background()))

	sender.err = nil
	sender.resp = &models.LeadResponse{Success: true}
	require.NoError(t, flow.Submit(context.Background()))

	calls := sender.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0], calls[1])
}

func TestLeadFlowUnsubscribe(t *testing.T) {
	flow, _ := newTestFlow(t, &fakeSender{})

	count := 0
	unsubscribe := flow.Subscribe(LeadObserverFunc(func(LeadSnapshot) { count++ }))

	require.NoError(t, flow.UpdateField(models.LeadFieldName, "a"))
	unsubscribe()
	require.NoError(t, flow.UpdateField(models.LeadFieldName, "b"))

	assert.Equal(t, 1, count)
}

func TestSubmissionStateText(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "submitting", StateSubmitting.String())

	text, err := StateSubmitting.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "submitting", string(text))

	var state SubmissionState
	require.NoError(t, state.UnmarshalText([]byte("submitting")))
	assert.Equal(t, StateSubmitting, state)
	assert.Error(t, state.UnmarshalText([]byte("paused")))
}
