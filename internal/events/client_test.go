package events

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Publish(subject string, data interface{}) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func (m *mockClient) Close() {}

func TestSubjectAssessmentCompleted(t *testing.T) {
	assert.Equal(t, "dravita.assessment.abc.completed", SubjectAssessmentCompleted("abc"))
}

func TestNotifierPublishes(t *testing.T) {
	c := &mockClient{}
	ev := AssessmentCompletedEvent{
		AssessmentID: "abc",
		RiskScore:    70,
		RiskLevel:    "High",
		PlanIDs:      []int{3, 2, 1},
		ComputedAt:   time.Now(),
	}
	c.On("Publish", "dravita.assessment.abc.completed", ev).Return(nil)

	n := NewNotifier(c, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	n.AssessmentCompleted(ev)

	c.AssertExpectations(t)
}

func TestNotifierLogsFailures(t *testing.T) {
	c := &mockClient{}
	c.On("Publish", mock.Anything, mock.Anything).Return(errors.New("nats down"))

	var buf bytes.Buffer
	n := NewNotifier(c, slog.New(slog.NewTextHandler(&buf, nil)))
	n.AssessmentCompleted(AssessmentCompletedEvent{AssessmentID: "xyz"})

	assert.Contains(t, buf.String(), "failed to publish assessment event")
	assert.Contains(t, buf.String(), "nats down")
}

func TestNotifierWithoutClient(t *testing.T) {
	var nilNotifier *Notifier
	assert.NotPanics(t, func() {
		nilNotifier.AssessmentCompleted(AssessmentCompletedEvent{})
		NewNotifier(nil, slog.Default()).AssessmentCompleted(AssessmentCompletedEvent{})
	})
}
