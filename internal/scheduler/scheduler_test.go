package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) CompleteElapsed(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(now)
	return args.Int(0), args.Error(1)
}

func TestScheduler_RunOnce(t *testing.T) {
	completer := &MockCompleter{}
	s := NewScheduler(completer, time.Hour, logrus.New())
	fixed := time.Date(2025, 7, 20, 1, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	completer.On("CompleteElapsed", fixed).Return(2, nil).Once()
	completer.On("CompleteElapsed", fixed).Return(0, errors.New("db down")).Once()

	s.RunOnce()
	s.RunOnce()
	completer.AssertExpectations(t)
}

func TestScheduler_StartRunsImmediatelyAndOnTick(t *testing.T) {
	completer := &MockCompleter{}
	ran := make(chan struct{}, 10)
	completer.On("CompleteElapsed", mock.Anything).Run(func(mock.Arguments) {
		ran <- struct{}{}
	}).Return(0, nil)

	s := NewScheduler(completer, 20*time.Millisecond, logrus.New())
	s.Start()

	for i := 0; i < 2; i++ {
		select {
		case <-ran:
		case <-time.After(time.Second):
			t.Fatal("job did not run")
		}
	}

	s.Stop()
	s.Stop()
	assert.GreaterOrEqual(t, len(completer.Calls), 2)
}
