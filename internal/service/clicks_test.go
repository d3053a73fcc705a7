package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	repomocks "github.com/Yesho700/url-shortner/internal/repository/mocks"
)

func TestClickRecorder_RecordsClicks(t *testing.T) {
	repo := &repomocks.URLRepository{}
	repo.On("IncrementClicks", mock.Anything, "abc12345").Return(nil)

	recorder := NewClickRecorder(repo, 16)
	recorder.Record("abc12345")
	recorder.Record("abc12345")
	require.NoError(t, recorder.Close())

	repo.AssertNumberOfCalls(t, "IncrementClicks", 2)
}

func TestClickRecorder_StoreErrorIsSwallowed(t *testing.T) {
	repo := &repomocks.URLRepository{}
	repo.On("IncrementClicks", mock.Anything, "abc12345").
		Return(errors.New("database is locked"))

	recorder := NewClickRecorder(repo, 16)
	recorder.Record("abc12345")
	require.NoError(t, recorder.Close())

	repo.AssertExpectations(t)
}

func TestClickRecorder_CloseIsIdempotent(t *testing.T) {
	repo := &repomocks.URLRepository{}

	recorder := NewClickRecorder(repo, 16)
	require.NoError(t, recorder.Close())
	require.NoError(t, recorder.Close())
}

func TestClickRecorder_RecordAfterCloseIsNoop(t *testing.T) {
	repo := &repomocks.URLRepository{}

	recorder := NewClickRecorder(repo, 16)
	require.NoError(t, recorder.Close())

	recorder.Record("abc12345")
	repo.AssertNotCalled(t, "IncrementClicks", mock.Anything, mock.Anything)
}

func TestClickRecorder_DropsWhenQueueIsFull(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	repo := &repomocks.URLRepository{}
	repo.On("IncrementClicks", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			select {
			case started <- struct{}{}:
			default:
			}
			<-release
		}).
		Return(nil)

	recorder := NewClickRecorder(repo, 1)

	// First click is dequeued by the worker, which then blocks
	recorder.Record("a")
	<-started

	// Second click fills the buffer, third has nowhere to go
	recorder.Record("b")
	recorder.Record("c")

	close(release)
	require.NoError(t, recorder.Close())

	repo.AssertNumberOfCalls(t, "IncrementClicks", 2)
}
