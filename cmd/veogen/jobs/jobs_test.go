package jobcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	opdomain "github.com/10Narratives/veogen/internal/domain/operations"
	videodomain "github.com/10Narratives/veogen/internal/domain/videos"
	opsrv "github.com/10Narratives/veogen/internal/services/operations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	const name = "models/veo/operations/1"

	timeout := fmt.Errorf("%w: after 1m", opdomain.ErrWaitTimeout)
	err := describe(name, timeout)
	require.ErrorIs(t, err, opdomain.ErrWaitTimeout)
	assert.Contains(t, err.Error(), "veogen wait --name "+name)

	persist := &videodomain.PersistenceError{Path: "v.mp4", Err: errors.New("disk full")}
	err = describe(name, persist)
	require.ErrorIs(t, err, videodomain.ErrPersistenceFailed)
	assert.Contains(t, err.Error(), "--output")

	canceled := &videodomain.JobError{Operation: name, Err: context.Canceled}
	err = describe("", canceled)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "veogen wait --name "+name)

	saveFailed := &videodomain.JobError{Operation: name, Err: persist}
	err = describe("", saveFailed)
	require.ErrorIs(t, err, videodomain.ErrPersistenceFailed)
	assert.Contains(t, err.Error(), "veogen wait --name "+name+" --output")

	other := errors.New("boom")
	assert.Equal(t, other, describe(name, other))
	assert.Equal(t, timeout, describe("", timeout))
}

func TestPrintSaved(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printSaved(&buf, &videodomain.GenerateVideoResult{Locations: []string{"a.mp4", "a_1.mp4"}})

	assert.Equal(t, "Generated video saved to a.mp4\nGenerated video saved to a_1.mp4\n", buf.String())
}

func TestWaitingNotice(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opt := waitingNotice(&buf)
	require.NotNil(t, opt)

	svc, err := opsrv.NewService(fakeRepo{}, zap.NewNop(), opt, opsrv.WithClock(instantClock{}))
	require.NoError(t, err)

	_, err = svc.WaitOperation(context.Background(), &opdomain.WaitOperationArgs{
		Operation:    &opdomain.Operation{Name: "operations/1"},
		PollInterval: time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, "Waiting for video generation to complete...\n", buf.String())
}

type fakeRepo struct{}

func (fakeRepo) SubmitOperation(context.Context, *opdomain.SubmitOperationArgs) (*opdomain.SubmitOperationResult, error) {
	return nil, errors.New("not used")
}

func (fakeRepo) GetOperation(_ context.Context, args *opdomain.GetOperationArgs) (*opdomain.GetOperationResult, error) {
	return &opdomain.GetOperationResult{Operation: &opdomain.Operation{
		Name:   args.Name,
		Done:   true,
		Result: &opdomain.Result{Videos: []*videodomain.Video{{Data: []byte("blob")}}},
	}}, nil
}

type instantClock struct{}

func (instantClock) Now() time.Time { return time.Unix(0, 0) }

func (instantClock) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }
