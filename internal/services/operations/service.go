package opsrv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	opdomain "github.com/10Narratives/veogen/internal/domain/operations"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

//mockery:generate: true
type OperationRepository interface {
	opdomain.OperationSubmitter
	opdomain.OperationGetter
}

type Service struct {
	operationRepository OperationRepository
	log                 *zap.Logger
	clock               Clock
	retry               RetryPolicy
	progress            []ProgressFunc
}

func NewService(
	operationRepository OperationRepository,
	log *zap.Logger,
	opts ...ServiceOption,
) (*Service, error) {
	if operationRepository == nil {
		return nil, errors.New("operation repository is required")
	}
	if log == nil {
		return nil, errors.New("logger is required")
	}

	options := defaultServiceOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.retry.MaxAttempts < 1 {
		return nil, errors.New("retry policy must allow at least one attempt")
	}

	return &Service{
		operationRepository: operationRepository,
		log:                 log,
		clock:               options.clock,
		retry:               options.retry,
		progress:            options.progress,
	}, nil
}

func (s *Service) SubmitOperation(ctx context.Context, args *opdomain.SubmitOperationArgs) (*opdomain.SubmitOperationResult, error) {
	if args == nil {
		return nil, fmt.Errorf("%w: options are required", opdomain.ErrInvalidArgument)
	}
	if strings.TrimSpace(args.Prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", opdomain.ErrInvalidArgument)
	}
	if strings.TrimSpace(args.Model) == "" {
		return nil, fmt.Errorf("%w: model is required", opdomain.ErrInvalidArgument)
	}
	if args.NumberOfVideos < 0 || args.DurationSeconds < 0 {
		return nil, fmt.Errorf("%w: counts must not be negative", opdomain.ErrInvalidArgument)
	}

	res, err := s.operationRepository.SubmitOperation(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", opdomain.ErrSubmissionFailed, err)
	}
	if res == nil || res.Operation == nil || res.Operation.Name == "" {
		return nil, fmt.Errorf("%w: service returned no operation handle", opdomain.ErrSubmissionFailed)
	}

	s.log.Info("operation submitted",
		zap.String("operation", res.Operation.Name),
		zap.String("model", args.Model),
		zap.Bool("done", res.Operation.Done),
	)

	return res, nil
}

func (s *Service) GetOperation(ctx context.Context, args *opdomain.GetOperationArgs) (*opdomain.GetOperationResult, error) {
	if args == nil {
		return nil, fmt.Errorf("%w: options are required", opdomain.ErrInvalidArgument)
	}
	if args.Name == "" {
		return nil, fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}

	op, err := s.poll(ctx, args.Name, time.Time{})
	if err != nil {
		return nil, err
	}

	return &opdomain.GetOperationResult{Operation: op}, nil
}

// WaitOperation re-queries the operation every PollInterval until it is done.
// A done operation is never queried again.
func (s *Service) WaitOperation(ctx context.Context, args *opdomain.WaitOperationArgs) (*opdomain.WaitOperationResult, error) {
	if args == nil || args.Operation == nil {
		return nil, fmt.Errorf("%w: operation is required", opdomain.ErrInvalidArgument)
	}
	if args.Operation.Name == "" {
		return nil, fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}
	if args.PollInterval <= 0 {
		return nil, fmt.Errorf("%w: poll interval must be positive", opdomain.ErrInvalidArgument)
	}
	if args.MaxWait < 0 {
		return nil, fmt.Errorf("%w: max wait must not be negative", opdomain.ErrInvalidArgument)
	}

	op := args.Operation
	name := op.Name
	start := s.clock.Now()

	var deadline time.Time
	if args.MaxWait > 0 {
		deadline = start.Add(args.MaxWait)
	}

	polls := 0
	for !op.Done {
		s.notify(ctx, Progress{
			Operation: name,
			Polls:     polls,
			Elapsed:   s.clock.Now().Sub(start),
			Metadata:  op.Metadata,
		})

		wait := args.PollInterval
		expires := false
		if !deadline.IsZero() {
			if remaining := deadline.Sub(s.clock.Now()); remaining < wait {
				wait = max(remaining, 0)
				expires = true
			}
		}

		if err := s.clock.Sleep(ctx, wait); err != nil {
			return nil, err
		}
		if expires {
			return nil, s.timeout(name, args.MaxWait, polls)
		}

		next, err := s.poll(ctx, name, deadline)
		if err != nil {
			if errors.Is(err, opdomain.ErrWaitTimeout) {
				s.logTimeout(name, args.MaxWait, polls)
			}
			return nil, err
		}
		polls++
		if !deadline.IsZero() && s.clock.Now().After(deadline) {
			return nil, s.timeout(name, args.MaxWait, polls)
		}
		op = next
	}

	if op.Error != nil {
		return nil, fmt.Errorf("%w: %s: %w", opdomain.ErrOperationFailed, name, op.Error)
	}
	if op.Result == nil {
		return nil, fmt.Errorf("%w: %s completed without result", opdomain.ErrOperationFailed, name)
	}

	s.log.Info("operation completed",
		zap.String("operation", name),
		zap.Int("polls", polls),
		zap.Duration("elapsed", s.clock.Now().Sub(start)),
		zap.Int("videos", len(op.Result.Videos)),
	)

	return &opdomain.WaitOperationResult{Operation: op, Polls: polls}, nil
}

func (s *Service) timeout(name string, maxWait time.Duration, polls int) error {
	s.logTimeout(name, maxWait, polls)
	return fmt.Errorf("%w: %s after %s (%d polls)", opdomain.ErrWaitTimeout, name, maxWait, polls)
}

func (s *Service) logTimeout(name string, maxWait time.Duration, polls int) {
	s.log.Warn("operation did not complete in time",
		zap.String("operation", name),
		zap.Int("polls", polls),
		zap.Duration("max_wait", maxWait),
	)
}

// poll issues one status query, retrying transient failures with backoff.
// With a non-zero deadline, retries that would end past it are not attempted
// and the transient failure is reported as ErrWaitTimeout.
func (s *Service) poll(ctx context.Context, name string, deadline time.Time) (*opdomain.Operation, error) {
	attempt := 0
	query := func() (*opdomain.Operation, error) {
		attempt++

		res, err := s.operationRepository.GetOperation(ctx, &opdomain.GetOperationArgs{Name: name})
		if err != nil {
			if opdomain.IsTransient(err) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		if res == nil || res.Operation == nil {
			return nil, backoff.Permanent(errors.New("service returned no operation"))
		}
		return res.Operation, nil
	}

	notify := func(err error, next time.Duration) {
		s.log.Warn("transient error while polling operation, retrying",
			zap.String("operation", name),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", next),
			zap.Error(err),
		)
	}

	op, err := backoff.RetryNotifyWithTimerAndData(query, s.backOff(ctx, deadline), notify, newClockTimer(ctx, s.clock))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !deadline.IsZero() && attempt < s.retry.MaxAttempts && opdomain.IsTransient(err) {
			return nil, fmt.Errorf("%w: %s: no time left to retry: %w", opdomain.ErrWaitTimeout, name, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", opdomain.ErrPollFailed, name, err)
	}

	return op, nil
}

func (s *Service) backOff(ctx context.Context, deadline time.Time) backoff.BackOff {
	// zero MaxElapsedTime means unbounded
	var maxElapsed time.Duration
	if !deadline.IsZero() {
		maxElapsed = max(deadline.Sub(s.clock.Now()), time.Nanosecond)
	}

	exp := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(s.retry.InitialInterval),
		backoff.WithMaxInterval(s.retry.MaxInterval),
		backoff.WithRandomizationFactor(s.retry.RandomizationFactor),
		backoff.WithMaxElapsedTime(maxElapsed),
		backoff.WithClockProvider(s.clock),
	)
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(s.retry.MaxAttempts-1)), ctx)
}
func (s *Service) notify(ctx context.Context, p Progress) {
	s.log.Info("waiting for operation to complete",
		zap.String("operation", p.Operation),
		zap.Int("poll", p.Polls),
		zap.Duration("elapsed", p.Elapsed),
	)
	for _, fn := range s.progress {
		fn(ctx, p)
	}
}
