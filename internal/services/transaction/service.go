package transaction

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"qsvault/internal/domain"
	"qsvault/internal/numeric"
)

// Config holds the runner's constants.
type Config struct {
	Profile   domain.ProfileName
	Precision int32
	Range     IndexRange
	Filter    FilterConfig
}

// Models bundles the collaborators the runner calls for each index.
type Models struct {
	Power     domain.PowerModel
	Frequency domain.FrequencyModel
	Fraction  domain.FractionModel
	Reducer   domain.StateReducer
}

func (m Models) validate() error {
	if m.Power == nil || m.Frequency == nil || m.Fraction == nil || m.Reducer == nil {
		return errors.New("transaction: all models and the reducer are required")
	}
	return nil
}

// Service is the transaction runner.
type Service struct {
	cfg    Config
	models Models
	filter *Filter
	gate   domain.ActivationGate
	clock  domain.Clock
	logger *slog.Logger
}

// New constructs a runner. A nil logger discards output.
func New(
	cfg Config,
	models Models,
	gate domain.ActivationGate,
	clock domain.Clock,
	logger *slog.Logger,
) (*Service, error) {
	if err := models.validate(); err != nil {
		return nil, err
	}
	if gate == nil || clock == nil {
		return nil, errors.New("transaction: gate and clock are required")
	}
	num := numeric.Default()
	if cfg.Precision != 0 {
		var err error
		if num, err = numeric.New(cfg.Precision); err != nil {
			return nil, err
		}
	}
	filter, err := NewFilter(cfg.Filter, num)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		cfg:    cfg,
		models: models,
		filter: filter,
		gate:   gate,
		clock:  clock,
		logger: logger,
	}, nil
}

// Run computes one report for the transfer of amount from sender to receiver.
//
// It fails with ErrPreconditionFailed when the gate is inactive (before any
// clock read) and with ErrInvalidArgument for a non-positive amount or an
// empty party. Per-index failures are returned in Report.Failures, never as
// an error.
func (s *Service) Run(sender, receiver string, amount int64) (domain.TransactionReport, error) {
	if !s.gate.IsActive() {
		return domain.TransactionReport{}, fmt.Errorf("%w: activation gate is inactive", domain.ErrPreconditionFailed)
	}
	if strings.TrimSpace(sender) == "" || strings.TrimSpace(receiver) == "" {
		return domain.TransactionReport{}, fmt.Errorf("%w: sender and receiver are required", domain.ErrInvalidArgument)
	}
	if amount <= 0 {
		return domain.TransactionReport{}, fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidArgument, amount)
	}

	start := s.clock.Now()
	results := make([]domain.SampleResult, 0, s.cfg.Range.Len())
	for i := s.cfg.Range.Start; i < s.cfg.Range.End; i++ {
		elapsed := seconds(s.clock.Now().Sub(start))
		if !s.filter.Accept(i) {
			continue
		}
		results = append(results, s.Sample(i, elapsed))
	}

	report := domain.TransactionReport{
		ID:        uuid.New(),
		Profile:   s.cfg.Profile,
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
		Timestamp: start,
		Samples:   make([]domain.QuantumSample, 0, len(results)),
	}
	for _, r := range results {
		if r.OK() {
			report.Samples = append(report.Samples, r.Sample)
			continue
		}
		report.Failures = append(report.Failures, *r.Failure)
		s.logger.Warn("sample skipped", "index", r.Index, "err", r.Failure.Err)
	}

	s.logger.Info("transaction complete",
		"id", report.ID,
		"profile", report.Profile,
		"samples", len(report.Samples),
		"failures", len(report.Failures),
	)
	return report, nil
}

// Sample computes the result for a single index. Model errors and panics
// become a failed SampleResult.
func (s *Service) Sample(index int, elapsed decimal.Decimal) (res domain.SampleResult) {
	fail := func(err error) domain.SampleResult {
		f := domain.NewSampleFailure(index, err)
		return domain.SampleResult{Index: index, Failure: &f}
	}
	defer func() {
		if r := recover(); r != nil {
			res = fail(fmt.Errorf("panic: %v", r))
		}
	}()

	magnitude := decimal.NewFromInt(int64(index))

	p, err := s.models.Power.Compute(magnitude)
	if err != nil {
		return fail(fmt.Errorf("power: %w", err))
	}
	f, err := s.models.Frequency.Compute(elapsed)
	if err != nil {
		return fail(fmt.Errorf("frequency: %w", err))
	}
	q, err := s.models.Fraction.Compute(magnitude)
	if err != nil {
		return fail(fmt.Errorf("fraction: %w", err))
	}

	return domain.SampleResult{
		Index: index,
		Sample: domain.QuantumSample{
			Index:     index,
			StateCode: s.models.Reducer.Reduce(p, f, q),
			Power:     p.DistributedPower,
			Frequency: f.Frequency,
			Fraction:  q.FractionPower,
		},
	}
}

// ParseAmount parses a transfer amount. It must be a positive integer.
func ParseAmount(raw string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not a number", domain.ErrInvalidArgument, raw)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: amount %s is not an integer", domain.ErrInvalidArgument, d)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be positive, got %s", domain.ErrInvalidArgument, d)
	}
	if !d.Equal(decimal.NewFromInt(d.IntPart())) {
		return 0, fmt.Errorf("%w: amount %s overflows int64", domain.ErrInvalidArgument, d)
	}
	return d.IntPart(), nil
}

// seconds converts a duration into exact decimal seconds.
func seconds(d time.Duration) decimal.Decimal {
	return decimal.New(int64(d), -9)
}

// Compile-time assertion that Service implements domain.TransactionRunner.
var _ domain.TransactionRunner = (*Service)(nil)
