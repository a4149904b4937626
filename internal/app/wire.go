package app

import (
	"fmt"

	"qsvault/internal/clock"
	"qsvault/internal/crypto"
	"qsvault/internal/domain"
	"qsvault/internal/models/fraction"
	"qsvault/internal/models/frequency"
	"qsvault/internal/models/power"
	"qsvault/internal/profile"
	"qsvault/internal/reducer"
	"qsvault/internal/services/gate"
	"qsvault/internal/services/transaction"
	"qsvault/internal/store"
)

// Wire bundles the models, services and stores for the CLI.
type Wire struct {
	Profile   profile.Profile
	Power     *power.Model
	Frequency *frequency.Model
	Fraction  *fraction.Model
	Reducer   *reducer.Reducer
	Gate      *gate.Gate
	Runner    *transaction.Service
	Reports   domain.ReportStore
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	prof := cfg.Profile
	if prof.Name == "" {
		prof = profile.Default()
	}
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	num, err := prof.Numeric()
	if err != nil {
		return nil, err
	}

	// Models
	pw := power.New(prof.Power, num)
	fq, err := frequency.New(prof.Frequency, num)
	if err != nil {
		return nil, fmt.Errorf("frequency model: %w", err)
	}
	fr, err := fraction.New(prof.Fraction, num)
	if err != nil {
		return nil, fmt.Errorf("fraction model: %w", err)
	}
	red, err := reducer.New(prof.Reducer, num)
	if err != nil {
		return nil, fmt.Errorf("reducer: %w", err)
	}

	var clk domain.Clock = clock.System{}
	if cfg.Clock != nil {
		clk = cfg.Clock
	}

	// Runner
	g := gate.New()
	runner, err := transaction.New(
		prof.TransactionConfig(),
		transaction.Models{Power: pw, Frequency: fq, Fraction: fr, Reducer: red},
		g,
		clk,
		cfg.Logger,
	)
	if err != nil {
		return nil, err
	}

	kdf := cfg.KDF
	if kdf == (crypto.KDFParams{}) {
		kdf = crypto.DefaultKDFParams()
	}

	return &Wire{
		Profile:   prof,
		Power:     pw,
		Frequency: fq,
		Fraction:  fr,
		Reducer:   red,
		Gate:      g,
		Runner:    runner,
		Reports:   store.NewReportFileStore(cfg.Passphrase, kdf),
	}, nil
}
