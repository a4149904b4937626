package commands

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"qsvault/internal/app"
	"qsvault/internal/clock"
	"qsvault/internal/domain"
	"qsvault/internal/profile"
)

var (
	profileName string
	profileFile string
	logLevel    string
	passphrase  string
	clockStep   time.Duration

	appCtx *app.Wire
)

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q", s)
	}
	return lvl, nil
}

func loadProfile() (profile.Profile, error) {
	if profileFile != "" {
		return profile.LoadFile(profileFile)
	}
	return profile.Lookup(profileName)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "qsvault",
		Short:        "Deterministic transaction sampling over decimal models",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			logger := slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
				Level:      lvl,
				TimeFormat: "15:04:05",
			}))

			prof, err := loadProfile()
			if err != nil {
				return err
			}

			var clk domain.Clock = clock.System{}
			if clockStep > 0 {
				clk = clock.NewStepper(time.Now(), clockStep)
			}

			appCtx, err = app.NewWire(app.Config{
				Profile:    prof,
				Logger:     logger,
				Clock:      clk,
				Passphrase: passphrase,
			})
			if err != nil {
				return err
			}
			logger.Debug("wired", "profile", prof.Name, "precision", prof.Precision)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&profileName, "profile", string(profile.Linear), "built-in profile (linear|fixed)")
	root.PersistentFlags().StringVar(&profileFile, "profile-file", "", "YAML profile override file (takes precedence over --profile)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal exported reports")

	root.AddCommand(runCmd(), sampleCmd(), profilesCmd(), showCmd())
	return root
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}
