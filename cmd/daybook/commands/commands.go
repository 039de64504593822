package commands

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/daybook/core/internal/adapters/persistence"
	"github.com/daybook/core/internal/application/store"
	"github.com/daybook/core/internal/infrastructure/config"
	"github.com/daybook/core/internal/infrastructure/logger"
)

// validate enforces required-field rules on the command payloads. The
// store accepts any well-typed payload; validation is the view layer's
// duty.
var validate = validator.New()

// loadTimeout bounds the startup reads so a hung storage layer cannot
// block readiness forever.
const loadTimeout = 10 * time.Second

// withStore wires config, logger, storage and the store together, runs
// fn against a ready store, and flushes pending writes before closing.
func withStore(fn func(s *store.Store) error) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	kv, err := persistence.NewSQLiteKV(cfg.Storage.Path, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open storage", "error", err)
	}
	defer kv.Close()

	st := store.New(kv, appLogger, store.NewMetrics(prometheus.NewRegistry()))

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	if err := st.Load(ctx); err != nil {
		appLogger.Fatal("Failed to load store", "error", err)
	}

	if err := fn(st); err != nil {
		appLogger.Fatal("Command failed", "error", err)
	}

	st.Flush()
}

// validationError formats validator failures for terminal output.
func validationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			return fmt.Errorf("invalid %s: failed %q rule", fe.Field(), fe.Tag())
		}
	}
	return err
}

// today returns the current calendar day in the store's date format.
func today() string {
	return time.Now().Format("2006-01-02")
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Daybook version",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			fmt.Printf("%s v%s (%s)\n", cfg.App.Name, cfg.App.Version, cfg.App.Environment)
		},
	}
}
