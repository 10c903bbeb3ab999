package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/UnknownOlympus/netwatch/internal/config"
	"github.com/UnknownOlympus/netwatch/internal/repository"
	"github.com/UnknownOlympus/netwatch/internal/seed"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	flags := viper.New()

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fills the netwatch database with synthetic speed tests and towers",
		Long: `seed creates the netwatch schema when it is missing and bulk loads generated
speed tests and BTS towers for the Alger, Oran, Constantine and Ouargla wilayas.
Database settings are read from the same environment as the API server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), flags, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().Int("samples", 1000, "Number of speed tests to generate")
	cmd.Flags().Int("towers-per-commune", 3, "Number of towers generated in every commune")
	cmd.Flags().Int("batch-size", 500, "Rows per COPY batch")
	cmd.Flags().Int64("seed", time.Now().UnixNano(), "Random seed, fixed values give reproducible data")
	cmd.Flags().Int("days", 30, "Samples are spread over this many days before now")
	cmd.Flags().Bool("reset", false, "Truncate both tables before inserting")
	cmd.Flags().Bool("verbose", false, "Enable debug logging")

	flags.SetEnvPrefix("SEED")
	flags.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	flags.AutomaticEnv()
	cobra.CheckErr(flags.BindPFlags(cmd.Flags()))

	return cmd
}

func run(ctx context.Context, flags *viper.Viper, progress io.Writer) error {
	level := slog.LevelInfo
	if flags.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.MustLoad()

	connString := repository.ConnString(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
	dtb, err := repository.NewDatabase(ctx, connString, cfg.Database.MaxConns)
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}
	defer dtb.Close()

	gen := seed.NewGenerator(flags.GetInt64("seed"), time.Now(), flags.GetInt("days"))
	seeder := seed.NewSeeder(logger, repository.NewRepository(dtb, logger), gen, progress)

	logger.InfoContext(ctx, "Seeding database", "seed", flags.GetInt64("seed"), "samples", flags.GetInt("samples"))

	res, err := seeder.Run(ctx, seed.Options{
		Samples:          flags.GetInt("samples"),
		TowersPerCommune: flags.GetInt("towers-per-commune"),
		BatchSize:        flags.GetInt("batch-size"),
		Reset:            flags.GetBool("reset"),
	})
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Seeding finished", "samples", res.Samples, "towers", res.Towers)

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
