package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tcfw/stakesim/internal/config"
	"github.com/tcfw/stakesim/internal/netsim"
)

var (
	rootCmd = &cobra.Command{
		Use:   "stakesim",
		Short: "Simulates stake-weighted leader election, block proposal and per-node validation",
		RunE:  run,
	}
)

func Execute() error {
	rootCmd.Flags().BoolP("verbose", "v", false, "increase verbosity")
	rootCmd.Flags().IntP("validators", "n", 5, "number of validators to bootstrap")
	rootCmd.Flags().Uint64P("rounds", "r", 5, "number of consensus rounds to run")
	rootCmd.Flags().Int64("seed", 0, "random seed (0 seeds from the wall clock)")
	rootCmd.Flags().Int("max-block-tx", 5, "max transactions drained into one block")
	rootCmd.Flags().Float64("stake-min", 10, "minimum random stake")
	rootCmd.Flags().Float64("stake-max", 1000, "maximum random stake")
	rootCmd.Flags().Float64("rounds-per-second", 1, "round pacing (0 disables pacing)")

	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	viper.BindPFlag("validators", rootCmd.Flags().Lookup("validators"))
	viper.BindPFlag("rounds", rootCmd.Flags().Lookup("rounds"))
	viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
	viper.BindPFlag("max_block_tx", rootCmd.Flags().Lookup("max-block-tx"))
	viper.BindPFlag("stake_min", rootCmd.Flags().Lookup("stake-min"))
	viper.BindPFlag("stake_max", rootCmd.Flags().Lookup("stake-max"))
	viper.BindPFlag("rounds_per_second", rootCmd.Flags().Lookup("rounds-per-second"))

	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.GetConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	network, err := netsim.New(cfg)
	if err != nil {
		return errors.Wrap(err, "bootstrapping network")
	}

	errCh := make(chan error)

	go func() {
		errCh <- network.Run(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-waitExit(ctx):
		cancel()
		return <-errCh
	}
}

func waitExit(ctx context.Context) <-chan os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	return sigs
}
