package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"tokenforge/internal/config"
	"tokenforge/internal/faucet"
	"tokenforge/internal/transactor"
	"tokenforge/pkg/log"
)

var faucetAddress string

var faucetCmd = &cobra.Command{
	Use:   "faucet",
	Short: "Request test funds from the faucet",
	Long: `Asks the faucet to fund an address on the configured test network.
Without --address, the service wallet address is funded.`,
	RunE: runFaucet,
}

func init() {
	faucetCmd.Flags().StringVar(&faucetAddress, "address", "", "address to fund (defaults to the service wallet)")

	rootCmd.AddCommand(faucetCmd)
}

func runFaucet(cobraCmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := log.NewZapLogger("tokenctl", zapcore.WarnLevel)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if faucetAddress == "" {
		cred, err := transactor.NewCredential(cfg.Wallet.PrivateKey)
		if err != nil {
			return fmt.Errorf("load wallet credential: %w", err)
		}
		faucetAddress = cred.Address().Hex()
	}

	client := faucet.NewClient(logger, cfg.Faucet.BaseURL)

	fmt.Printf("Requesting funds for %s on %s...\n", faucetAddress, cfg.Chain.Network)

	if err := client.Request(ctx, faucetAddress, cfg.Chain.Network); err != nil {
		return fmt.Errorf("faucet request: %w", err)
	}

	fmt.Println("Funding request accepted.")
	return nil
}
