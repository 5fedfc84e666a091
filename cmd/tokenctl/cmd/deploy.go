package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"tokenforge/internal/chain"
	"tokenforge/internal/config"
	"tokenforge/internal/token"
	"tokenforge/internal/transactor"
	"tokenforge/pkg/log"
)

const deployTimeout = 5 * time.Minute

var (
	deployName     string
	deploySymbol   string
	deployDecimals uint8
	deploySupply   string
	deployBytecode string
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy a token contract",
	Long: `Deploys an ERC-20 token contract with the given parameters and waits
for it to be mined. Missing parameters are prompted for interactively.`,
	RunE: runDeploy,
}

func init() {
	deployCmd.Flags().StringVar(&deployName, "name", "", "token name")
	deployCmd.Flags().StringVar(&deploySymbol, "symbol", "", "token symbol")
	deployCmd.Flags().Uint8Var(&deployDecimals, "decimals", 18, "token decimals")
	deployCmd.Flags().StringVar(&deploySupply, "supply", "", "initial supply in whole tokens")
	deployCmd.Flags().StringVar(&deployBytecode, "bytecode", "", "path to the compiled contract bytecode (hex)")

	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cobraCmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := log.NewZapLogger("tokenctl", zapcore.WarnLevel)

	if err := promptDeployParams(); err != nil {
		return err
	}

	raw, err := os.ReadFile(deployBytecode)
	if err != nil {
		return fmt.Errorf("read bytecode file: %w", err)
	}

	supply, err := decimal.NewFromString(deploySupply)
	if err != nil {
		return fmt.Errorf("parse supply %q: %w", deploySupply, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	endpoint, err := chain.NewEndpoint(cfg.Chain.Chain, cfg.Chain.Network, cfg.Chain.APIKey)
	if err != nil {
		return err
	}

	connector, err := chain.Dial(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("connect to node: %w", err)
	}

	cred, err := transactor.NewCredential(cfg.Wallet.PrivateKey)
	if err != nil {
		return fmt.Errorf("load wallet credential: %w", err)
	}

	txr := transactor.New(logger, connector, cred)
	tokens := token.NewService(logger, txr, connector)

	fmt.Printf("Deploying %s (%s) to %s...\n", deployName, deploySymbol, endpoint.Network())

	contract, txHash, err := tokens.Deploy(ctx, token.DeployParams{
		Name:          deployName,
		Symbol:        deploySymbol,
		Decimals:      deployDecimals,
		InitialSupply: supply,
		Bytecode:      decodeBytecode(raw),
	}, deployTimeout)
	if err != nil {
		return fmt.Errorf("deploy token: %w", err)
	}

	fmt.Printf("Transaction: %s\n", txHash.Hex())
	fmt.Printf("Contract:    %s\n", contract.Hex())
	return nil
}

func promptDeployParams() error {
	var err error

	if deployName == "" {
		if deployName, err = prompt("Token name"); err != nil {
			return err
		}
	}
	if deploySymbol == "" {
		if deploySymbol, err = prompt("Token symbol"); err != nil {
			return err
		}
	}
	if deploySupply == "" {
		if deploySupply, err = prompt("Initial supply"); err != nil {
			return err
		}
	}
	if deployBytecode == "" {
		if deployBytecode, err = prompt("Bytecode file"); err != nil {
			return err
		}
	}

	return nil
}

func decodeBytecode(raw []byte) []byte {
	return common.FromHex(strings.TrimSpace(string(raw)))
}
