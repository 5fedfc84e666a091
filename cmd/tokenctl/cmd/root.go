package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tokenctl",
	Short: "Management commands for the token service",
	Long: `tokenctl runs one-off operations against the configured chain:
deploying token contracts and requesting test funds from the faucet.

Configuration is read from config.yaml and environment variables, the same
way the server reads it.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// prompt asks on stdout and reads one trimmed line from stdin. Used when a
// flag was not given on the command line.
func prompt(label string) (string, error) {
	fmt.Printf("%s > ", label)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}
