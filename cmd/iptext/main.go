package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yanet-platform/iptext/logging"
)

var cmd Cmd

// Cmd is the command line arguments.
type Cmd struct {
	// ConfigPath is the path to the optional configuration file.
	ConfigPath string
	// RawHex makes encode treat its arguments as raw hex digits.
	RawHex bool
}

var rootCmd = &cobra.Command{
	Use:           "iptext",
	Short:         "Canonical RFC 5952 text encoding for IP addresses",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cmd.ConfigPath, "config", "c", "", "Path to the configuration file")
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(pcapCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging() (*zap.SugaredLogger, error) {
	cfg, err := LoadConfig(cmd.ConfigPath)
	if err != nil {
		return nil, err
	}

	log, _, err := logging.Init(cfg.Logging)
	if err != nil {
		return nil, err
	}

	return log, nil
}
