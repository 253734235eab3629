// Package cmd implements the gohuff command-line interface: a
// Huffman-coding file compressor with a static (two-pass, canonical)
// and an adaptive (single-pass, FGK/Vitter-style) codec.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CzarekM2012/Huffman/internal/huffconfig"
)

var (
	log        = logrus.New()
	cfg        *huffconfig.Config
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gohuff",
	Short: "Huffman-coding file compressor",
	Long: `gohuff compresses and restores files with a classical static
Huffman coder or a dynamic adaptive (FGK/Vitter-style) coder, keeping
each file's original extension inside the compressed container.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		loaded, err := huffconfig.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command, exiting with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a gohuff config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
