package cmd

import (
	"github.com/spf13/cobra"

	"github.com/CzarekM2012/Huffman/container"
)

var decodeOutDir string

var decodeCmd = &cobra.Command{
	Use:   "decode <file> [file...]",
	Short: "Restore one or more compressed files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed bool
		for _, src := range args {
			out, err := container.Decode(src, decodeOutDir)
			if err != nil {
				logFileError("decode", src, err)
				failed = true
				continue
			}
			log.Infof("decoded %s -> %s", src, out)
		}
		if failed {
			return errDecodeFailed
		}
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeOutDir, "output", "o", ".", "output directory")
	rootCmd.AddCommand(decodeCmd)
}
