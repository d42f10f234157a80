package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pycraft",
	Short: "pycraft generates formatted Python source code from syntax trees",
	Long:  "pycraft builds Python syntax trees through scoped construction operations and renders them as formatted source code",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
