package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lsobral/solid"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of solid",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("solid version %s\n", strings.TrimSpace(solid.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
