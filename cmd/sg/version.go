package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/schemaguard/schemaguard/internal/schema"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version, schema version and runtime details.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sg version %s\n", version)
		fmt.Printf("  Schema version: %s\n", schema.SchemaVersion)
		fmt.Printf("  Go version: %s\n", runtime.Version())
		fmt.Printf("  Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
