package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/datapacks/cmd/datapacks"
	"github.com/arthur-debert/datapacks/pkg/output/styles"
)

func main() {
	rootCmd := datapacks.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
