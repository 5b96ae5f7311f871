package main

import (
	"fmt"
	"os"

	comfyconfig "github.com/drmbt/comfy-config/cmd/comfy-config"
	"github.com/drmbt/comfy-config/pkg/ui/styles"
)

func main() {
	rootCmd := comfyconfig.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
