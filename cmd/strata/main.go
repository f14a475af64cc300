// Package main provides the Strata analytics framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/strata-ml/strata/algorithm"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Strata %s\n", version)
			return
		case "caps":
			fmt.Printf("detected CPU capability tier: %s\n", algorithm.DetectedTier())
			return
		}
	}

	fmt.Println("Strata - Batch Analytics Framework for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  caps       Show the detected CPU capability tier")
}
