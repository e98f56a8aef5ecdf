package main

import (
	"alcyxob/trainer-console/internal/console"
	"fmt"
	"os"
)

func main() {
	if err := console.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
