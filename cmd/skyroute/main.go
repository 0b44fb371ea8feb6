// Command skyroute finds the cheapest flight routes in a route network file.
//
// Usage:
//
//	skyroute route    --network routes.yaml --from JFK --to CDG
//	skyroute reach    --network routes.yaml --from JFK
//	skyroute batch    --network routes.yaml --query JFK:CDG --query LHR:JFK
//	skyroute generate --kind random --n 50 --p 0.1 --seed 7 > routes.yaml
//
// Settings may also come from SKYROUTE_* environment variables or a .env
// file in the working directory or any parent.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/skyroute/internal/config"
)

func main() {
	if cwd, err := os.Getwd(); err == nil {
		if _, err := config.LoadEnvFile(cwd); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
			os.Exit(2)
		}
	}

	cmd := newRootCmd(config.FromEnv())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
