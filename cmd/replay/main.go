// Command replay feeds a recorded position trace through the navigation
// tracker against a stored OpenRouteService directions response.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
