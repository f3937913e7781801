// shopdex is the CivMC shops directory: find the cheapest or closest shop
// selling an item, straight from the terminal or over HTTP.
package main

import (
	"os"

	"github.com/civmc-shops/shopdex/cmd/shopdex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
