// Terratex - placeholder terrain texture generator
//
// Terratex synthesizes seamless placeholder textures for every terrain
// type in a map-rendering client, one PNG per terrain record.
package main

import (
	"os"

	"github.com/mapforge/terratex/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
