// Massbar is a launcher companion for massCode. It searches the snippet
// library of a locally running massCode instance and copies or pastes the
// selected fragment.
package main

import (
	"github.com/massbar-labs/massbar-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
