package main

import (
	"github.com/walletkit-dev/walletkit/cmd"
)

func main() {
	cmd.Execute()
}
