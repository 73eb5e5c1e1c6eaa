package main

import (
	_ "time/tzdata"

	"github.com/m04kA/SMC-PublicBooker/internal/cli"
)

func main() {
	cli.Execute()
}
