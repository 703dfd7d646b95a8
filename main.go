package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/frahmantamala/complaint-redressal/cmd"
)

func main() {
	cmd.Execute()
}
