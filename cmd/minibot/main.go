package main

import (
	"context"
	"os"

	"minibot/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], cli.Deps{Stdout: os.Stdout}))
}
