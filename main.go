package main

import (
	"context"
	"os"

	"github.com/thenoetrevino/tablero/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background()))
}
