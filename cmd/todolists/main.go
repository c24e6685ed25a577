package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nhle/todolists/internal/theme"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr, time.Now)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render("✖ "+err.Error()))
		os.Exit(1)
	}
}
