package main

import (
	"os"

	"github.com/wbgray/votesim/internal/cmd"
	"github.com/wbgray/votesim/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errors.ErrCanceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
