package main

import (
	"context"
	"log"
	"os"

	"github.com/solo-io/release-utils/ciutils"
	"github.com/solo-io/release-utils/internal/commands"
)

func main() {
	ctx := context.Background()
	if err := commands.RootCommand(ctx).Execute(); err != nil {
		ciutils.SetFailed(os.Stdout, err)
		log.Fatalf("unable to run: %v\n", err)
	}
}
