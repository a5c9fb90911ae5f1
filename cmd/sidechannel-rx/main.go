// Command sidechannel-rx listens on the covert CPU-load channel and writes each
// CRC-valid received packet to a file named <ns_since_epoch>.bin in the current
// directory. It runs until interrupted; the modem core itself never stops on its own.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sidechannel"
)

func main() {
	app := &cli.App{
		Name:   "sidechannel-rx",
		Usage:  "receive covert CPU-load-channel frames and write each to <ns>.bin",
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(*cli.Context) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	diag := sidechannel.NewLogDiagnostics(log.Default())
	rx := sidechannel.NewReceiver(sidechannel.MaxConcurrency, diag)

	for payload := range rx.Packets(ctx) {
		name := fmt.Sprintf("%d.bin", time.Now().UnixNano())
		if err := os.WriteFile(name, payload, 0o644); err != nil {
			return errors.Wrapf(err, "writing %q", name)
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", name, len(payload))
	}
	return nil
}
