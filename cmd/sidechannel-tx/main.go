// Command sidechannel-tx reads a payload file and transmits it as one covert-channel
// frame. This CLI surface, along with the file I/O it performs, is a collaborator around
// the modem core: a read failure is fatal here, but leaves the core modem unaffected.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sidechannel"
)

func main() {
	app := &cli.App{
		Name:      "sidechannel-tx",
		Usage:     "transmit a file as one covert CPU-load-channel frame",
		ArgsUsage: "<payload-file>",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("missing required argument: payload-file")
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading payload file %q", path)
	}

	diag := sidechannel.NewLogDiagnostics(log.Default())
	tx := sidechannel.NewTransmitter(sidechannel.MaxConcurrency, diag)
	tx.Send(payload)

	fmt.Fprintf(os.Stderr, "sent frame: %d payload bytes\n", len(payload))
	return nil
}
