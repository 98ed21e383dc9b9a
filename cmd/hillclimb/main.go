// Command hillclimb reads a heightmap file and prints the fewest moves from
// the start to the summit, then the fewest moves from any lowest cell.
//
//	hillclimb [-v] <input-path>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/PierreGagelin/aor-2022/hillclimb"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var errUsage = errors.New("usage: hillclimb [-v] <input-path>")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be driven from tests.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	fs := flag.NewFlagSet("hillclimb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "trace both searches on stderr")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		log.Error(errUsage)
		return exitUsage
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	path := fs.Arg(0)
	answers, err := hillclimb.SolveFile(ctx, path, hillclimb.WithLogger(log.WithField("input", path)))
	if err != nil {
		log.WithError(err).WithField("input", path).Error("cannot solve heightmap")
		return exitFail
	}
	fmt.Fprintln(stdout, answers.Climb)
	fmt.Fprintln(stdout, answers.Hike)

	return exitOK
}
