// ENGUNITS - A calculator for SI-prefixed dimensional quantities.
// Copyright (C) 2015 Douglas Hall
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
}

var (
	buildTag   = "dev"     // v#.#.#
	buildDate  = "unknown" // date -u '+%Y-%m-%d'
	commitHash = "unknown" // git rev-parse HEAD
)

var version = flag.Bool("version", false, "display build date and commit hash")

func main() {
	EnvOverride()
	flag.Parse()

	if *version {
		fmt.Println("Build Tag: ", buildTag)
		fmt.Println("Build Date:", buildDate)
		fmt.Println("Commit:    ", commitHash)
		os.Exit(0)
	}

	HandleFlags()

	exprs := flag.Args()
	if len(exprs) > 0 {
		run(exprs)
		return
	}

	// No expressions on the command line, read one per line from stdin.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			run([]string{line})
		}
	}
	if err := scanner.Err(); err != nil {
		log.WithError(err).Fatal("reading stdin")
	}
}

func run(exprs []string) {
	for _, expr := range exprs {
		res, err := Eval(expr)
		if err != nil {
			log.WithField("expr", expr).WithError(err).Error("evaluation failed")
			continue
		}

		if err := encoder.Encode(res); err != nil {
			log.WithError(err).Fatal("encoding result")
		}
	}
}
