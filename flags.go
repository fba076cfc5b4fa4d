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
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bemasher/engunits/csv"
)

var format = flag.String("format", "plain", "result output format: plain, csv, or json")

var precision = flag.Int("precision", -1, "fractional digits for results, -1 for shortest exact")

var header = flag.Bool("header", false, "write a column header row before csv output")

var encoder Encoder

func EnvOverride() {
	flag.VisitAll(func(f *flag.Flag) {
		envName := "ENGUNITS_" + strings.ToUpper(f.Name)
		flagValue := os.Getenv(envName)
		if flagValue != "" {
			if err := flag.Set(f.Name, flagValue); err != nil {
				log.WithFields(log.Fields{
					"env":   envName,
					"flag":  f.Name,
					"value": flagValue,
				}).WithError(err).Error("environment override failed")
			} else {
				log.WithFields(log.Fields{
					"env":   envName,
					"flag":  f.Name,
					"value": flagValue,
				}).Info("environment override")
			}
		}
	})
}

func HandleFlags() {
	*format = strings.ToLower(*format)
	switch *format {
	case "plain":
		encoder = PlainEncoder{}
	case "csv":
		enc := csv.NewEncoder(os.Stdout)
		if *header {
			if err := enc.Header("expr", "value"); err != nil {
				log.WithError(err).Fatal("writing csv header")
			}
		}
		encoder = enc
	case "json":
		encoder = json.NewEncoder(os.Stdout)
	default:
		log.Fatalf("invalid format: %q", *format)
	}
}

// JSON and CSV encoders both implement this interface so we can simplify
// result output formatting.
type Encoder interface {
	Encode(interface{}) error
}

type PlainEncoder struct{}

func (pe PlainEncoder) Encode(msg interface{}) (err error) {
	_, err = fmt.Println(msg)
	return
}
