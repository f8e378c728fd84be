// Command hillclimb reads an elevation grid and prints the fewest steps from
// its start marker to its goal, then the fewest steps from the best
// lowest-elevation cell.
//
//	hillclimb [input]
//
// The input defaults to input.txt. Configuration may also come from
// .hillclimb.{yaml,toml,json} in the working directory or from
// HILLCLIMB_* environment variables.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithField("err", err).Error("hillclimb failed")
		os.Exit(1)
	}
}
