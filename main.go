// Package main is the entry point for the pitchmetrics CLI tool, which imports
// football match event sheets and computes player and team metrics.
package main

import "github.com/pable/go-pitch-metrics/cmd"

func main() {
	cmd.Execute()
}
