// main.go
//
// Entry point; the CLI lives in cmd/.

package main

import "cpu-scheduler/cmd"

func main() {
	cmd.Execute()
}
