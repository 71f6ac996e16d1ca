// Command zoo runs a zoo roster through a simulated day and prints its
// reports.
package main

import "zoocore/internal/cli"

func main() {
	cli.Execute()
}
