// Command linebreak prints a separator line to standard output.
//
//	$ linebreak -t '-' -n 40
package main

import "github.com/nesv/linebreak"

func main() {
	linebreak.New(linebreak.DefaultName).Exec()
}
