// Command trebuchet sums the calibration values of a calibration document.
package main

import "github.com/maisem/trebuchet/cmd"

func main() {
	cmd.Execute()
}
