// latinga converts Uzbek text between the current and the legacy Latin
// orthography, and checks text for consistent spelling.
package main

import "github.com/npillmayer/latinga/internal/cli"

func main() {
	cli.Execute()
}
