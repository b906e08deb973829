// fauxdoc CLI - renders document templates with synthetic values.
package main

import (
	"fmt"
	"os"

	"github.com/fauxdoc/fauxdoc/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
