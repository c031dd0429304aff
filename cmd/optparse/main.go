// Command optparse assigns command-line words to a declared option set and
// reports the values, properties and diagnostics that result.
//
//	optparse parse --bool verbose/v --list tags/t -- -v --tags=a,b file
//	optparse check options.hcl
package main

import (
	"os"

	optio "github.com/dzonerzy/go-optparse/io"
)

func main() {
	streams := optio.New()
	if err := newRootCmd(streams).Execute(); err != nil {
		code, reported := exitStatus(err)
		if !reported {
			optio.NewLogger(streams).Error("%v", err)
		}
		os.Exit(code)
	}
}
