// polyquad samples a polynomial over an interval and integrates it with the
// rectangular and trapezoidal rules.
package main

import (
	"errors"
	"os"

	"k8s.io/klog"

	"github.com/tuneinsight/polyquad/quadrature"
)

func main() {
	err := NewCommand(os.Stdout).Execute()
	klog.Flush()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps err to the process exit status. A sample buffer that cannot
// be allocated is fatal and reported with status 255.
func exitCode(err error) int {
	if errors.Is(err, quadrature.ErrAllocationFailure) {
		return 255
	}
	return 1
}
