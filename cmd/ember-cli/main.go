// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	err := Run(context.Background(), os.Exit, &streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}, os.Args[1:]...)
	if err != nil {
		// Failed commands have already reported their diagnostics.
		if !stderrors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		}
		os.Exit(1)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
