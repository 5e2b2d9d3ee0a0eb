package cli

import (
	"fmt"
	"io"
)

// toastNotifier prints screen notifications on their own line.
type toastNotifier struct {
	w io.Writer
}

func (n toastNotifier) Success(msg string) {
	fmt.Fprintf(n.w, "[ok] %s\n", msg)
}

func (n toastNotifier) Error(msg string) {
	fmt.Fprintf(n.w, "[error] %s\n", msg)
}
