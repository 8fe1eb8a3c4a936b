//go:build !unix

package main

import "os"

func watchResize(*os.File, func(cols, rows int)) (stop func()) {
	return func() {}
}
