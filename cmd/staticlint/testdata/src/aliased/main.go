package main

import sys "os"

func main() {
	func() {
		sys.Exit(1) // want "direct call to os.Exit is not allowed in main"
	}()
}
