package main

import "example.com/basic/scoped"

func main() {
	scoped.Open() // discarded restore function

	done := scoped.Open() // never deferred
	_ = done
}
