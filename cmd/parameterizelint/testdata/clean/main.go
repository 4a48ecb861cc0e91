package main

import "example.com/clean/scoped"

func main() {
	done := scoped.Open()
	defer done()
}
