package main

import (
	"fmt"
	"os"
	sys "os"
)

func main() {
	fmt.Println("start")
	defer func() {
		os.Exit(0)
	}()
	if len(os.Args) > 3 {
		sys.Exit(2) // want "os.Exit call is forbidden in main function"
	}
	os.Exit(1) // want "os.Exit call is forbidden in main function"
}

func helper() {
	os.Exit(3)
}
