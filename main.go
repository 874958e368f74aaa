package main

import "github.com/zekepinkerton/gosh/cmd"

func main() {
	cmd.Execute()
}
