package main

import "github.com/phenomen/babelizer/cmd"

func main() {
	cmd.Execute()
}
