package main

import "github.com/iksnae/plan-dataset/cmd"

func main() {
	cmd.Execute()
}
