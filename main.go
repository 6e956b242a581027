package main

import "github.com/qoobee/assetgen/cmd"

func main() {
	cmd.Execute()
}
