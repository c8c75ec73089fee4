package main

import "github.com/dbsmedya/riverprobe/cmd/riverprobe/cmd"

func main() {
	cmd.Execute()
}
