package main

import "project-hub.com/project-hub/cmd"

func main() {
	cmd.Execute()
}
