package main

import "github.com/MrSnakeDoc/insights/internal/cli"

func main() {
	cli.Execute()
}
