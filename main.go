package main

import "promptstudio/internal/app"

var version = "dev"

func main() {
	app.Execute(version)
}
