// cmd/fqlint/main.go
package main

import (
	"fqlint/internal/app"
	"fqlint/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
