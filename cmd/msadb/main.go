// cmd/msadb/main.go
package main

import (
	"msadata/internal/appshell"
	"msadata/internal/fetchapp"
)

func main() { appshell.Main(fetchapp.RunContext) }
