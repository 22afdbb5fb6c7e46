// cmd/preparse-msas/main.go
package main

import (
	"msadata/internal/appshell"
	"msadata/internal/preparseapp"
)

func main() { appshell.Main(preparseapp.RunContext) }
