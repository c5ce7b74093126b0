package main

import (
	"os"

	"github.com/dasdy/vkeymap/cmd/vkeymap"
	"github.com/dasdy/vkeymap/logging"
)

func main() {
	vkeymap.Execute(logging.Setup(os.Stderr))
}
