// Command javasee is a structural pattern linter for Java.
package main

import (
	"os"

	"github.com/kmizu/JavaSee/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
