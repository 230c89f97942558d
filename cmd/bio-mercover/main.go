package main

// See doc.go for documentation
import (
	"github.com/grailbio/base/grail"
	"github.com/grailbio/mercover/cmd/bio-mercover/cmd"
)

func main() {
	shutdown := grail.Init()
	defer shutdown()
	cmd.Run()
}
