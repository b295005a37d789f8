package plugins_test

import (
	"fmt"
	"log"

	"github.com/sorour488/gaugebuild/plugins"
)

// A build host drives a command through the full lifecycle: look it up,
// reset its options, set raw option values, finalize, then run and map
// the boolean result to its own success signal.
func Example() {
	registry := plugins.DefaultRegistry()

	cmd := registry.Get("run").(*plugins.RunCommand)
	cmd.InitializeOptions()
	cmd.Tags = "smoke"
	cmd.Parallel = true
	cmd.Nodes = "4"

	if err := cmd.FinalizeOptions(); err != nil {
		log.Fatal(err)
	}

	ok, err := cmd.Run()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("specs passed:", ok)
}
