// Command hellostaticlib calls staticlib.Showcase from a separate package.
package main

import "hello/internal/cli"

func main() {
	cli.Execute(cli.NewStaticLibCmd())
}
