// Command helloworld prints "Hello, world!", or shows it in a message box
// when built with -tags messagebox.
package main

import "hello/internal/cli"

func main() {
	cli.Execute(cli.NewHelloWorldCmd())
}
