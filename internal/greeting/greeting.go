// Package greeting emits the fixed example greetings through either the
// console or a native modal dialog.
package greeting

import "errors"

const (
	AppTitle             = "HelloWorldProject"
	HelloWorldMessage    = "Hello, world!"
	StaticLibraryMessage = "Hello from StaticLibrary module!"
)

// ErrEmptyMessage is returned by Validate for a greeting with no text.
var ErrEmptyMessage = errors.New("greeting message is empty")

// Greeting is a message plus the title used when it is shown in a dialog.
type Greeting struct {
	Title   string
	Message string
}

var (
	HelloWorld    = Greeting{Title: AppTitle, Message: HelloWorldMessage}
	StaticLibrary = Greeting{Title: AppTitle, Message: StaticLibraryMessage}
)

func (g Greeting) Validate() error {
	if g.Message == "" {
		return ErrEmptyMessage
	}
	return nil
}
