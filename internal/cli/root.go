package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hello/internal/buildinfo"
	"hello/internal/greeting"
	"hello/internal/logger"
	"hello/staticlib"
)

// Execute runs cmd, exiting 1 on error.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewHelloWorldCmd prints "Hello, world!" through the build channel.
func NewHelloWorldCmd() *cobra.Command {
	return newGreetCmd("helloworld", "Print the hello-world greeting", greeting.BuildChannel, greeting.PrintWith)
}

// NewStaticLibCmd calls the library Showcase function.
func NewStaticLibCmd() *cobra.Command {
	return newGreetCmd("hellostaticlib", "Show the greeting from the static library", staticlib.Channel(), staticlib.ShowcaseWith)
}

type greetFunc func(greeting.Channel, greeting.Options) error

func newGreetCmd(use, short string, def greeting.Channel, greet greetFunc) *cobra.Command {
	var (
		debug   bool
		channel string
	)

	cmd := &cobra.Command{
		Use:          use,
		Short:        short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleanup := logger.Setup(logger.Config{Out: cmd.ErrOrStderr(), Debug: debug})
			defer cleanup()

			ch := def
			if channel != "" {
				parsed, err := greeting.ParseChannel(channel)
				if err != nil {
					return err
				}
				ch = parsed
			}
			logger.L().Debug("greet.start", "program", use, "channel", ch, "version", buildinfo.Version)

			return greet(ch, greeting.Options{Out: cmd.OutOrStdout()})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")
	cmd.Flags().StringVar(&channel, "channel", "", fmt.Sprintf("output channel: console, dialog or auto (default %s)", def))
	cmd.AddCommand(newVersionCmd(use))
	return cmd
}

func newVersionCmd(program string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String(program))
		},
	}
}
