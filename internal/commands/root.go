package commands

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/solo-io/release-utils/contextutils"
	"github.com/solo-io/release-utils/internal"
)

// Configure the CLI, including possible commands and input args.
func RootCommand(ctx context.Context) *cobra.Command {
	return NewRootCommand(ctx, internal.DefaultRuntime())
}

func NewRootCommand(ctx context.Context, runtime *internal.Runtime) *cobra.Command {
	globalFlags := &internal.GlobalFlags{}

	cmd := &cobra.Command{
		Use:   "releasectl [command]",
		Short: "CLI for cutting calendar versioned releases and announcing them on slack",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if globalFlags.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
				contextutils.SetLogLevelFromString("debug")
			}
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(runtime.Out)

	// Use custom logrus formatter
	logrus.SetFormatter(logFormatter{})

	// set global CLI flags
	globalFlags.AddToFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		VersionCommand(ctx, globalFlags, runtime),
		ReleaseCommand(ctx, globalFlags, runtime),
		NotifyCommand(ctx, globalFlags, runtime),
		RunCommand(ctx, globalFlags, runtime),
	)

	return cmd
}

type logFormatter struct{}

func (logFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer
	switch entry.Level {
	case logrus.DebugLevel:
		_, _ = color.New(color.FgHiBlack).Fprintln(&buf, entry.Message)
	case logrus.InfoLevel:
		_, _ = fmt.Fprintln(&buf, entry.Message)
	case logrus.WarnLevel:
		_, _ = color.New(color.FgYellow).Fprint(&buf, "warning: ")
		_, _ = fmt.Fprintln(&buf, entry.Message)
	case logrus.ErrorLevel:
		_, _ = color.New(color.FgRed).Fprint(&buf, "error: ")
		_, _ = fmt.Fprintln(&buf, entry.Message)
	case logrus.FatalLevel:
		_, _ = color.New(color.FgRed).Fprint(&buf, "fatal: ")
		_, _ = fmt.Fprintln(&buf, entry.Message)
	case logrus.PanicLevel:
		_, _ = color.New(color.FgRed).Fprint(&buf, "panic: ")
		_, _ = fmt.Fprintln(&buf, entry.Message)
	}

	return buf.Bytes(), nil
}
