// Command cmdctx is an interactive console for trying out command definitions.
//
// With no arguments, it starts a prompt. Otherwise, the arguments are run as a single command.
//
//	cmdctx [FLAGS...] [COMMAND [ARGS...]]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"golang.org/x/text/language"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/saylorsolutions/cmdctx/argument"
	"github.com/saylorsolutions/cmdctx/command"
	"github.com/saylorsolutions/cmdctx/console"
	"github.com/saylorsolutions/cmdctx/env"
)

const envPrefix = "CMDCTX_"

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Variables from a .env file in the working directory don't override the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	var (
		flags     = flag.NewFlagSet("cmdctx", flag.ContinueOnError)
		prefix    = flags.String("prefix", env.Val(envPrefix+"OPTION_PREFIX", command.DefaultOptionPrefix), "Prefix that marks a token as an option")
		locale    = flags.String("locale", env.Locale(envPrefix+"LOCALE", language.AmericanEnglish).String(), "Locale used to parse numbers, like de-DE")
		logLevel  = flags.String("log-level", env.LogLevel(envPrefix+"LOG_LEVEL", slog.LevelInfo).String(), "Minimum level of log output")
		logFile   = flags.String("log-file", env.Val(envPrefix+"LOG_FILE", ""), "Write logs to this file, rotating it as it grows, instead of STDERR")
		as        = flags.String("as", env.Val(envPrefix+"PLAYER", ""), "Run commands as a player with this name, instead of the console")
		grants    = flags.StringSlice("grant", nil, "Permissions given to the player set with --as")
		denied    = flags.StringSlice("deny", nil, "Permissions taken away from the console")
		showUsage = flags.BoolP("help", "h", false, "Prints this usage information")
	)
	flags.SetInterspersed(false)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *showUsage {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: cmdctx [FLAGS...] [COMMAND [ARGS...]]\n\nFLAGS\n%s", flags.FlagUsages())
		return nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid log level '%s': %w", *logLevel, err)
	}
	tag, err := language.Parse(*locale)
	if err != nil {
		return fmt.Errorf("invalid locale '%s': %w", *locale, err)
	}
	var logOut io.Writer = os.Stderr
	if len(*logFile) > 0 {
		rotating := &lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    16,
			MaxBackups: 3,
			MaxAge:     28,
		}
		defer func() {
			_ = rotating.Close()
		}()
		logOut = rotating
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signalCtx(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	printer := console.NewPrinter().Deny(*denied...)
	host := console.NewHost(newRegistry(tag), console.WithLogger(logger), console.WithPrinter(printer))
	addDemoCommands(host, *prefix, cancel)

	var sender command.Sender = printer
	if len(*as) > 0 {
		sender = newPlayer(*as, printer, *grants...)
	}
	logger.Debug("Starting", "locale", tag.String(), "sender", sender.Name(), "optionPrefix", *prefix)

	if rest := flags.Args(); len(rest) > 0 {
		return host.ExecTokens(sender, rest)
	}
	return host.Interactive(ctx, sender, os.Stdin, os.Stderr)
}

// newRegistry creates the default registry, with numbers parsed for the given locale ahead of the built-in parser.
func newRegistry(locale language.Tag) *argument.Registry {
	reg := argument.Register(argument.NewRegistry(), argument.NumberParser(locale))
	defaults := argument.NewDefaultRegistry()
	for _, key := range defaults.Keys() {
		for _, parser := range defaults.LookupAll(key) {
			reg.RegisterParser(parser)
		}
	}
	return reg
}

// signalCtx returns a context that's cancelled when one of the signals is received.
// A second signal exits the process.
func signalCtx(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, signals...)
	go func() {
		select {
		case <-sigs:
			cancel()
		case <-ctx.Done():
			signal.Stop(sigs)
			return
		}
		<-sigs
		os.Exit(1)
	}()
	return ctx, cancel
}
