package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/adap-names/names/cmd/convert"
	"github.com/adap-names/names/cmd/tree"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})
	if err := mainCore(); err != nil {
		log.Fatal(err)
	}
}

// CLI is a definition for kong command line parser
var CLI struct {
	LogLevel string `help:"Log level. Must be case-insensitive equal to one of trace, debug, info, warning, error, panic and fatal"`
	LogFile  string `help:"Also write log output to this file, rotating it when it grows beyond 10 megabytes"`

	Convert convert.CLI `cmd:"" help:"Parse a name and print it in another form"`
	Tree    tree.CLI    `cmd:"" help:"Load a tree manifest and print full names"`
}

func mainCore() error {
	ctx := context.Background()
	kongCtx := kong.Parse(&CLI, kong.Name("namectl"))
	if CLI.LogLevel != "" {
		if logLevel, err := log.ParseLevel(CLI.LogLevel); err != nil {
			return fmt.Errorf(`value of log level flag must be case-insensitive equal to one of trace, debug, info, warning, error, panic `+
				`and fatal but got %#v`, CLI.LogLevel)
		} else {
			log.SetLevel(logLevel)
		}
	}
	if CLI.LogFile != "" {
		logFile := &lumberjack.Logger{
			Filename:   CLI.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
		}
		defer logFile.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}
	switch kongCtx.Command() {
	case "convert <name>":
		return convert.Run(ctx, &CLI.Convert, os.Stdout)
	case "tree <manifest>":
		return tree.Run(ctx, &CLI.Tree, os.Stdout)
	default:
		panic(kongCtx.Command())
	}
}
