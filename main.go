package main

import (
	"fmt"
	"os"

	"text-splitter/services"
	"text-splitter/ui"

	"gioui.org/app"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := newLogger()
	c, err := parseArgs(os.Args[1:])
	if err != nil {
		die(logger, 2, err)
	}
	if c.help != nil {
		c.help(os.Stdout)
		os.Exit(0)
	}
	if c.quiet {
		logger.SetLevel(logrus.WarnLevel)
	}

	textService := services.NewTextService(logger)
	textService.OutputRoot = c.outputRoot

	if !c.gui() {
		outcome := run(&c, textService)
		if outcome.Kind != services.OutcomeSucceeded {
			die(logger, 1, outcome.Message)
		}
		fmt.Println(outcome.Message)
		return
	}

	mainWindow := ui.NewMainWindow(textService, logger, c.linesPerFile)
	go func() {
		err := mainWindow.Run()
		if err != nil {
			die(logger, 1, err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(c *config, textService *services.TextService) services.Outcome {
	return services.Interaction{
		Choose:       func() (string, error) { return c.src, nil },
		Service:      textService,
		LinesPerFile: c.linesPerFile,
		Prefix:       c.prefix,
	}.Run()
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return logger
}

func die(logger logrus.FieldLogger, exitcode int, msg any) {
	logger.Error(msg)
	os.Exit(exitcode)
}
