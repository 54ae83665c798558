package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/filetug/crumbtug/pkg/crumbtug"
	"github.com/filetug/crumbtug/pkg/fsutils"
	"github.com/filetug/crumbtug/pkg/logutil"
	"github.com/filetug/crumbtug/pkg/profiling"
	"github.com/filetug/crumbtug/pkg/settings"
	"github.com/filetug/crumbtug/pkg/state"
	"github.com/rivo/tview"
	"github.com/spf13/pflag"
)

type options struct {
	path        string
	config      string
	logFile     string
	logLevel    string
	noAnimation bool
	writeConfig bool
	resume      bool
	cpuProfile  string
	memProfile  string
}

var osArgs = os.Args
var osExit = os.Exit
var osGetwd = os.Getwd
var stderr io.Writer = os.Stderr

var newStateStore = func() *state.Store {
	userDir, _ := settings.GetUserDir()
	return state.NewStore(userDir)
}

// closeLog closes the log file and profiles opened by newCrumbTugApp.
var closeLog = func() {}

func main() {
	app := newCrumbTugApp(osArgs[1:])
	if app == nil {
		return
	}
	defer closeLog()
	run(app)
}

func parseFlags(args []string) (o options, err error) {
	fs := pflag.NewFlagSet("crumbtug", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: crumbtug [flags]\n\nBrowse directories with an animated breadcrumb bar.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.StringVarP(&o.path, "path", "p", "", "directory to open, defaults to the working directory")
	fs.StringVarP(&o.config, "config", "c", "", "settings file, defaults to "+settings.UserDir+"/settings.yaml")
	fs.StringVar(&o.logFile, "log-file", "", "log file, defaults to "+settings.UserDir+"/crumbtug.log")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error or off")
	fs.BoolVar(&o.noAnimation, "no-animation", false, "apply path changes instantly")
	fs.BoolVarP(&o.resume, "resume", "r", false, "open the directory shown when crumbtug last exited, unless --path is given")
	fs.StringVar(&o.cpuProfile, "cpu-profile", "", "write a CPU profile to this file")
	fs.StringVar(&o.memProfile, "mem-profile", "", "write a heap profile to this file on exit")
	fs.BoolVar(&o.writeConfig, "write-config", false, "write the effective settings to the settings file and exit")
	if err = fs.Parse(args); err != nil && !errors.Is(err, pflag.ErrHelp) {
		// ContinueOnError leaves reporting to the caller
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
	}
	return
}

func newCrumbTugApp(args []string) (app *tview.Application) {
	o, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			osExit(0)
			return nil
		}
		osExit(2)
		return nil
	}

	cfg, err := loadConfig(&o)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		osExit(1)
		return nil
	}
	if o.writeConfig {
		if err = settings.Save(o.config, cfg.Settings); err != nil {
			_, _ = fmt.Fprintf(stderr, "%v\n", err)
			osExit(1)
			return nil
		}
		_, _ = fmt.Fprintf(stderr, "settings written to %s\n", o.config)
		osExit(0)
		return nil
	}

	logger, closer, err := newLogger(cfg.Settings)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to open log: %v\n", err)
		logger, closer = logutil.NewDiscardLogger(), func() {}
	}
	closeLog = withProfiling(o, closer)
	cfg.Logger = logger
	logger.Info("starting", "dir", cfg.StartDir)

	app = newApp(cfg)
	return
}

// loadConfig reads the settings file and applies the command line on top of it.
func loadConfig(o *options) (cfg crumbtug.Config, err error) {
	required := o.config != ""
	if o.config == "" {
		if o.config, err = settings.DefaultFilePath(); err != nil {
			return cfg, err
		}
	}
	if cfg.Settings, err = settings.Load(o.config, required && !o.writeConfig); err != nil {
		return cfg, err
	}
	if o.noAnimation {
		cfg.Settings.Animation.Enabled = false
	}
	if o.logLevel != "" {
		cfg.Settings.Log.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Settings.Log.File = o.logFile
	}

	cfg.State = newStateStore()
	startDir := o.path
	if startDir == "" && o.resume {
		startDir = cfg.State.CurrentDir()
	}
	if startDir == "" {
		if startDir, err = osGetwd(); err != nil {
			return cfg, err
		}
	}
	if startDir, err = filepath.Abs(fsutils.ExpandHome(startDir)); err != nil {
		return cfg, err
	}
	cfg.StartDir = fsutils.NearestExistingDir(startDir)
	return cfg, nil
}

// withProfiling starts the profiles requested by o and returns closer extended to finish them.
func withProfiling(o options, closer func()) func() {
	var stops []func()
	if o.cpuProfile != "" {
		stops = append(stops, profiling.DoCPUProfiling(o.cpuProfile))
	}
	if o.memProfile != "" {
		stops = append(stops, profiling.DoMemProfiling(o.memProfile))
	}
	return func() {
		for _, stop := range stops {
			stop()
		}
		closer()
	}
}

func newLogger(s settings.Settings) (*slog.Logger, func(), error) {
	level := s.LogLevel()
	if level == logutil.LevelOff {
		return logutil.NewDiscardLogger(), func() {}, nil
	}
	logFile := s.Log.File
	if logFile == "" {
		var err error
		if logFile, err = settings.DefaultLogFilePath(); err != nil {
			return nil, nil, err
		}
	}
	logger, f, err := logutil.NewFileLogger(fsutils.ExpandHome(logFile), level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = f.Close() }, nil
}

var setupApp = crumbtug.SetupApp

var newApp = func(cfg crumbtug.Config) *tview.Application {
	app := tview.NewApplication()
	setupApp(app, cfg)
	return app
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
	}
}
