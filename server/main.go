package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/movsb/webroot/internal"
)

func bindFlags(fs *flag.FlagSet, c *internal.Config) {
	fs.StringVar(&c.Listen, "listen", c.Listen, "listen address(host:port)")
	fs.StringVar(&c.Root, "root", c.Root, "document root")
	fs.IntVar(&c.ReadSize, "read-size", c.ReadSize, "bytes per socket read")
	fs.IntVar(&c.MaxRequestSize, "max-request-size", c.MaxRequestSize, "max request size in bytes, 0 for unlimited")
	fs.DurationVar(&c.ReadTimeout, "read-timeout", c.ReadTimeout, "time allowed to read a request, 0 for none")
	fs.BoolVar(&c.Confine, "confine", c.Confine, "refuse paths that leave the document root")
	fs.BoolVar(&c.Concurrent, "concurrent", c.Concurrent, "serve connections concurrently")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level (debug, info, error)")
	fs.BoolVar(&c.Log.Color, "log-color", c.Log.Color, "colored log output")
}

// parseConfig builds the config from defaults, then the -config file,
// then the flags given in args.
func parseConfig(args []string) (*internal.Config, error) {
	var configFile string
	config := internal.DefaultConfig()

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&configFile, "config", "", "yaml config file")
	bindFlags(fs, config)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if configFile != "" {
		fileConfig, err := internal.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}

		// flags given on the command line win over the file
		overlay := flag.NewFlagSet("file", flag.ContinueOnError)
		bindFlags(overlay, fileConfig)

		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "config" || setErr != nil {
				return
			}
			setErr = overlay.Set(f.Name, f.Value.String())
		})
		if setErr != nil {
			return nil, setErr
		}

		config = fileConfig
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func main() {
	config, err := parseConfig(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := config.LogLevel()
	tslog := internal.NewTSLog(os.Stderr, level, config.Log.Color)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// a second interrupt kills the process
	go func() {
		<-ctx.Done()
		stop()
	}()

	s := internal.NewServer(config, tslog)
	err = s.Run(ctx)
	stop()

	if err != nil {
		tslog.Red("%v", err)
		os.Exit(1)
	}
}
