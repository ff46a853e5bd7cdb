package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Azure/lexis/internal/logging"
	"github.com/Azure/lexis/internal/session"
)

// version is set at build time
var version string

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var (
		debugLogging bool
		metricsAddr  string
		keepGoing    bool
		opts         session.Options
	)
	flag.BoolVar(&debugLogging, "debug", false, "Enable debug logging")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "Optional address to serve Prometheus metrics on while running")
	flag.BoolVar(&keepGoing, "continue", false, "Report tokenization errors and continue with the next file instead of stopping")
	opts.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file...]\n\nTokenizes each file (or stdin) and writes its tokens to stdout.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, err := logging.NewZapLogger(debugLogging, version)
	if err != nil {
		return err
	}
	ctx = logr.NewContext(ctx, logger)

	if metricsAddr != "" {
		srv := &http.Server{Addr: metricsAddr, Handler: promhttp.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(err, "serving metrics")
			}
		}()
		defer srv.Close()
	}

	sess, err := session.New(opts)
	if err != nil {
		return err
	}
	enc, err := session.NewEncoder(os.Stdout, opts.Format)
	if err != nil {
		return err
	}

	return tokenizeAll(ctx, sess, enc, flag.Args(), keepGoing)
}

func tokenizeAll(ctx context.Context, sess *session.Session, enc *session.Encoder, files []string, keepGoing bool) error {
	logger := logr.FromContextOrDiscard(ctx)
	if len(files) == 0 {
		files = []string{"-"}
	}

	var failed int
	for _, file := range files {
		err := tokenizeFile(ctx, sess, enc, file)
		if err == nil {
			continue
		}
		if !keepGoing || ctx.Err() != nil {
			return err
		}
		failed++
		logger.Error(err, "tokenization failed", "file", file)
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(files))
	}
	return nil
}

func tokenizeFile(ctx context.Context, sess *session.Session, enc *session.Encoder, file string) error {
	text, name, err := readInput(file)
	if err != nil {
		return err
	}

	res, runErr := sess.Run(ctx, name, text)
	if res != nil {
		// Tokens read before a failure are still written
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return runErr
}

func readInput(file string) (text, name string, err error) {
	if file == "-" {
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(buf), "<stdin>", nil
	}

	buf, err := os.ReadFile(file)
	if err != nil {
		return "", "", fmt.Errorf("reading input: %w", err)
	}
	return string(buf), file, nil
}
