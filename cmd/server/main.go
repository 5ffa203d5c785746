package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/chessview/pkg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	addr := flag.String("addr", pkg.SshPort, "address to listen for SSH connections")
	hostKey := flag.String("key", "", "path to SSH host key (generated when empty)")
	bin := flag.String("bin", defaultBinary(), "path to the chessterm binary")
	configPath := flag.String("config", "", "config file passed to every session")
	logPath := flag.String("log", "./server.log", "path to log file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := pkg.InitLog(*logPath, "SERVER", *debug)
	if err != nil {
		die(err)
	}
	defer logger.Sync()

	args := []string{"play"}
	if *configPath != "" {
		args = append(args, "-config", *configPath)
	}
	s, err := pkg.NewServer(*addr, *hostKey, *bin, args, logger)
	if err != nil {
		die(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server started", zap.String("addr", *addr), zap.String("bin", *bin))
		if err := s.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			return err
		}
		return nil
	})

	// Wait for terminate signal
	g.Go(func() error {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		select {
		case sig := <-sigc:
			logger.Info("shutting down", zap.Stringer("signal", sig))
		case <-ctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		die(err)
	}
}

// defaultBinary looks for chessterm next to this executable.
func defaultBinary() string {
	exe, err := os.Executable()
	if err != nil {
		return "chessterm"
	}
	return filepath.Join(filepath.Dir(exe), "chessterm")
}

func die(err error) {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
