package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LukaGiorgadze/gonull"
	"github.com/edup2p/orchid/orchid"
	"github.com/edup2p/orchid/orchid/netio"
	"github.com/edup2p/orchid/server/spectate"
)

var (
	configPath = flag.String("c", "orchid.json", "config file path, a missing file means defaults")
	bindIP     = flag.String("bind", "", "IP to bind to, overrides the config")
	hostPort   = flag.Uint("host-port", 0, "UDP port of the host, overrides the config")
	peerPort   = flag.Uint("peer-port", 0, "UDP port of a peer, overrides the config")
	passphrase = flag.String("passphrase", "", "seal all traffic with a room key derived from this passphrase")
	spectateOn = flag.String("spectate", "", "serve the spectator websocket on this address, e.g. \"127.0.0.1:8080\"")
	logPath    = flag.String("log", "orchid.log", "log file, the terminal is used for the game")
	verbose    = flag.Bool("v", false, "log at debug level")
)

var programLevel = new(slog.LevelVar) // Info by default

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags]             host a game\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "       %s [flags] <host addr> join a game\n\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		usage()
		os.Exit(2)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Fatalf("could not open log file: %v", err)
	}
	defer logFile.Close()

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: programLevel})))
	if *verbose {
		programLevel.Set(slog.LevelDebug)
	}

	cfg := loadConfig()

	role := orchid.Host
	var host netip.AddrPort
	if flag.NArg() == 1 {
		role = orchid.Peer

		if host, err = orchid.ParseHostAddr(flag.Arg(0)); err != nil {
			log.Fatal(err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cancel, cfg, role, host); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func loadConfig() orchid.Config {
	cfg, err := orchid.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *bindIP != "" {
		ip, err := netip.ParseAddr(*bindIP)
		if err != nil {
			log.Fatalf("invalid bind address: %v", err)
		}
		cfg.BindIP = ip
	}
	if *hostPort != 0 {
		cfg.HostPort = uint16(*hostPort)
	}
	if *peerPort != 0 {
		cfg.PeerPort = uint16(*peerPort)
	}
	if *passphrase != "" {
		cfg.Passphrase = gonull.NewNullable(*passphrase)
	}
	if *spectateOn != "" {
		cfg.SpectateAddr = gonull.NewNullable(*spectateOn)
	}

	return cfg
}

func run(ctx context.Context, cancel context.CancelFunc, cfg orchid.Config, role orchid.Role, host netip.AddrPort) error {
	opts, err := cfg.SessionOptions()
	if err != nil {
		return err
	}

	sock, err := netio.Listen(ctx, cfg.BindAddrPort(role))
	if err != nil {
		return err
	}
	defer sock.Close()

	session, err := orchid.NewSession(role, sock, opts)
	if err != nil {
		return err
	}

	slog.Info("starting", "role", role, "bind", sock.LocalAddrPort(), "sealed", opts.Codec.IsSealed())

	if role == orchid.Peer {
		if err := session.Join(host); err != nil {
			return err
		}
	}

	ui, err := newTermUI()
	if err != nil {
		return err
	}
	defer ui.Close()

	go ui.poll(cancel)

	var renderer orchid.Renderer = ui

	if cfg.SpectateAddr.Valid {
		hub := spectate.NewHub(ui)
		renderer = hub

		srv := &http.Server{
			Addr:        cfg.SpectateAddr.Val,
			Handler:     spectate.Handler(hub),
			ReadTimeout: 30 * time.Second,
			// Spectator streams are hijacked, they only end when their request context does.
			BaseContext: func(net.Listener) context.Context { return ctx },
		}

		go func() {
			slog.Info("spectate: serving", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("spectate: server failed", "err", err)
			}
		}()

		defer func() {
			sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer scancel()

			if err := srv.Shutdown(sctx); err != nil {
				slog.Warn("spectate: shutdown", "err", err)
			}
			hub.Wait()
		}()
	}

	loop := &orchid.Loop{
		Session:  session,
		Input:    ui,
		Renderer: renderer,
		TickRate: time.Second / time.Duration(cfg.TicksPerSecond),
	}

	return loop.Run(ctx)
}
