package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/LukaGiorgadze/gonull"
	"github.com/abiosoft/ishell/v2"
	"github.com/edup2p/orchid/orchid"
	"github.com/edup2p/orchid/orchid/netio"
	"github.com/edup2p/orchid/types"
	"github.com/edup2p/orchid/types/key"
)

var (
	programLevel = new(slog.LevelVar) // Info by default

	cfg = orchid.DefaultConfig()

	// mu guards everything below, the run loop and the shell both touch the session.
	mu      sync.Mutex
	session *orchid.Session
	sock    *netio.Socket
	input   orchid.InputState

	stopLoop context.CancelFunc
)

// frameRenderer counts frames of the background run loop, the shell looks at the session on demand.
type frameRenderer struct {
	frames int
}

func (f *frameRenderer) Bounds() (float32, float32) { return 800, 600 }

func (f *frameRenderer) Render(orchid.Snapshot) { f.frames++ }

func main() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel, AddSource: true})
	slog.SetDefault(slog.New(h))
	programLevel.Set(slog.LevelDebug)

	shell := ishell.New()

	shell.SetHomeHistoryPath(".orchid_history")

	shell.Println("Orchid Interactive Shell")

	shell.AddCmd(&ishell.Cmd{
		Name: "trace",
		Help: "set log level to trace",
		Func: func(c *ishell.Context) {
			programLevel.Set(types.LevelTrace)
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "debug",
		Help: "set log level to debug",
		Func: func(c *ishell.Context) {
			programLevel.Set(slog.LevelDebug)
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "info",
		Help: "set log level to info",
		Func: func(c *ishell.Context) {
			programLevel.Set(slog.LevelInfo)
		},
	})

	shell.AddCmd(keyCmd())
	shell.AddCmd(hostCmd())
	shell.AddCmd(joinCmd())
	shell.AddCmd(pressCmd())
	shell.AddCmd(releaseCmd())
	shell.AddCmd(tickCmd())
	shell.AddCmd(runCmd())
	shell.AddCmd(stopCmd())
	shell.AddCmd(statusCmd())
	shell.AddCmd(peersCmd())
	shell.AddCmd(shipsCmd())
	shell.AddCmd(closeCmd())

	shell.Run()

	mu.Lock()
	closeSession()
	mu.Unlock()
}

var errNoSession = errors.New("no session, use host or join first")

func keyCmd() *ishell.Cmd {
	c := &ishell.Cmd{
		Name: "key",
		Help: "room key used for new sessions",
		Func: func(c *ishell.Context) {
			if !cfg.RoomKey.Valid {
				c.Println("key: none, traffic is plain")
				return
			}
			c.Println("key:", cfg.RoomKey.Val.Debug())
		},
	}

	c.AddCmd(&ishell.Cmd{
		Name: "gen",
		Help: "generate a new room key",
		Func: func(c *ishell.Context) {
			k := key.NewRoom()
			cfg.RoomKey = gonull.NewNullable(k)

			text, _ := k.MarshalText()
			c.Println("key generated:", string(text))
		},
	})

	c.AddCmd(&ishell.Cmd{
		Name: "set",
		Help: "set a room key, with 'room:' prefix",
		Func: func(c *ishell.Context) {
			var line string
			if len(c.Args) == 0 {
				c.Println("enter the key, with 'room:' prefix")
				line = c.ReadLine()
			} else {
				line = c.Args[0]
			}

			k, err := parseRoomKey(line)
			if err != nil {
				c.Err(err)
				return
			}
			cfg.RoomKey = gonull.NewNullable(k)
		},
	})

	c.AddCmd(&ishell.Cmd{
		Name: "pass",
		Help: "derive the room key from a passphrase",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("usage: key pass <passphrase>"))
				return
			}
			cfg.RoomKey = gonull.NewNullable(key.RoomFromPassphrase(strings.Join(c.Args, " ")))
		},
	})

	c.AddCmd(&ishell.Cmd{
		Name: "clear",
		Help: "go back to plain traffic",
		Func: func(c *ishell.Context) {
			cfg.RoomKey = gonull.Nullable[key.RoomKey]{}
		},
	})

	return c
}

// startSession binds a socket for role, replacing any current session.
func startSession(role orchid.Role) error {
	closeSession()

	opts, err := cfg.SessionOptions()
	if err != nil {
		return err
	}

	s, err := netio.Listen(context.Background(), cfg.BindAddrPort(role))
	if err != nil {
		return err
	}

	sess, err := orchid.NewSession(role, s, opts)
	if err != nil {
		s.Close()
		return err
	}

	sock, session = s, sess
	input = orchid.InputState{}
	return nil
}

func closeSession() {
	if stopLoop != nil {
		stopLoop()
		stopLoop = nil
	}
	if sock != nil {
		sock.Close()
	}
	sock, session = nil, nil
}

func portArg(c *ishell.Context, def uint16) (uint16, bool) {
	if len(c.Args) == 0 {
		return def, true
	}

	p, err := strconv.ParseUint(c.Args[0], 10, 16)
	if err != nil {
		c.Err(err)
		return 0, false
	}
	return uint16(p), true
}

func hostCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "host",
		Help: "host a session: host [port]",
		Func: func(c *ishell.Context) {
			port, ok := portArg(c, orchid.DefaultHostPort)
			if !ok {
				return
			}

			mu.Lock()
			defer mu.Unlock()

			cfg.HostPort = port
			if err := startSession(orchid.Host); err != nil {
				c.Err(err)
				return
			}

			c.Println("hosting on", sock.LocalAddrPort())
		},
	}
}

func joinCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "join",
		Help: "join a host: join <host addr> [local port], repeat to resend the connect request",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("usage: join <host addr> [local port]"))
				return
			}

			host, err := orchid.ParseHostAddr(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			mu.Lock()
			defer mu.Unlock()

			if session == nil || session.Role() != orchid.Peer {
				c.Args = c.Args[1:]
				port, ok := portArg(c, orchid.DefaultPeerPort)
				if !ok {
					return
				}

				cfg.PeerPort = port
				if err := startSession(orchid.Peer); err != nil {
					c.Err(err)
					return
				}
			}

			if err := session.Join(host); err != nil {
				c.Err(err)
			}
		},
	}
}

func setControls(args []string, v bool) error {
	for _, a := range args {
		switch a {
		case "up":
			input.Up = v
		case "down":
			input.Down = v
		case "left":
			input.Left = v
		case "right":
			input.Right = v
		case "fire":
			input.Fire = v
		case "special":
			input.Special = v
		case "shield":
			input.Shield = v
		case "restart":
			input.Restart = v
		default:
			return errors.New("unknown control " + strconv.Quote(a))
		}
	}
	return nil
}

func pressCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "press",
		Help: "hold controls: press up|down|left|right|fire|special|shield|restart...",
		Func: func(c *ishell.Context) {
			mu.Lock()
			defer mu.Unlock()

			if err := setControls(c.Args, true); err != nil {
				c.Err(err)
			}
		},
	}
}

func releaseCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "release",
		Help: "release controls, all of them without arguments",
		Func: func(c *ishell.Context) {
			mu.Lock()
			defer mu.Unlock()

			if len(c.Args) == 0 {
				input = orchid.InputState{}
				return
			}

			if err := setControls(c.Args, false); err != nil {
				c.Err(err)
			}
		},
	}
}

func tickCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "tick",
		Help: "advance the session by n ticks of 1/60s: tick [n]",
		Func: func(c *ishell.Context) {
			n := 1
			if len(c.Args) > 0 {
				var err error
				if n, err = strconv.Atoi(c.Args[0]); err != nil {
					c.Err(err)
					return
				}
			}

			mu.Lock()
			defer mu.Unlock()

			if session == nil {
				c.Err(errNoSession)
				return
			}

			for range n {
				session.Tick(1.0/60, input, 800, 600)
			}

			c.Println("phase:", session.Phase())
		},
	}
}

func runCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "run",
		Help: "tick the session in the background at 60Hz until stop",
		Func: func(c *ishell.Context) {
			mu.Lock()
			defer mu.Unlock()

			if session == nil {
				c.Err(errNoSession)
				return
			}
			if stopLoop != nil {
				c.Println("already running")
				return
			}

			ctx, cancel := context.WithCancel(context.Background())
			stopLoop = cancel

			s := session
			go func() {
				r := &frameRenderer{}
				ticker := time.NewTicker(orchid.DefaultTickRate)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						slog.Info("run loop stopped", "frames", r.frames)
						return
					case <-ticker.C:
					}

					mu.Lock()
					s.Tick(float32(orchid.DefaultTickRate.Seconds()), input, 800, 600)
					r.Render(s.Snapshot())
					mu.Unlock()
				}
			}()
		},
	}
}

func stopCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "stop",
		Help: "stop the background run loop",
		Func: func(c *ishell.Context) {
			mu.Lock()
			defer mu.Unlock()

			if stopLoop == nil {
				c.Println("not running")
				return
			}
			stopLoop()
			stopLoop = nil
		},
	}
}

func statusCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "status",
		Help: "show the session state",
		Func: func(c *ishell.Context) {
			mu.Lock()
			defer mu.Unlock()

			if session == nil {
				c.Println("no session")
				return
			}

			snap := session.Snapshot()
			c.Printf("%s on %s, phase %s, %d peers, %d replicas\n",
				snap.Role, sock.LocalAddrPort(), snap.Phase, snap.Peers, session.Directory().ReplicaCount())
			c.Printf("special ready: %t, shield ready: %t, bullets: %d\n", snap.SpecialReady, snap.ShieldReady, len(snap.Bullets))
			c.Printf("held: %+v\n", input)
		},
	}
}

func peersCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "peers",
		Help: "list the known peer addresses",
		Func: func(c *ishell.Context) {
			mu.Lock()
			defer mu.Unlock()

			if session == nil {
				c.Err(errNoSession)
				return
			}

			for _, ap := range session.Directory().Peers() {
				c.Println(ap)
			}
		},
	}
}

func shipsCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "ships",
		Help: "list every ship this node knows",
		Func: func(c *ishell.Context) {
			mu.Lock()
			defer mu.Unlock()

			if session == nil {
				c.Err(errNoSession)
				return
			}

			for _, sv := range session.Snapshot().Ships {
				c.Printf("%-6s %s\n", sv.Kind, sv.Ship.Debug())
			}
		},
	}
}

func closeCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "close",
		Help: "close the current session",
		Func: func(c *ishell.Context) {
			mu.Lock()
			defer mu.Unlock()

			closeSession()
		},
	}
}

func parseRoomKey(line string) (key.RoomKey, error) {
	var k key.RoomKey
	if err := k.UnmarshalText([]byte(strings.TrimSpace(line))); err != nil {
		return k, err
	}
	if k.IsZero() {
		return k, orchid.ErrZeroRoomKey
	}
	return k, nil
}
