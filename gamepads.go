// This file is part of Gamepads.
//
// Gamepads is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gamepads is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gamepads.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gamepads/config"
	"github.com/jetsetilly/gamepads/curated"
	"github.com/jetsetilly/gamepads/easyterm"
	"github.com/jetsetilly/gamepads/frame"
	"github.com/jetsetilly/gamepads/gamepad"
	"github.com/jetsetilly/gamepads/hook"
	"github.com/jetsetilly/gamepads/logger"
	"github.com/jetsetilly/gamepads/modalflag"
	"github.com/jetsetilly/gamepads/paths"
	"github.com/jetsetilly/gamepads/provider"
	"github.com/jetsetilly/gamepads/sdlhost"
	"github.com/jetsetilly/gamepads/statsview"
	"github.com/jetsetilly/gamepads/version"
	"github.com/jetsetilly/gamepads/view"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// change how often the main thread services the host and runs frames.
	//
	// takes int argument, indicating frames per second.
	reqRefreshRate stateReq = "REFRESHRATE"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function. this
// is required because SDL requires event handling (including initialisation)
// to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (*sdlhost.Host, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan *sdlhost.Host
	creationError chan error

	// frames are run by the main thread after the host has been serviced
	pump *frame.Pump

	// closed by the main thread when the host receives a quit event
	hostQuit chan bool
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (*sdlhost.Host, error)),
		creation:      make(chan *sdlhost.Host),
		creationError: make(chan error),
		pump:          &frame.Pump{},
		hostQuit:      make(chan bool),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	ticker := time.NewTicker(time.Second / time.Duration(config.DefaultRefreshRate))
	defer ticker.Stop()

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. new host creation functions
	//  2. state requests
	//  3. the frame ticker, which services the host and runs pending frames
	//
	done := false
	var host *sdlhost.Host
	for !done {
		select {
		case creator := <-sync.creator:
			if host != nil {
				host.Destroy()
			}

			var err error
			host, err = creator()
			if err != nil {
				host = nil
				sync.creationError <- err
			} else {
				sync.creation <- host
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqRefreshRate:
				if v, ok := state.args.(int); ok && v > 0 {
					ticker.Reset(time.Second / time.Duration(v))
				} else {
					panic(fmt.Sprintf("%s requires a positive int argument", reqRefreshRate))
				}
			}

		case <-ticker.C:
			if host != nil {
				host.Service()
				if host.Quit() {
					select {
					case <-sync.hostQuit:
					default:
						close(sync.hostQuit)
					}
				}
			}
			sync.pump.Frame()
		}
	}

	if host != nil {
		host.Destroy()
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate host creation and to quit.
func launch(sync *mainSync) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// the host quitting is treated in the same way as an interrupt
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-sync.hostQuit:
			cancel()
		case <-ctx.Done():
		}
	}()

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("WATCH", "LOG", "DUMP", "VERSION")

	configFile := md.AddString("config", paths.ConfigFile(), "configuration file")
	echo := md.AddBool("echo", false, "echo log to stderr")
	rate := md.AddInt("rate", 0, "frames per second (overrides configuration)")
	deadZone := md.AddFloat64("deadzone", -1.0, "axis dead zone (overrides configuration)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if md.Mode() == "VERSION" {
		fmt.Println(version.String())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	cfg, err := config.Load(*configFile)
	if err == nil {
		err = applyOverrides(md, cfg, *echo, *rate, *deadZone)
	}
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if cfg.EchoLog {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if cfg.Statsview {
		if statsview.Available() {
			statsview.Launch(os.Stdout, cfg.StatsviewAddress)
		} else {
			logger.Log(logger.Allow, "gamepads", "statsview not available in this build")
		}
	}

	sync.state <- stateRequest{req: reqRefreshRate, args: cfg.RefreshRate}

	switch md.Mode() {
	case "WATCH":
		err = watch(ctx, md, sync, cfg)

	case "LOG":
		err = logMode(ctx, md, sync, cfg)

	case "DUMP":
		err = dump(ctx, md, sync, cfg)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		if curated.Has(err, sdlhost.InitError) {
			fmt.Println("* is SDL2 installed with game controller support?")
		}

		// the log will already have been seen if it was being echoed
		if !cfg.EchoLog {
			logger.Write(os.Stdout)
		}

		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// applyOverrides changes the configuration with the values from the command
// line. only flags that were set are applied.
func applyOverrides(md *modalflag.Modes, cfg *config.Config, echo bool, rate int, deadZone float64) error {
	md.Visit(func(flag string) {
		switch flag {
		case "echo":
			cfg.EchoLog = echo
		case "rate":
			cfg.RefreshRate = rate
		case "deadzone":
			cfg.DeadZone = deadZone
		}
	})
	return cfg.Validate()
}

// createHost asks the main thread to create a new SDL host and waits for the
// result.
func createHost(sync *mainSync, cfg *config.Config) (gamepad.Host, error) {
	sync.creator <- func() (*sdlhost.Host, error) {
		return sdlhost.New(cfg.DeadZone)
	}

	select {
	case h := <-sync.creation:
		return h.Gamepad(sync.pump), nil
	case err := <-sync.creationError:
		return gamepad.Host{}, err
	}
}

func watch(ctx context.Context, md *modalflag.Modes, sync *mainSync, cfg *config.Config) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	host, err := createHost(sync, cfg)
	if err != nil {
		return err
	}

	prv := provider.New(host)
	if err := prv.Start(ctx); err != nil {
		return err
	}
	defer prv.Close()

	// the view writes to the terminal so stop echoing the log. the view shows
	// the most recent log entries itself
	logger.SetEcho(nil)

	return view.Run(provider.NewContext(ctx, prv), prv, cfg.View)
}

func logMode(ctx context.Context, md *modalflag.Modes, sync *mainSync, cfg *config.Config) error {
	md.NewMode()
	md.AdditionalHelp("Prints the gamepads every time they change. Press 'l' to print new log entries and 'q' to quit.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	if err := term.CBreakMode(); err != nil {
		return err
	}
	defer term.CanonicalMode()

	host, err := createHost(sync, cfg)
	if err != nil {
		return err
	}

	// calls to the callback are serialised by the hook's loop so prev does
	// not need protecting
	var prev gamepad.Registry
	first := true

	h, err := hook.Use(ctx, host, func(r gamepad.Registry) {
		if !first && r.Equal(prev) {
			return
		}
		first = false
		prev = r
		printRegistry(&term, r)
	})
	if err != nil {
		return err
	}
	defer h.Close()

	keys := make(chan byte)
	go func() {
		for {
			k, err := term.ReadKey()
			if err != nil {
				return
			}
			keys <- k
		}
	}()

	for {
		select {
		case <-h.Done():
			return nil
		case k := <-keys:
			switch k {
			case 'q', 'Q':
				return nil
			case 'l', 'L':
				logger.WriteRecent(os.Stdout)
			}
		}
	}
}

// printRegistry writes one line for every gamepad in the registry. lines are
// truncated to the width of the terminal.
func printRegistry(term *easyterm.Terminal, r gamepad.Registry) {
	width := term.Width()

	lines := []string{r.String()}
	if r.Len() > 0 {
		lines = lines[:0]
		for _, p := range r.Snapshots() {
			lines = append(lines, p.String())
		}
	}

	for _, l := range lines {
		if width > 0 && len(l) > width {
			l = l[:width]
		}
		term.Print("%s\n", l)
	}
	sep := 40
	if width > 0 && width < sep {
		sep = width
	}
	term.Print("%s\n", strings.Repeat("-", sep))
}

func dump(ctx context.Context, md *modalflag.Modes, sync *mainSync, cfg *config.Config) error {
	md.NewMode()
	md.AdditionalHelp("Writes a graphviz description of the gamepad registry to the named file, or stdout if no file is given.")

	wait := md.AddDuration("wait", time.Second, "time to wait for gamepads before dumping")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var output io.Writer = os.Stdout
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	host, err := createHost(sync, cfg)
	if err != nil {
		return err
	}

	h, err := hook.Use(ctx, host, nil)
	if err != nil {
		return err
	}
	defer h.Close()

	select {
	case <-time.After(*wait):
	case <-ctx.Done():
		return nil
	}

	reg := h.Gamepads()
	logger.Logf(logger.Allow, "dump", "%d gamepads", reg.Len())
	memviz.Map(output, &reg)

	return nil
}
