// debug_monitor.go - an interactive stdin monitor for pausing and
// quitting a running console without an attached display: reads raw
// single-byte keystrokes ('p' pause/resume, 'q' quit) so neither key
// needs an Enter press.
//
// Grounded on the teacher's terminal_host.go raw-mode/restore pattern
// (golang.org/x/term), trimmed from its line/char dual-mode stdin
// pump to the handful of monitor commands this core needs.

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2026 ionpsx contributors
https://github.com/ionpsx/core
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// DebugMonitor reads raw keystrokes from stdin to pause/resume or quit
// a Console. Only meaningful when stdin is an interactive terminal;
// Start is a no-op otherwise.
type DebugMonitor struct {
	console  *Console
	fd       int
	oldState *term.State
	stopOnce sync.Once
	done     chan struct{}
}

func NewDebugMonitor(console *Console) *DebugMonitor {
	return &DebugMonitor{console: console, done: make(chan struct{})}
}

// Start puts stdin in raw mode and begins reading keystrokes on its
// own goroutine. Safe to call even when stdin isn't a TTY; it then
// returns at once without blocking anything.
func (m *DebugMonitor) Start() {
	m.fd = int(os.Stdin.Fd())
	if !term.IsTerminal(m.fd) {
		close(m.done)
		return
	}

	oldState, err := term.MakeRaw(m.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug_monitor: failed to set raw mode: %v\n", err)
		close(m.done)
		return
	}
	m.oldState = oldState

	go m.readLoop()
}

func (m *DebugMonitor) readLoop() {
	defer close(m.done)
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		switch buf[0] {
		case 'q', 'Q', 3: // 3 = Ctrl-C, since raw mode swallows signal generation
			m.console.Shutdown()
			return
		case 'p', 'P':
			m.console.Paused.Store(!m.console.Paused.Load())
		}
	}
}

// Stop restores the terminal to its prior state. Safe to call multiple
// times or when Start never put the terminal in raw mode.
func (m *DebugMonitor) Stop() {
	m.stopOnce.Do(func() {
		if m.oldState != nil {
			_ = term.Restore(m.fd, m.oldState)
		}
	})
}
