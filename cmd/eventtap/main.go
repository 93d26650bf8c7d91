// Package main is a terminal event tap: it wires the full pipeline over
// an in-memory tree and prints every synthetic event it dispatches.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/uievent/internal/config"
	"github.com/dshills/uievent/internal/dispatch"
	"github.com/dshills/uievent/internal/host/term"
	"github.com/dshills/uievent/internal/plugin"
	"github.com/dshills/uievent/internal/plugin/classifier"
	"github.com/dshills/uievent/internal/plugin/script"
	"github.com/dshills/uievent/internal/plugin/selection"
	"github.com/dshills/uievent/internal/registry"
	"github.com/dshills/uievent/internal/synthetic"
	"github.com/dshills/uievent/internal/tree/memtree"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

const logLines = 16

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var showVersion bool
	flag.StringVar(&configPath, "config", "eventtap.toml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "eventtap.toml", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("eventtap %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	elog := &eventLog{}
	lay := newLayout()

	host, err := buildPipeline(cfg, lay, elog, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		host.Stop()
	}()

	host.OnFrame(func(s tcell.Screen) { draw(s, lay, elog) })
	if err := host.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return zerolog.Nop(), err
	}
	w := zerolog.New(os.Stderr)
	if cfg.Logging.Pretty {
		w = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return w.Level(lvl).With().Timestamp().Logger(), nil
}

// buildPipeline assembles tree, registry, plugins, and host per the
// configuration.
func buildPipeline(cfg *config.Config, lay *layout, elog *eventLog, log zerolog.Logger) (*term.Host, error) {
	pools := synthetic.NewPools(log)
	reg := registry.New()
	if err := reg.InjectOrder(cfg.Plugins.Order); err != nil {
		return nil, err
	}
	pipe := dispatch.New(reg, lay.tree.Adapter(), pools, log)

	plugins := make(map[string]plugin.Plugin)
	if cfg.Enabled(classifier.PluginName) {
		plugins[classifier.PluginName] = classifier.New(
			classifier.Config{Debug: cfg.Plugins.Debug}, pipe, pools, log)
	}
	if cfg.Enabled(selection.PluginName) {
		scfg := selection.DefaultConfig()
		scfg.NativeSelectionEvents = cfg.Selection.NativeSelectionEvents
		plugins[selection.PluginName] = selection.New(scfg, pipe, pools)
	}
	for _, path := range cfg.Scripts.Paths {
		sp, err := script.Load(path, pipe, pools, log)
		if err != nil {
			return nil, err
		}
		if !cfg.Enabled(sp.Name()) {
			sp.Close()
			continue
		}
		plugins[sp.Name()] = sp
	}
	if err := reg.InjectPlugins(plugins); err != nil {
		return nil, err
	}

	host := term.New(pipe, lay.hit, log)
	lay.attachListeners(elog, host)
	return host, nil
}

// eventLog collects dispatched event descriptions for on-screen display.
type eventLog struct {
	lines []string
}

func (t *eventLog) add(e *synthetic.Event) {
	target := "?"
	if n, ok := e.Target.(*memtree.Node); ok {
		target = n.Name
	}
	line := fmt.Sprintf("%-14s target=%s", e.Type, target)
	t.lines = append(t.lines, line)
	if len(t.lines) > logLines {
		t.lines = t.lines[len(t.lines)-logLines:]
	}
}

// box is one hit-testable region backed by a tree node.
type box struct {
	label          string
	x0, y0, x1, y1 int
	native         string
	node           *memtree.Node
	editable       bool
}

func (b *box) contains(x, y int) bool {
	return x >= b.x0 && x <= b.x1 && y >= b.y0 && y <= b.y1
}

// layout is a tiny fixed UI: a panel holding a button and a text field.
type layout struct {
	tree  *memtree.Tree
	boxes []*box
}

func newLayout() *layout {
	tr := memtree.New()
	panel := tr.Root().NewChild("panel")
	button := panel.NewChild("button")
	field := panel.NewChild("field")

	l := &layout{
		tree: tr,
		boxes: []*box{
			{label: "[ Button ]", x0: 2, y0: 2, x1: 13, y1: 2, native: "button", node: button},
			{label: "[ Field  ]", x0: 2, y0: 4, x1: 13, y1: 4, native: "field", node: field, editable: true},
		},
	}
	tr.Associate("panel", panel)
	for _, b := range l.boxes {
		tr.Associate(b.native, b.node)
	}
	return l
}

func (l *layout) hit(x, y int) any {
	for _, b := range l.boxes {
		if b.contains(x, y) {
			return b.native
		}
	}
	return "panel"
}

// attachListeners registers bubble-phase listeners that feed the event
// log and drive focus from clicks.
func (l *layout) attachListeners(t *eventLog, host *term.Host) {
	names := []string{
		"onClick", "onDoubleClick", "onContextMenu", "onWheel",
		"onKeyDown", "onKeyPress", "onFocus", "onBlur", "onSelect",
	}
	for _, b := range l.boxes {
		for _, name := range names {
			b.node.On(name, t.add)
		}
	}
	for _, b := range l.boxes {
		b.node.On("onPointerDown", func(e *synthetic.Event) {
			t.add(e)
			host.SetFocus(b.native, b.editable)
		})
	}
}

func draw(s tcell.Screen, l *layout, t *eventLog) {
	s.Clear()
	style := tcell.StyleDefault
	emit := func(x, y int, msg string, st tcell.Style) {
		for i, r := range msg {
			s.SetContent(x+i, y, r, nil, st)
		}
	}

	emit(2, 0, "eventtap - click, type, scroll; Ctrl-C quits", style.Bold(true))
	for _, b := range l.boxes {
		emit(b.x0, b.y0, b.label, style.Reverse(true))
	}

	y := 6
	emit(2, y, "events:", style.Underline(true))
	for i, line := range t.lines {
		emit(2, y+1+i, line, style)
	}
}
