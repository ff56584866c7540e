// Command scrolldemo shows a long list through a small pool of recycled
// rows. Arrow keys scroll, R resets the scroll position, +/- change the
// item count, Escape quits. With --headless it scrolls through the list
// and prints what each pooled row shows.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit"
	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit/config"
	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit/locale"
	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit/memory"
)

type CLI struct {
	Config   string `help:"TOML list configuration." optional:""`
	Count    int    `help:"Override the item count from the configuration." default:"-1"`
	Lang     string `help:"Language for labels (BCP 47)." optional:""`
	LogLevel string `help:"Log level." default:"info" enum:"debug,info,warn,error"`
	LogPath  string `help:"Also write logs to this file." optional:""`
	Headless bool   `help:"Run without a window and print each step."`
	Steps    int    `help:"Scroll steps in headless mode." default:"10"`
}

// demo bundles the model a screen would own.
type demo struct {
	cfg    config.List
	scene  *memory.Scene
	helper *scrollkit.WrapContentHelper
	labels *locale.Localizer
	count  int
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("scrolldemo"),
		kong.Description("Recycling list demo for scrollkit."),
		kong.UsageOnError(),
	)

	if cli.LogPath != "" {
		scrollkit.SetLogPath(cli.LogPath)
	}
	scrollkit.SetRawLogLevel(cli.LogLevel)
	defer scrollkit.Close()

	d, err := newDemo(cli)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cli.Headless {
		d.runHeadless(os.Stdout, cli.Steps)
		return
	}

	if err := d.runWindow(); err != nil {
		scrollkit.GetLogger().Error("Demo failed", "error", err)
		os.Exit(1)
	}
}

func newDemo(cli CLI) (*demo, error) {
	cfg := config.Default()
	if cli.Config != "" {
		loaded, err := config.Load(cli.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cli.Count >= 0 {
		cfg.Count = cli.Count
	}
	if cli.Lang != "" {
		cfg.Language = cli.Lang
	}

	scene, err := memory.Build(cfg)
	if err != nil {
		return nil, err
	}

	labels, err := locale.New(cfg.Language)
	if err != nil {
		return nil, err
	}

	d := &demo{cfg: cfg, scene: scene, labels: labels, count: cfg.Count}

	d.helper, err = scrollkit.NewFromContainer(scene.Container, d.render)
	if err != nil {
		return nil, err
	}

	d.helper.ResetScroll()
	d.helper.Refresh(d.count)

	scrollkit.GetLogger().Info("List ready",
		slog.Int("pool", cfg.PoolSize),
		slog.Int("count", d.count),
		slog.String("language", labels.Tag().String()),
	)
	return d, nil
}

func (d *demo) render(view scrollkit.View, index int) {
	v, ok := view.(*memory.View)
	if !ok {
		return
	}
	v.SetText(d.labels.ItemLabel(index))
	scrollkit.GetLogger().Debug("Rendered row", "view", v.Name, "index", index)
}

// setCount changes the list length the way a screen would after its data changed.
func (d *demo) setCount(count int) {
	d.count = max(count, 0)
	d.helper.Refresh(d.count)
}

// visibleRange returns the lowest and highest logical index currently shown.
func (d *demo) visibleRange() (first, last int, ok bool) {
	for _, v := range d.scene.Container.Views() {
		if !v.Active() {
			continue
		}
		index, tracked := d.helper.IndexOf(v)
		if !tracked {
			continue
		}
		if !ok || index < first {
			first = index
		}
		if !ok || index > last {
			last = index
		}
		ok = true
	}
	return first, last, ok
}

func (d *demo) status() string {
	first, last, ok := d.visibleRange()
	if !ok {
		return d.labels.ListSummary(d.count)
	}
	return d.labels.VisibleRange(first, last, d.count)
}
