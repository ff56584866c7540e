package main

import (
	"fmt"
	"io"
	"strings"
)

func (d *demo) runHeadless(w io.Writer, steps int) {
	fmt.Fprintln(w, d.status())
	d.printRows(w)

	for step := 1; step <= steps; step++ {
		d.scene.Container.Scroll(d.cfg.ItemSize)
		fmt.Fprintf(w, "step %d: %s\n", step, d.status())
		d.printRows(w)
	}

	d.helper.ResetScroll()
	d.helper.Refresh(d.count)
	fmt.Fprintf(w, "reset: %s\n", d.status())

	stats := d.helper.Stats()
	fmt.Fprintf(w, "refreshes=%d renders=%d wraps=%d\n", stats.Refreshes, stats.Renders, stats.Wraps)
}

func (d *demo) printRows(w io.Writer) {
	var rows []string
	for _, v := range d.scene.Container.Views() {
		if !v.Active() {
			rows = append(rows, v.Name+"=-")
			continue
		}
		rows = append(rows, v.Name+"="+v.Text)
	}
	fmt.Fprintln(w, "  "+strings.Join(rows, " | "))
}
