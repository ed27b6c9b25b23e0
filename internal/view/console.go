// Package view provides the terminal frontends: an interactive gocui UI and
// a plain console printer for batch runs.
package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"golife/internal/engine"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI renders the board and its status panels in a terminal and maps
// keystrokes to runner commands.
type ConsoleUI struct {
	r *engine.Runner
	g *gocui.Gui
	k []keyBinding

	liveFiller string
	deadFiller string
}

var modeDescr = map[engine.Mode]string{
	engine.ModeManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
	engine.ModeRunning:  aurora.Colorize("running", aurora.CyanFg).String(),
	engine.ModeFinished: aurora.Colorize("finished", aurora.RedFg).String(),
}

// NewConsoleUI constructs the terminal UI for the provided runner.
func NewConsoleUI(r *engine.Runner) *ConsoleUI {
	t := &ConsoleUI{
		r:          r,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Reseed", t.cmdReseed, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, "board"},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()

	r.SetNotify(t.Refresh)
	return t
}

func (t *ConsoleUI) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the UI main loop until the user quits.
func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

// Refresh redraws all panels. Safe to call from the runner goroutine.
func (t *ConsoleUI) Refresh() {
	t.renderBoard()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderBoard() {
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("board")
		if e != nil {
			// Layout has not created the view yet.
			return nil
		}
		v.Clear()

		sim := t.r.Sim()
		sz := sim.Size()
		cells := sim.Cells()

		maxW, maxH := v.Size()
		crop := sz.W > maxW || sz.H > maxH

		var b bytes.Buffer
		for y := 0; y < sz.H && y < maxH; y++ {
			if y != 0 {
				b.WriteByte('\n')
			}
			if crop && y == maxH-1 {
				b.WriteString(aurora.Red("The board is larger than the viewing area").BgBlack().String())
				break
			}
			for x := 0; x < sz.W && x < maxW; x++ {
				if cells[y*sz.W+x] != 0 {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	st := t.r.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", st.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", st.Population))
			_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", st.StepTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", modeDescr[st.Mode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	t.g.Update(func(g *gocui.Gui) error {
		o := t.r.Options()
		sz := t.r.Sim().Size()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", sz.W, sz.H))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", o.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Max steps", "%v", o.MaxSteps))
			_, _ = fmt.Fprintln(v, t.renderProp("Seed", "%v", o.Seed))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 16

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil && err != gocui.ErrUnknownView {
			return err
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("board")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil && err != gocui.ErrUnknownView {
		return err
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("board", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Board"
		v.Frame = true
	}
	t.renderBoard()

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX > len(text) {
			_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
		}
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	t.r.StepOnce()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.r.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.r.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.r.Clear()
	return nil
}

func (t *ConsoleUI) cmdReseed(_ *gocui.View) error {
	t.r.Reseed(uint64(time.Now().UnixNano()))
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.r.Toggle(cx, cy)
	return nil
}
