// This file is part of cardslot.
//
// cardslot is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cardslot is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cardslot.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/cardslot/chooser"
	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/devices"
	"github.com/jetsetilly/cardslot/logger"
	"github.com/jetsetilly/cardslot/machine"
	"github.com/jetsetilly/cardslot/machine/script"
	"github.com/jetsetilly/cardslot/modalflag"
	"github.com/jetsetilly/cardslot/paths"
	"github.com/jetsetilly/cardslot/preferences"
	"github.com/jetsetilly/cardslot/prefs"
	"github.com/jetsetilly/cardslot/selections"
	"github.com/jetsetilly/cardslot/slot"
	"github.com/jetsetilly/cardslot/statsview"
	"github.com/jetsetilly/cardslot/validity"
	"github.com/jetsetilly/cardslot/version"
	"golang.org/x/sync/errgroup"
)

// exit values returned by launch()
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// unsupported file type for a machine description
const unknownDescription = "cardslot: %s: unknown machine description type"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()
	os.Exit(exitVal)
}

// environment for the command line modes
type mode struct {
	md    *modalflag.Modes
	ctx   context.Context
	input io.Reader
	cat   *devices.Catalogue
	prefs *preferences.Preferences
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program.
func launch(ctx context.Context, args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("LIST", "VALIDATE", "SELECT", "CLEAR", "SELECTIONS", "RESOLVE", "MEMVIZ", "VERSION")

	echoLog := md.AddBool("log", false, "echo log to stderr")
	cmdPrefs := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	prefs.PushCommandLineStack(*cmdPrefs)
	defer prefs.PopCommandLineStack()

	m := &mode{
		md:    md,
		ctx:   ctx,
		input: input,
		cat:   devices.Builtin(),
	}

	m.prefs, err = openPreferences()
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitModeError
	}

	echo := *echoLog || m.prefs.EchoLog.Get().(bool)
	if echo {
		logger.SetEcho(os.Stderr)
		defer logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintf(output, "* statsview not available in this build\n")
		}
	}

	switch md.Mode() {
	case "LIST":
		err = m.listMode()
	case "VALIDATE":
		err = m.validateMode()
	case "SELECT":
		err = m.selectMode()
	case "CLEAR":
		err = m.clearMode()
	case "SELECTIONS":
		err = m.selectionsMode()
	case "RESOLVE":
		err = m.resolveMode()
	case "MEMVIZ":
		err = m.memvizMode()
	case "VERSION":
		err = m.versionMode()
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		if tail := m.prefs.LogTail.Get().(int); tail > 0 && !echo {
			logger.Tail(output, tail)
		}
		return exitModeError
	}

	return exitOK
}

func openPreferences() (*preferences.Preferences, error) {
	pth, err := paths.ResourcePath("", "preferences")
	if err != nil {
		return nil, err
	}
	db, err := paths.ResourcePath("", "selections.db")
	if err != nil {
		return nil, err
	}
	return preferences.NewPreferences(pth, db)
}

// loadMachine chooses the loader for the machine description by the file
// extension.
func loadMachine(filename string, cat *devices.Catalogue) (*machine.Machine, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return machine.LoadFile(filename, cat)
	case ".lua":
		return script.LoadFile(filename, cat)
	}
	return nil, curated.Errorf(unknownDescription, filename)
}

// parse the flags for the mode and load the machine named by the first
// argument. the number of additional arguments allowed is checked
func (m *mode) loadArgs(minArgs int, maxArgs int) (*machine.Machine, error) {
	n := len(m.md.RemainingArgs())
	if n == 0 {
		return nil, fmt.Errorf("machine description required for %s mode", m.md)
	}
	if n-1 < minArgs {
		return nil, fmt.Errorf("not enough arguments for %s mode", m.md)
	}
	if n-1 > maxArgs {
		return nil, fmt.Errorf("too many arguments for %s mode", m.md)
	}
	return loadMachine(m.md.GetArg(0), m.cat)
}

func (m *mode) openSelections() (*selections.Store, error) {
	return selections.Open(m.ctx, m.prefs.Database.String())
}

func (m *mode) listMode() error {
	m.md.NewMode()

	p, err := m.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, err := m.loadArgs(0, 0)
	if err != nil {
		return err
	}

	out := m.md.Output
	fmt.Fprintf(out, "%s\n", mc)

	for _, s := range mc.Slots() {
		fmt.Fprintf(out, "  %s", s.Tag())
		if s.Fixed() {
			fmt.Fprintf(out, " (fixed)")
		}
		fmt.Fprintf(out, "\n")

		for _, opt := range s.Options() {
			var def string
			if opt.Name() == s.DefaultOption() {
				def = " *"
			}
			clk := slot.ResolveClock(opt.Clock(), mc.Clock)
			fmt.Fprintf(out, "    %s @ %dHz%s\n", opt, clk, def)
		}
	}

	return nil
}

func (m *mode) validateMode() error {
	m.md.NewMode()
	m.md.AdditionalHelp("Each machine description is loaded and checked. Descriptions are checked concurrently.")

	p, err := m.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	files := m.md.RemainingArgs()
	if len(files) == 0 {
		return fmt.Errorf("at least one machine description required for %s mode", m.md)
	}

	// each file has its own checker. a machine is only ever used by the
	// goroutine that loaded it
	checkers := make([]*validity.Checker, len(files))

	g, ctx := errgroup.WithContext(m.ctx)
	g.SetLimit(runtime.NumCPU())

	for i, f := range files {
		checkers[i] = validity.NewChecker()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v := checkers[i]
			mc, err := loadMachine(f, m.cat)
			if err != nil {
				v.SetContext(f)
				v.Errorf("%v", err)
				return nil
			}
			mc.Validate(v)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	all := validity.NewChecker()
	for _, v := range checkers {
		all.Merge(v)
	}

	if err := all.Write(m.md.Output); err != nil {
		return err
	}

	if all.Count() > 0 {
		return fmt.Errorf("validation failed")
	}

	return nil
}

func (m *mode) selectMode() error {
	m.md.NewMode()

	p, err := m.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, err := m.loadArgs(1, 2)
	if err != nil {
		return err
	}

	tag := m.md.GetArg(1)
	s, err := mc.Slot(tag)
	if err != nil {
		return err
	}

	var option string

	if len(m.md.RemainingArgs()) == 3 {
		option = m.md.GetArg(2)
	} else {
		menu := chooser.NewMenu(s.Registry)
		if m.prefs.Interactive.Get().(bool) && m.input == os.Stdin {
			option, err = chooser.Interactive(menu)
		} else {
			option, err = chooser.Choose(m.input, m.md.Output, menu)
		}
		if err != nil {
			return err
		}
	}

	// only the selected slot is checked. problems with other slots are for
	// the VALIDATE mode to report
	if _, err := mc.Check(tag, option); err != nil {
		return err
	}

	db, err := m.openSelections()
	if err != nil {
		return err
	}
	defer db.Close()

	prev, found, err := db.Get(m.ctx, mc.Name, tag)
	if err != nil {
		return err
	}

	if err := db.Put(m.ctx, mc.Name, tag, option); err != nil {
		return err
	}

	if found && prev != option {
		fmt.Fprintf(m.md.Output, "%s: %s: %s (was %s)\n", mc.Name, tag, optionName(option), optionName(prev))
	} else {
		fmt.Fprintf(m.md.Output, "%s: %s: %s\n", mc.Name, tag, optionName(option))
	}

	return nil
}

// the empty option name means the slot is left empty
func optionName(option string) string {
	if option == "" {
		return "(empty)"
	}
	return option
}

func (m *mode) clearMode() error {
	m.md.NewMode()

	p, err := m.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, err := m.loadArgs(0, 1)
	if err != nil {
		return err
	}

	db, err := m.openSelections()
	if err != nil {
		return err
	}
	defer db.Close()

	if len(m.md.RemainingArgs()) == 2 {
		return db.Delete(m.ctx, mc.Name, m.md.GetArg(1))
	}
	return db.DeleteMachine(m.ctx, mc.Name)
}

// selectionsMode lists every stored selection. machine descriptions are not
// loaded so selections for machines that no longer exist are also listed
func (m *mode) selectionsMode() error {
	m.md.NewMode()

	p, err := m.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(m.md.RemainingArgs()) > 0 {
		return fmt.Errorf("no arguments expected for %s mode", m.md)
	}

	db, err := m.openSelections()
	if err != nil {
		return err
	}
	defer db.Close()

	machines, err := db.Machines(m.ctx)
	if err != nil {
		return err
	}

	for _, name := range machines {
		choices, err := db.Choices(m.ctx, name)
		if err != nil {
			return err
		}
		for _, tag := range slices.Sorted(maps.Keys(choices)) {
			fmt.Fprintf(m.md.Output, "%s: %s: %s\n", name, tag, optionName(choices[tag]))
		}
	}

	return nil
}

func (m *mode) resolveMode() error {
	m.md.NewMode()
	software := m.md.AddString("software", "", "software image used to choose default cards")

	p, err := m.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, err := m.loadArgs(0, 0)
	if err != nil {
		return err
	}

	db, err := m.openSelections()
	if err != nil {
		return err
	}
	defer db.Close()

	choices, err := db.Choices(m.ctx, mc.Name)
	if err != nil {
		return err
	}

	var hook *slot.SoftwareHook
	if *software != "" {
		hook = slot.NewSoftwareHook(*software, nil)
		defer hook.Close()
		if hook.ImageFile() == nil {
			return fmt.Errorf("cannot open software image (%s)", *software)
		}
	}

	res, err := mc.Resolve(choices, hook)
	if err != nil {
		return err
	}

	cards, err := mc.Instantiate(res)
	if err != nil {
		return err
	}

	out := m.md.Output
	for _, r := range res {
		fmt.Fprintf(out, "%s\n", r)
	}
	for _, c := range cards {
		fmt.Fprintf(out, "%s\n", c)
	}

	return nil
}

func (m *mode) memvizMode() error {
	m.md.NewMode()
	m.md.AdditionalHelp("The graphviz description is written to stdout. Render it with the dot command.")

	p, err := m.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, err := m.loadArgs(0, 0)
	if err != nil {
		return err
	}

	memviz.Map(m.md.Output, mc)

	return nil
}

func (m *mode) versionMode() error {
	m.md.NewMode()

	p, err := m.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(m.md.RemainingArgs()) > 0 {
		return fmt.Errorf("no arguments expected for %s mode", m.md)
	}

	fmt.Fprintf(m.md.Output, "%s\n", version.String())

	return nil
}
