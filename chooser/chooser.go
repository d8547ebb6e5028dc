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

// Package chooser presents the selectable options of a slot to the user and
// reads their choice.
package chooser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/easyterm"
	"github.com/jetsetilly/cardslot/slot"
	"golang.org/x/term"
)

// Sentinel errors returned by the chooser package.
const (
	NothingToChoose = "chooser: %s: slot has no selectable options"
	InvalidChoice   = "chooser: %s: invalid choice (%s)"
	Cancelled       = "chooser: %s: cancelled"
)

// Entry is a single line in a Menu.
type Entry struct {
	Name     string
	Fullname string
}

// Menu is the list of choices for a slot. The zero entry of the list is
// always the choice to leave the slot empty.
type Menu struct {
	Tag     string
	Default string
	Entries []Entry
}

// NewMenu creates a menu from the selectable options of the registry. The
// Entries list is empty if the slot is fixed.
func NewMenu(reg *slot.Registry) *Menu {
	m := &Menu{
		Tag:     reg.Tag(),
		Default: reg.DefaultOption(),
	}

	for _, opt := range reg.Selectable() {
		e := Entry{Name: opt.Name()}
		if opt.DeviceType() != nil {
			e.Fullname = opt.DeviceType().Fullname()
		}
		m.Entries = append(m.Entries, e)
	}

	return m
}

// Write the menu to io.Writer. The eol argument is the line ending to use.
func (m *Menu) Write(out io.Writer, eol string) {
	fmt.Fprintf(out, "%s:%s", m.Tag, eol)
	fmt.Fprintf(out, "  0. (empty)%s", eol)
	for i, e := range m.Entries {
		var def string
		if e.Name == m.Default {
			def = " *"
		}
		if e.Fullname != "" {
			fmt.Fprintf(out, "%3d. %s [%s]%s%s", i+1, e.Name, e.Fullname, def, eol)
		} else {
			fmt.Fprintf(out, "%3d. %s%s%s", i+1, e.Name, def, eol)
		}
	}
}

// choice returns the option name for the user's input. The input can be the
// number of the entry or the name of the option. An empty input is the
// default option.
func (m *Menu) choice(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return m.Default, nil
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n == 0 {
			return "", nil
		}
		if n > 0 && n <= len(m.Entries) {
			return m.Entries[n-1].Name, nil
		}
		return "", curated.Errorf(InvalidChoice, m.Tag, input)
	}

	for _, e := range m.Entries {
		if e.Name == input {
			return e.Name, nil
		}
	}

	return "", curated.Errorf(InvalidChoice, m.Tag, input)
}

// Choose writes the menu to out and reads a single line from in. The chosen
// option name is returned. The empty string means that the slot should be
// left empty.
func Choose(in io.Reader, out io.Writer, m *Menu) (string, error) {
	if len(m.Entries) == 0 {
		return "", curated.Errorf(NothingToChoose, m.Tag)
	}

	m.Write(out, "\n")
	fmt.Fprintf(out, "choice: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", curated.Errorf(Cancelled, m.Tag)
		}
		return "", curated.Errorf(InvalidChoice, m.Tag, err)
	}

	return m.choice(line)
}

// Interactive reads the user's choice from the terminal. If stdin is not a
// terminal, or there are too many entries to choose with a single key, then
// Choose() is used with stdin and stdout.
//
// In raw mode the number keys select an entry, the return key selects the
// default option and the escape key cancels.
func Interactive(m *Menu) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || len(m.Entries) > 9 {
		return Choose(os.Stdin, os.Stdout, m)
	}

	if len(m.Entries) == 0 {
		return "", curated.Errorf(NothingToChoose, m.Tag)
	}

	var pt easyterm.Terminal
	if err := pt.Initialise(os.Stdin, os.Stdout); err != nil {
		return Choose(os.Stdin, os.Stdout, m)
	}
	defer pt.CleanUp()

	pt.RawMode()

	// discard keys pressed before the menu was shown
	if err := pt.Flush(); err != nil {
		return "", curated.Errorf(Cancelled, m.Tag)
	}

	var s strings.Builder
	m.Write(&s, "\r\n")
	pt.Print("%s", s.String())

	for {
		k, err := pt.ReadKey()
		if err != nil {
			return "", curated.Errorf(Cancelled, m.Tag)
		}

		switch k {
		case easyterm.KeyCtrlC, easyterm.KeyCtrlD, easyterm.KeyEsc:
			pt.Print("\r\n")
			return "", curated.Errorf(Cancelled, m.Tag)
		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			pt.Print("\r\n")
			return m.Default, nil
		}

		if k >= '0' && k <= '9' {
			if c, err := m.choice(string(k)); err == nil {
				pt.Print("%c\r\n", k)
				return c, nil
			}
		}
	}
}
