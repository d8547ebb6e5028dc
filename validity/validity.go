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

package validity

import (
	"fmt"
	"io"

	"github.com/jetsetilly/cardslot/logger"
)

// Severity of a diagnostic.
type Severity int

// List of valid Severity values.
const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Reporter is implemented by types that can receive diagnostics.
type Reporter interface {
	Errorf(format string, args ...any)
	Warningf(format string, args ...any)
}

// Diagnostic is a single problem found during a validity check.
type Diagnostic struct {
	Severity Severity
	Context  string
	Message  string
}

func (d Diagnostic) String() string {
	if d.Context == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Context, d.Message)
}

// Checker implements the Reporter interface and collects all diagnostics.
// A Checker is not safe for concurrent use. Concurrent checks should use one
// Checker each and combine them afterwards with Merge().
type Checker struct {
	context     string
	diagnostics []Diagnostic
}

// NewChecker is the preferred method of initialisation for the Checker type.
func NewChecker() *Checker {
	return &Checker{
		diagnostics: make([]Diagnostic, 0),
	}
}

// SetContext names the thing being checked. All subsequent diagnostics are
// given the context.
func (c *Checker) SetContext(context string) {
	c.context = context
}

func (c *Checker) report(severity Severity, format string, args ...any) {
	d := Diagnostic{
		Severity: severity,
		Context:  c.context,
		Message:  fmt.Sprintf(format, args...),
	}
	c.diagnostics = append(c.diagnostics, d)
	logger.Log(logger.Allow, "validity", d)
}

// Errorf implements the Reporter interface.
func (c *Checker) Errorf(format string, args ...any) {
	c.report(Error, format, args...)
}

// Warningf implements the Reporter interface.
func (c *Checker) Warningf(format string, args ...any) {
	c.report(Warning, format, args...)
}

// Merge appends the diagnostics of another Checker. The context of the
// diagnostics is preserved.
func (c *Checker) Merge(o *Checker) {
	c.diagnostics = append(c.diagnostics, o.diagnostics...)
}

// Diagnostics returns a copy of all the diagnostics collected so far.
func (c *Checker) Diagnostics() []Diagnostic {
	d := make([]Diagnostic, len(c.diagnostics))
	copy(d, c.diagnostics)
	return d
}

// Count returns the number of diagnostics collected.
func (c *Checker) Count() int {
	return len(c.diagnostics)
}

func (c *Checker) count(severity Severity) int {
	var n int
	for _, d := range c.diagnostics {
		if d.Severity == severity {
			n++
		}
	}
	return n
}

// Errors returns the number of error diagnostics.
func (c *Checker) Errors() int {
	return c.count(Error)
}

// Warnings returns the number of warning diagnostics.
func (c *Checker) Warnings() int {
	return c.count(Warning)
}

// Write all diagnostics to io.Writer, followed by a summary line.
func (c *Checker) Write(output io.Writer) error {
	for _, d := range c.diagnostics {
		if _, err := io.WriteString(output, d.String()+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(output, fmt.Sprintf("%d errors, %d warnings\n", c.Errors(), c.Warnings()))
	return err
}
