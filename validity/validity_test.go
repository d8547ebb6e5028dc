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

package validity_test

import (
	"testing"

	"github.com/jetsetilly/cardslot/test"
	"github.com/jetsetilly/cardslot/validity"
)

func TestChecker(t *testing.T) {
	c := validity.NewChecker()
	test.ExpectEquality(t, c.Count(), 0)

	c.Warningf("no context %d", 1)
	c.SetContext("vcs:left")
	c.Errorf("bad option (%s)", "stick")
	c.Warningf("stale default (%s)", "paddle")

	test.ExpectEquality(t, c.Count(), 3)
	test.ExpectEquality(t, c.Errors(), 1)
	test.ExpectEquality(t, c.Warnings(), 2)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, c.Write(w))
	test.ExpectEquality(t, w.String(), "warning: no context 1\n"+
		"error: vcs:left: bad option (stick)\n"+
		"warning: vcs:left: stale default (paddle)\n"+
		"1 errors, 2 warnings\n")
}

func TestMerge(t *testing.T) {
	a := validity.NewChecker()
	a.SetContext("a")
	a.Warningf("one")

	b := validity.NewChecker()
	b.SetContext("b")
	b.Errorf("two")

	a.Merge(b)
	d := a.Diagnostics()
	test.DemandEquality(t, len(d), 2)
	test.ExpectEquality(t, d[0].String(), "warning: a: one")
	test.ExpectEquality(t, d[1].String(), "error: b: two")

	// merged checker is unaffected
	test.ExpectEquality(t, b.Count(), 1)
}
