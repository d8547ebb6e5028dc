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

package slot_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/cardslot/slot"
	"github.com/jetsetilly/cardslot/test"
)

func TestDerivedClock(t *testing.T) {
	c := slot.DerivedClock(1, 1)
	test.ExpectSuccess(t, slot.IsDerivedClock(c))
	test.ExpectEquality(t, slot.ResolveClock(c, 1193182), 1193182)

	c = slot.DerivedClock(1, 2)
	test.ExpectEquality(t, slot.ResolveClock(c, 1000), 500)

	c = slot.DerivedClock(3, 1)
	test.ExpectEquality(t, slot.ResolveClock(c, 1000), 3000)

	// divisor of zero is treated as one
	c = slot.DerivedClock(2, 0)
	test.ExpectEquality(t, slot.ResolveClock(c, 1000), 2000)

	// concrete clocks are unchanged by resolution
	test.ExpectFailure(t, slot.IsDerivedClock(3579545))
	test.ExpectEquality(t, slot.ResolveClock(3579545, 1000), 3579545)
	test.ExpectEquality(t, slot.ResolveClock(0, 1000), 0)
}

func TestDefaultClockIsDerived(t *testing.T) {
	r := slot.NewRegistry("test")
	test.ExpectEquality(t, r.DefaultClock(), slot.DerivedClock(1, 1))
}

func TestDerivedClockLimits(t *testing.T) {
	c := slot.DerivedClock(slot.MaxClockRatio, 1)
	test.ExpectEquality(t, slot.ResolveClock(c, 10), 40950)

	c = slot.DerivedClock(1, slot.MaxClockRatio)
	test.ExpectEquality(t, slot.ResolveClock(c, 40950), 10)

	// frequencies that do not fit in 32 bits are clamped
	c = slot.DerivedClock(slot.MaxClockRatio, 1)
	test.ExpectEquality(t, slot.ResolveClock(c, 3579545), uint32(math.MaxUint32))
}
