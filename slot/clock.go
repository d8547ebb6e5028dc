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

package slot

import "math"

// MaxClockRatio is the largest multiplier or divisor accepted by
// DerivedClock().
const MaxClockRatio = derivedField

// a derived clock is identified by the top eight bits of the clock value. the
// remaining bits are split between a 12 bit multiplier and a 12 bit divisor
const (
	derivedMarker = 0xff000000
	derivedMask   = 0xff000000
	derivedField  = 0x00000fff
)

// DerivedClock returns a clock value that will be resolved (by ResolveClock())
// as a ratio of the clock of the device that owns the slot. Multiplier and
// divisor must not be larger than MaxClockRatio. Larger values are masked to 12
// bits. A divisor of zero is treated as one.
func DerivedClock(multiplier uint32, divisor uint32) uint32 {
	if divisor == 0 {
		divisor = 1
	}
	return derivedMarker | (multiplier&derivedField)<<12 | divisor&derivedField
}

// IsDerivedClock returns true if the clock value was created by
// DerivedClock().
func IsDerivedClock(clock uint32) bool {
	return clock&derivedMask == derivedMarker
}

// ResolveClock returns the frequency of a clock value. If the value is a
// derived clock it is calculated from the clock of the owner. Otherwise the
// value is returned unchanged.
//
// A derived frequency too large for a uint32 is clamped to math.MaxUint32.
func ResolveClock(clock uint32, owner uint32) uint32 {
	if !IsDerivedClock(clock) {
		return clock
	}

	multiplier := uint64((clock >> 12) & derivedField)
	divisor := uint64(clock & derivedField)
	if divisor == 0 {
		divisor = 1
	}

	f := uint64(owner) * multiplier / divisor
	if f > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(f)
}
