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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. Patterns that are tested for in this way are sentinels and should
// be stored as exported constants, suitably named and commented. For example,
// the slot package defines:
//
//	const DuplicateOption = "slot: %s: duplicate option (%s)"
//
// which can be tested for with:
//
//	if curated.Is(err, slot.DuplicateOption) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(slot.DuplicateOption, "left", "stick")
//	f := curated.Errorf("machine: %v", e)
//
//	curated.Has(f, slot.DuplicateOption) // true
//	curated.Is(f, slot.DuplicateOption)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We think of the difference between curated and uncurated
// errors as being the difference between 'expected' and 'unexpected' errors.
// A configuration mistake in a machine description is expected. A failing
// disk is not.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This means that code does not need to worry too
// much about whether to add context when wrapping an error:
//
//	machine: machine: slot: left: duplicate option (stick)
//
// is printed as:
//
//	machine: slot: left: duplicate option (stick)
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Curated errors that wrap another error (with any of the placeholder values)
// support errors.Unwrap(), so errors from the standard library (os.ErrNotExist
// for example) can still be found with errors.Is().
package curated
