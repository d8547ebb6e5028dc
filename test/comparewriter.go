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

package test

import "strings"

// CompareWriter captures output so that it can be compared with an expected
// string. The zero value is ready to use. Use Reset() to discard captured
// output.
type CompareWriter struct {
	strings.Builder
}

// Compare returns true if the captured output is exactly the expected string.
func (w *CompareWriter) Compare(expected string) bool {
	return w.String() == expected
}
