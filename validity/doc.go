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

// Package validity collects the diagnostics produced by a consistency check of
// one or more machine descriptions.
//
// Configuration errors found while a machine description is being assembled
// (a duplicate option for example) stop the assembly immediately and are
// returned as errors. The validity pass is different. It runs after assembly
// and must report every problem it finds before stopping, so problems are
// collected by a Checker rather than returned.
//
// Any type that checks for validity should accept the Reporter interface and
// not the Checker type directly:
//
//	func (r *Registry) Validate(v validity.Reporter) {
//		v.Warningf("default option (%s) does not correspond to any configured option", name)
//	}
//
// The context of a diagnostic (the machine and slot being checked) is set by
// the caller of the check with Checker.SetContext().
package validity
