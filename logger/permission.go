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

package logger

// Permission decides whether a log request is honoured. Code that runs many
// times over the same input, such as the per-slot checks made when every
// machine description is validated, can be given a Permission that limits
// how often it logs.
type Permission interface {
	AllowLogging() bool
}

// Allow is the Permission to use when the entry should always be made.
var Allow Permission = always{}

type always struct{}

func (always) AllowLogging() bool {
	return true
}
