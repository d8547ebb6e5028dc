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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// function after parsing.
//
// A mode is a special command line argument that puts the program into a
// different mode of operation. Each mode can have a different set of flags and
// expected arguments. Modes are added with the AddSubModes() function. The
// first mode in the list is the default mode.
//
//	md.AddSubModes("list", "validate", "select")
//
// Sub-mode comparisons are case insensitive and the Mode() function always
// returns the mode in upper case. After the first call to Parse() the mode can
// be checked and a new set of flags prepared for the selected mode:
//
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "SELECT":
//		md.NewMode()
//		clear := md.AddBool("clear", false, "forget earlier selections")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		return selectMode(md.GetArg(0), *clear)
//	}
//
// Modes can be chained together as deeply as required.
package modalflag
