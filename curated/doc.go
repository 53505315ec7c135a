// This file is part of GopherDS.
//
// GopherDS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDS.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function.
//
// The pattern string given to Errorf() doubles as the error's identity. The
// Is() function checks whether an error was created with a specific pattern
// and the Has() function checks whether the pattern occurs anywhere in the
// error chain.
//
//	e := curated.Errorf("scaler: %v", err)
//
//	if curated.Has(e, "scaler: %v") {
//		...
//	}
//
// The Error() function normalises the error chain, removing duplicate
// adjacent parts. Parts of a chain are the sub-strings separated by ': '.
// This means errors can be wrapped freely at every level of a call chain
// without the final message stuttering.
package curated
