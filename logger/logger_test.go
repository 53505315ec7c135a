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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherds/logger"
	"github.com/jetsetilly/gopherds/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "test", "a log entry")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: a log entry\n")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "screen", "resize")
	logger.Log(logger.Allow, "screen", "resize")
	logger.Log(logger.Allow, "screen", "resize")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "screen: resize (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()
	logger.Logf(logger.Allow, "test", "entry %d", 1)
	logger.Logf(logger.Allow, "test", "entry %d", 2)
	logger.Logf(logger.Allow, "test", "entry %d", 3)

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.Equate(t, s.String(), "test: entry 2\ntest: entry 3\n")
}

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	logger.Clear()
	logger.Log(deny{}, "test", "should not appear")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "")
}
