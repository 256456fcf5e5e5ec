// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package encoding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/containerd/errdefs"
)

var ErrInvalidHex = fmt.Errorf("invalid hex string: %w", errdefs.ErrInvalidArgument)

// Decodes a hexidecimal string in the formats: 0xFF, xFF
func DecodeHex(s string) (uint8, error) {
	if i := strings.IndexAny(s, "xX"); i == 0 {
		s = "0" + s
	} else if i == -1 || i != 1 {
		return 0, ErrInvalidHex
	}

	result, err := strconv.ParseUint(s, 0, 8)

	if err != nil {
		return 0, fmt.Errorf("%w: %v", errdefs.ErrInvalidArgument, err)
	}

	return uint8(result), nil
}

// Decodes a base-10 string in the formats: #123, 123
func DecodeInt(s string) (int, error) {
	if i := strings.Index(s, "#"); i == 0 {
		s = s[1:]
	}

	result, err := strconv.ParseInt(s, 10, 32)

	if err != nil {
		return 0, fmt.Errorf("%w: %v", errdefs.ErrInvalidArgument, err)
	}

	return int(result), nil
}

// Decodes a cell value written as hex, decimal or a quoted character: 0x41,
// #65, 65, 'A'
func DecodeCell(s string) (uint8, error) {
	if len(s) == 3 && s[0] == '\'' && s[2] == '\'' {
		return s[1], nil
	}

	if value, err := DecodeHex(s); err == nil {
		return value, nil
	} else if !errors.Is(err, ErrInvalidHex) {
		return 0, err
	}

	value, err := DecodeInt(s)

	if err != nil {
		return 0, err
	}

	if value < 0 || value > 0xFF {
		return 0, fmt.Errorf(
			"%w: cell value %d out of range", errdefs.ErrInvalidArgument, value,
		)
	}

	return uint8(value), nil
}

// Escape renders s with non-printable bytes as \xNN
func Escape(s string) string {
	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 0x20 && c < 0x7F {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", c)
		}
	}

	return sb.String()
}
