package gxmonitor

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"math/big"
	"strings"
)

const (
	lineDelimiter = "\n"
	hexDelimiter  = ","
	notANumber    = "NaN"
)

// Transformer is a stateful chunk converter. Transform consumes the next chunk
// and returns the units that are complete. Flush is called once when the
// upstream ends and returns whatever the carry-over buffer still holds.
type Transformer interface {
	Transform(chunk string) []string
	Flush() []string
}

// LineTransformer splits text into lines. The newline is not part of the
// emitted line.
type LineTransformer struct {
	buf string
}

// NewLineTransformer returns an empty line transformer.
func NewLineTransformer() *LineTransformer {
	return &LineTransformer{}
}

// Transform implements Transformer.
func (t *LineTransformer) Transform(chunk string) []string {
	t.buf += chunk
	lines := strings.Split(t.buf, lineDelimiter)
	t.buf = lines[len(lines)-1]
	return lines[:len(lines)-1]
}

// Flush implements Transformer. The remainder is emitted even when it is empty.
func (t *LineTransformer) Flush() []string {
	ret := []string{t.buf}
	t.buf = ""
	return ret
}

// HexTransformer converts comma separated decimal byte values to lowercase
// hexadecimal strings, each followed by a space.
type HexTransformer struct {
	buf string
	// KeepEmptyTail makes Flush render an empty remainder too, as "0 ".
	KeepEmptyTail bool
}

// NewHexTransformer returns an empty hex transformer.
func NewHexTransformer() *HexTransformer {
	return &HexTransformer{}
}

// Transform implements Transformer.
func (t *HexTransformer) Transform(chunk string) []string {
	t.buf += chunk
	fields := strings.Split(t.buf, hexDelimiter)
	t.buf = fields[len(fields)-1]
	fields = fields[:len(fields)-1]
	ret := make([]string, 0, len(fields))
	for _, f := range fields {
		ret = append(ret, formatHexField(f))
	}
	return ret
}

// Flush implements Transformer.
func (t *HexTransformer) Flush() []string {
	tail := t.buf
	t.buf = ""
	if tail == "" && !t.KeepEmptyTail {
		return nil
	}
	v, ok := parseNumber(tail)
	if !ok {
		return []string{notANumber + " "}
	}
	return []string{v.Text(16) + " "}
}

// formatHexField renders one field. Values up to 15 are padded to two digits.
func formatHexField(field string) string {
	v, ok := parseLeadingInt(field)
	if !ok {
		return notANumber + " "
	}
	s := v.Text(16)
	if v.Cmp(big.NewInt(15)) <= 0 && len(s) < 2 {
		s = strings.Repeat("0", 2-len(s)) + s
	}
	return s + " "
}

// parseLeadingInt reads an optionally signed decimal integer at the start of s,
// after leading white space. Anything after the digits is ignored.
func parseLeadingInt(s string) (*big.Int, bool) {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return nil, false
	}
	return new(big.Int).SetString(s[:end], 10)
}

// parseNumber parses the whole of s as a signed decimal integer. Blank input
// is zero.
func parseNumber(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), true
	}
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || digits == "" {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, 10)
}
