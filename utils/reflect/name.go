/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflect

// BareName extracts the bare identifier from a Go type string in one pass:
// "*construct.Construct" -> "Construct", "widgets.Box[int]" -> "Box".
//
// Every identifier and canonical-name lookup goes through this function, so
// it scans left to right exactly once: it stops at the first '[' (type
// arguments) and keeps the last run of identifier bytes seen before it.
// Bytes >= 0x80 are treated as identifier bytes so Unicode identifiers
// survive intact. Returns "" when no identifier is present.
func BareName(s string) string {
	start, end := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '[' {
			break
		}
		if isIdentByte(c) {
			end = i + 1
		} else {
			start = i + 1
		}
	}
	if end <= start {
		return ""
	}
	return s[start:end]
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' ||
		c >= 0x80
}
