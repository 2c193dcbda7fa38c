// Copyright 2025 Oppie Thunder Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import "strings"

// splitVerb splits a command line at its first space into the verb and
// the remainder, trimming every space that leads the remainder. The
// remainder is not otherwise
// interpreted here (spec.md §6: "verb, optional whitespace-separated
// argument, optional quoted payload").
func splitVerb(line string) (verb, rest string) {
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i+1:], " ")
}

// parseWriteArgs splits a write command's remainder ("<path> \"<data>\"")
// into path and data. Per spec.md §9's documented limitation (a), data is
// whatever lies between the first and the next double-quote character —
// an embedded double quote inside data cannot be represented, and this
// parser does not attempt to escape it.
func parseWriteArgs(rest string) (path, data string, ok bool) {
	sp := strings.IndexByte(rest, ' ')
	if sp < 0 {
		return "", "", false
	}
	path = rest[:sp]
	remainder := rest[sp+1:]

	q1 := strings.IndexByte(remainder, '"')
	if q1 < 0 {
		return "", "", false
	}
	after := remainder[q1+1:]
	q2 := strings.IndexByte(after, '"')
	if q2 < 0 {
		return "", "", false
	}
	return path, after[:q2], true
}
