// Copyright 2025 go-qsort Authors
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

package qsort

// span is an inclusive index range [lo, hi] waiting to be partitioned.
type span struct {
	lo, hi int
}

func (s span) size() int {
	return s.hi - s.lo + 1
}

// workStack holds pending spans in LIFO order.
type workStack struct {
	spans []span
}

func (ws *workStack) len() int {
	return len(ws.spans)
}

func (ws *workStack) push(s span) {
	ws.spans = append(ws.spans, s)
}

func (ws *workStack) pop() span {
	n := len(ws.spans) - 1
	s := ws.spans[n]
	ws.spans = ws.spans[:n]
	return s
}

// pushPair pushes the spans that still need sorting, larger first, so the
// smaller one is popped next. Spans with fewer than two elements are dropped.
//
// Processing the smaller side first bounds the stack to floor(log2 n)+1
// entries: every entry above a given one comes from a range at most half
// the size of the range that entry was split from.
func (ws *workStack) pushPair(a, b span) {
	if a.size() < b.size() {
		a, b = b, a
	}
	if a.size() > 1 {
		ws.push(a)
	}
	if b.size() > 1 {
		ws.push(b)
	}
}
