// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package scval

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// Kind is the closed set of shapes a decoded contract value can take
type Kind int

const (
	KindNull Kind = iota
	KindI32
	KindU32
	KindI64
	KindU64
	// KindLow128 holds the low 64 bits of a u128 or i128. The high word is discarded on decode.
	KindLow128
	KindBool
	// KindText covers both symbols and strings
	KindText
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindI32:
		return "i32"
	case KindU32:
		return "u32"
	case KindI64:
		return "i64"
	case KindU64:
		return "u64"
	case KindLow128:
		return "low128"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "null"
	}
}

// Value is an immutable decoded contract value. The zero value is Null.
type Value struct {
	kind     Kind
	signed   int64
	unsigned uint64
	boolean  bool
	text     string
	items    []Value
	entries  []Entry
}

// Entry is one key/value pair of a Mapping, in the order the contract returned them
type Entry struct {
	Key   Value
	Value Value
}

func Null() Value { return Value{} }
func Int32(v int32) Value { return Value{kind: KindI32, signed: int64(v)} }
func Uint32(v uint32) Value { return Value{kind: KindU32, unsigned: uint64(v)} }
func Int64(v int64) Value { return Value{kind: KindI64, signed: v} }
func Uint64(v uint64) Value { return Value{kind: KindU64, unsigned: v} }
func Low128(lo uint64) Value { return Value{kind: KindLow128, unsigned: lo} }
func Bool(v bool) Value { return Value{kind: KindBool, boolean: v} }
func Text(v string) Value { return Value{kind: KindText, text: v} }
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: append([]Value{}, items...)}
}
func Mapping(entries ...Entry) Value {
	return Value{kind: KindMapping, entries: append([]Entry{}, entries...)}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns signed integer kinds
func (v Value) Int() (int64, bool) {
	switch v.kind {
	case KindI32, KindI64:
		return v.signed, true
	default:
		return 0, false
	}
}

// Uint returns unsigned integer kinds, including the low word of 128-bit values
func (v Value) Uint() (uint64, bool) {
	switch v.kind {
	case KindU32, KindU64, KindLow128:
		return v.unsigned, true
	default:
		return 0, false
	}
}

func (v Value) Bool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// Items returns a copy of the elements of a Sequence, or nil for any other kind
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return append([]Value{}, v.items...)
}

// Len is the number of elements of a Sequence, or entries of a Mapping
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.entries)
	default:
		return 0
	}
}

// Index returns the i'th element of a Sequence, or Null when out of range
func (v Value) Index(i int) Value {
	if v.kind != KindSequence || i < 0 || i >= len(v.items) {
		return Null()
	}
	return v.items[i]
}

// Entries returns a copy of the ordered entries of a Mapping, or nil for any other kind
func (v Value) Entries() []Entry {
	if v.kind != KindMapping {
		return nil
	}
	return append([]Entry{}, v.entries...)
}

// Interface converts the value to plain Go types suitable for JSON serialization.
// Mappings keyed entirely by text become JSON objects, which do not keep entry
// order (use Entries for that). Other mappings become an ordered list of pairs.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindI32, KindI64:
		return v.signed
	case KindU32, KindU64, KindLow128:
		return v.unsigned
	case KindBool:
		return v.boolean
	case KindText:
		return v.text
	case KindSequence:
		items := make([]interface{}, len(v.items))
		for i, item := range v.items {
			items[i] = item.Interface()
		}
		return items
	case KindMapping:
		if obj, ok := v.textKeyedObject(); ok {
			return obj
		}
		pairs := make([]interface{}, len(v.entries))
		for i, e := range v.entries {
			pairs[i] = []interface{}{e.Key.Interface(), e.Value.Interface()}
		}
		return pairs
	default:
		return nil
	}
}

func (v Value) textKeyedObject() (fftypes.JSONObject, bool) {
	obj := make(fftypes.JSONObject, len(v.entries))
	for _, e := range v.entries {
		k, ok := e.Key.Text()
		if !ok {
			return nil, false
		}
		obj[k] = e.Value.Interface()
	}
	return obj, true
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindText:
		return fmt.Sprintf("%q", v.text)
	default:
		b, _ := v.MarshalJSON()
		return string(b)
	}
}

// Equal compares kind and content, recursively
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindI32, KindI64:
		return v.signed == o.signed
	case KindU32, KindU64, KindLow128:
		return v.unsigned == o.unsigned
	case KindBool:
		return v.boolean == o.boolean
	case KindText:
		return v.text == o.text
	case KindSequence:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.entries) != len(o.entries) {
			return false
		}
		for i := range v.entries {
			if !v.entries[i].Key.Equal(o.entries[i].Key) || !v.entries[i].Value.Equal(o.entries[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
