//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package value provides the typed value model used by match
predicates. Index selection only needs to classify values (in
particular, to detect explicit nulls), so this is a deliberately
small surface.
*/
package value

import (
	"fmt"

	json "github.com/couchbase/go_json"
)

type Tristate int

const (
	NONE = Tristate(iota)
	FALSE
	TRUE
)

func ToTristate(b bool) Tristate {
	if b {
		return TRUE
	}
	return FALSE
}

func ToBool(t Tristate) bool {
	return t == TRUE
}

/*
The data types a Value can take. Missing is distinct from null: a
missing field is absent from the document, a null field is present
with an explicit null.
*/
type Type int

const (
	MISSING = Type(iota) // Missing field
	NULL                 // Explicit null
	BOOLEAN              // JSON boolean
	NUMBER               // JSON number
	STRING               // JSON string
	ARRAY                // JSON array
	OBJECT               // JSON object
	BINARY               // non-JSON
)

func (this Type) String() string {
	return _TYPE_NAMES[this]
}

var _TYPE_NAMES = []string{
	MISSING: "missing",
	NULL:    "null",
	BOOLEAN: "boolean",
	NUMBER:  "number",
	STRING:  "string",
	ARRAY:   "array",
	OBJECT:  "object",
	BINARY:  "binary",
}

type Values []Value

type Value interface {
	fmt.Stringer
	json.Marshaler

	Type() Type
	Actual() interface{}
}

var NULL_VALUE Value = &nullValue{}
var MISSING_VALUE Value = &missingValue{}
var TRUE_VALUE Value = boolValue(true)
var FALSE_VALUE Value = boolValue(false)
var ZERO_VALUE Value = floatValue(0.0)
var EMPTY_STRING_VALUE Value = stringValue("")

/*
NewValue wraps a Go native in a Value. Unrecognized natives are
treated as binary.
*/
func NewValue(val interface{}) Value {
	switch val := val.(type) {
	case Value:
		return val
	case nil:
		return NULL_VALUE
	case bool:
		return boolValue(val)
	case float64:
		return floatValue(val)
	case float32:
		return floatValue(float64(val))
	case int:
		return floatValue(float64(val))
	case int64:
		return floatValue(float64(val))
	case string:
		return stringValue(val)
	case []interface{}:
		return sliceValue(val)
	case map[string]interface{}:
		return objectValue(val)
	case []byte:
		return binaryValue(val)
	default:
		return binaryValue(fmt.Sprintf("%v", val))
	}
}

type missingValue struct {
}

func (this *missingValue) String() string               { return "missing" }
func (this *missingValue) MarshalJSON() ([]byte, error) { return _NULL_BYTES, nil }
func (this *missingValue) Type() Type                   { return MISSING }
func (this *missingValue) Actual() interface{}          { return nil }

type nullValue struct {
}

func (this *nullValue) String() string               { return "null" }
func (this *nullValue) MarshalJSON() ([]byte, error) { return _NULL_BYTES, nil }
func (this *nullValue) Type() Type                   { return NULL }
func (this *nullValue) Actual() interface{}          { return nil }

var _NULL_BYTES = []byte("null")

type boolValue bool

func (this boolValue) String() string {
	if this {
		return "true"
	}
	return "false"
}

func (this boolValue) MarshalJSON() ([]byte, error) {
	return []byte(this.String()), nil
}

func (this boolValue) Type() Type          { return BOOLEAN }
func (this boolValue) Actual() interface{} { return bool(this) }

type floatValue float64

func (this floatValue) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this floatValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(this))
}

func (this floatValue) Type() Type          { return NUMBER }
func (this floatValue) Actual() interface{} { return float64(this) }

type stringValue string

func (this stringValue) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this stringValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(this))
}

func (this stringValue) Type() Type          { return STRING }
func (this stringValue) Actual() interface{} { return string(this) }

type sliceValue []interface{}

func (this sliceValue) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this sliceValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}(this))
}

func (this sliceValue) Type() Type          { return ARRAY }
func (this sliceValue) Actual() interface{} { return []interface{}(this) }

type objectValue map[string]interface{}

func (this objectValue) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this objectValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}(this))
}

func (this objectValue) Type() Type          { return OBJECT }
func (this objectValue) Actual() interface{} { return map[string]interface{}(this) }

type binaryValue string

func (this binaryValue) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this binaryValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(this))
}

func (this binaryValue) Type() Type          { return BINARY }
func (this binaryValue) Actual() interface{} { return string(this) }
