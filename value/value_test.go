//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package value

import (
	"testing"
)

func TestTypeRecognition(t *testing.T) {
	var tests = []struct {
		input        interface{}
		expectedType Type
	}{
		{nil, NULL},
		{true, BOOLEAN},
		{3.65, NUMBER},
		{-3, NUMBER},
		{int64(42), NUMBER},
		{"hello", STRING},
		{[]interface{}{"hello"}, ARRAY},
		{map[string]interface{}{"hello": 7.0}, OBJECT},
		{[]byte("asdf"), BINARY},
	}

	for _, test := range tests {
		val := NewValue(test.input)
		if val.Type() != test.expectedType {
			t.Errorf("%v: recognized as %s, expected %s",
				test.input, val.Type(), test.expectedType)
		}
	}

	if NULL_VALUE.Type() != NULL {
		t.Errorf("NULL_VALUE type %s", NULL_VALUE.Type())
	}
	if NewValue(NULL_VALUE) != NULL_VALUE {
		t.Errorf("NewValue did not pass through a Value")
	}
}

func TestStringForm(t *testing.T) {
	var tests = []struct {
		input    interface{}
		expected string
	}{
		{nil, "null"},
		{true, "true"},
		{3.0, "3"},
		{"x", "\"x\""},
	}

	for _, test := range tests {
		if got := NewValue(test.input).String(); got != test.expected {
			t.Errorf("%v: String() = %s, expected %s", test.input, got, test.expected)
		}
	}
}
