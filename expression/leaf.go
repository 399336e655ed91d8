//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package expression

import (
	"fmt"

	"github.com/EddieWu/mongo/value"
)

type Exists struct {
	expressionBase
	exists bool
}

func NewExists(path string, exists bool) *Exists {
	rv := &Exists{exists: exists}
	rv.path = path
	return rv
}

func (this *Exists) MatchType() MatchType { return EXISTS }
func (this *Exists) Exists() bool         { return this.exists }

func (this *Exists) String() string {
	return fmt.Sprintf("{%q:{\"$exists\":%v}}", this.path, this.exists)
}

type Regex struct {
	expressionBase
	pattern string
	options string
}

func NewRegex(path string, pattern string, options string) *Regex {
	rv := &Regex{pattern: pattern, options: options}
	rv.path = path
	return rv
}

func (this *Regex) MatchType() MatchType { return REGEX }
func (this *Regex) Pattern() string      { return this.pattern }
func (this *Regex) Options() string      { return this.options }

func (this *Regex) String() string {
	return fmt.Sprintf("{%q:{\"$regex\":%q}}", this.path, this.pattern)
}

type Mod struct {
	expressionBase
	divisor   int64
	remainder int64
}

func NewMod(path string, divisor, remainder int64) *Mod {
	rv := &Mod{divisor: divisor, remainder: remainder}
	rv.path = path
	return rv
}

func (this *Mod) MatchType() MatchType { return MOD }
func (this *Mod) Divisor() int64       { return this.divisor }
func (this *Mod) Remainder() int64     { return this.remainder }

func (this *Mod) String() string {
	return fmt.Sprintf("{%q:{\"$mod\":[%d,%d]}}", this.path, this.divisor, this.remainder)
}

type Size struct {
	expressionBase
	size int
}

func NewSize(path string, size int) *Size {
	rv := &Size{size: size}
	rv.path = path
	return rv
}

func (this *Size) MatchType() MatchType { return SIZE }
func (this *Size) Size() int            { return this.size }

func (this *Size) String() string {
	return fmt.Sprintf("{%q:{\"$size\":%d}}", this.path, this.size)
}

type TypeMatch struct {
	expressionBase
	valueType value.Type
}

func NewTypeMatch(path string, valueType value.Type) *TypeMatch {
	rv := &TypeMatch{valueType: valueType}
	rv.path = path
	return rv
}

func (this *TypeMatch) MatchType() MatchType  { return TYPE_MATCH }
func (this *TypeMatch) ValueType() value.Type { return this.valueType }

func (this *TypeMatch) String() string {
	return fmt.Sprintf("{%q:{\"$type\":%q}}", this.path, this.valueType)
}
