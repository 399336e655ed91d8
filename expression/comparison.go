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

func stringLeaf(path string, op string, val value.Value) string {
	return fmt.Sprintf("{%q:{%q:%s}}", path, op, val)
}

type Equals struct {
	expressionBase
	value value.Value
}

func NewEquals(path string, val value.Value) *Equals {
	rv := &Equals{value: val}
	rv.path = path
	return rv
}

func (this *Equals) MatchType() MatchType { return EQ }
func (this *Equals) Value() value.Value   { return this.value }

func (this *Equals) String() string {
	return fmt.Sprintf("{%q:%s}", this.path, this.value)
}

type LessThan struct {
	expressionBase
	value value.Value
}

func NewLessThan(path string, val value.Value) *LessThan {
	rv := &LessThan{value: val}
	rv.path = path
	return rv
}

func (this *LessThan) MatchType() MatchType { return LT }
func (this *LessThan) Value() value.Value   { return this.value }
func (this *LessThan) String() string       { return stringLeaf(this.path, "$lt", this.value) }

type LessThanOrEquals struct {
	expressionBase
	value value.Value
}

func NewLessThanOrEquals(path string, val value.Value) *LessThanOrEquals {
	rv := &LessThanOrEquals{value: val}
	rv.path = path
	return rv
}

func (this *LessThanOrEquals) MatchType() MatchType { return LTE }
func (this *LessThanOrEquals) Value() value.Value   { return this.value }
func (this *LessThanOrEquals) String() string       { return stringLeaf(this.path, "$lte", this.value) }

type GreaterThan struct {
	expressionBase
	value value.Value
}

func NewGreaterThan(path string, val value.Value) *GreaterThan {
	rv := &GreaterThan{value: val}
	rv.path = path
	return rv
}

func (this *GreaterThan) MatchType() MatchType { return GT }
func (this *GreaterThan) Value() value.Value   { return this.value }
func (this *GreaterThan) String() string       { return stringLeaf(this.path, "$gt", this.value) }

type GreaterThanOrEquals struct {
	expressionBase
	value value.Value
}

func NewGreaterThanOrEquals(path string, val value.Value) *GreaterThanOrEquals {
	rv := &GreaterThanOrEquals{value: val}
	rv.path = path
	return rv
}

func (this *GreaterThanOrEquals) MatchType() MatchType { return GTE }
func (this *GreaterThanOrEquals) Value() value.Value   { return this.value }
func (this *GreaterThanOrEquals) String() string {
	return stringLeaf(this.path, "$gte", this.value)
}

type In struct {
	expressionBase
	values value.Values
}

func NewIn(path string, values ...value.Value) *In {
	rv := &In{values: values}
	rv.path = path
	return rv
}

func (this *In) MatchType() MatchType { return IN }
func (this *In) Values() value.Values { return this.values }

func (this *In) String() string {
	return fmt.Sprintf("{%q:{\"$in\":%v}}", this.path, this.values)
}
