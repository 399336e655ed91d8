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
)

/*
ElemMatchObject applies a sub-filter to object elements of an array
field: {a: {$elemMatch: {b: 1, c: 1}}} constrains a.b and a.c. The
children's paths are relative to this node's path. Path is empty when
the elemMatch is embedded directly in an $all array.
*/
type ElemMatchObject struct {
	expressionBase
	operands Expressions
}

func NewElemMatchObject(path string, operands ...Expression) *ElemMatchObject {
	rv := &ElemMatchObject{operands: operands}
	rv.path = path
	return rv
}

func (this *ElemMatchObject) MatchType() MatchType  { return ELEM_MATCH_OBJECT }
func (this *ElemMatchObject) Children() Expressions { return this.operands }

func (this *ElemMatchObject) String() string {
	return fmt.Sprintf("{%q:{\"$elemMatch\":%s}}", this.path, stringChildren(this.operands))
}

/*
ElemMatchValue applies leaf predicates to scalar elements of an array
field: {a: {$elemMatch: {$gt: 5, $lt: 10}}}. The children have empty
paths; the constrained field is this node's own path, so it is
treated as an own-field predicate by index selection.
*/
type ElemMatchValue struct {
	expressionBase
	operands Expressions
}

func NewElemMatchValue(path string, operands ...Expression) *ElemMatchValue {
	rv := &ElemMatchValue{operands: operands}
	rv.path = path
	return rv
}

func (this *ElemMatchValue) MatchType() MatchType  { return ELEM_MATCH_VALUE }
func (this *ElemMatchValue) Children() Expressions { return this.operands }

func (this *ElemMatchValue) String() string {
	return fmt.Sprintf("{%q:{\"$elemMatch\":%s}}", this.path, stringChildren(this.operands))
}

// All requires an array field to contain every operand. After parser
// rewrites the operands are equalities or embedded elemMatches.
type All struct {
	expressionBase
	operands Expressions
}

func NewAll(path string, operands ...Expression) *All {
	rv := &All{operands: operands}
	rv.path = path
	return rv
}

func (this *All) MatchType() MatchType  { return ALL }
func (this *All) Children() Expressions { return this.operands }

func (this *All) String() string {
	return fmt.Sprintf("{%q:{\"$all\":%s}}", this.path, stringChildren(this.operands))
}
