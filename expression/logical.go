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

type And struct {
	expressionBase
	operands Expressions
}

func NewAnd(operands ...Expression) *And {
	return &And{operands: operands}
}

func (this *And) MatchType() MatchType  { return AND }
func (this *And) Children() Expressions { return this.operands }

func (this *And) String() string {
	return fmt.Sprintf("{\"$and\":%s}", stringChildren(this.operands))
}

type Or struct {
	expressionBase
	operands Expressions
}

func NewOr(operands ...Expression) *Or {
	return &Or{operands: operands}
}

func (this *Or) MatchType() MatchType  { return OR }
func (this *Or) Children() Expressions { return this.operands }

func (this *Or) String() string {
	return fmt.Sprintf("{\"$or\":%s}", stringChildren(this.operands))
}

/*
Nor is a negated disjunction. Planning never descends into it: a
negated disjunction cannot be safely reduced to per-field index
bounds, so its subtree is opaque to index selection.
*/
type Nor struct {
	expressionBase
	operands Expressions
}

func NewNor(operands ...Expression) *Nor {
	return &Nor{operands: operands}
}

func (this *Nor) MatchType() MatchType  { return NOR }
func (this *Nor) Children() Expressions { return this.operands }

func (this *Nor) String() string {
	return fmt.Sprintf("{\"$nor\":%s}", stringChildren(this.operands))
}

type Not struct {
	expressionBase
	operand Expression
}

func NewNot(operand Expression) *Not {
	return &Not{operand: operand}
}

func (this *Not) MatchType() MatchType  { return NOT }
func (this *Not) Children() Expressions { return Expressions{this.operand} }
func (this *Not) Operand() Expression   { return this.operand }

func (this *Not) String() string {
	return fmt.Sprintf("{\"$not\":%s}", this.operand)
}
