//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package planner

import (
	"github.com/EddieWu/mongo/expression"
)

// canUseIndexOnOwnField reports whether an index over node's own
// path is relevant. ElemMatchValue counts: its children constrain
// elements of the node's own field.
func canUseIndexOnOwnField(node expression.Expression) bool {
	if node.Path() == "" {
		return false
	}
	if arrayUsesIndexOnChildren(node) {
		return false
	}
	return isIndexOnOwnFieldType(node.MatchType())
}

func isIndexOnOwnFieldType(t expression.MatchType) bool {
	switch t {
	case expression.EQ, expression.LT, expression.LTE, expression.GT, expression.GTE,
		expression.IN, expression.EXISTS, expression.REGEX, expression.MOD,
		expression.SIZE, expression.TYPE_MATCH, expression.TEXT,
		expression.GEO, expression.GEO_NEAR, expression.ELEM_MATCH_VALUE:
		return true
	}
	return false
}

// arrayUsesIndexOnChildren reports whether node prepends its own
// field to the paths of its children, as in a: {$elemMatch: {b: 1}}
// where the predicate is really over a.b.
func arrayUsesIndexOnChildren(node expression.Expression) bool {
	switch node.MatchType() {
	case expression.ELEM_MATCH_OBJECT, expression.ALL:
		return true
	}
	return false
}

func isLogical(node expression.Expression) bool {
	switch node.MatchType() {
	case expression.AND, expression.OR, expression.NOR, expression.NOT:
		return true
	}
	return false
}

// isBoundsGenerating reports whether node is the point where index
// bounds would be generated: an own-field predicate, or a NOT
// directly over one.
func isBoundsGenerating(node expression.Expression) bool {
	return isBoundsGeneratingNot(node) || canUseIndexOnOwnField(node)
}

func isBoundsGeneratingNot(node expression.Expression) bool {
	if node.MatchType() != expression.NOT {
		return false
	}
	children := node.Children()
	return len(children) == 1 && canUseIndexOnOwnField(children[0])
}
