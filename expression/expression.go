//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package expression provides the match-predicate tree consumed by the
planner. Trees are built by the query parser, simplified upstream,
and are read-only inputs to planning except for the relevance tags
the planner attaches to nodes.
*/
package expression

import (
	"fmt"
)

type MatchType int

const (
	// Logical connectives.
	AND = MatchType(iota)
	OR
	NOR
	NOT

	// Array operators.
	ELEM_MATCH_OBJECT
	ELEM_MATCH_VALUE
	ALL

	// Leaf predicates.
	EQ
	LT
	LTE
	GT
	GTE
	IN
	EXISTS
	REGEX
	MOD
	SIZE
	TYPE_MATCH
	TEXT
	GEO
	GEO_NEAR
)

func (this MatchType) String() string {
	return _MATCH_TYPE_NAMES[this]
}

var _MATCH_TYPE_NAMES = []string{
	AND:               "$and",
	OR:                "$or",
	NOR:               "$nor",
	NOT:               "$not",
	ELEM_MATCH_OBJECT: "$elemMatch",
	ELEM_MATCH_VALUE:  "$elemMatch",
	ALL:               "$all",
	EQ:                "$eq",
	LT:                "$lt",
	LTE:               "$lte",
	GT:                "$gt",
	GTE:               "$gte",
	IN:                "$in",
	EXISTS:            "$exists",
	REGEX:             "$regex",
	MOD:               "$mod",
	SIZE:              "$size",
	TYPE_MATCH:        "$type",
	TEXT:              "$text",
	GEO:               "$geoWithin",
	GEO_NEAR:          "$near",
}

type Expressions []Expression

/*
Expression is a node of the match-predicate tree. Path is the
dot-separated field the node constrains; it is empty for connectives,
for text predicates, and for an elemMatch embedded directly in an
$all array. Children returns the ordered sub-predicates, nil for
leaves.
*/
type Expression interface {
	fmt.Stringer

	MatchType() MatchType
	Path() string
	Children() Expressions

	// Relevance annotation, owned by the planner.
	Tag() *RelevantTag
	SetTag(tag *RelevantTag)
}
