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
	"github.com/EddieWu/mongo/datastore"
	"github.com/EddieWu/mongo/errors"
	"github.com/EddieWu/mongo/expression"
	"github.com/EddieWu/mongo/util"
)

/*
StripInvalidTextAssignments removes relevance-tag assignments to text
indexes that the text engine could not actually serve. A text index
with prefix fields is only usable when the conjunction containing the
text predicate also equality-constrains every prefix field; anywhere
that does not hold, assignments to the index are stripped from the
whole conjunction.
*/
func StripInvalidTextAssignments(root expression.Expression, indexes []*datastore.IndexEntry) errors.Error {
	for i, index := range indexes {
		if index.Type != datastore.TEXT {
			continue
		}

		// Gather the fields preceding the sentinel element. Each
		// needs an equality assignment for anything at all to be
		// assigned to this index.
		prefixPaths := _STRING_BOOL_POOL.Get()
		sentinel := false
		for _, key := range index.KeyPattern {
			if key.Family != "" {
				sentinel = true
				break
			}
			prefixPaths[key.Field] = true
		}
		if !sentinel {
			_STRING_BOOL_POOL.Put(prefixPaths)
			return errors.NewTextIndexNoSentinelError(index.Name)
		}

		if len(prefixPaths) > 0 {
			stripInvalidTextAssignments(root, i, prefixPaths)
		}
		_STRING_BOOL_POOL.Put(prefixPaths)
	}
	return nil
}

func stripInvalidTextAssignments(node expression.Expression, idx int, prefixPaths map[string]bool) {
	// Reaching an own-field predicate here means its enclosing
	// conjunction cannot use the index: either it is the text
	// predicate with an unsatisfied prefix, or a non-text predicate
	// with no AND-related text predicate.
	if canUseIndexOnOwnField(node) {
		if tag := node.Tag(); tag != nil {
			tag.Remove(idx)
		}
		return
	}

	// Negations already exclude text interactions upstream.
	if node.MatchType() == expression.NOT || node.MatchType() == expression.NOR {
		return
	}

	if node.MatchType() != expression.AND {
		// An OR or an array operator; check inside.
		for _, child := range node.Children() {
			stripInvalidTextAssignments(child, idx, prefixPaths)
		}
		return
	}

	// An AND. Decide whether its direct children satisfy the index
	// prefix: each visited assignment to the index crosses a prefix
	// field off the working set. A suffix assignment can land here
	// too, in which case the delete below finds nothing to remove.
	hasText := false
	remaining := _STRING_BOOL_POOL.Get()
	for path := range prefixPaths {
		remaining[path] = true
	}

	for _, child := range node.Children() {
		tag := child.Tag()
		if tag == nil {
			// Could be a logical operator hiding assignments.
			stripInvalidTextAssignments(child, idx, prefixPaths)
			continue
		}

		if tag.HasIndex(idx) {
			if child.MatchType() == expression.TEXT {
				hasText = true
			} else {
				delete(remaining, child.Path())
			}
		} else {
			stripInvalidTextAssignments(child, idx, prefixPaths)
		}
	}

	// Prerequisites not met: no assignment below this AND may stay.
	if !hasText || len(remaining) > 0 {
		for _, child := range node.Children() {
			stripInvalidTextAssignments(child, idx, prefixPaths)
		}
	}

	_STRING_BOOL_POOL.Put(remaining)
}

var _STRING_BOOL_POOL = util.NewStringBoolPool(64)
