//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package planner selects the indexes relevant to a match-predicate
tree: which fields the predicate constrains, which catalog entries
could serve it, and, per indexable leaf, which entries are usable in
the leading versus a later key position. It runs once per planning
attempt, synchronously, on a tree and catalog snapshot owned by the
caller; the only mutation is the relevance tags it attaches.
*/
package planner

import (
	"github.com/EddieWu/mongo/datastore"
	"github.com/EddieWu/mongo/errors"
	"github.com/EddieWu/mongo/expression"
)

/*
SelectIndexes runs the whole relevance phase: collect the constrained
fields, narrow the catalog, tag every indexable node, and enforce
text-index prefix constraints. It returns the surviving candidates;
tag positions refer to that slice. An empty result is a normal
outcome, not an error.
*/
func SelectIndexes(root expression.Expression, catalog []*datastore.IndexEntry) (
	[]*datastore.IndexEntry, errors.Error) {

	fields := GetFields(root, "")
	relevant := FindRelevantIndexes(fields, catalog)

	if err := RateIndexes(root, "", relevant); err != nil {
		return nil, err
	}
	if err := StripInvalidTextAssignments(root, relevant); err != nil {
		return nil, err
	}
	return relevant, nil
}

/*
GetFields returns the set of field paths the predicate tree
constrains. Nothing beneath a NOR contributes: a negated disjunction
cannot be reduced to per-field index bounds.
*/
func GetFields(node expression.Expression, prefix string) map[string]bool {
	fields := make(map[string]bool, 8)
	getFields(node, prefix, fields)
	return fields
}

func getFields(node expression.Expression, prefix string, fields map[string]bool) {
	if node.MatchType() == expression.NOR {
		return
	}

	if canUseIndexOnOwnField(node) {
		fields[prefix+node.Path()] = true
	} else if arrayUsesIndexOnChildren(node) {
		// The predicate {a: {$elemMatch: {b: 1}}} is really over a.b.
		// An elemMatch embedded in $all has an empty path; appending
		// a dot there would produce a malformed field like "a..b".
		if node.Path() != "" {
			prefix += node.Path() + "."
		}
		for _, child := range node.Children() {
			getFields(child, prefix, fields)
		}
	} else if isLogical(node) {
		for _, child := range node.Children() {
			getFields(child, prefix, fields)
		}
	}
}

/*
FindRelevantIndexes narrows the catalog to entries whose leading key
field is among the constrained paths. This is a prefilter only; the
per-leaf compatibility decision comes later.
*/
func FindRelevantIndexes(fields map[string]bool, indexes []*datastore.IndexEntry) []*datastore.IndexEntry {
	rv := make([]*datastore.IndexEntry, 0, len(indexes))
	for _, index := range indexes {
		if len(index.KeyPattern) > 0 && fields[index.KeyPattern[0].Field] {
			rv = append(rv, index)
		}
	}
	return rv
}

/*
RateIndexes walks the tree and attaches a RelevantTag to every
bounds-generating node, recording which of the surviving candidate
indexes are usable with that node's field in the leading key position
(First) and in later positions (NotFirst). Every such node ends up
tagged even when both lists are empty; downstream phases rely on tag
presence to know the node was considered. A NOT receives the tag and
gives an independent copy to its child.
*/
func RateIndexes(node expression.Expression, prefix string, indexes []*datastore.IndexEntry) errors.Error {
	if node.MatchType() == expression.NOR {
		return nil
	}

	if isBoundsGenerating(node) {
		var fullPath string
		if node.MatchType() == expression.NOT {
			fullPath = prefix + node.Children()[0].Path()
		} else {
			fullPath = prefix + node.Path()
		}

		if node.Tag() != nil {
			return errors.NewNodeAlreadyTaggedError(fullPath)
		}
		tag := expression.NewRelevantTag(fullPath)
		node.SetTag(tag)

		for i, index := range indexes {
			keys := index.KeyPattern
			if len(keys) == 0 {
				continue
			}
			if keys[0].Field == fullPath {
				ok, err := compatible(keys[0], index, node)
				if err != nil {
					return err
				}
				if ok {
					tag.First = append(tag.First, i)
				}
			}
			for _, key := range keys[1:] {
				if key.Field == fullPath {
					ok, err := compatible(key, index, node)
					if err != nil {
						return err
					}
					if ok {
						tag.NotFirst = append(tag.NotFirst, i)
					}
				}
			}
		}

		if node.MatchType() == expression.NOT {
			node.Children()[0].SetTag(tag.Copy())
		}
	} else if arrayUsesIndexOnChildren(node) {
		// See the prefix handling in getFields.
		if node.Path() != "" {
			prefix += node.Path() + "."
		}
		for _, child := range node.Children() {
			if err := RateIndexes(child, prefix, indexes); err != nil {
				return err
			}
		}
	} else if isLogical(node) {
		for _, child := range node.Children() {
			if err := RateIndexes(child, prefix, indexes); err != nil {
				return err
			}
		}
	}

	return nil
}
