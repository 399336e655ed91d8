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
	log "github.com/couchbase/clog"

	"github.com/EddieWu/mongo/datastore"
	"github.com/EddieWu/mongo/errors"
	"github.com/EddieWu/mongo/expression"
	"github.com/EddieWu/mongo/value"
)

/*
compatible decides whether the index can serve the predicate node
through the given key-pattern element. A false return is normal
control flow; an error means the catalog is malformed and the
planning attempt must abort.
*/
func compatible(key datastore.IndexKey, index *datastore.IndexEntry, node expression.Expression) (
	bool, errors.Error) {

	// Ancient catalogs admitted arbitrary key-spec values, including
	// strings that today name special families. If the entry is
	// classified as a plain B-tree index, the key element's family
	// marker is a legacy artifact and must be ignored.
	family := key.Family
	if index.Type == datastore.BTREE {
		family = ""
	}

	if family == "" {
		return compatibleOrdinary(index, node)
	}

	exprType := node.MatchType()
	switch family {
	case datastore.HASHED:
		// Hashed keys support only point lookups.
		return exprType == expression.IN || exprType == expression.EQ, nil
	case datastore.GEO_2DSPHERE:
		return compatible2DSphere(node, exprType), nil
	case datastore.GEO_2D:
		return compatible2D(index, node, exprType), nil
	case datastore.TEXT:
		return exprType == expression.TEXT, nil
	case datastore.GEO_HAYSTACK:
		return false, nil
	default:
		log.Warnf("unknown indexing for node %s and field %s of index %s",
			node.String(), key.Field, index.Name)
		return false, errors.NewUnknownIndexFamilyError(node.String(), key.Field)
	}
}

// compatibleOrdinary handles an ordinary ascending/descending key
// element, including a non-text prefix field of a text index.
func compatibleOrdinary(index *datastore.IndexEntry, node expression.Expression) (
	bool, errors.Error) {

	exprType := node.MatchType()

	// A sparse index omits documents missing the field, so it cannot
	// certify absence via an equality on null.
	if exprType == expression.EQ && index.Sparse {
		if eq, ok := node.(*expression.Equals); ok && eq.Value().Type() == value.NULL {
			return false, nil
		}
	}

	// Geo predicates need a geo-specialized key.
	if exprType == expression.GEO || exprType == expression.GEO_NEAR {
		return false, nil
	}

	if exprType == expression.NOT {
		// Sparse: documents without the field are absent from the
		// index, so they silently drop out of the negation's
		// complement. Multikey: with index {a: 1}, the document
		// {a: [1, 2, 3]} does not match {a: {$ne: 3}}, but a scan of
		// [MinKey, 3) and (3, MaxKey] without a residual filter
		// would return it.
		if index.Sparse || index.Multikey {
			return false, nil
		}
		// No negated bounds exist for regex or mod.
		childType := node.Children()[0].MatchType()
		if childType == expression.REGEX || childType == expression.MOD {
			return false, nil
		}
	}

	if index.Type != datastore.TEXT {
		return true, nil
	}

	// Text indexes can only use equality over their prefix fields:
	// the text engine extracts a deterministic prefix value per
	// prefix field, which only an equality pins down.
	//
	// Example for key pattern {a: 1, _fts: "text"}:
	// - Allowed: {a: 7}
	// - Not allowed: {a: {$gt: 7}}
	if exprType == expression.EQ {
		return true, nil
	}

	// Non-equalities are fine in a suffix field. Walk the key
	// pattern: the sentinel element divides prefix from suffix, so
	// seeing it first means the field under consideration sits in
	// the suffix.
	for _, key := range index.KeyPattern {
		if key.Family != "" {
			return true, nil
		}
		if node.Path() == key.Field {
			return false, nil
		}
	}

	// A text index always contains the sentinel; running off the end
	// of the key pattern means the catalog entry is malformed.
	return false, errors.NewTextIndexNoSentinelError(index.Name)
}
