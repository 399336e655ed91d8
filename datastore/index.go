//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package datastore describes the index catalog entries the planner
selects among. Entries are snapshots taken by the calling planning
context; this package does not talk to storage.
*/
package datastore

/*
IndexType is the closed set of index families. The family of an
entry is decided once, at construction, and switched on exhaustively
thereafter.
*/
type IndexType string

const (
	BTREE        = IndexType("btree")
	HASHED       = IndexType("hashed")
	GEO_2D       = IndexType("2d")
	GEO_2DSPHERE = IndexType("2dsphere")
	TEXT         = IndexType("text")
	GEO_HAYSTACK = IndexType("geoHaystack")
)

/*
IndexKey is one element of an index key pattern: a field name with
either an ordinal sort direction or a special-family marker. Family
is empty for ordinary ascending/descending keys.
*/
type IndexKey struct {
	Field  string
	Order  int
	Family IndexType
}

func ASC(field string) IndexKey {
	return IndexKey{Field: field, Order: 1}
}

func DESC(field string) IndexKey {
	return IndexKey{Field: field, Order: -1}
}

func Special(field string, family IndexType) IndexKey {
	return IndexKey{Field: field, Family: family}
}

type IndexKeys []IndexKey

// Family returns the special family named by the first non-ordinal
// key, or BTREE for a plain key pattern.
func (this IndexKeys) Family() IndexType {
	for _, key := range this {
		if key.Family != "" {
			return key.Family
		}
	}
	return BTREE
}

/*
IndexEntry is a catalog snapshot of one index. Type redundantly
stores the family classification: ancient catalogs could hold key
patterns with string-valued key specs that predate special index
families, and those remain plain B-tree indexes no matter what the
key pattern says. Options carries auxiliary creation parameters
(geohash bit depth, 2d min/max bounds) queried by name.
*/
type IndexEntry struct {
	Name       string
	KeyPattern IndexKeys
	Type       IndexType
	Sparse     bool
	Multikey   bool
	Options    map[string]interface{}
}

func NewIndexEntry(name string, keys ...IndexKey) *IndexEntry {
	pattern := IndexKeys(keys)
	return &IndexEntry{
		Name:       name,
		KeyPattern: pattern,
		Type:       pattern.Family(),
	}
}

// NumberOption returns the named numeric option, or def when the
// option is absent or not numeric.
func (this *IndexEntry) NumberOption(name string, def float64) float64 {
	switch v := this.Options[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}
