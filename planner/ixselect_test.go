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
	"fmt"
	"sort"
	"strings"
	"testing"

	diffpkg "github.com/kylelemons/godebug/diff"

	"github.com/EddieWu/mongo/datastore"
	"github.com/EddieWu/mongo/errors"
	"github.com/EddieWu/mongo/expression"
	"github.com/EddieWu/mongo/value"
)

func num(f float64) value.Value {
	return value.NewValue(f)
}

func fieldList(fields map[string]bool) string {
	list := make([]string, 0, len(fields))
	for f := range fields {
		list = append(list, f)
	}
	sort.Strings(list)
	return strings.Join(list, ",")
}

func TestGetFields(t *testing.T) {
	var tests = []struct {
		name     string
		node     expression.Expression
		expected string
	}{
		{
			"single equality",
			expression.NewEquals("a", num(5)),
			"a",
		},
		{
			"conjunction",
			expression.NewAnd(
				expression.NewEquals("a", num(5)),
				expression.NewGreaterThan("b", num(3)),
			),
			"a,b",
		},
		{
			"disjunction with duplicates",
			expression.NewOr(
				expression.NewEquals("a", num(5)),
				expression.NewLessThan("a", num(10)),
			),
			"a",
		},
		{
			"nor contributes nothing",
			expression.NewNor(
				expression.NewEquals("a", num(5)),
			),
			"",
		},
		{
			"nor opaque inside conjunction",
			expression.NewAnd(
				expression.NewEquals("a", num(5)),
				expression.NewNor(expression.NewEquals("b", num(7))),
			),
			"a",
		},
		{
			"negation recurses",
			expression.NewNot(expression.NewGreaterThan("a", num(3))),
			"a",
		},
		{
			"elemMatch object prepends its path",
			expression.NewElemMatchObject("a",
				expression.NewEquals("b", num(1)),
				expression.NewEquals("c", num(2)),
			),
			"a.b,a.c",
		},
		{
			"elemMatch embedded in $all has empty path",
			expression.NewAll("a",
				expression.NewElemMatchObject("",
					expression.NewEquals("b", num(1)),
				),
			),
			"a.b",
		},
		{
			"elemMatch value is an own-field predicate",
			expression.NewElemMatchValue("a",
				expression.NewGreaterThan("", num(5)),
			),
			"a",
		},
		{
			"text predicate constrains the reserved field",
			expression.NewAnd(
				expression.NewText("coffee", ""),
				expression.NewEquals("a", num(1)),
			),
			"_fts,a",
		},
	}

	for _, test := range tests {
		fields := GetFields(test.node, "")
		if got := fieldList(fields); got != test.expected {
			t.Errorf("%s: got fields %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestFindRelevantIndexes(t *testing.T) {
	indexes := []*datastore.IndexEntry{
		datastore.NewIndexEntry("a_1", datastore.ASC("a")),
		datastore.NewIndexEntry("b_1", datastore.ASC("b")),
		datastore.NewIndexEntry("c_1_a_1", datastore.ASC("c"), datastore.ASC("a")),
	}

	var tests = []struct {
		fields   string
		expected string
	}{
		{"a", "a_1"},
		{"a,c", "a_1,c_1_a_1"},
		{"b,c", "b_1,c_1_a_1"},
		{"d", ""},
	}

	for _, test := range tests {
		fields := make(map[string]bool)
		for _, f := range strings.Split(test.fields, ",") {
			fields[f] = true
		}
		relevant := FindRelevantIndexes(fields, indexes)
		names := make([]string, 0, len(relevant))
		for _, index := range relevant {
			names = append(names, index.Name)
		}
		if got := strings.Join(names, ","); got != test.expected {
			t.Errorf("fields %q: got indexes %q, expected %q", test.fields, got, test.expected)
		}
	}
}

func rate(t *testing.T, node expression.Expression, indexes ...*datastore.IndexEntry) {
	t.Helper()
	if err := RateIndexes(node, "", indexes); err != nil {
		t.Fatalf("RateIndexes failed: %v", err)
	}
}

func checkTag(t *testing.T, name string, node expression.Expression, path string, first, notFirst []int) {
	t.Helper()
	tag := node.Tag()
	if tag == nil {
		t.Fatalf("%s: node %s has no tag", name, node)
	}
	if tag.Path != path {
		t.Errorf("%s: tag path %q, expected %q", name, tag.Path, path)
	}
	if !equalInts(tag.First, first) || !equalInts(tag.NotFirst, notFirst) {
		got := tagString(tag)
		expected := tagString(&expression.RelevantTag{Path: path, First: first, NotFirst: notFirst})
		t.Errorf("%s: tag mismatch:\n%s", name, diffpkg.Diff(expected, got))
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func tagString(tag *expression.RelevantTag) string {
	return fmt.Sprintf("path: %s\nfirst: %v\nnotFirst: %v", tag.Path, tag.First, tag.NotFirst)
}

func TestRateSimpleEquality(t *testing.T) {
	leaf := expression.NewEquals("a", num(5))
	rate(t, leaf, datastore.NewIndexEntry("a_1", datastore.ASC("a")))
	checkTag(t, "eq", leaf, "a", []int{0}, nil)
}

func TestRateSuffixPosition(t *testing.T) {
	leaf := expression.NewGreaterThan("b", num(3))
	rate(t, leaf,
		datastore.NewIndexEntry("a_1_b_1", datastore.ASC("a"), datastore.ASC("b")),
		datastore.NewIndexEntry("b_1", datastore.ASC("b")),
	)
	checkTag(t, "suffix", leaf, "b", []int{1}, []int{0})
}

func TestRateRepeatedField(t *testing.T) {
	// Key patterns normally do not repeat a field, but a repeat must
	// land the index in both lists.
	leaf := expression.NewEquals("a", num(1))
	rate(t, leaf,
		datastore.NewIndexEntry("a_1_b_1_a_1",
			datastore.ASC("a"), datastore.ASC("b"), datastore.ASC("a")),
	)
	checkTag(t, "repeat", leaf, "a", []int{0}, []int{0})
}

func TestRateEmptyTagPresence(t *testing.T) {
	// No candidate at all: the leaf is still tagged, with empty lists.
	leaf := expression.NewEquals("a", num(5))
	rate(t, leaf, datastore.NewIndexEntry("b_1", datastore.ASC("b")))
	checkTag(t, "empty", leaf, "a", nil, nil)
}

func TestRateNorOpacity(t *testing.T) {
	inner := expression.NewEquals("a", num(5))
	node := expression.NewNor(inner)
	rate(t, node, datastore.NewIndexEntry("a_1", datastore.ASC("a")))
	if inner.Tag() != nil {
		t.Errorf("leaf under NOR was tagged")
	}
	if node.Tag() != nil {
		t.Errorf("NOR itself was tagged")
	}
}

func TestRateSparseNullEquality(t *testing.T) {
	sparse := datastore.NewIndexEntry("a_1", datastore.ASC("a"))
	sparse.Sparse = true

	nullLeaf := expression.NewEquals("a", value.NULL_VALUE)
	rate(t, nullLeaf, sparse)
	checkTag(t, "null on sparse", nullLeaf, "a", nil, nil)

	plainLeaf := expression.NewEquals("a", num(5))
	rate(t, plainLeaf, sparse)
	checkTag(t, "non-null on sparse", plainLeaf, "a", []int{0}, nil)

	dense := datastore.NewIndexEntry("a_1", datastore.ASC("a"))
	denseNull := expression.NewEquals("a", value.NULL_VALUE)
	rate(t, denseNull, dense)
	checkTag(t, "null on dense", denseNull, "a", []int{0}, nil)
}

func TestRateNegation(t *testing.T) {
	build := func() *expression.Not {
		return expression.NewNot(expression.NewEquals("a", num(5)))
	}

	plain := datastore.NewIndexEntry("a_1", datastore.ASC("a"))
	not := build()
	rate(t, not, plain)
	checkTag(t, "not on plain", not, "a", []int{0}, nil)
	checkTag(t, "not child clone", not.Operand(), "a", []int{0}, nil)

	sparse := datastore.NewIndexEntry("a_1", datastore.ASC("a"))
	sparse.Sparse = true
	not = build()
	rate(t, not, sparse)
	checkTag(t, "not on sparse", not, "a", nil, nil)

	multikey := datastore.NewIndexEntry("a_1", datastore.ASC("a"))
	multikey.Multikey = true
	not = build()
	rate(t, not, multikey)
	checkTag(t, "not on multikey", not, "a", nil, nil)
}

func TestRateNegatedRegexAndMod(t *testing.T) {
	index := datastore.NewIndexEntry("a_1", datastore.ASC("a"))

	notRegex := expression.NewNot(expression.NewRegex("a", "^x", ""))
	rate(t, notRegex, index)
	checkTag(t, "not regex", notRegex, "a", nil, nil)

	notMod := expression.NewNot(expression.NewMod("a", 3, 1))
	rate(t, notMod, index)
	checkTag(t, "not mod", notMod, "a", nil, nil)

	notGt := expression.NewNot(expression.NewGreaterThan("a", num(2)))
	rate(t, notGt, index)
	checkTag(t, "not gt", notGt, "a", []int{0}, nil)
}

func TestNotCloneIndependence(t *testing.T) {
	not := expression.NewNot(expression.NewEquals("a", num(5)))
	rate(t, not, datastore.NewIndexEntry("a_1", datastore.ASC("a")))

	child := not.Operand()
	child.Tag().Remove(0)
	checkTag(t, "parent after child mutation", not, "a", []int{0}, nil)

	not.Tag().First = append(not.Tag().First, 7)
	checkTag(t, "child after parent mutation", child, "a", nil, nil)
}

func TestRateAlreadyTagged(t *testing.T) {
	leaf := expression.NewEquals("a", num(5))
	indexes := []*datastore.IndexEntry{datastore.NewIndexEntry("a_1", datastore.ASC("a"))}
	if err := RateIndexes(leaf, "", indexes); err != nil {
		t.Fatalf("first rating failed: %v", err)
	}
	err := RateIndexes(leaf, "", indexes)
	if err == nil {
		t.Fatalf("second rating did not fail")
	}
	if err.Code() != errors.NODE_ALREADY_TAGGED {
		t.Errorf("got code %d, expected %d", err.Code(), errors.NODE_ALREADY_TAGGED)
	}
}

func TestRateElemMatchPrefix(t *testing.T) {
	inner := expression.NewEquals("b", num(1))
	node := expression.NewElemMatchObject("a", inner)
	rate(t, node,
		datastore.NewIndexEntry("ab_1", datastore.ASC("a.b")),
		datastore.NewIndexEntry("b_1", datastore.ASC("b")),
	)
	checkTag(t, "elemMatch child", inner, "a.b", []int{0}, nil)
	if node.Tag() != nil {
		t.Errorf("elemMatch object itself was tagged")
	}
}

func TestRateHashed(t *testing.T) {
	hashed := datastore.NewIndexEntry("a_hashed", datastore.Special("a", datastore.HASHED))

	eq := expression.NewEquals("a", num(5))
	rate(t, eq, hashed)
	checkTag(t, "eq on hashed", eq, "a", []int{0}, nil)

	in := expression.NewIn("a", num(1), num(2))
	rate(t, in, hashed)
	checkTag(t, "in on hashed", in, "a", []int{0}, nil)

	gt := expression.NewGreaterThan("a", num(5))
	rate(t, gt, hashed)
	checkTag(t, "gt on hashed", gt, "a", nil, nil)
}

func TestRateLegacyClassification(t *testing.T) {
	// An ancient catalog can hold {a: "2dsphere"} created before
	// special families existed; classified BTREE, it stays a plain
	// B-tree index and the family string in the key is ignored.
	legacy := datastore.NewIndexEntry("a_legacy", datastore.Special("a", datastore.GEO_2DSPHERE))
	legacy.Type = datastore.BTREE

	gt := expression.NewGreaterThan("a", num(5))
	rate(t, gt, legacy)
	checkTag(t, "range on legacy", gt, "a", []int{0}, nil)

	genuine := datastore.NewIndexEntry("a_2dsphere", datastore.Special("a", datastore.GEO_2DSPHERE))
	gt = expression.NewGreaterThan("a", num(5))
	rate(t, gt, genuine)
	checkTag(t, "range on genuine 2dsphere", gt, "a", nil, nil)
}

func TestRateUnknownFamily(t *testing.T) {
	bogus := datastore.NewIndexEntry("a_bogus", datastore.Special("a", datastore.IndexType("wiredWombat")))
	leaf := expression.NewEquals("a", num(5))
	err := RateIndexes(leaf, "", []*datastore.IndexEntry{bogus})
	if err == nil {
		t.Fatalf("unknown family did not fail")
	}
	if err.Code() != errors.UNKNOWN_INDEX_FAMILY {
		t.Errorf("got code %d, expected %d", err.Code(), errors.UNKNOWN_INDEX_FAMILY)
	}
}

func TestRateGeoOnOrdinaryKey(t *testing.T) {
	leaf := geoWithinCap(0, 0, 0.1)
	rate(t, leaf, datastore.NewIndexEntry("loc_1", datastore.ASC("loc")))
	checkTag(t, "geo on btree", leaf, "loc", nil, nil)
}
