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
	"testing"

	"github.com/EddieWu/mongo/datastore"
	"github.com/EddieWu/mongo/expression"
)

func TestSelectPipeline(t *testing.T) {
	// {$text: "x", a: 5, b: {$gt: 2}} against a catalog where only
	// some entries lead with a constrained field.
	text := expression.NewText("x", "")
	eqA := expression.NewEquals("a", num(5))
	gtB := expression.NewGreaterThan("b", num(2))
	root := expression.NewAnd(text, eqA, gtB)

	catalog := []*datastore.IndexEntry{
		datastore.NewIndexEntry("c_1", datastore.ASC("c")),
		textIndex("a_text", "a"),
		datastore.NewIndexEntry("b_1_a_1", datastore.ASC("b"), datastore.ASC("a")),
	}

	relevant, err := SelectIndexes(root, catalog)
	if err != nil {
		t.Fatalf("SelectIndexes failed: %v", err)
	}

	// c_1 leads with an unconstrained field and is dropped; tag
	// positions refer to the narrowed slice.
	if len(relevant) != 2 || relevant[0].Name != "a_text" || relevant[1].Name != "b_1_a_1" {
		names := make([]string, 0, len(relevant))
		for _, index := range relevant {
			names = append(names, index.Name)
		}
		t.Fatalf("relevant = %v", names)
	}

	checkTag(t, "text", text, expression.TEXT_PATH, nil, []int{0})
	checkTag(t, "eq a", eqA, "a", []int{0}, []int{1})
	checkTag(t, "gt b", gtB, "b", []int{1}, nil)
}

func TestSelectPipelineDeterminism(t *testing.T) {
	catalog := []*datastore.IndexEntry{
		datastore.NewIndexEntry("a_1", datastore.ASC("a")),
		datastore.NewIndexEntry("a_1_b_1", datastore.ASC("a"), datastore.ASC("b")),
	}

	build := func() (*expression.And, *expression.Equals) {
		eq := expression.NewEquals("a", num(5))
		return expression.NewAnd(eq, expression.NewLessThan("b", num(9))), eq
	}

	root1, eq1 := build()
	if _, err := SelectIndexes(root1, catalog); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	root2, eq2 := build()
	if _, err := SelectIndexes(root2, catalog); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if tagString(eq1.Tag()) != tagString(eq2.Tag()) {
		t.Errorf("runs disagree:\n%s\nvs\n%s", tagString(eq1.Tag()), tagString(eq2.Tag()))
	}
	checkTag(t, "eq a", eq1, "a", []int{0, 1}, nil)
}
