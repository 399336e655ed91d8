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
	"testing"
)

func TestRelevantTagCopy(t *testing.T) {
	tag := NewRelevantTag("a.b")
	tag.First = append(tag.First, 0, 2)
	tag.NotFirst = append(tag.NotFirst, 1)

	clone := tag.Copy()
	if clone.Path != "a.b" {
		t.Errorf("clone path %q", clone.Path)
	}

	clone.Remove(2)
	clone.NotFirst = append(clone.NotFirst, 9)

	if len(tag.First) != 2 || tag.First[1] != 2 {
		t.Errorf("original First changed by clone mutation: %v", tag.First)
	}
	if len(tag.NotFirst) != 1 {
		t.Errorf("original NotFirst changed by clone mutation: %v", tag.NotFirst)
	}

	tag.Remove(0)
	if len(clone.First) != 1 || clone.First[0] != 0 {
		t.Errorf("clone First changed by original mutation: %v", clone.First)
	}
}

func TestRelevantTagRemove(t *testing.T) {
	tag := NewRelevantTag("a")
	tag.First = []int{0, 1, 2}
	tag.NotFirst = []int{1, 3}

	tag.Remove(1)
	if len(tag.First) != 2 || tag.First[0] != 0 || tag.First[1] != 2 {
		t.Errorf("First after remove: %v", tag.First)
	}
	if len(tag.NotFirst) != 1 || tag.NotFirst[0] != 3 {
		t.Errorf("NotFirst after remove: %v", tag.NotFirst)
	}

	// Absent index is a no-op.
	tag.Remove(7)
	if len(tag.First) != 2 || len(tag.NotFirst) != 1 {
		t.Errorf("remove of absent index mutated tag")
	}
}

func TestRelevantTagHasIndex(t *testing.T) {
	tag := NewRelevantTag("a")
	tag.First = []int{0}
	tag.NotFirst = []int{2}

	if !tag.HasIndex(0) || !tag.HasIndex(2) {
		t.Errorf("HasIndex missed a present index")
	}
	if tag.HasIndex(1) {
		t.Errorf("HasIndex found an absent index")
	}
}
