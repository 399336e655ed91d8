//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package expression

/*
RelevantTag records which candidate indexes can serve a predicate
node: First holds positions of indexes usable with the node's field
as the leading key, NotFirst positions usable with it as a later key.
Positions refer to the planner's relevant-index slice. The planner
owns tags entirely; downstream phases only read them.
*/
type RelevantTag struct {
	Path     string
	First    []int
	NotFirst []int
}

func NewRelevantTag(path string) *RelevantTag {
	return &RelevantTag{
		Path: path,
	}
}

// Copy returns an independent tag: mutating either side's lists
// never affects the other.
func (this *RelevantTag) Copy() *RelevantTag {
	rv := &RelevantTag{
		Path:     this.Path,
		First:    make([]int, len(this.First)),
		NotFirst: make([]int, len(this.NotFirst)),
	}
	copy(rv.First, this.First)
	copy(rv.NotFirst, this.NotFirst)
	return rv
}

func (this *RelevantTag) HasIndex(idx int) bool {
	for _, i := range this.First {
		if i == idx {
			return true
		}
	}
	for _, i := range this.NotFirst {
		if i == idx {
			return true
		}
	}
	return false
}

// Remove drops idx from both lists; it is a no-op if absent.
func (this *RelevantTag) Remove(idx int) {
	this.First = removeIndex(this.First, idx)
	this.NotFirst = removeIndex(this.NotFirst, idx)
}

func removeIndex(list []int, idx int) []int {
	for i, v := range list {
		if v == idx {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
