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
	"fmt"
)

// TEXT_PATH is the reserved field name text predicates constrain and
// text index key patterns carry their sentinel element under.
const TEXT_PATH = "_fts"

// Text is a full-text search predicate. The searched fields come
// from the text index definition, so its path is the reserved text
// field rather than a document field.
type Text struct {
	expressionBase
	search   string
	language string
}

func NewText(search string, language string) *Text {
	rv := &Text{
		search:   search,
		language: language,
	}
	rv.path = TEXT_PATH
	return rv
}

func (this *Text) MatchType() MatchType { return TEXT }
func (this *Text) Search() string       { return this.search }
func (this *Text) Language() string     { return this.language }

func (this *Text) String() string {
	return fmt.Sprintf("{\"$text\":{\"$search\":%q}}", this.search)
}
