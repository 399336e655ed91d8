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
	"strings"
)

type expressionBase struct {
	path string
	tag  *RelevantTag
}

func (this *expressionBase) Path() string {
	return this.path
}

func (this *expressionBase) Children() Expressions {
	return nil
}

func (this *expressionBase) Tag() *RelevantTag {
	return this.tag
}

func (this *expressionBase) SetTag(tag *RelevantTag) {
	this.tag = tag
}

func stringChildren(children Expressions) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, child := range children {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(child.String())
	}
	sb.WriteString("]")
	return sb.String()
}
