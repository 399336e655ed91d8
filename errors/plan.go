//  Copyright (c) 2026 EddieWu
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package errors

import (
	"fmt"
)

// Plan errors - errors raised while selecting indexes for a query.
// These indicate a malformed catalog or a planner bug, never a
// user-facing condition; they abort the planning attempt.

func NewPlanError(e error, msg string) Error {
	switch e := e.(type) {
	case Error: // if given error is already an Error, just return it:
		return e
	default:
		return &err{level: EXCEPTION, ICode: 4000, IKey: "plan_error", ICause: e,
			InternalMsg: msg, InternalCaller: CallerN(1)}
	}
}

const NODE_ALREADY_TAGGED = 4310

func NewNodeAlreadyTaggedError(path string) Error {
	return &err{level: EXCEPTION, ICode: NODE_ALREADY_TAGGED, IKey: "plan.ixselect.node_already_tagged",
		InternalMsg:    fmt.Sprintf("Node for path %s already carries a relevance tag", path),
		InternalCaller: CallerN(1)}
}

const UNKNOWN_INDEX_FAMILY = 4320

func NewUnknownIndexFamilyError(node string, field string) Error {
	return &err{level: EXCEPTION, ICode: UNKNOWN_INDEX_FAMILY, IKey: "plan.ixselect.unknown_index_family",
		InternalMsg:    fmt.Sprintf("Unknown indexing for node %s and field %s", node, field),
		InternalCaller: CallerN(1)}
}

const TEXT_INDEX_NO_SENTINEL = 4330

func NewTextIndexNoSentinelError(name string) Error {
	return &err{level: EXCEPTION, ICode: TEXT_INDEX_NO_SENTINEL, IKey: "plan.ixselect.text_index_no_sentinel",
		InternalMsg:    fmt.Sprintf("Text index %s has no text element in its key pattern", name),
		InternalCaller: CallerN(1)}
}
