// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package contractcall

// Function describes a contract entry point. Params is the exact number of
// arguments it takes, which is checked before any remote work happens.
type Function struct {
	Name   string
	Params int
	// RequiresAuth functions must be granted at least one authorization entry by simulation
	RequiresAuth bool
}

func (f *Function) String() string {
	return f.Name
}
