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

package scm

import (
	"github.com/conectabrasil/soroban-connector/pkg/scval"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// packageRecords flattens the [[id, {attr: value...}]...] shape returned by get_all_packages
// into one object per package. Items that are not at least a pair are skipped, as are
// attributes without a text key or with a null value.
func packageRecords(v scval.Value) []fftypes.JSONObject {
	records := []fftypes.JSONObject{}
	for _, item := range v.Items() {
		if item.Kind() != scval.KindSequence || item.Len() < 2 {
			continue
		}
		record := fftypes.JSONObject{}
		if id, ok := item.Index(0).Uint(); ok {
			record["id"] = id
		}
		for _, e := range item.Index(1).Entries() {
			key, ok := e.Key.Text()
			if !ok || e.Value.IsNull() {
				continue
			}
			record[key] = e.Value.Interface()
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	}
	return records
}

// userPackageRecords maps the [[order_id, package_id, is_active]...] triples returned
// by get_user_packages. A field of the wrong kind is left out of its record.
func userPackageRecords(v scval.Value) []fftypes.JSONObject {
	records := []fftypes.JSONObject{}
	for _, item := range v.Items() {
		if item.Kind() != scval.KindSequence || item.Len() < 3 {
			continue
		}
		record := fftypes.JSONObject{}
		if orderID, ok := item.Index(0).Uint(); ok {
			record["order_id"] = orderID
		}
		if packageID, ok := item.Index(1).Uint(); ok {
			record["package_id"] = packageID
		}
		if isActive, ok := item.Index(2).Bool(); ok {
			record["is_active"] = isActive
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	}
	return records
}

// remainingAmount reads the scalar returned by remaining_by_order. Null means nothing
// remains, anything that is not a non-negative integer cannot be interpreted.
func remainingAmount(v scval.Value) (uint64, bool) {
	if v.IsNull() {
		return 0, true
	}
	if n, ok := v.Uint(); ok {
		return n, true
	}
	if n, ok := v.Int(); ok && n >= 0 {
		return uint64(n), true
	}
	return 0, false
}
