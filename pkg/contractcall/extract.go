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

import (
	"context"

	"github.com/conectabrasil/soroban-connector/pkg/scval"
)

// Extract decodes the return value of the first simulation result. A simulation
// without results, or a result without a return value, yields Null.
func Extract(ctx context.Context, outcome *SimulationOutcome) (scval.Value, error) {
	result := outcome.firstResult()
	if result == nil || result.ReturnValue == "" {
		return scval.Null(), nil
	}
	v, err := scval.DecodeBase64(ctx, result.ReturnValue)
	if err != nil {
		return scval.Null(), &DecodeError{Err: err}
	}
	return v, nil
}

// DecodeError is returned when a read simulated successfully but its return
// value could not be decoded. Callers with a sensible default can fall back to it.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
