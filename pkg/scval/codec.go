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

package scval

import (
	"context"

	"github.com/conectabrasil/soroban-connector/internal/scmsgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
)

func EncodeU32(v uint32) xdr.ScVal {
	u32 := xdr.Uint32(v)
	return xdr.ScVal{Type: xdr.ScValTypeScvU32, U32: &u32}
}

func EncodeU64(v uint64) xdr.ScVal {
	u64 := xdr.Uint64(v)
	return xdr.ScVal{Type: xdr.ScValTypeScvU64, U64: &u64}
}

// EncodeLow128 encodes a u128 with the high word fixed at zero
func EncodeLow128(lo uint64) xdr.ScVal {
	return xdr.ScVal{Type: xdr.ScValTypeScvU128, U128: &xdr.UInt128Parts{
		Hi: 0,
		Lo: xdr.Uint64(lo),
	}}
}

// EncodeAddress accepts either an account (G...) or a contract (C...) strkey
func EncodeAddress(ctx context.Context, id string) (xdr.ScVal, error) {
	addr, err := ParseAddress(ctx, id)
	if err != nil {
		return xdr.ScVal{}, err
	}
	return xdr.ScVal{Type: xdr.ScValTypeScvAddress, Address: &addr}, nil
}

func ParseAddress(ctx context.Context, id string) (xdr.ScAddress, error) {
	if strkey.IsValidEd25519PublicKey(id) {
		var accountID xdr.AccountId
		if err := accountID.SetAddress(id); err != nil {
			return xdr.ScAddress{}, i18n.WrapError(ctx, err, scmsgs.MsgInvalidAddress, id)
		}
		return xdr.ScAddress{
			Type:      xdr.ScAddressTypeScAddressTypeAccount,
			AccountId: &accountID,
		}, nil
	}
	raw, err := strkey.Decode(strkey.VersionByteContract, id)
	if err != nil || len(raw) != len(xdr.Hash{}) {
		return xdr.ScAddress{}, i18n.NewError(ctx, scmsgs.MsgInvalidAddress, id)
	}
	var contractID xdr.Hash
	copy(contractID[:], raw)
	return xdr.ScAddress{
		Type:       xdr.ScAddressTypeScAddressTypeContract,
		ContractId: &contractID,
	}, nil
}

// Decode parses raw ScVal XDR bytes
func Decode(ctx context.Context, data []byte) (Value, error) {
	var sv xdr.ScVal
	if err := xdr.SafeUnmarshal(data, &sv); err != nil {
		return Null(), i18n.NewError(ctx, scmsgs.MsgValueDecodeFailed, err)
	}
	return FromScVal(sv), nil
}

// DecodeBase64 parses ScVal XDR in the base64 form returned by the RPC node
func DecodeBase64(ctx context.Context, b64 string) (Value, error) {
	var sv xdr.ScVal
	if err := xdr.SafeUnmarshalBase64(b64, &sv); err != nil {
		return Null(), i18n.NewError(ctx, scmsgs.MsgValueDecodeFailed, err)
	}
	return FromScVal(sv), nil
}

// FromScVal maps the tagged union onto a Value. It never fails: variants with
// no Value equivalent (void, bytes, addresses, 256-bit integers, errors, ledger keys)
// become Null, as do malformed unions with a missing arm.
func FromScVal(sv xdr.ScVal) Value {
	switch sv.Type {
	case xdr.ScValTypeScvI32:
		if sv.I32 != nil {
			return Int32(int32(*sv.I32))
		}
	case xdr.ScValTypeScvU32:
		if sv.U32 != nil {
			return Uint32(uint32(*sv.U32))
		}
	case xdr.ScValTypeScvI64:
		if sv.I64 != nil {
			return Int64(int64(*sv.I64))
		}
	case xdr.ScValTypeScvU64:
		if sv.U64 != nil {
			return Uint64(uint64(*sv.U64))
		}
	case xdr.ScValTypeScvTimepoint:
		if sv.Timepoint != nil {
			return Uint64(uint64(*sv.Timepoint))
		}
	case xdr.ScValTypeScvDuration:
		if sv.Duration != nil {
			return Uint64(uint64(*sv.Duration))
		}
	case xdr.ScValTypeScvU128:
		if sv.U128 != nil {
			return Low128(uint64(sv.U128.Lo))
		}
	case xdr.ScValTypeScvI128:
		if sv.I128 != nil {
			return Low128(uint64(sv.I128.Lo))
		}
	case xdr.ScValTypeScvBool:
		if sv.B != nil {
			return Bool(*sv.B)
		}
	case xdr.ScValTypeScvSymbol:
		if sv.Sym != nil {
			return Text(string(*sv.Sym))
		}
	case xdr.ScValTypeScvString:
		if sv.Str != nil {
			return Text(string(*sv.Str))
		}
	case xdr.ScValTypeScvVec:
		if sv.Vec != nil && *sv.Vec != nil {
			vec := **sv.Vec
			items := make([]Value, len(vec))
			for i, item := range vec {
				items[i] = FromScVal(item)
			}
			return Value{kind: KindSequence, items: items}
		}
	case xdr.ScValTypeScvMap:
		if sv.Map != nil && *sv.Map != nil {
			m := **sv.Map
			entries := make([]Entry, len(m))
			for i, e := range m {
				entries[i] = Entry{Key: FromScVal(e.Key), Value: FromScVal(e.Val)}
			}
			return Value{kind: KindMapping, entries: entries}
		}
	}
	return Null()
}
