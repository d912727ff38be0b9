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
	"math"
	"testing"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
	"github.com/stretchr/testify/assert"
)

func roundTrip(t *testing.T, sv xdr.ScVal) Value {
	b, err := sv.MarshalBinary()
	assert.NoError(t, err)
	v, err := Decode(context.Background(), b)
	assert.NoError(t, err)
	return v
}

func newTestContractAddress(t *testing.T) string {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i)
	}
	addr, err := strkey.Encode(strkey.VersionByteContract, raw)
	assert.NoError(t, err)
	return addr
}

func TestRoundTripU32(t *testing.T) {
	for _, n := range []uint32{0, 1, 42, math.MaxUint16, math.MaxUint32} {
		v := roundTrip(t, EncodeU32(n))
		assert.Equal(t, KindU32, v.Kind())
		u, ok := v.Uint()
		assert.True(t, ok)
		assert.Equal(t, uint64(n), u)
	}
}

func TestRoundTripU64(t *testing.T) {
	for _, n := range []uint64{0, 1, 1700000000, math.MaxUint32 + 1, math.MaxUint64} {
		v := roundTrip(t, EncodeU64(n))
		assert.Equal(t, KindU64, v.Kind())
		u, ok := v.Uint()
		assert.True(t, ok)
		assert.Equal(t, n, u)
	}
}

func TestRoundTripLow128(t *testing.T) {
	for _, n := range []uint64{0, 7, math.MaxUint64} {
		sv := EncodeLow128(n)
		assert.Equal(t, xdr.Uint64(0), sv.U128.Hi)
		v := roundTrip(t, sv)
		assert.Equal(t, KindLow128, v.Kind())
		u, ok := v.Uint()
		assert.True(t, ok)
		assert.Equal(t, n, u)
	}
}

func TestDecode128TruncatesHighWord(t *testing.T) {
	v := FromScVal(xdr.ScVal{Type: xdr.ScValTypeScvU128, U128: &xdr.UInt128Parts{Hi: 99, Lo: 12}})
	assert.True(t, v.Equal(Low128(12)))

	v = FromScVal(xdr.ScVal{Type: xdr.ScValTypeScvI128, I128: &xdr.Int128Parts{Hi: -1, Lo: 5}})
	assert.True(t, v.Equal(Low128(5)))
}

func TestDecodeSignedScalars(t *testing.T) {
	i32 := xdr.Int32(-5)
	v := roundTrip(t, xdr.ScVal{Type: xdr.ScValTypeScvI32, I32: &i32})
	n, ok := v.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(-5), n)
	assert.Equal(t, KindI32, v.Kind())

	i64 := xdr.Int64(math.MinInt64)
	v = roundTrip(t, xdr.ScVal{Type: xdr.ScValTypeScvI64, I64: &i64})
	n, ok = v.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(math.MinInt64), n)
	_, ok = v.Uint()
	assert.False(t, ok)
}

func TestDecodeSymbolAndStringAreText(t *testing.T) {
	sym := xdr.ScSymbol("speed_message")
	v := roundTrip(t, xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &sym})
	s, ok := v.Text()
	assert.True(t, ok)
	assert.Equal(t, "speed_message", s)

	str := xdr.ScString("100 Mbps")
	v = roundTrip(t, xdr.ScVal{Type: xdr.ScValTypeScvString, Str: &str})
	s, ok = v.Text()
	assert.True(t, ok)
	assert.Equal(t, "100 Mbps", s)
}

func TestDecodeBool(t *testing.T) {
	b := true
	v := roundTrip(t, xdr.ScVal{Type: xdr.ScValTypeScvBool, B: &b})
	isActive, ok := v.Bool()
	assert.True(t, ok)
	assert.True(t, isActive)
}

func TestDecodeVectorOfRecords(t *testing.T) {
	name := xdr.ScString("Basic")
	nameKey := xdr.ScSymbol("name")
	priceKey := xdr.ScSymbol("price")
	attrs := &xdr.ScMap{
		{Key: xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &nameKey}, Val: xdr.ScVal{Type: xdr.ScValTypeScvString, Str: &name}},
		{Key: xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &priceKey}, Val: EncodeLow128(1000)},
	}
	record := &xdr.ScVec{EncodeU32(1), {Type: xdr.ScValTypeScvMap, Map: &attrs}}
	outer := &xdr.ScVec{{Type: xdr.ScValTypeScvVec, Vec: &record}}

	v := roundTrip(t, xdr.ScVal{Type: xdr.ScValTypeScvVec, Vec: &outer})
	assert.Equal(t, KindSequence, v.Kind())
	assert.Equal(t, 1, v.Len())

	expected := Sequence(Sequence(
		Uint32(1),
		Mapping(
			Entry{Key: Text("name"), Value: Text("Basic")},
			Entry{Key: Text("price"), Value: Low128(1000)},
		),
	))
	assert.True(t, v.Equal(expected), "got %s", v)

	inner := v.Index(0)
	entries := inner.Index(1).Entries()
	assert.Len(t, entries, 2)
	k, _ := entries[0].Key.Text()
	assert.Equal(t, "name", k)
	assert.True(t, inner.Index(5).IsNull())
}

func TestDecodeEmptyVec(t *testing.T) {
	empty := &xdr.ScVec{}
	v := roundTrip(t, xdr.ScVal{Type: xdr.ScValTypeScvVec, Vec: &empty})
	assert.Equal(t, KindSequence, v.Kind())
	assert.Equal(t, 0, v.Len())
}

func TestDecodeUnsupportedVariantsAreNull(t *testing.T) {
	v := roundTrip(t, xdr.ScVal{Type: xdr.ScValTypeScvVoid})
	assert.True(t, v.IsNull())

	bytes := xdr.ScBytes{1, 2, 3}
	v = roundTrip(t, xdr.ScVal{Type: xdr.ScValTypeScvBytes, Bytes: &bytes})
	assert.True(t, v.IsNull())

	addr, err := EncodeAddress(context.Background(), keypair.MustRandom().Address())
	assert.NoError(t, err)
	v = roundTrip(t, addr)
	assert.True(t, v.IsNull())

	// Missing arm for the declared type
	assert.True(t, FromScVal(xdr.ScVal{Type: xdr.ScValTypeScvU32}).IsNull())
	assert.True(t, FromScVal(xdr.ScVal{Type: xdr.ScValTypeScvVec}).IsNull())
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(context.Background(), []byte{0xff, 0xff})
	assert.Regexp(t, "SC10107", err)

	_, err = DecodeBase64(context.Background(), "!!!not base64")
	assert.Regexp(t, "SC10107", err)
}

func TestDecodeBase64OK(t *testing.T) {
	b64, err := xdr.MarshalBase64(EncodeU32(12))
	assert.NoError(t, err)
	v, err := DecodeBase64(context.Background(), b64)
	assert.NoError(t, err)
	assert.True(t, v.Equal(Uint32(12)))
}

func TestEncodeAddressAccount(t *testing.T) {
	account := keypair.MustRandom().Address()
	sv, err := EncodeAddress(context.Background(), account)
	assert.NoError(t, err)
	assert.Equal(t, xdr.ScValTypeScvAddress, sv.Type)
	assert.Equal(t, xdr.ScAddressTypeScAddressTypeAccount, sv.Address.Type)
	assert.Equal(t, account, sv.Address.AccountId.Address())
}

func TestEncodeAddressContract(t *testing.T) {
	contract := newTestContractAddress(t)
	sv, err := EncodeAddress(context.Background(), contract)
	assert.NoError(t, err)
	assert.Equal(t, xdr.ScAddressTypeScAddressTypeContract, sv.Address.Type)
	assert.Equal(t, byte(31), sv.Address.ContractId[31])
}

func TestEncodeAddressInvalid(t *testing.T) {
	for _, bad := range []string{"", "not-an-address", "GABC", keypair.MustRandom().Seed()} {
		_, err := EncodeAddress(context.Background(), bad)
		assert.Regexp(t, "SC10100", err, bad)
	}
}
