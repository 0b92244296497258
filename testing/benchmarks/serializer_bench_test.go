package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/nibble"
	"github.com/zoobzio/nibble/cbor"
	"github.com/zoobzio/nibble/json"
	hextest "github.com/zoobzio/nibble/testing"
)

func payload(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func BenchmarkEncode_1KB(b *testing.B) {
	src := payload(1024)
	b.SetBytes(int64(len(src)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nibble.Encode(src)
	}
}

func BenchmarkEncodeToSlice_1KB(b *testing.B) {
	src := payload(1024)
	dst := make([]byte, nibble.EncodedLen(len(src)))
	b.SetBytes(int64(len(src)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nibble.EncodeToSlice(src, dst)
	}
}

func BenchmarkDecode_1KB(b *testing.B) {
	enc := nibble.Encode(payload(1024))
	b.SetBytes(int64(len(enc)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = nibble.Decode(enc)
	}
}

func BenchmarkDecodeToSlice_1KB(b *testing.B) {
	enc := []byte(nibble.EncodeUpper(payload(1024)))
	dst := make([]byte, nibble.DecodedLen(len(enc)))
	b.SetBytes(int64(len(enc)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nibble.DecodeToSlice(enc, dst)
	}
}

func BenchmarkParseArray_32(b *testing.B) {
	s := nibble.SHA256([]byte("bench")).EncodeHex()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = nibble.ParseArray[[32]byte](s)
	}
}

func BenchmarkSerialize_JSON(b *testing.B) {
	ctx := context.Background()
	c := json.New()
	src := hextest.Fixture()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = nibble.Serialize(ctx, c, src)
	}
}

func BenchmarkSerialize_CBOR(b *testing.B) {
	ctx := context.Background()
	c := cbor.New()
	src := hextest.Fixture()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = nibble.Serialize(ctx, c, src)
	}
}

func BenchmarkDeserialize_JSON(b *testing.B) {
	ctx := context.Background()
	c := json.New()
	data, _ := nibble.Serialize(ctx, c, hextest.Fixture())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = nibble.Deserialize(ctx, c, data)
	}
}

func BenchmarkRecord_Marshal_JSON(b *testing.B) {
	c := json.New()
	rec := hextest.FixtureRecord()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Marshal(rec)
	}
}

func BenchmarkRecord_Marshal_CBOR(b *testing.B) {
	c := cbor.New()
	rec := hextest.FixtureRecord()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Marshal(rec)
	}
}
