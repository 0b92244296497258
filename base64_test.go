package nibble_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/zoobzio/nibble"
	hextest "github.com/zoobzio/nibble/testing"
	"gopkg.in/yaml.v3"
)

type base64Holder struct {
	X nibble.Base64 `json:"x" yaml:"x" cbor:"x"`
}

func TestParseBase64(t *testing.T) {
	b, err := nibble.ParseBase64("aGVsbG8=")
	if err != nil {
		t.Fatalf("ParseBase64() error: %v", err)
	}
	if string(b) != "hello" {
		t.Errorf("ParseBase64() = %q, want %q", []byte(b), "hello")
	}

	if _, err := nibble.ParseBase64("not base64!"); err == nil {
		t.Error("ParseBase64() should reject invalid input")
	}
}

func TestBase64_String(t *testing.T) {
	if got := nibble.Base64("hello").String(); got != "aGVsbG8=" {
		t.Errorf("String() = %q, want %q", got, "aGVsbG8=")
	}
}

func TestBase64_JSON(t *testing.T) {
	data, err := json.Marshal(base64Holder{X: nibble.Base64("hello")})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `{"x":"aGVsbG8="}` {
		t.Errorf("Marshal() = %s, want %s", data, `{"x":"aGVsbG8="}`)
	}

	var got base64Holder
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if string(got.X) != "hello" {
		t.Errorf("Unmarshal() = %q, want %q", []byte(got.X), "hello")
	}
}

func TestBase64_YAML(t *testing.T) {
	data, err := yaml.Marshal(base64Holder{X: nibble.Base64("hello")})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != "x: aGVsbG8=\n" {
		t.Errorf("Marshal() = %q, want %q", data, "x: aGVsbG8=\n")
	}

	var got base64Holder
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if string(got.X) != "hello" {
		t.Errorf("Unmarshal() = %q, want %q", []byte(got.X), "hello")
	}
}

func TestBase64_CBOR(t *testing.T) {
	data, err := cbor.Marshal(base64Holder{X: nibble.Base64("hi")})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	// {"x": h'6869'}
	want := []byte{0xa1, 0x61, 'x', 0x42, 'h', 'i'}
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal() = %x, want %x", data, want)
	}

	var got base64Holder
	if err := cbor.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if string(got.X) != "hi" {
		t.Errorf("Unmarshal() = %q, want %q", []byte(got.X), "hi")
	}
}

type base64Record struct {
	Data nibble.Base64 `json:"data" yaml:"data" cbor:"data"`
}

const (
	base64JSON = `{"data":"ASNFZ4mrze8BI0VniavN7w=="}`
	base64CBOR = "a16464617461500123456789abcdef0123456789abcdef"
)

func TestBase64_JSONFixture(t *testing.T) {
	data, err := json.Marshal(base64Record{Data: hextest.Fixture()})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != base64JSON {
		t.Errorf("Marshal() = %s, want %s", data, base64JSON)
	}

	var got base64Record
	if err := json.Unmarshal([]byte(base64JSON), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !bytes.Equal(got.Data, hextest.Fixture()) {
		t.Errorf("Unmarshal() = %x, want %x", []byte(got.Data), hextest.Fixture())
	}
}

func TestBase64_CBORFixture(t *testing.T) {
	data, err := cbor.Marshal(base64Record{Data: hextest.Fixture()})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if got := hex.EncodeToString(data); got != base64CBOR {
		t.Errorf("Marshal() = %s, want %s", got, base64CBOR)
	}

	var got base64Record
	if err := cbor.Unmarshal(hextest.MustDecode(t, base64CBOR), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !bytes.Equal(got.Data, hextest.Fixture()) {
		t.Errorf("Unmarshal() = %x, want %x", []byte(got.Data), hextest.Fixture())
	}
}

func TestBase64_MalformedInput(t *testing.T) {
	tests := []struct {
		name      string
		unmarshal func([]byte, any) error
		input     string
	}{
		{"json invalid character", json.Unmarshal, `{"data":"not base64!"}`},
		{"json bad padding", json.Unmarshal, `{"data":"ASNFZ4mrze8BI0VniavN7w="}`},
		{"json hex text", json.Unmarshal, `{"data":"0123456789abcdef0123456789abcdef0"}`},
		{"yaml invalid character", yaml.Unmarshal, "data: \"@@@@\"\n"},
		{"yaml truncated", yaml.Unmarshal, "data: ASNFZ4m\n"},
		{"yaml sequence", yaml.Unmarshal, "data: [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base64Record{Data: nibble.Base64("keep")}
			if err := tt.unmarshal([]byte(tt.input), &got); err == nil {
				t.Fatalf("Unmarshal(%q) should fail", tt.input)
			}
			if string(got.Data) != "keep" {
				t.Errorf("Unmarshal(%q) modified value on error: %q", tt.input, []byte(got.Data))
			}
		})
	}
}

func TestBase64_JSONSchema(t *testing.T) {
	s := nibble.Base64(nil).JSONSchema()
	if s.Format != "byte" || s.ContentEncoding != "base64" {
		t.Errorf("JSONSchema() = %+v, want format byte and base64 content encoding", s)
	}
}
