package encoding

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type testFile struct {
	Name string `msgpack:"n"`
	Size int64  `msgpack:"s"`
}

type testState struct {
	ID       string     `msgpack:"id"`
	MaxFiles int        `msgpack:"max"`
	Files    []testFile `msgpack:"f"`
	Hovering bool       `msgpack:"h"`
}

const scope = "/_c/picker-deadbeef"

func newTestEncoder(t *testing.T, key string) *Encoder {
	t.Helper()
	enc, err := NewEncoder([]byte(key))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	return enc
}

// tamper replaces the base64 character at i with a different one.
func tamper(token string, i int) string {
	c := byte('A')
	if token[i] == 'A' {
		c = 'B'
	}
	return token[:i] + string(c) + token[i+1:]
}

func TestNewEncoder(t *testing.T) {
	// Should work with any key length (derives 32-byte key)
	if _, err := NewEncoder([]byte("short")); err != nil {
		t.Fatalf("NewEncoder with short key failed: %v", err)
	}
	if _, err := NewEncoder([]byte("this-is-a-key-longer-than-thirty-two-bytes!!")); err != nil {
		t.Fatalf("NewEncoder with long key failed: %v", err)
	}
	if _, err := NewEncoder(nil); err == nil {
		t.Fatal("NewEncoder(nil) should fail")
	}
}

func TestRoundTrip(t *testing.T) {
	original := testState{
		ID:       "w1",
		MaxFiles: 3,
		Files:    []testFile{{Name: "a.png", Size: 10}, {Name: "b.png", Size: 20}},
		Hovering: true,
	}

	for _, sensitive := range []bool{false, true} {
		enc := newTestEncoder(t, "test-key")

		token, err := enc.Encode(scope, original, sensitive)
		if err != nil {
			t.Fatalf("Encode(sensitive=%v) failed: %v", sensitive, err)
		}
		if token == "" {
			t.Fatal("Encoded token is empty")
		}

		var decoded testState
		if err := enc.Decode(scope, token, sensitive, &decoded); err != nil {
			t.Fatalf("Decode(sensitive=%v) failed: %v", sensitive, err)
		}
		if !reflect.DeepEqual(decoded, original) {
			t.Errorf("decoded = %+v, want %+v", decoded, original)
		}
	}
}

func TestSignatureVerificationFailure(t *testing.T) {
	enc := newTestEncoder(t, "test-key")

	token, err := enc.Encode(scope, testState{ID: "x"}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Flip the first signature character while keeping valid base64.
	tampered := tamper(token, strings.LastIndex(token, ".")+1)

	var decoded testState
	err = enc.Decode(scope, tampered, false, &decoded)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Expected ErrSignatureInvalid, got: %v", err)
	}
}

func TestDecryptionFailure(t *testing.T) {
	enc := newTestEncoder(t, "test-key")

	token, err := enc.Encode(scope, testState{ID: "x"}, true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	tampered := tamper(token, 0)

	var decoded testState
	if err := enc.Decode(scope, tampered, true, &decoded); err == nil {
		t.Error("Expected error for tampered ciphertext, got nil")
	}
}

func TestInvalidFormat(t *testing.T) {
	enc := newTestEncoder(t, "test-key")

	var decoded testState
	if err := enc.Decode(scope, "nodotseparator", false, &decoded); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got: %v", err)
	}
	if err := enc.Decode(scope, "!!!", true, &decoded); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for bad base64, got: %v", err)
	}
}

func TestDifferentKeysCannotDecode(t *testing.T) {
	enc1 := newTestEncoder(t, "key-one")
	enc2 := newTestEncoder(t, "key-two")

	token, err := enc1.Encode(scope, testState{ID: "x"}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded testState
	if err := enc2.Decode(scope, token, false, &decoded); err == nil {
		t.Error("Expected error when decoding with different key")
	}
}

func TestTokenBoundToScope(t *testing.T) {
	enc := newTestEncoder(t, "test-key")

	for _, sensitive := range []bool{false, true} {
		token, err := enc.Encode(scope, testState{ID: "x"}, sensitive)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		var decoded testState
		if err := enc.Decode("/_c/other-00000000", token, sensitive, &decoded); err == nil {
			t.Errorf("sensitive=%v: token accepted under a different scope", sensitive)
		}
	}
}

func TestEmptyState(t *testing.T) {
	enc := newTestEncoder(t, "test-key")

	token, err := enc.Encode(scope, testState{}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded := testState{ID: "stale"}
	if err := enc.Decode(scope, token, false, &decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.ID != "" || decoded.MaxFiles != 0 || len(decoded.Files) != 0 {
		t.Errorf("empty state not decoded correctly: %+v", decoded)
	}
}
