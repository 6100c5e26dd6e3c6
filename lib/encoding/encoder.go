// Package encoding turns picker state into the opaque token that travels with
// every widget request, and back.
//
// State is packed with msgpack and then either signed or encrypted:
//   - Signed (default): base64(msgpack) + "." + base64(HMAC-SHA256[:16]).
//     Readable by anyone, tamper-proof.
//   - Encrypted: base64(nonce || AES-256-GCM(msgpack)). Fully opaque.
//
// Every token is bound to a scope (the picker's route prefix). The scope is
// mixed into the MAC, or used as GCM additional data, so a token minted for
// one picker is rejected by every other picker.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid token format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: decryption failed")
)

// Encoder encodes and decodes picker state tokens.
// An Encoder is safe for concurrent use.
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates an encoder from key. Keys shorter than 32 bytes are
// stretched with SHA-256 so any secret can be used.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) == 0 {
		return nil, errors.New("encoding: empty key")
	}
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	key = key[:32]

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		key: key,
		gcm: gcm,
	}, nil
}

// Encode packs v and returns a token bound to scope.
// If sensitive is true the token is encrypted; otherwise it's signed.
func (e *Encoder) Encode(scope string, v any, sensitive bool) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding: marshal state: %w", err)
	}

	if sensitive {
		return e.encrypt(scope, packed)
	}
	return e.sign(scope, packed), nil
}

// Decode verifies or decrypts token for scope and unpacks it into v, which
// must be a pointer.
func (e *Encoder) Decode(scope, token string, sensitive bool, v any) error {
	var packed []byte
	var err error

	if sensitive {
		packed, err = e.decrypt(scope, token)
	} else {
		packed, err = e.verify(scope, token)
	}
	if err != nil {
		return err
	}

	if err := msgpack.Unmarshal(packed, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

func (e *Encoder) mac(scope string, data []byte) []byte {
	mac := hmac.New(sha256.New, e.key)
	mac.Write([]byte(scope))
	mac.Write([]byte{0})
	mac.Write(data)
	return mac.Sum(nil)[:16]
}

// sign creates a signed (but visible) encoding: base64.signature
func (e *Encoder) sign(scope string, data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	sig := base64.RawURLEncoding.EncodeToString(e.mac(scope, data))
	return b64 + "." + sig
}

func (e *Encoder) verify(scope, token string) ([]byte, error) {
	body, sigPart, ok := strings.Cut(token, ".")
	if !ok {
		return nil, ErrInvalidFormat
	}

	data, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil {
		return nil, ErrSignatureInvalid
	}

	if !hmac.Equal(sig, e.mac(scope, data)) {
		return nil, ErrSignatureInvalid
	}

	return data, nil
}

func (e *Encoder) encrypt(scope string, data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := e.gcm.Seal(nonce, nonce, data, []byte(scope))
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

func (e *Encoder) decrypt(scope, token string) ([]byte, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	if len(ciphertext) < e.gcm.NonceSize() {
		return nil, ErrInvalidFormat
	}

	nonce := ciphertext[:e.gcm.NonceSize()]
	ciphertext = ciphertext[e.gcm.NonceSize():]

	data, err := e.gcm.Open(nil, nonce, ciphertext, []byte(scope))
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return data, nil
}
