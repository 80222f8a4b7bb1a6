package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"pokeroster/internal/util/memzero"
)

// sealedFormatVersion is the current version of the sealed document format.
const sealedFormatVersion = 1

// ErrWrongPassphrase is returned when the passphrase is incorrect or the sealed
// file has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted roster file")

// sealedBlob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealedBlob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// kdfParams are the scrypt cost parameters used for new blobs.
type kdfParams struct{ N, R, P int }

func defaultKDFParams() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

// envelope seals whole documents under a passphrase. Each seal draws a fresh
// salt, so the derived key is never reused across writes.
type envelope struct {
	passphrase []byte
	params     kdfParams
}

func newEnvelope(passphrase string, params kdfParams) *envelope {
	return &envelope{passphrase: []byte(passphrase), params: params}
}

func (e *envelope) seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	aead, err := e.aead(salt, e.params)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return json.Marshal(sealedBlob{
		V:      sealedFormatVersion,
		Salt:   salt,
		N:      e.params.N,
		R:      e.params.R,
		P:      e.params.P,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, plaintext, salt),
	})
}

func (e *envelope) open(raw []byte) ([]byte, error) {
	var b sealedBlob
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode sealed roster: %w", err)
	}
	if b.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed roster version %d", b.V)
	}
	aead, err := e.aead(b.Salt, kdfParams{N: b.N, R: b.R, P: b.P})
	if err != nil {
		return nil, err
	}
	if len(b.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, b.Nonce, b.Cipher, b.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func (e *envelope) aead(salt []byte, p kdfParams) (cipher.AEAD, error) {
	key, err := scrypt.Key(e.passphrase, salt, p.N, p.R, p.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	return chacha20poly1305.New(key)
}
