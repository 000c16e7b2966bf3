package cookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"
)

const (
	minSecretLength = 32
	flashPrefix     = "_flash_"
)

// Jar reads and writes cookies, optionally sealing values with AES-GCM.
// The first secret seals; every secret is tried when opening so keys can be rotated.
type Jar struct {
	keys     []cipher.AEAD
	defaults Attributes
}

// New creates a Jar. Each secret must be at least 32 characters.
func New(secrets []string, opts ...Option) (*Jar, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	keys := make([]cipher.AEAD, 0, len(secrets))
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
		aead, err := newAEAD(s)
		if err != nil {
			return nil, err
		}
		keys = append(keys, aead)
	}

	defaults := Attributes{
		Path:     "/",
		HTTPOnly: true,
		SameSite: http.SameSiteLaxMode,
	}.with(opts)

	return &Jar{keys: keys, defaults: defaults}, nil
}

func newAEAD(secret string) (cipher.AEAD, error) {
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Set writes a plain cookie.
func (j *Jar) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	a := j.defaults.with(opts)
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     a.Path,
		Domain:   a.Domain,
		MaxAge:   a.MaxAge,
		Secure:   a.Secure,
		HttpOnly: a.HTTPOnly,
		SameSite: a.SameSite,
	})
}

// Get reads a plain cookie.
func (j *Jar) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the cookie on the client.
func (j *Jar) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Path:     j.defaults.Path,
		Domain:   j.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   j.defaults.Secure,
		HttpOnly: j.defaults.HTTPOnly,
		SameSite: j.defaults.SameSite,
	})
}

// SetSealed encrypts value before writing it.
func (j *Jar) SetSealed(w http.ResponseWriter, name, value string, opts ...Option) error {
	sealed, err := j.seal([]byte(value))
	if err != nil {
		return err
	}
	j.Set(w, name, sealed, opts...)
	return nil
}

// GetSealed reads and decrypts a cookie written by SetSealed.
func (j *Jar) GetSealed(r *http.Request, name string) (string, error) {
	raw, err := j.Get(r, name)
	if err != nil {
		return "", err
	}
	plain, err := j.open(raw)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// SetFlash stores a one-time value that PopFlash removes on first read.
func (j *Jar) SetFlash(w http.ResponseWriter, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}
	return j.SetSealed(w, flashPrefix+key, string(data))
}

// PopFlash decodes the flash value into dest and deletes the cookie.
func (j *Jar) PopFlash(w http.ResponseWriter, r *http.Request, key string, dest any) error {
	name := flashPrefix + key
	data, err := j.GetSealed(r, name)
	if err != nil {
		return err
	}
	j.Delete(w, name)

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("unmarshal flash: %w", err)
	}
	return nil
}

func (j *Jar) seal(plain []byte) (string, error) {
	aead := j.keys[0]
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(aead.Seal(nonce, nonce, plain, nil)), nil
}

func (j *Jar) open(sealed string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	for _, aead := range j.keys {
		n := aead.NonceSize()
		if len(data) < n+aead.Overhead() {
			return nil, ErrInvalidFormat
		}
		if plain, err := aead.Open(nil, data[:n], data[n:], nil); err == nil {
			return plain, nil
		}
	}
	return nil, ErrUnsealFailed
}
