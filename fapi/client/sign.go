package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// Params is an insertion-ordered parameter list. Order matters because the
// signature must be computed over the exact query string that is sent, and
// Go maps do not preserve order.
type Params struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

// NewParams returns an empty parameter list.
func NewParams() *Params {
	return &Params{}
}

// Set appends a key/value pair, replacing the value in place if the key was
// already set. Returns the receiver for chaining.
func (p *Params) Set(key, value string) *Params {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = value
			return p
		}
	}
	p.pairs = append(p.pairs, pair{key: key, value: value})
	return p
}

// Get returns the value for key and whether it was set.
func (p *Params) Get(key string) (string, bool) {
	for _, kv := range p.pairs {
		if kv.key == key {
			return kv.value, true
		}
	}
	return "", false
}

// Len returns the number of pairs.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Encode URL-encodes the pairs in insertion order.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

// sign computes the hex-encoded HMAC-SHA256 of payload keyed with the
// secret key. The venue recomputes the same digest over the received query
// string; any byte difference is rejected as an auth failure.
func sign(secretKey, payload string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
