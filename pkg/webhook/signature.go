package webhook

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/adcontextprotocol/adcp-go/pkg/adcp"
)

// Delivery headers produced by SignedHeaders and consumed by receivers.
const (
	HeaderSignature = "X-AdCP-Signature"
	HeaderTimestamp = "X-AdCP-Timestamp"

	signaturePrefix = "sha256="
)

// canonicalJSON serializes v compactly without HTML escaping so that signer
// and verifier agree byte for byte across languages. Map keys marshal in
// sorted order, which is the property the body signature relies on.
func canonicalJSON(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Sign computes the hex HMAC-SHA256 body signature over the canonical JSON
// serialization of payload.
func Sign(payload map[string]any, secret string) (string, error) {
	canonical, err := canonicalJSON(payload)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(canonical)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

/*
Verify checks an inbound body signature against the signature recomputed
from payload and secret, using constant-time comparison. A "sha256=" prefix
on the presented signature is accepted and stripped.
*/
func Verify(payload map[string]any, secret, signature string) error {
	expected, err := Sign(payload, secret)
	if err != nil {
		return &adcp.WebhookValidationError{Message: "payload is not serializable: " + err.Error()}
	}

	presented := strings.TrimPrefix(signature, signaturePrefix)
	if !hmac.Equal([]byte(expected), []byte(presented)) {
		return &adcp.WebhookSignatureError{}
	}

	return nil
}

/*
SignedHeaders adds the AdCP delivery headers to headers and returns it. The
signed message is "{timestamp}.{compact-json(payload)}", binding the
signature to the timestamp so a captured delivery cannot be replayed later.
Unlike the body signature, the payload here serializes in its declared field
order; both ends share the struct so the bytes agree.
*/
func SignedHeaders(headers map[string]string, secret, timestamp string, payload any) (map[string]string, error) {
	signature, err := signTimestamped(secret, timestamp, payload)
	if err != nil {
		return nil, err
	}

	if headers == nil {
		headers = make(map[string]string)
	}
	headers[HeaderSignature] = signaturePrefix + signature
	headers[HeaderTimestamp] = timestamp

	return headers, nil
}

// VerifyHeader checks a timestamp-bound header signature, the receiving-side
// counterpart of SignedHeaders.
func VerifyHeader(payload any, secret, timestamp, signature string) error {
	expected, err := signTimestamped(secret, timestamp, payload)
	if err != nil {
		return &adcp.WebhookValidationError{Message: "payload is not serializable: " + err.Error()}
	}

	presented := strings.TrimPrefix(signature, signaturePrefix)
	if !hmac.Equal([]byte(expected), []byte(presented)) {
		return &adcp.WebhookSignatureError{}
	}

	return nil
}

func signTimestamped(secret, timestamp string, payload any) (string, error) {
	compact, err := canonicalJSON(payload)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(compact)
	return hex.EncodeToString(mac.Sum(nil)), nil
}
