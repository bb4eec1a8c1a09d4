package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrBadSignature      = errors.New("webhook signature mismatch")
	ErrSignatureExpired  = errors.New("webhook timestamp outside tolerance")
	ErrMalformedSigning  = errors.New("malformed signature header")
)

// VerifyIdentitySignature 校验身份服务 Webhook 签名。
// 签名串为 "{msgID}.{timestamp}.{body}" 的 HMAC-SHA256，
// secret 形如 "whsec_<base64>"，签名头为空格分隔的 "v1,<base64>" 列表。
func VerifyIdentitySignature(secret, msgID, timestamp, signatureHeader string, body []byte, tolerance time.Duration) error {
	if msgID == "" || timestamp == "" || signatureHeader == "" {
		return ErrMalformedSigning
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrMalformedSigning
	}
	if d := time.Since(time.Unix(ts, 0)); d > tolerance || d < -tolerance {
		return ErrSignatureExpired
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		return fmt.Errorf("decode webhook secret: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", msgID, timestamp)
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, part := range strings.Fields(signatureHeader) {
		version, sig, found := strings.Cut(part, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}

	return ErrBadSignature
}

// VerifyMediaSignature 校验媒体管线 Webhook 签名。
// 签名头形如 "t=<unix>,v1=<hex>"，签名串为 "{t}.{body}" 的 HMAC-SHA256。
func VerifyMediaSignature(secret, signatureHeader string, body []byte, tolerance time.Duration) error {
	if signatureHeader == "" {
		return ErrMalformedSigning
	}

	var timestamp string
	var signatures []string
	for _, part := range strings.Split(signatureHeader, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return ErrMalformedSigning
		}
		switch key {
		case "t":
			timestamp = value
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return ErrMalformedSigning
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrMalformedSigning
	}
	if d := time.Since(time.Unix(ts, 0)); d > tolerance || d < -tolerance {
		return ErrSignatureExpired
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.", timestamp)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}

	return ErrBadSignature
}
