package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTolerance = 5 * time.Minute

func signIdentity(key []byte, msgID, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", msgID, timestamp)
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyIdentitySignature(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	secret := "whsec_" + base64.StdEncoding.EncodeToString(key)
	body := []byte(`{"type":"user.created","data":{"id":"ext_1"}}`)
	msgID := "msg_001"
	ts := fmt.Sprintf("%d", time.Now().Unix())

	sig := "v1," + signIdentity(key, msgID, ts, body)

	require.NoError(t, VerifyIdentitySignature(secret, msgID, ts, sig, body, testTolerance))

	// 多个签名中任意一个匹配即可
	multi := "v1,Zm9vYmFy " + sig
	require.NoError(t, VerifyIdentitySignature(secret, msgID, ts, multi, body, testTolerance))

	// 篡改 body 必须失败
	assert.ErrorIs(t,
		VerifyIdentitySignature(secret, msgID, ts, sig, []byte(`{}`), testTolerance),
		ErrBadSignature)

	// 缺头必须失败
	assert.ErrorIs(t,
		VerifyIdentitySignature(secret, "", ts, sig, body, testTolerance),
		ErrMalformedSigning)

	// 过期时间戳必须失败
	old := fmt.Sprintf("%d", time.Now().Add(-time.Hour).Unix())
	oldSig := "v1," + signIdentity(key, msgID, old, body)
	assert.ErrorIs(t,
		VerifyIdentitySignature(secret, msgID, old, oldSig, body, testTolerance),
		ErrSignatureExpired)
}

func TestVerifyMediaSignature(t *testing.T) {
	secret := "media-signing-secret"
	body := []byte(`{"type":"video.asset.ready","data":{"id":"asset_1"}}`)
	ts := fmt.Sprintf("%d", time.Now().Unix())

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.", ts)
	mac.Write(body)
	header := fmt.Sprintf("t=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))

	require.NoError(t, VerifyMediaSignature(secret, header, body, testTolerance))

	assert.ErrorIs(t,
		VerifyMediaSignature("wrong-secret", header, body, testTolerance),
		ErrBadSignature)
	assert.ErrorIs(t,
		VerifyMediaSignature(secret, "", body, testTolerance),
		ErrMalformedSigning)
	assert.ErrorIs(t,
		VerifyMediaSignature(secret, "v1=deadbeef", body, testTolerance),
		ErrMalformedSigning)
}
