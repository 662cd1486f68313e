package catalog

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// AWS Signature Version 4 for PA-API 5.0 requests. The PA-API uses the
// standard SigV4 scheme with service name "ProductAdvertisingAPI" and the
// three headers below as the signed set.

const (
	amzDateFormat   = "20060102T150405Z"
	dateStampLayout = "20060102"
	signingService  = "ProductAdvertisingAPI"
	signedHeaders   = "content-encoding;host;x-amz-date;x-amz-target"
)

type signingInput struct {
	AccessKey string
	SecretKey string
	Region    string
	Host      string
	Path      string
	Target    string
	Payload   []byte
	Now       time.Time
}

// signRequest computes the Authorization header value for a GetItems call.
func signRequest(in signingInput) string {
	amzDate := in.Now.Format(amzDateFormat)
	dateStamp := in.Now.Format(dateStampLayout)

	canonicalHeaders := strings.Join([]string{
		"content-encoding:amz-1.0",
		"host:" + in.Host,
		"x-amz-date:" + amzDate,
		"x-amz-target:" + in.Target,
	}, "\n") + "\n"

	canonicalRequest := strings.Join([]string{
		"POST",
		in.Path,
		"", // no query string
		canonicalHeaders,
		signedHeaders,
		hashHex(in.Payload),
	}, "\n")

	credentialScope := strings.Join(
		[]string{dateStamp, in.Region, signingService, "aws4_request"}, "/",
	)

	stringToSign := strings.Join([]string{
		"AWS4-HMAC-SHA256",
		amzDate,
		credentialScope,
		hashHex([]byte(canonicalRequest)),
	}, "\n")

	signingKey := deriveKey(in.SecretKey, dateStamp, in.Region)
	signature := hex.EncodeToString(hmacSHA256(signingKey, stringToSign))

	return fmt.Sprintf(
		"AWS4-HMAC-SHA256 Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		in.AccessKey, credentialScope, signedHeaders, signature,
	)
}

// deriveKey walks the SigV4 key derivation chain:
// kSecret -> kDate -> kRegion -> kService -> kSigning.
func deriveKey(secretKey, dateStamp, region string) []byte {
	kDate := hmacSHA256([]byte("AWS4"+secretKey), dateStamp)
	kRegion := hmacSHA256(kDate, region)
	kService := hmacSHA256(kRegion, signingService)
	return hmacSHA256(kService, "aws4_request")
}

func hmacSHA256(key []byte, data string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(data))
	return h.Sum(nil)
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
