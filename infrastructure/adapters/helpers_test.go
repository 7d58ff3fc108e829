package adapters

import (
	"github.com/Tejasai37/papercast/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"net/http/httptest"
	"testing"
)

func newTestLogger() *zerologWrapper {
	return NewZerologWrapperWithWriter(testWriter{}, &config.LoggingConfig{Level: "disabled", Format: config.LogFormatJson}).(*zerologWrapper)
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

// newTestSession points every AWS client at the given test server.
func newTestSession(t *testing.T, server *httptest.Server) *session.Session {
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String("us-east-1"),
		Endpoint:         aws.String(server.URL),
		Credentials:      credentials.NewStaticCredentials("AKID", "SECRET", ""),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(true),
		MaxRetries:       aws.Int(0),
	})
	if err != nil {
		t.Fatal("Failed to create session:", err)
	}
	return sess
}
