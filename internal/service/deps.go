package service

import (
	"context"
	"io"
	"time"
)

// ObjectStorage is the object-store surface the note service needs.
// pkg/storage.S3Client satisfies it.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) error
	Delete(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Mailer dispatches account email. pkg/mailer.Mailer satisfies it.
type Mailer interface {
	SendActivationEmail(ctx context.Context, to, firstName, code string) error
}

// CodeGenerator produces one-time activation codes.
// pkg/activation.Generator satisfies it.
type CodeGenerator interface {
	Code() (string, error)
}
