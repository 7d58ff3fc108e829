package adapters

import (
	"bytes"
	"context"
	"errors"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"net/http"
)

const audioContentType = "audio/mpeg"

type s3AudioUploader struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3AudioUploader(logger outbound.LoggerPort, s3Svc *s3.S3, s3Config *config.S3Config) outbound.AudioUploaderPort {
	return &s3AudioUploader{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

// Upload stores the audio under its file name and returns a presigned GET
// address valid for the configured TTL.
func (s *s3AudioUploader) Upload(ctx context.Context, req outbound.UploadAudioRequest) (string, error) {
	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(req.FileName),
		Body:          bytes.NewReader(req.Content),
		ContentLength: aws.Int64(int64(len(req.Content))),
		ContentType:   aws.String(audioContentType),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket":   s.s3Config.BucketName,
			"fileName": req.FileName,
		})
		return "", err
	}

	url, err := s.presign(req.FileName)
	if err != nil {
		return "", err
	}

	s.logger.DebugWithFields("Successfully uploaded object to S3", map[string]interface{}{
		"bucket":   s.s3Config.BucketName,
		"fileName": req.FileName,
		"bytes":    len(req.Content),
	})
	return url, nil
}

func (s *s3AudioUploader) Exists(ctx context.Context, fileName string) (string, bool, error) {
	_, err := s.s3Svc.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(fileName),
	})
	if err != nil {
		var reqErr awserr.RequestFailure
		if errors.As(err, &reqErr) && reqErr.StatusCode() == http.StatusNotFound {
			return "", false, nil
		}
		s.logger.ErrorWithFields(err, "Failed to head object in S3", map[string]interface{}{
			"bucket":   s.s3Config.BucketName,
			"fileName": fileName,
		})
		return "", false, err
	}

	url, err := s.presign(fileName)
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

func (s *s3AudioUploader) presign(fileName string) (string, error) {
	getReq, _ := s.s3Svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(fileName),
	})
	url, err := getReq.Presign(s.s3Config.PresignTTL)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to presign audio object", map[string]interface{}{
			"bucket":   s.s3Config.BucketName,
			"fileName": fileName,
		})
		return "", err
	}
	return url, nil
}
