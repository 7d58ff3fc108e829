package outbound

import "context"

type UploadAudioRequest struct {
	Content  []byte
	FileName string
}

type AudioUploaderPort interface {
	Upload(ctx context.Context, req UploadAudioRequest) (string, error)
	Exists(ctx context.Context, fileName string) (string, bool, error)
}
