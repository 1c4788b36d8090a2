package usecase

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"testing"

	"cyberlearn/internal/dto/request"
	"cyberlearn/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSignUpload(t *testing.T) {
	svc := NewUploadService(utils.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key123",
		APISecret: "secret456",
		Folder:    "cyberlearn/uploads",
	}, zap.NewNop())

	resp, err := svc.SignUpload(&request.UploadSignatureRequest{})
	require.NoError(t, err)

	assert.Equal(t, "demo", resp.CloudName)
	assert.Equal(t, "key123", resp.APIKey)
	assert.Equal(t, "cyberlearn/uploads", resp.Folder)
	assert.Equal(t, "image", resp.ResourceType)

	// The signature must match Cloudinary's scheme: SHA-1 over the sorted
	// params joined with & plus the secret.
	expected := sha1.Sum([]byte(fmt.Sprintf("folder=%s&timestamp=%d%s",
		resp.Folder, resp.Timestamp, "secret456")))
	assert.Equal(t, hex.EncodeToString(expected[:]), resp.Signature)
}

func TestSignUploadCustomFolder(t *testing.T) {
	svc := NewUploadService(utils.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key123",
		APISecret: "secret456",
		Folder:    "cyberlearn/uploads",
	}, zap.NewNop())

	resp, err := svc.SignUpload(&request.UploadSignatureRequest{
		Folder:       "cyberlearn/proofs",
		ResourceType: "raw",
	})
	require.NoError(t, err)

	assert.Equal(t, "cyberlearn/proofs", resp.Folder)
	assert.Equal(t, "raw", resp.ResourceType)
}

func TestSignUploadUnconfigured(t *testing.T) {
	svc := NewUploadService(utils.CloudinaryConfig{}, zap.NewNop())

	_, err := svc.SignUpload(&request.UploadSignatureRequest{})
	assert.Error(t, err)
}
