package usecase

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"cyberlearn/internal/dto/request"
	"cyberlearn/internal/dto/response"
	"cyberlearn/pkg/utils"

	"go.uber.org/zap"
)

type UploadService interface {
	SignUpload(req *request.UploadSignatureRequest) (*response.UploadSignatureResponse, error)
}

type uploadService struct {
	config utils.CloudinaryConfig
	log    *zap.Logger
}

func NewUploadService(config utils.CloudinaryConfig, log *zap.Logger) UploadService {
	return &uploadService{
		config: config,
		log:    log.With(zap.String("service", "upload")),
	}
}

// SignUpload produces a Cloudinary signed-upload ticket: the SHA-1 of the
// sorted signable parameters concatenated with the API secret. The secret
// itself never leaves the server.
func (s *uploadService) SignUpload(req *request.UploadSignatureRequest) (*response.UploadSignatureResponse, error) {
	if s.config.APISecret == "" {
		return nil, fmt.Errorf("cloudinary is not configured")
	}

	folder := req.Folder
	if folder == "" {
		folder = s.config.Folder
	}

	resourceType := req.ResourceType
	if resourceType == "" {
		resourceType = "image"
	}

	timestamp := time.Now().Unix()
	params := map[string]string{
		"folder":    folder,
		"timestamp": fmt.Sprintf("%d", timestamp),
	}

	return &response.UploadSignatureResponse{
		Signature:    signParams(params, s.config.APISecret),
		Timestamp:    timestamp,
		Folder:       folder,
		ResourceType: resourceType,
		APIKey:       s.config.APIKey,
		CloudName:    s.config.CloudName,
	}, nil
}

func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
