package utils

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"lms/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const uploadMaxRetries = 3

// SaveUploadedFile stores an uploaded file under the local uploads directory
// with a collision-free name and returns the stored path.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// UploadMedia saves the file locally and pushes it to the external media
// storage service. When the remote push keeps failing the locally served URL
// is returned as a fallback so the request never fails outright.
func UploadMedia(file *multipart.FileHeader) (string, error) {
	filePath, err := SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return "", err
	}

	localURL := "/uploads/" + filepath.Base(filePath)

	if config.AppConfig.MediaStoreURL == "" {
		return localURL, nil
	}

	remoteURL, err := pushToMediaStore(filePath)
	if err != nil {
		log.Printf("Media store upload failed, serving %s locally: %v", filepath.Base(filePath), err)
		return localURL, nil
	}
	return remoteURL, nil
}

// pushToMediaStore uploads a stored file to the media storage HTTP API with
// bounded retry and exponential backoff.
func pushToMediaStore(filePath string) (string, error) {
	client := resty.New().SetTimeout(30 * time.Second)

	var result struct {
		URL string `json:"url"`
	}

	var lastErr error
	backoff := time.Second
	for attempt := 1; attempt <= uploadMaxRetries; attempt++ {
		resp, err := client.R().
			SetHeader("Authorization", "Bearer "+config.AppConfig.MediaStoreKey).
			SetFile("file", filePath).
			SetResult(&result).
			Post(config.AppConfig.MediaStoreURL + "/v1/files")
		if err == nil && resp.IsSuccess() && result.URL != "" {
			return result.URL, nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("media store returned status %d", resp.StatusCode())
		}
		if attempt < uploadMaxRetries {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return "", lastErr
}
