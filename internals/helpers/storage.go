// file: internals/helpers/storage.go
package helper

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"grofast_backend/internals/configs"
)

const (
	selfieMaxDim  = 640
	selfieQuality = 80
)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return filenameSanitizer.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// UploadToStorage PUTs an object into a Supabase storage bucket.
func UploadToStorage(bucket, filename, contentType string, data *bytes.Buffer) error {
	supabaseURL := strings.TrimSpace(configs.SupabaseURL)
	supabaseKey := strings.TrimSpace(configs.SupabaseKey)
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL or SUPABASE_SERVICE_ROLE_KEY not set")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", supabaseURL, bucket, filename)

	req, err := http.NewRequest(http.MethodPut, endpoint, data)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("send upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func PublicStorageURL(bucket, filename string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		configs.SupabaseURL, bucket, url.PathEscape(filename))
}

// UploadImage re-encodes an uploaded image to webp (resized to fit
// selfieMaxDim) before storing it, and returns the public URL.
func UploadImage(bucket, folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	img = imaging.Fit(img, selfieMaxDim, selfieMaxDim, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: selfieQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	base := strings.TrimSuffix(fileHeader.Filename, pathExt(fileHeader.Filename))
	filename := GenerateUniqueFilename(folder, base+".webp")
	if err := UploadToStorage(bucket, filename, "image/webp", buf); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return PublicStorageURL(bucket, filename), nil
}

// UploadFile stores a raw attachment as-is and returns the public URL.
func UploadFile(bucket, folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	filename := GenerateUniqueFilename(folder, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := UploadToStorage(bucket, filename, contentType, buf); err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}
	return PublicStorageURL(bucket, filename), nil
}

// DeleteFromStorage removes an object; used when a row is hard-deleted.
func DeleteFromStorage(bucket, path string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.SupabaseURL, bucket, path)

	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// ExtractStoragePath splits a public URL back into bucket and object path.
func ExtractStoragePath(fullURL string) (bucket string, path string, err error) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return "", "", err
	}
	parts := strings.SplitN(u.Path, "/object/public/", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("not a public storage object URL")
	}
	pathParts := strings.SplitN(parts[1], "/", 2)
	if len(pathParts) < 2 {
		return "", "", fmt.Errorf("cannot extract bucket and path")
	}
	return pathParts[0], pathParts[1], nil
}

func pathExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}
