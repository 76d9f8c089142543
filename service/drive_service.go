package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"invitation-studio/logger"
	"invitation-studio/utils"
)

// DriveService reads template images from a Google Drive folder
type DriveService struct {
	client   *drive.Service
	folderID string

	mu    sync.RWMutex
	files map[string]string // lowercased file name -> file id
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath, folderID string) (*DriveService, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client:   driveService,
		folderID: folderID,
		files:    map[string]string{},
	}, nil
}

// Ensure DriveService implements ImageSource
var _ ImageSource = (*DriveService)(nil)

var imageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// ListTemplateImages lists every image in the folder whose name follows the
// template image pattern and returns their ids keyed by lowercased name
func (ds *DriveService) ListTemplateImages(ctx context.Context) (map[string]string, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", ds.folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)").
			Context(ctx)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}

	files := make(map[string]string, len(allFiles))
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}
		if _, err := utils.ParseTemplateImageName(file.Name); err != nil {
			logger.Log.Warnf("⚠️ Skipping drive file %s: %v", file.Name, err)
			continue
		}
		files[strings.ToLower(file.Name)] = file.Id
	}

	logger.Log.Infof("✓ Found %d template images in drive folder", len(files))
	return files, nil
}

// DownloadImage returns the content of a drive file
func (ds *DriveService) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}

// Read downloads the image called name. The folder listing is refreshed once on a miss.
func (ds *DriveService) Read(ctx context.Context, name string) ([]byte, error) {
	key := strings.ToLower(name)

	ds.mu.RLock()
	id, ok := ds.files[key]
	ds.mu.RUnlock()

	if !ok {
		files, err := ds.ListTemplateImages(ctx)
		if err != nil {
			return nil, err
		}
		ds.mu.Lock()
		ds.files = files
		ds.mu.Unlock()

		if id, ok = files[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, name)
		}
	}

	return ds.DownloadImage(ctx, id)
}
