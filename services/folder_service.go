package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"studyhub/database"
	"studyhub/models"
	"studyhub/storage"
	"studyhub/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FolderService owns the global folder forest: a single document holding
// every folder and file record, paired with the blobs behind the file URLs.
// Metadata is authoritative; blob deletes are best-effort and never fail a
// request on their own.
type FolderService struct {
	*BaseService
	blobs storage.StorageInterface
}

func NewFolderService() *FolderService {
	return &FolderService{
		BaseService: NewBaseService(),
		blobs:       GetStorageClient(),
	}
}

// NewFolderServiceWith builds a service over explicit collaborators, used by
// tests to substitute fakes.
func NewFolderServiceWith(store database.Store, blobs storage.StorageInterface) *FolderService {
	return &FolderService{
		BaseService: &BaseService{store: store},
		blobs:       blobs,
	}
}

// GetGlobalFolders loads the forest, seeding an empty document on first
// access so later writes always have a base to merge into.
func (fs *FolderService) GetGlobalFolders(ctx context.Context) ([]models.Folder, error) {
	var doc models.GlobalFolders
	err := fs.store.GetDocument(ctx, database.FoldersCollection, database.GlobalFoldersDoc, &doc)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			empty := models.GlobalFolders{Folders: []models.Folder{}}
			if err := fs.store.SetDocument(ctx, database.FoldersCollection, database.GlobalFoldersDoc, empty, false); err != nil {
				return nil, err
			}
			return []models.Folder{}, nil
		}
		return nil, err
	}
	if doc.Folders == nil {
		doc.Folders = []models.Folder{}
	}
	return doc.Folders, nil
}

// GetFolder resolves a folder anywhere in the forest by id.
func (fs *FolderService) GetFolder(ctx context.Context, folderID string) (*models.Folder, error) {
	folders, err := fs.GetGlobalFolders(ctx)
	if err != nil {
		return nil, err
	}
	folder := models.FindFolder(folders, folderID)
	if folder == nil {
		return nil, fmt.Errorf("folder %s: %w", folderID, models.ErrNotFound)
	}
	return folder, nil
}

// CreateFolder appends a new empty folder at the root of the forest or under
// the given parent.
func (fs *FolderService) CreateFolder(ctx context.Context, userID string, req *models.FolderCreateRequest) (*models.Folder, error) {
	folders, err := fs.GetGlobalFolders(ctx)
	if err != nil {
		return nil, err
	}

	folder := models.Folder{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Tags:       req.Tags,
		Files:      []models.File{},
		SubFolders: []models.Folder{},
		CreatedBy:  userID,
		CreatedAt:  time.Now(),
	}
	if folder.Tags == nil {
		folder.Tags = []string{}
	}

	if req.ParentID == "" {
		folders = append(folders, folder)
	} else {
		parent := models.FindFolder(folders, req.ParentID)
		if parent == nil {
			return nil, fmt.Errorf("parent folder %s: %w", req.ParentID, models.ErrNotFound)
		}
		parent.SubFolders = append(parent.SubFolders, folder)
	}

	doc := models.GlobalFolders{Folders: folders}
	if err := fs.store.SetDocument(ctx, database.FoldersCollection, database.GlobalFoldersDoc, doc, true); err != nil {
		return nil, err
	}
	return &folder, nil
}

// UpdateFolder applies a partial metadata change to a folder anywhere in the
// forest. An unknown id is a silent no-op.
func (fs *FolderService) UpdateFolder(ctx context.Context, folderID string, update models.FolderUpdate) error {
	folders, err := fs.GetGlobalFolders(ctx)
	if err != nil {
		return err
	}

	updated, found := models.ApplyFolderUpdate(folders, folderID, update)
	if !found {
		return nil
	}

	doc := models.GlobalFolders{Folders: updated}
	return fs.store.SetDocument(ctx, database.FoldersCollection, database.GlobalFoldersDoc, doc, true)
}

// DeleteFolder removes a folder and its entire subtree. Blobs of every
// descendant file are deleted first, best-effort; the metadata write is the
// only step that can fail the operation. A second delete of the same id
// returns ErrNotFound.
func (fs *FolderService) DeleteFolder(ctx context.Context, folderID string) error {
	folders, err := fs.GetGlobalFolders(ctx)
	if err != nil {
		return err
	}

	target := models.FindFolder(folders, folderID)
	if target == nil {
		return fmt.Errorf("folder %s: %w", folderID, models.ErrNotFound)
	}

	fs.deleteFolderBlobs(target)

	updated, _ := models.RemoveFolder(folders, folderID)
	doc := models.GlobalFolders{Folders: updated}
	return fs.store.SetDocument(ctx, database.FoldersCollection, database.GlobalFoldersDoc, doc, false)
}

// deleteFolderBlobs walks the subtree and deletes each file's blob at its
// upload location. Failures are logged and skipped so one missing blob never
// strands the rest of the cascade.
func (fs *FolderService) deleteFolderBlobs(folder *models.Folder) {
	for i := range folder.Files {
		key := utils.FolderBlobPrefix(folder.ID) + folder.Files[i].Name
		if err := fs.blobs.Delete(key); err != nil {
			logrus.WithFields(logrus.Fields{
				"folder_id": folder.ID,
				"key":       key,
				"error":     err.Error(),
			}).Warn("Failed to delete file blob during folder delete")
		}
	}
	for i := range folder.SubFolders {
		fs.deleteFolderBlobs(&folder.SubFolders[i])
	}
}

// DeleteFile removes a single file from its folder. The blob path is derived
// from the stored URL rather than rebuilt from names; the blob delete is
// best-effort, the metadata rewrite is authoritative.
func (fs *FolderService) DeleteFile(ctx context.Context, folderID, fileID string) error {
	folders, err := fs.GetGlobalFolders(ctx)
	if err != nil {
		return err
	}

	folder, file := models.FindFile(folders, folderID, fileID)
	if file == nil {
		return fmt.Errorf("file %s in folder %s: %w", fileID, folderID, models.ErrNotFound)
	}

	path, err := utils.ObjectPathFromURL(file.URL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"file_id": fileID,
			"url":     file.URL,
			"error":   err.Error(),
		}).Warn("Could not derive blob path from file URL")
	} else if err := fs.blobs.Delete(path); err != nil {
		logrus.WithFields(logrus.Fields{
			"file_id": fileID,
			"key":     path,
			"error":   err.Error(),
		}).Warn("Failed to delete file blob")
	}

	updated, _ := models.RemoveFile(folders, folder.ID, fileID)
	doc := models.GlobalFolders{Folders: updated}
	return fs.store.SetDocument(ctx, database.FoldersCollection, database.GlobalFoldersDoc, doc, false)
}

// UploadFile stores the blob under global/{folderId}/{fileName} and appends
// the file record to the owning folder.
func (fs *FolderService) UploadFile(ctx context.Context, folderID, fileName, contentType string, reader io.Reader, size int64) (*models.File, error) {
	folders, err := fs.GetGlobalFolders(ctx)
	if err != nil {
		return nil, err
	}

	folder := models.FindFolder(folders, folderID)
	if folder == nil {
		return nil, fmt.Errorf("folder %s: %w", folderID, models.ErrNotFound)
	}

	key := "global/" + folderID + "/" + fileName
	if err := fs.blobs.UploadStream(key, reader, size); err != nil {
		return nil, fmt.Errorf("%w: upload %s: %v", models.ErrBackendUnavailable, key, err)
	}

	url, err := fs.blobs.GetURL(key)
	if err != nil {
		url = key
	}

	file := models.File{
		ID:        uuid.NewString(),
		Name:      fileName,
		URL:       url,
		Type:      contentType,
		CreatedAt: time.Now(),
	}
	folder.Files = append(folder.Files, file)

	doc := models.GlobalFolders{Folders: folders}
	if err := fs.store.SetDocument(ctx, database.FoldersCollection, database.GlobalFoldersDoc, doc, true); err != nil {
		return nil, err
	}
	return &file, nil
}

// CountAll returns forest-wide folder and file totals for the dashboard.
func (fs *FolderService) CountAll(ctx context.Context) (folders int, files int, err error) {
	forest, err := fs.GetGlobalFolders(ctx)
	if err != nil {
		return 0, 0, err
	}
	return models.CountFolders(forest), models.CountFiles(forest), nil
}
