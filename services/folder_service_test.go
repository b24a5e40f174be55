package services

import (
	"context"
	"strings"
	"testing"

	"studyhub/database"
	"studyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedForest(t *testing.T, store *fakeStore, folders []models.Folder) {
	t.Helper()
	doc := models.GlobalFolders{Folders: folders}
	require.NoError(t, store.SetDocument(context.Background(), database.FoldersCollection, database.GlobalFoldersDoc, doc, false))
}

func serviceForest() []models.Folder {
	return []models.Folder{
		{
			ID:        "f1",
			Name:      "Mathematics",
			CreatedBy: "uid-1",
			Files: []models.File{
				{ID: "a", Name: "a.pdf", URL: "https://firebasestorage.googleapis.com/v0/b/app.appspot.com/o/global%2Ff1%2Fa.pdf?alt=media"},
				{ID: "b", Name: "b.pdf", URL: "https://firebasestorage.googleapis.com/v0/b/app.appspot.com/o/global%2Ff1%2Fb.pdf?alt=media"},
				{ID: "c", Name: "c.pdf", URL: "https://firebasestorage.googleapis.com/v0/b/app.appspot.com/o/global%2Ff1%2Fc.pdf?alt=media"},
			},
			SubFolders: []models.Folder{
				{
					ID:        "f1-1",
					Name:      "Algebra",
					CreatedBy: "uid-2",
					Files: []models.File{
						{ID: "x", Name: "x.pdf", URL: "https://blobs.test/global/f1-1/x.pdf"},
					},
				},
			},
		},
		{
			ID:        "f2",
			Name:      "History",
			CreatedBy: "uid-1",
		},
	}
}

func TestGetGlobalFoldersSeedsEmptyDocument(t *testing.T) {
	store := newFakeStore()
	svc := NewFolderServiceWith(store, newFakeBlobs())
	ctx := context.Background()

	folders, err := svc.GetGlobalFolders(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders)

	// The empty document is now persisted.
	var doc models.GlobalFolders
	require.NoError(t, store.GetDocument(ctx, database.FoldersCollection, database.GlobalFoldersDoc, &doc))
	assert.NotNil(t, doc.Folders)

	// A second load reads it back without error.
	folders, err = svc.GetGlobalFolders(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestGetGlobalFoldersBackendDown(t *testing.T) {
	store := newFakeStore()
	store.down = true
	svc := NewFolderServiceWith(store, newFakeBlobs())

	_, err := svc.GetGlobalFolders(context.Background())
	assert.ErrorIs(t, err, models.ErrBackendUnavailable)
}

func TestCreateFolderNested(t *testing.T) {
	store := newFakeStore()
	svc := NewFolderServiceWith(store, newFakeBlobs())
	ctx := context.Background()
	seedForest(t, store, serviceForest())

	folder, err := svc.CreateFolder(ctx, "uid-3", &models.FolderCreateRequest{
		Name:     "Geometry",
		ParentID: "f1-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, folder.ID)
	assert.Equal(t, "uid-3", folder.CreatedBy)

	loaded, err := svc.GetFolder(ctx, folder.ID)
	require.NoError(t, err)
	assert.Equal(t, "Geometry", loaded.Name)

	parent, err := svc.GetFolder(ctx, "f1-1")
	require.NoError(t, err)
	assert.Len(t, parent.SubFolders, 1)
}

func TestCreateFolderUnknownParent(t *testing.T) {
	store := newFakeStore()
	svc := NewFolderServiceWith(store, newFakeBlobs())
	seedForest(t, store, serviceForest())

	_, err := svc.CreateFolder(context.Background(), "uid-3", &models.FolderCreateRequest{
		Name:     "Orphan",
		ParentID: "nope",
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateFolderUnknownIDIsSilent(t *testing.T) {
	store := newFakeStore()
	svc := NewFolderServiceWith(store, newFakeBlobs())
	ctx := context.Background()
	seedForest(t, store, serviceForest())

	name := "Renamed"
	err := svc.UpdateFolder(ctx, "nope", models.FolderUpdate{Name: &name})
	require.NoError(t, err)

	// Nothing changed.
	folders, err := svc.GetGlobalFolders(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", models.FindFolder(folders, "f1").Name)
}

func TestDeleteFolderCascade(t *testing.T) {
	store := newFakeStore()
	blobs := newFakeBlobs()
	svc := NewFolderServiceWith(store, blobs)
	ctx := context.Background()
	seedForest(t, store, serviceForest())

	require.NoError(t, svc.DeleteFolder(ctx, "f1"))

	// Every descendant file's blob was deleted at its folder-scoped key.
	assert.ElementsMatch(t, []string{
		"folders/f1/a.pdf",
		"folders/f1/b.pdf",
		"folders/f1/c.pdf",
		"folders/f1-1/x.pdf",
	}, blobs.deleted)

	// The subtree is gone, the sibling survives.
	folders, err := svc.GetGlobalFolders(ctx)
	require.NoError(t, err)
	assert.Nil(t, models.FindFolder(folders, "f1"))
	assert.Nil(t, models.FindFolder(folders, "f1-1"))
	assert.NotNil(t, models.FindFolder(folders, "f2"))

	// Deleting again reports the folder as missing.
	err = svc.DeleteFolder(ctx, "f1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteFolderToleratesBlobFailures(t *testing.T) {
	store := newFakeStore()
	blobs := newFakeBlobs()
	blobs.failDeletes = true
	svc := NewFolderServiceWith(store, blobs)
	ctx := context.Background()
	seedForest(t, store, serviceForest())

	// Blob deletes fail wholesale but the metadata delete still succeeds.
	require.NoError(t, svc.DeleteFolder(ctx, "f1"))

	folders, err := svc.GetGlobalFolders(ctx)
	require.NoError(t, err)
	assert.Nil(t, models.FindFolder(folders, "f1"))
}

func TestDeleteFileDerivesBlobPathFromURL(t *testing.T) {
	store := newFakeStore()
	blobs := newFakeBlobs()
	svc := NewFolderServiceWith(store, blobs)
	ctx := context.Background()
	seedForest(t, store, serviceForest())

	require.NoError(t, svc.DeleteFile(ctx, "f1", "b"))

	// The path comes from the stored URL, decoded and stripped of query.
	assert.Equal(t, []string{"global/f1/b.pdf"}, blobs.deleted)

	// Only the middle file is gone.
	folder, err := svc.GetFolder(ctx, "f1")
	require.NoError(t, err)
	require.Len(t, folder.Files, 2)
	assert.Equal(t, "a", folder.Files[0].ID)
	assert.Equal(t, "c", folder.Files[1].ID)
	assert.Len(t, folder.SubFolders, 1)
}

func TestDeleteFileMissing(t *testing.T) {
	store := newFakeStore()
	svc := NewFolderServiceWith(store, newFakeBlobs())
	seedForest(t, store, serviceForest())

	err := svc.DeleteFile(context.Background(), "f1", "nope")
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = svc.DeleteFile(context.Background(), "nope", "a")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUploadFile(t *testing.T) {
	store := newFakeStore()
	blobs := newFakeBlobs()
	svc := NewFolderServiceWith(store, blobs)
	ctx := context.Background()
	seedForest(t, store, serviceForest())

	file, err := svc.UploadFile(ctx, "f1-1", "notes.txt", "text/plain", strings.NewReader("hello"), 5)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", file.Name)
	assert.Equal(t, "https://blobs.test/global/f1-1/notes.txt", file.URL)

	// The blob landed under the folder's namespace.
	_, ok := blobs.objects["global/f1-1/notes.txt"]
	assert.True(t, ok)

	folder, err := svc.GetFolder(ctx, "f1-1")
	require.NoError(t, err)
	assert.Len(t, folder.Files, 2)
}

func TestCountAll(t *testing.T) {
	store := newFakeStore()
	svc := NewFolderServiceWith(store, newFakeBlobs())
	seedForest(t, store, serviceForest())

	folders, files, err := svc.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, folders)
	assert.Equal(t, 4, files)
}
