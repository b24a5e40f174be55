package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testForest builds a three-level forest:
//
//	f1 (files a, b, c)
//	├── f1-1 (file x)
//	└── f1-2
//	    └── f1-2-1 (files y, z)
//	f2 (file w)
func testForest() []Folder {
	return []Folder{
		{
			ID:   "f1",
			Name: "Mathematics",
			Tags: []string{"semester-1"},
			Files: []File{
				{ID: "a", Name: "a.pdf", URL: "https://cdn.example.com/global/f1/a.pdf"},
				{ID: "b", Name: "b.pdf", URL: "https://cdn.example.com/global/f1/b.pdf"},
				{ID: "c", Name: "c.pdf", URL: "https://cdn.example.com/global/f1/c.pdf"},
			},
			SubFolders: []Folder{
				{
					ID:   "f1-1",
					Name: "Algebra",
					Files: []File{
						{ID: "x", Name: "x.pdf"},
					},
				},
				{
					ID:   "f1-2",
					Name: "Geometry",
					SubFolders: []Folder{
						{
							ID:   "f1-2-1",
							Name: "Proofs",
							Files: []File{
								{ID: "y", Name: "y.pdf"},
								{ID: "z", Name: "z.pdf"},
							},
						},
					},
				},
			},
		},
		{
			ID:   "f2",
			Name: "History",
			Files: []File{
				{ID: "w", Name: "w.pdf"},
			},
		},
	}
}

func TestFindFolder(t *testing.T) {
	forest := testForest()

	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "root folder", id: "f1", want: "Mathematics"},
		{name: "second root", id: "f2", want: "History"},
		{name: "nested one level", id: "f1-1", want: "Algebra"},
		{name: "nested two levels", id: "f1-2-1", want: "Proofs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder := FindFolder(forest, tt.id)
			require.NotNil(t, folder)
			assert.Equal(t, tt.want, folder.Name)
		})
	}
}

func TestFindFolderMissing(t *testing.T) {
	assert.Nil(t, FindFolder(testForest(), "nope"))
	assert.Nil(t, FindFolder(nil, "f1"))
}

func TestFindFile(t *testing.T) {
	forest := testForest()

	folder, file := FindFile(forest, "f1-2-1", "z")
	require.NotNil(t, file)
	require.NotNil(t, folder)
	assert.Equal(t, "Proofs", folder.Name)
	assert.Equal(t, "z.pdf", file.Name)

	folder, file = FindFile(forest, "f1", "z")
	assert.Nil(t, folder)
	assert.Nil(t, file)
}

func TestRemoveFolderSubtree(t *testing.T) {
	forest := testForest()
	foldersBefore := CountFolders(forest)
	filesBefore := CountFiles(forest)

	// Removing f1-2 takes its whole subtree (f1-2-1 with 2 files) along.
	updated, found := RemoveFolder(forest, "f1-2")
	require.True(t, found)
	assert.Equal(t, foldersBefore-2, CountFolders(updated))
	assert.Equal(t, filesBefore-2, CountFiles(updated))

	// Siblings survive untouched.
	assert.NotNil(t, FindFolder(updated, "f1-1"))
	assert.NotNil(t, FindFolder(updated, "f2"))
	assert.Nil(t, FindFolder(updated, "f1-2"))
	assert.Nil(t, FindFolder(updated, "f1-2-1"))
}

func TestRemoveFolderRoot(t *testing.T) {
	forest := testForest()

	updated, found := RemoveFolder(forest, "f1")
	require.True(t, found)
	assert.Equal(t, 1, CountFolders(updated))
	assert.Equal(t, 1, CountFiles(updated))
	assert.Equal(t, "f2", updated[0].ID)
}

func TestRemoveFolderMissing(t *testing.T) {
	forest := testForest()

	updated, found := RemoveFolder(forest, "nope")
	assert.False(t, found)
	assert.Equal(t, CountFolders(forest), CountFolders(updated))
}

func TestRemoveFileKeepsSiblings(t *testing.T) {
	forest := testForest()

	updated, found := RemoveFile(forest, "f1", "b")
	require.True(t, found)

	folder := FindFolder(updated, "f1")
	require.NotNil(t, folder)
	require.Len(t, folder.Files, 2)
	assert.Equal(t, "a", folder.Files[0].ID)
	assert.Equal(t, "c", folder.Files[1].ID)

	// Subfolders and unrelated branches are untouched.
	assert.Len(t, folder.SubFolders, 2)
	assert.Equal(t, 1, FindFolder(updated, "f2").TotalFiles())

	// The original forest still has all three files.
	assert.Len(t, FindFolder(forest, "f1").Files, 3)
}

func TestRemoveFileNested(t *testing.T) {
	forest := testForest()

	updated, found := RemoveFile(forest, "f1-2-1", "y")
	require.True(t, found)

	folder := FindFolder(updated, "f1-2-1")
	require.NotNil(t, folder)
	require.Len(t, folder.Files, 1)
	assert.Equal(t, "z", folder.Files[0].ID)
}

func TestRemoveFileMissing(t *testing.T) {
	updated, found := RemoveFile(testForest(), "f1", "nope")
	assert.False(t, found)
	assert.Len(t, FindFolder(updated, "f1").Files, 3)
}

func TestApplyFolderUpdateTagsOnly(t *testing.T) {
	forest := testForest()
	tags := []string{"archive", "semester-2"}

	updated, found := ApplyFolderUpdate(forest, "f1", FolderUpdate{Tags: &tags})
	require.True(t, found)

	folder := FindFolder(updated, "f1")
	require.NotNil(t, folder)
	assert.Equal(t, tags, folder.Tags)

	// Everything except tags is untouched.
	assert.Equal(t, "Mathematics", folder.Name)
	assert.Len(t, folder.Files, 3)
	assert.Len(t, folder.SubFolders, 2)
}

func TestApplyFolderUpdateNameNested(t *testing.T) {
	forest := testForest()
	name := "Euclidean Geometry"

	updated, found := ApplyFolderUpdate(forest, "f1-2", FolderUpdate{Name: &name})
	require.True(t, found)

	folder := FindFolder(updated, "f1-2")
	require.NotNil(t, folder)
	assert.Equal(t, name, folder.Name)
	assert.Nil(t, folder.Tags)
	assert.Len(t, folder.SubFolders, 1)
}

func TestApplyFolderUpdateUnknownID(t *testing.T) {
	forest := testForest()
	name := "Whatever"

	updated, found := ApplyFolderUpdate(forest, "nope", FolderUpdate{Name: &name})
	assert.False(t, found)
	assert.Equal(t, forest, updated)
}

func TestTotalFiles(t *testing.T) {
	forest := testForest()

	assert.Equal(t, 6, FindFolder(forest, "f1").TotalFiles())
	assert.Equal(t, 2, FindFolder(forest, "f1-2").TotalFiles())
	assert.Equal(t, 7, CountFiles(forest))
	assert.Equal(t, 5, CountFolders(forest))
}
