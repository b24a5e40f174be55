package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPathFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "encoded object segment with query",
			url:  "https://firebasestorage.googleapis.com/v0/b/app.appspot.com/o/global%2Ff1%2Fdoc.txt?alt=media&token=abc123",
			want: "global/f1/doc.txt",
		},
		{
			name: "encoded object segment without namespace",
			url:  "https://firebasestorage.googleapis.com/v0/b/app.appspot.com/o/f1%2Fdoc.txt?alt=media",
			want: "global/f1/doc.txt",
		},
		{
			name: "plain bucket url",
			url:  "https://bucket.s3.us-east-1.amazonaws.com/global/f1/doc.txt",
			want: "global/f1/doc.txt",
		},
		{
			name: "plain url with query",
			url:  "https://bucket.s3.us-east-1.amazonaws.com/global/f1/doc.txt?X-Amz-Expires=900",
			want: "global/f1/doc.txt",
		},
		{
			name: "local uploads url",
			url:  "http://localhost:8080/uploads/global/f1/doc.txt",
			want: "global/f1/doc.txt",
		},
		{
			name: "missing namespace prefix",
			url:  "https://cdn.example.com/f1/doc.txt",
			want: "global/f1/doc.txt",
		},
		{
			name: "spaces in file name",
			url:  "https://firebasestorage.googleapis.com/v0/b/app.appspot.com/o/global%2Ff1%2Fmy%20notes.pdf?alt=media",
			want: "global/f1/my notes.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ObjectPathFromURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectPathFromURLErrors(t *testing.T) {
	_, err := ObjectPathFromURL("https://cdn.example.com/")
	assert.Error(t, err)

	_, err = ObjectPathFromURL("://not-a-url")
	assert.Error(t, err)
}

func TestNormalizeGlobalPath(t *testing.T) {
	assert.Equal(t, "global/f1/doc.txt", NormalizeGlobalPath("f1/doc.txt"))

	// Applying the prefix is idempotent.
	assert.Equal(t, "global/f1/doc.txt", NormalizeGlobalPath("global/f1/doc.txt"))
	assert.Equal(t, "global/f1/doc.txt", NormalizeGlobalPath(NormalizeGlobalPath("f1/doc.txt")))
}

func TestFolderBlobPrefix(t *testing.T) {
	assert.Equal(t, "folders/f1/", FolderBlobPrefix("f1"))
}
