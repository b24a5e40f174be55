package models

import "time"

// Folder is one node of the global folder forest persisted at
// folders/global. Subfolders nest to unbounded depth and identifiers are
// unique across the whole forest, so lookups address a folder by id alone.
type Folder struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name" validate:"required"`
	Tags       []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Files      []File    `bson:"files" json:"files"`
	SubFolders []Folder  `bson:"subFolders,omitempty" json:"subFolders,omitempty"`
	CreatedBy  string    `bson:"createdBy" json:"createdBy"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// File is a stored material inside a folder. URL is the authoritative
// retrieval location in the object store; blob paths are derived from it
// rather than reconstructed from names.
type File struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	URL       string    `bson:"url" json:"url"`
	Type      string    `bson:"type" json:"type"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// GlobalFolders is the authoritative persisted form of the forest.
type GlobalFolders struct {
	Folders []Folder `bson:"folders" json:"folders"`
}

// FolderUpdate is a partial metadata change. Nil fields are left untouched;
// files and subfolders are never affected by a metadata update.
type FolderUpdate struct {
	Name *string   `json:"name,omitempty"`
	Tags *[]string `json:"tags,omitempty"`
}

// FindFolder walks the forest depth-first in list order and returns the
// first folder whose id matches, or nil. The returned pointer aliases the
// input slice.
func FindFolder(folders []Folder, id string) *Folder {
	for i := range folders {
		if folders[i].ID == id {
			return &folders[i]
		}
		if found := FindFolder(folders[i].SubFolders, id); found != nil {
			return found
		}
	}
	return nil
}

// FindFile locates the owning folder and the file within it by recursive
// lookup. Both results are nil when either identifier does not resolve.
func FindFile(folders []Folder, folderID, fileID string) (*Folder, *File) {
	for i := range folders {
		if folders[i].ID == folderID {
			for j := range folders[i].Files {
				if folders[i].Files[j].ID == fileID {
					return &folders[i], &folders[i].Files[j]
				}
			}
		}
		if folder, file := FindFile(folders[i].SubFolders, folderID, fileID); file != nil {
			return folder, file
		}
	}
	return nil, nil
}

// RemoveFolder filters the folder with the given id (and, implicitly, its
// entire subtree) out of the forest. Ancestor lists on the path to the
// target are rebuilt; unrelated branches are returned as-is. The second
// return reports whether the id resolved.
func RemoveFolder(folders []Folder, id string) ([]Folder, bool) {
	for i := range folders {
		if folders[i].ID == id {
			out := make([]Folder, 0, len(folders)-1)
			out = append(out, folders[:i]...)
			out = append(out, folders[i+1:]...)
			return out, true
		}
		if sub, found := RemoveFolder(folders[i].SubFolders, id); found {
			out := make([]Folder, len(folders))
			copy(out, folders)
			out[i].SubFolders = sub
			return out, true
		}
	}
	return folders, false
}

// RemoveFile rewrites the forest with the file removed from its owning
// folder's file list, reconstructing every ancestor down to that folder and
// leaving sibling folders and files untouched.
func RemoveFile(folders []Folder, folderID, fileID string) ([]Folder, bool) {
	for i := range folders {
		if folders[i].ID == folderID {
			for j := range folders[i].Files {
				if folders[i].Files[j].ID == fileID {
					files := make([]File, 0, len(folders[i].Files)-1)
					files = append(files, folders[i].Files[:j]...)
					files = append(files, folders[i].Files[j+1:]...)
					out := make([]Folder, len(folders))
					copy(out, folders)
					out[i].Files = files
					return out, true
				}
			}
		}
		if sub, found := RemoveFile(folders[i].SubFolders, folderID, fileID); found {
			out := make([]Folder, len(folders))
			copy(out, folders)
			out[i].SubFolders = sub
			return out, true
		}
	}
	return folders, false
}

// ApplyFolderUpdate replaces the named metadata fields on the folder with
// the given id, wherever it sits in the forest. An unknown id is a silent
// no-op: the forest is returned unchanged with found=false.
func ApplyFolderUpdate(folders []Folder, id string, update FolderUpdate) ([]Folder, bool) {
	for i := range folders {
		if folders[i].ID == id {
			out := make([]Folder, len(folders))
			copy(out, folders)
			if update.Name != nil {
				out[i].Name = *update.Name
			}
			if update.Tags != nil {
				out[i].Tags = *update.Tags
			}
			return out, true
		}
		if sub, found := ApplyFolderUpdate(folders[i].SubFolders, id, update); found {
			out := make([]Folder, len(folders))
			copy(out, folders)
			out[i].SubFolders = sub
			return out, true
		}
	}
	return folders, false
}

// TotalFiles sums the file counts of the folder and all descendant
// subfolders. Pure, used for display.
func (f *Folder) TotalFiles() int {
	total := len(f.Files)
	for i := range f.SubFolders {
		total += f.SubFolders[i].TotalFiles()
	}
	return total
}

// CountFiles returns the aggregate file count of an entire forest.
func CountFiles(folders []Folder) int {
	total := 0
	for i := range folders {
		total += folders[i].TotalFiles()
	}
	return total
}

// CountFolders returns the number of folders in the forest, subfolders
// included.
func CountFolders(folders []Folder) int {
	total := len(folders)
	for i := range folders {
		total += CountFolders(folders[i].SubFolders)
	}
	return total
}
