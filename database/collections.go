package database

// Collection names as constants to prevent typos
const (
	UsersCollection           = "users"
	FoldersCollection         = "folders"
	ContactRequestsCollection = "contactRequests"
)

// GlobalFoldersDoc is the single document holding the folder forest.
const GlobalFoldersDoc = "global"
