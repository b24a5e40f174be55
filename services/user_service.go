package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"studyhub/database"
	"studyhub/models"
	"studyhub/storage"
	"studyhub/utils"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// UserService handles account provisioning and profile management. The first
// account ever provisioned becomes the admin; every later one is a regular
// user.
type UserService struct {
	*BaseService
	blobs storage.StorageInterface
}

func NewUserService() *UserService {
	return &UserService{
		BaseService: NewBaseService(),
		blobs:       GetStorageClient(),
	}
}

// NewUserServiceWith builds a service over explicit collaborators, used by
// tests to substitute fakes.
func NewUserServiceWith(store database.Store, blobs storage.StorageInterface) *UserService {
	return &UserService{
		BaseService: &BaseService{store: store},
		blobs:       blobs,
	}
}

// InitializeUser ensures a profile document exists for the given account.
// Existing profiles are returned untouched, so repeated sign-ins are no-ops.
// When the document is missing it is created with empty planner collections
// and a role derived from the user count at that moment: the very first
// account is the admin. The count-then-create window is not guarded; two
// truly simultaneous first sign-ups could both see zero.
func (us *UserService) InitializeUser(ctx context.Context, uid, email string) (*models.User, error) {
	var existing models.User
	err := us.store.GetDocument(ctx, database.UsersCollection, uid, &existing)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	count, err := us.store.CountDocuments(ctx, database.UsersCollection)
	if err != nil {
		return nil, err
	}

	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}

	user := models.NewUser(uid, email, role)
	if err := us.store.SetDocument(ctx, database.UsersCollection, uid, user, false); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": uid,
		"role":    role,
	}).Info("Provisioned user profile")
	return user, nil
}

// GetByID loads a user profile by account id.
func (us *UserService) GetByID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	if err := us.store.GetDocument(ctx, database.UsersCollection, uid, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail loads a user profile by email address.
func (us *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := us.store.FindDocument(ctx, database.UsersCollection, bson.M{"email": email}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all profiles ordered by creation time, optionally
// filtered by a case-insensitive email/username substring. Password hashes
// never leave this layer.
func (us *UserService) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	var users []models.User
	sort := bson.D{{Key: "createdAt", Value: 1}}
	if err := us.store.ListDocuments(ctx, database.UsersCollection, sort, &users); err != nil {
		return nil, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := make([]models.User, 0, len(users))
		for _, u := range users {
			if strings.Contains(strings.ToLower(u.Email), needle) ||
				strings.Contains(strings.ToLower(u.Username), needle) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// UpdateUser applies admin edits to a profile's username and role.
func (us *UserService) UpdateUser(ctx context.Context, uid string, req *models.UserUpdateRequest) (*models.User, error) {
	if _, err := us.GetByID(ctx, uid); err != nil {
		return nil, err
	}

	fields := bson.M{"updatedAt": time.Now()}
	if req.Username != "" {
		fields["username"] = req.Username
	}
	if req.Role != "" {
		fields["role"] = req.Role
	}
	if err := us.store.UpdateDocument(ctx, database.UsersCollection, uid, fields); err != nil {
		return nil, err
	}
	return us.GetByID(ctx, uid)
}

// UpdateTasks replaces the caller's task list in place, leaving every other
// profile field untouched.
func (us *UserService) UpdateTasks(ctx context.Context, uid string, tasks []models.Task) error {
	return us.updatePlannerField(ctx, uid, "tasks", tasks)
}

// UpdateAssignments replaces the caller's assignment list.
func (us *UserService) UpdateAssignments(ctx context.Context, uid string, assignments []models.Assignment) error {
	return us.updatePlannerField(ctx, uid, "assignments", assignments)
}

// UpdateExams replaces the caller's exam list.
func (us *UserService) UpdateExams(ctx context.Context, uid string, exams []models.Exam) error {
	return us.updatePlannerField(ctx, uid, "exams", exams)
}

// UpdateRecords replaces the caller's record list.
func (us *UserService) UpdateRecords(ctx context.Context, uid string, records []models.Record) error {
	return us.updatePlannerField(ctx, uid, "records", records)
}

func (us *UserService) updatePlannerField(ctx context.Context, uid, field string, value interface{}) error {
	if _, err := us.GetByID(ctx, uid); err != nil {
		return err
	}
	return us.store.UpdateDocument(ctx, database.UsersCollection, uid, bson.M{
		field:       value,
		"updatedAt": time.Now(),
	})
}

// DeleteUser removes an account. Blobs under every folder the user created
// are deleted first, best-effort; the folder tree metadata is intentionally
// left in place so shared material stays browsable. Only the profile
// document removal can fail the operation.
func (us *UserService) DeleteUser(ctx context.Context, uid string) error {
	if _, err := us.GetByID(ctx, uid); err != nil {
		return err
	}

	var doc models.GlobalFolders
	err := us.store.GetDocument(ctx, database.FoldersCollection, database.GlobalFoldersDoc, &doc)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}

	us.deleteOwnedBlobs(doc.Folders, uid)

	return us.store.DeleteDocument(ctx, database.UsersCollection, uid)
}

// deleteOwnedBlobs walks the forest and clears the blob prefix of every
// folder created by the user.
func (us *UserService) deleteOwnedBlobs(folders []models.Folder, uid string) {
	for i := range folders {
		if folders[i].CreatedBy == uid {
			prefix := utils.FolderBlobPrefix(folders[i].ID)
			keys, err := us.blobs.List(prefix)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"folder_id": folders[i].ID,
					"prefix":    prefix,
					"error":     err.Error(),
				}).Warn("Failed to list folder blobs during user delete")
			} else if len(keys) > 0 {
				if err := us.blobs.DeleteMultiple(keys); err != nil {
					logrus.WithFields(logrus.Fields{
						"folder_id": folders[i].ID,
						"count":     len(keys),
						"error":     err.Error(),
					}).Warn("Failed to delete folder blobs during user delete")
				}
			}
		}
		us.deleteOwnedBlobs(folders[i].SubFolders, uid)
	}
}

// CountByRole returns total and admin user counts for the dashboard.
func (us *UserService) CountByRole(ctx context.Context) (total int, admins int, err error) {
	var users []models.User
	if err := us.store.ListDocuments(ctx, database.UsersCollection, nil, &users); err != nil {
		return 0, 0, err
	}
	for i := range users {
		if users[i].IsAdmin() {
			admins++
		}
	}
	return len(users), admins, nil
}
