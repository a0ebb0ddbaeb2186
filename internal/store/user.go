package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/financeflowpro/backend/internal/errs"
	"github.com/financeflowpro/backend/internal/models"
)

type userStore struct {
	client     *firestore.Client
	collection *firestore.CollectionRef
}

func NewUserStore(client *firestore.Client) *userStore {
	return &userStore{
		client:     client,
		collection: client.Collection("users"),
	}
}

func (s *userStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	_, err := s.collection.Doc(user.UID).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("user already exists")
		}
		return errs.NewDatabaseError("create", "failed to create user", err)
	}
	return nil
}

func (s *userStore) GetUser(ctx context.Context, uid string) (*models.User, error) {
	doc, err := s.collection.Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("user not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get user", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse user data", err)
	}
	user.UID = doc.Ref.ID
	return &user, nil
}

// GetUserByEmail does an equality query on the email field. Emails are stored
// as-is, so the lookup is case-sensitive.
func (s *userStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	it := s.collection.Where("email", "==", email).Limit(1).Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, errs.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to query user by email", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse user data", err)
	}
	user.UID = doc.Ref.ID
	return &user, nil
}

func (s *userStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	docs, err := s.collection.Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list users", err)
	}
	users := make([]*models.User, 0, len(docs))
	for _, d := range docs {
		var u models.User
		if err := d.DataTo(&u); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse user data", err)
		}
		u.UID = d.Ref.ID
		users = append(users, &u)
	}
	return users, nil
}

func (s *userStore) UpdateUserStatus(ctx context.Context, uid string, st models.UserStatus) error {
	_, err := s.collection.Doc(uid).Update(ctx, []firestore.Update{
		{Path: "status", Value: st},
	})
	return mapUpdateErr(err, "failed to update user status")
}

func (s *userStore) UpdateUserRole(ctx context.Context, uid string, role models.UserRole) error {
	_, err := s.collection.Doc(uid).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
	})
	return mapUpdateErr(err, "failed to update user role")
}

func (s *userStore) RecordLogin(ctx context.Context, uid string, at time.Time) error {
	_, err := s.collection.Doc(uid).Update(ctx, []firestore.Update{
		{Path: "lastLogin", Value: at},
	})
	return mapUpdateErr(err, "failed to record login")
}

func (s *userStore) DeleteUser(ctx context.Context, uid string) error {
	_, err := s.collection.Doc(uid).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete user", err)
	}
	return nil
}

func mapUpdateErr(err error, message string) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return errs.NewNotFoundError("user not found")
	}
	return errs.NewDatabaseError("update", message, err)
}
