package user

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jwalitptl/healthbridge-seeder/internal/model"
	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/internal/service"
	apperrors "github.com/jwalitptl/healthbridge-seeder/pkg/errors"
	"github.com/jwalitptl/healthbridge-seeder/pkg/security"
)

// Placeholder admin created when the database has no users at all.
const (
	PlaceholderEmail     = "admin@healthbridge.com"
	PlaceholderPassword  = "placeholder"
	PlaceholderFirstName = "Admin"
	PlaceholderLastName  = "User"

	sampleLogins = 5
)

type Service struct {
	deps   *service.Deps
	hasher security.PasswordHasher
}

func NewService(deps *service.Deps, hasher security.PasswordHasher) *Service {
	return &Service{
		deps:   deps,
		hasher: hasher,
	}
}

// ResolveCreator returns the id stamped as createdBy on generated records:
// an admin if there is one, else any user, else a placeholder admin if the
// operator agrees to create it.
func (s *Service) ResolveCreator(ctx context.Context) (primitive.ObjectID, error) {
	users := s.deps.Store.Users()

	admin, err := users.FindOne(ctx, repository.ByRole(model.RoleAdmin))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to look up admin user: %w", err)
	}
	if admin != nil {
		s.deps.Logger.Info("using admin user as creator", "user_id", admin.ID.Hex())
		return admin.ID, nil
	}

	s.deps.Logger.Warn("no admin user found, looking for any user")
	anyUser, err := users.FindOne(ctx, nil)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to look up users: %w", err)
	}
	if anyUser != nil {
		s.deps.Logger.Info("using existing user as creator", "user_id", anyUser.ID.Hex(), "role", anyUser.Role)
		return anyUser.ID, nil
	}

	if !s.deps.Prompter.Confirm("No users found in the database. Would you like to create a placeholder admin user?") {
		return primitive.NilObjectID, apperrors.NewPrerequisite("users")
	}
	return s.createPlaceholder(ctx)
}

func (s *Service) createPlaceholder(ctx context.Context) (primitive.ObjectID, error) {
	placeholder := model.User{
		Identity: model.Identity{
			Email:     PlaceholderEmail,
			Password:  PlaceholderPassword,
			Role:      model.RoleAdmin,
			FirstName: PlaceholderFirstName,
			LastName:  PlaceholderLastName,
		},
	}
	placeholder.ID = primitive.NewObjectID()
	placeholder.Stamp(s.deps.Now, s.deps.Now)

	if err := s.deps.Validator.Validate(&placeholder); err != nil {
		return primitive.NilObjectID, apperrors.NewValidation("placeholder admin", err)
	}
	if _, err := s.deps.Store.Users().InsertOne(ctx, &placeholder); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create placeholder admin: %w", err)
	}

	s.deps.Logger.Info("created placeholder admin user", "user_id", placeholder.ID.Hex())
	return placeholder.ID, nil
}

// FixPasswords replaces every plaintext seed password with its bcrypt hash
// and returns how many accounts changed.
func (s *Service) FixPasswords(ctx context.Context) (int64, error) {
	users := s.deps.Store.Users()
	plain := repository.Filter{"password": model.DefaultPassword}

	count, err := users.CountDocuments(ctx, plain)
	if err != nil {
		return 0, fmt.Errorf("failed to count plaintext passwords: %w", err)
	}
	if count == 0 {
		s.deps.Logger.Info("no users with plaintext passwords, all passwords appear hashed")
		return 0, nil
	}

	s.deps.Logger.Info("found users with plaintext passwords", "count", count)
	if !s.deps.Prompter.Confirm(fmt.Sprintf("Do you want to update all these passwords to hashed '%s'?", model.DefaultPassword)) {
		return 0, apperrors.NewCancelled("password update")
	}

	hashed, err := s.hasher.Hash(model.DefaultPassword)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	modified, err := users.UpdateMany(ctx, plain, repository.SetField("password", hashed))
	if err != nil {
		return 0, fmt.Errorf("failed to update passwords: %w", err)
	}
	s.deps.Logger.Info("updated user passwords to hashed values", "modified", modified)

	sample, err := users.Find(ctx, nil)
	if err != nil {
		return modified, fmt.Errorf("failed to list users: %w", err)
	}
	for i, u := range sample {
		if i == sampleLogins {
			break
		}
		s.deps.Logger.Info("login available", "email", u.Email, "role", u.Role, "password", model.DefaultPassword)
	}
	return modified, nil
}
