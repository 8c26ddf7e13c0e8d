// ABOUTME: Account service for registration, login and the user directory
// ABOUTME: Validates form input before any store call and maps failures to typed errors

package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pocketchat/pocketchat/internal/store"
)

// registrationForm carries the register-screen fields through validation.
type registrationForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,contains=@"`
	Password string `validate:"required,min=6"`
}

// loginForm carries the login-screen fields through validation.
type loginForm struct {
	Email    string `validate:"required,contains=@"`
	Password string `validate:"required,min=6"`
}

// Service exposes account operations over the injected store.
type Service struct {
	store    store.AccountStore
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a new account service.
func New(accounts store.AccountStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:    accounts,
		validate: validator.New(),
		logger:   logger.With("component", "directory"),
	}
}

// Register validates the form and creates a new account, returning its id.
// The display name is trimmed before validation. Returns a
// *store.ValidationError for bad input and store.ErrDuplicateEmail when
// the email is taken.
func (s *Service) Register(ctx context.Context, name, email, password string) (int64, error) {
	form := registrationForm{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: password,
	}
	if err := s.validate.Struct(form); err != nil {
		return 0, asValidationError(err)
	}

	id, err := s.store.CreateAccount(ctx, form.Name, form.Email, form.Password)
	if err != nil {
		return 0, err
	}

	s.logger.Info("account registered", "id", id, "email", form.Email)
	return id, nil
}

// Authenticate checks the login form shape, then matches email and
// password exactly against a stored account. Passwords are compared as
// plaintext by contract. Returns store.ErrNotFound on mismatch.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*store.Account, error) {
	form := loginForm{Email: email, Password: password}
	if err := s.validate.Struct(form); err != nil {
		return nil, asValidationError(err)
	}

	account, err := s.store.GetAccountByCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("account authenticated", "id", account.ID)
	return account, nil
}

// ListOthers returns every account except the given one.
func (s *Service) ListOthers(ctx context.Context, excludeID int64) ([]*store.Account, error) {
	return s.store.ListOtherAccounts(ctx, excludeID)
}

// ListAll returns every registered account.
func (s *Service) ListAll(ctx context.Context) ([]*store.Account, error) {
	return s.store.ListAccounts(ctx)
}

// SetImageReference stores a picked image reference for an account. The
// reference is an opaque local file path; the service never reads the
// file bytes.
func (s *Service) SetImageReference(ctx context.Context, accountID int64, ref string) error {
	return s.store.SetAccountImage(ctx, accountID, ref)
}

// asValidationError converts the first validator failure into the
// shared *store.ValidationError shape.
func asValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())

	var reason string
	switch fe.Tag() {
	case "required":
		reason = "must not be empty"
	case "contains":
		reason = fmt.Sprintf("must contain %q", fe.Param())
	case "min":
		reason = fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		reason = fmt.Sprintf("failed %s check", fe.Tag())
	}

	return &store.ValidationError{Field: field, Reason: reason}
}
