// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "padron/internal/delivery/context"
	"padron/internal/domain/entity"
	domainerrors "padron/internal/domain/errors"
	"padron/internal/domain/repository"
	"padron/internal/domain/service"
	"padron/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	store  repository.Store[entity.Account]
	hasher service.CredentialHasher
	issuer service.TokenIssuer
	logger *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Store  repository.Store[entity.Account]
	Hasher service.CredentialHasher
	Issuer service.TokenIssuer
	Logger *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		store:  params.Store,
		hasher: params.Hasher,
		issuer: params.Issuer,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the account registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	existing, err := srv.store.GetOneWhere(ctx, repository.NewCriteria().
		Equal(entity.AccountFieldEmail, input.Email))
	if err != nil {
		srv.log(ctx).Error("Failed to check email uniqueness", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}
	if existing != nil {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
	}

	hash, key, err := srv.hasher.CreateHash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrCredentialHashFailed.WrapMessage("failed to hash password")
	}

	account := &entity.Account{
		GivenName:      input.GivenName,
		FamilyName:     input.FamilyName,
		NationalID:     input.NationalID,
		Email:          input.Email,
		CredentialHash: hash,
		CredentialKey:  key,
	}

	if err := srv.store.Add(ctx, account); err != nil {
		// The uniqueness check above races with concurrent registrations;
		// the store's unique email column is the backstop.
		if errors.Is(err, repository.ErrDuplicateKey) {
			srv.log(ctx).Warn("Registration lost duplicate race", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("accountID", account.ID))

	return toAccountOutput(account), nil
}

// Login verifies the submitted credentials and issues a session token.
// A missing account and a wrong password produce the same failure so the
// response does not reveal which emails are registered.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.store.GetOneWhere(ctx, repository.NewCriteria().
		Equal(entity.AccountFieldEmail, input.Email))
	if err != nil {
		srv.log(ctx).Error("Failed to load account for login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if account == nil || !srv.hasher.Verify(input.Password, account.CredentialHash, account.CredentialKey) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	account.LastAccess = time.Now().UTC()
	if err := srv.store.Update(ctx, account.ID, account); err != nil {
		srv.log(ctx).Error("Failed to record last access", slog.Int64("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record last access")
	}

	token, err := srv.issuer.Issue(account.ID, account.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Int64("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{Token: fmt.Sprintf("Bearer %s", token)}, nil
}

// Update overwrites the mutable profile fields of an existing account.
// Credential hash and key are carried over untouched.
func (srv *accountService) Update(ctx context.Context, id int64, input *usecase.UpdateInput) (*usecase.AccountOutput, error) {
	srv.log(ctx).Debug("Updating account", slog.Int64("accountID", id))

	account, err := srv.store.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for update")
	}
	if account == nil {
		return nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found for update")
	}

	account.GivenName = input.GivenName
	account.FamilyName = input.FamilyName
	account.NationalID = input.NationalID
	account.Email = input.Email

	if err := srv.store.Update(ctx, id, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		srv.log(ctx).Error("Failed to update account", slog.Int64("accountID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update account")
	}

	return toAccountOutput(account), nil
}

// Delete removes an existing account.
func (srv *accountService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Debug("Deleting account", slog.Int64("accountID", id))

	account, err := srv.store.GetByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to load account for delete")
	}
	if account == nil {
		return domainerrors.ErrAccountNotFound.WrapMessage("account not found for delete")
	}

	if err := srv.store.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Int64("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

// GetByID returns a single account by its identifier.
func (srv *accountService) GetByID(ctx context.Context, id int64) (*usecase.AccountOutput, error) {
	account, err := srv.store.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}
	if account == nil {
		return nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found")
	}

	return toAccountOutput(account), nil
}

// GetAll returns every registered account. An empty store is reported as
// not found rather than an empty success.
func (srv *accountService) GetAll(ctx context.Context) ([]*usecase.AccountOutput, error) {
	accounts, err := srv.store.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}
	if len(accounts) == 0 {
		return nil, domainerrors.ErrNoAccountsFound.WrapMessage("no accounts registered")
	}

	return toAccountOutputs(accounts), nil
}

// GetByFilter returns the accounts matching the given optional filters.
// An empty result is reported as not found rather than an empty success.
func (srv *accountService) GetByFilter(ctx context.Context, input *usecase.FilterInput) ([]*usecase.AccountOutput, error) {
	criteria := repository.NewCriteria().
		Contains(entity.AccountFieldGivenName, input.Name).
		Contains(entity.AccountFieldFamilyName, input.Surname).
		Equal(entity.AccountFieldNationalID, input.NationalID).
		Contains(entity.AccountFieldEmail, input.Email)

	accounts, err := srv.store.GetWhere(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter accounts")
	}
	if len(accounts) == 0 {
		return nil, domainerrors.ErrNoAccountsFound.WrapMessage("no accounts matched the filter")
	}

	return toAccountOutputs(accounts), nil
}

func toAccountOutput(account *entity.Account) *usecase.AccountOutput {
	output := &usecase.AccountOutput{
		ID:         account.ID,
		GivenName:  account.GivenName,
		FamilyName: account.FamilyName,
		NationalID: account.NationalID,
		Email:      account.Email,
	}
	if !account.LastAccess.IsZero() {
		lastAccess := account.LastAccess
		output.LastAccess = &lastAccess
	}

	return output
}

func toAccountOutputs(accounts []*entity.Account) []*usecase.AccountOutput {
	result := make([]*usecase.AccountOutput, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, toAccountOutput(account))
	}

	return result
}
