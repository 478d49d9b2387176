package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"padron/internal/domain/entity"
	"padron/internal/domain/repository"
	"padron/internal/domain/service"
	"padron/internal/infra/auth"
	"padron/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAccountStore is an in-memory Store implementation with the same
// absence semantics as the real one: missing records read as (nil, nil)
// and update/delete of a missing id is a no-op.
type fakeAccountStore struct {
	accounts map[int64]*entity.Account
	nextID   int64

	addErr    error
	readErr   error
	updateErr error
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[int64]*entity.Account)}
}

func (s *fakeAccountStore) GetAll(_ context.Context) ([]*entity.Account, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}

	result := make([]*entity.Account, 0, len(s.accounts))
	for id := int64(1); id <= s.nextID; id++ {
		if account, ok := s.accounts[id]; ok {
			copied := *account
			result = append(result, &copied)
		}
	}

	return result, nil
}

func (s *fakeAccountStore) GetByID(_ context.Context, id int64) (*entity.Account, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}

	account, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account

	return &copied, nil
}

func (s *fakeAccountStore) GetWhere(ctx context.Context, criteria *repository.Criteria) ([]*entity.Account, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Account, 0, len(all))
	for _, account := range all {
		if matches(account, criteria) {
			result = append(result, account)
		}
	}

	return result, nil
}

func (s *fakeAccountStore) GetOneWhere(ctx context.Context, criteria *repository.Criteria) (*entity.Account, error) {
	found, err := s.GetWhere(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}

	return found[0], nil
}

func (s *fakeAccountStore) Add(_ context.Context, account *entity.Account) error {
	if s.addErr != nil {
		return s.addErr
	}

	s.nextID++
	account.ID = s.nextID
	copied := *account
	s.accounts[account.ID] = &copied

	return nil
}

func (s *fakeAccountStore) Update(_ context.Context, id int64, account *entity.Account) error {
	if s.updateErr != nil {
		return s.updateErr
	}

	if _, ok := s.accounts[id]; !ok {
		return nil
	}
	copied := *account
	copied.ID = id
	s.accounts[id] = &copied

	return nil
}

func (s *fakeAccountStore) Delete(_ context.Context, id int64) error {
	delete(s.accounts, id)

	return nil
}

func matches(account *entity.Account, criteria *repository.Criteria) bool {
	fields := map[string]string{
		entity.AccountFieldGivenName:  account.GivenName,
		entity.AccountFieldFamilyName: account.FamilyName,
		entity.AccountFieldNationalID: account.NationalID,
		entity.AccountFieldEmail:      account.Email,
	}

	for _, clause := range criteria.Clauses() {
		value := fields[clause.Field]
		switch clause.Op {
		case repository.OpEqual:
			if value != clause.Value {
				return false
			}
		case repository.OpContains:
			if !strings.Contains(value, clause.Value) {
				return false
			}
		}
	}

	return true
}

// stubIssuer returns a fixed token so tests can assert on the output shape.
type stubIssuer struct {
	token string
	err   error
}

func (s *stubIssuer) Issue(int64, string) (string, error) {
	return s.token, s.err
}

func (s *stubIssuer) Validate(string) (*service.Claims, error) {
	return nil, nil
}

type serviceFixture struct {
	store   *fakeAccountStore
	service usecase.AccountUsecase
}

func createTestAccountService() *serviceFixture {
	store := newFakeAccountStore()
	svc := NewAccountService(AccountServiceParams{
		Store:  store,
		Hasher: auth.NewHMACHasher(),
		Issuer: &stubIssuer{token: "stub-token"},
		Logger: newDiscardLogger(),
	})

	return &serviceFixture{store: store, service: svc}
}

func registerTestAccount(fx *serviceFixture, email string) (*usecase.AccountOutput, error) {
	return fx.service.Register(context.Background(), &usecase.RegisterInput{
		GivenName:  "Jane",
		FamilyName: "Doe",
		NationalID: "12345678",
		Email:      email,
		Password:   "s3cret-pass",
	})
}
