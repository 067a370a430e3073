package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	autherrors "go-ems/internal/auth/errors"
	"go-ems/internal/company"
	"go-ems/internal/department"
	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/session"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/audit"
	"go-ems/internal/shared/contextutil"
	"go-ems/internal/shared/database"
	"go-ems/internal/user"
	usererrors "go-ems/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	// Login authenticates and opens a session. currentToken, when set, is
	// the caller's existing session and is destroyed first.
	Login(ctx context.Context, req LoginRequest, currentToken string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
}

// Deps wires the stores the workflows touch. A nil Transactor selects the
// create-then-compensate registration path.
type Deps struct {
	Transactor  database.Transactor
	Users       user.Repository
	Employees   employee.Repository
	Companies   company.Repository
	Departments department.Repository
	Sessions    session.Store
	Audit       audit.Logger
	// Hasher defaults to bcrypt at the default cost.
	Hasher PasswordHasher
}

type service struct {
	Deps
	logger *zap.Logger

	decoyOnce sync.Once
	decoy     []byte
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if deps.Audit == nil {
		deps.Audit = audit.Nop()
	}
	if deps.Hasher == nil {
		deps.Hasher = NewBcryptHasher(bcrypt.DefaultCost)
	}
	return &service{Deps: deps, logger: l}
}

type repos struct {
	users       user.Repository
	employees   employee.Repository
	companies   company.Repository
	departments department.Repository
}

func (s *service) bind(tx *gorm.DB) repos {
	if tx == nil {
		return repos{s.Users, s.Employees, s.Companies, s.Departments}
	}
	return repos{
		users:       s.Users.WithTx(tx),
		employees:   s.Employees.WithTx(tx),
		companies:   s.Companies.WithTx(tx),
		departments: s.Departments.WithTx(tx),
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if err := s.validateCredentials(ctx, req.Credentials); err != nil {
		log.Debug("registration rejected: credentials", zap.String("username", req.Username), zap.Error(err))
		return err
	}

	hash, err := s.Hasher.Hash(req.Password)
	if IsPasswordTooLong(err) {
		return usererrors.ErrPasswordTooLong
	}
	if err != nil {
		return apperror.Wrap(err, usererrors.ErrHashPassword.Code, usererrors.ErrHashPassword.Message, usererrors.ErrHashPassword.HTTPStatus)
	}

	var userID uint
	if s.Transactor != nil {
		err = s.Transactor.Transaction(ctx, func(tx *gorm.DB) error {
			r := s.bind(tx)
			u, err := createUser(ctx, r.users, req.Credentials, hash)
			if err != nil {
				return err
			}
			userID = u.ID
			return createProfile(ctx, r, u.ID, req.Profile)
		})
	} else {
		userID, err = s.registerWithCompensation(ctx, req, hash)
	}
	if err != nil {
		log.Info("registration failed", zap.String("username", req.Username), zap.Error(err))
		return err
	}

	s.Audit.Log(ctx, audit.Entry{
		Action:  audit.ActionRegister,
		Message: "employee registered",
		Meta:    map[string]any{"user_id": userID, "username": req.Username},
	})
	return nil
}

// registerWithCompensation creates the credential, then the profile, and
// deletes the credential again if the profile is rejected.
func (s *service) registerWithCompensation(ctx context.Context, req RegisterRequest, hash []byte) (uint, error) {
	r := s.bind(nil)

	u, err := createUser(ctx, r.users, req.Credentials, hash)
	if err != nil {
		return 0, err
	}

	profileErr := createProfile(ctx, r, u.ID, req.Profile)
	if profileErr == nil {
		return u.ID, nil
	}

	if err := s.compensate(ctx, u); err != nil {
		return 0, apperror.Wrap(
			errors.Join(profileErr, err),
			apperror.CodeInternalError,
			apperror.ErrInternal.Message,
			apperror.ErrInternal.HTTPStatus,
		)
	}
	return 0, profileErr
}

// compensate must finish even if the client has gone away.
func (s *service) compensate(ctx context.Context, u *user.User) error {
	detached := context.WithoutCancel(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	err := s.Users.Delete(detached, u.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("registration compensation failed", zap.Uint("user_id", u.ID), zap.Error(err))
		s.Audit.Log(detached, audit.Entry{
			Action:  audit.ActionCompensationFailed,
			Message: "orphan credential left behind",
			Meta:    map[string]any{"user_id": u.ID, "username": u.Username},
		})
		return fmt.Errorf("delete credential %d: %w", u.ID, err)
	}

	log.Warn("registration compensated", zap.Uint("user_id", u.ID))
	s.Audit.Log(detached, audit.Entry{
		Action:  audit.ActionRegistrationCompensated,
		Message: "credential removed after profile rejection",
		Meta:    map[string]any{"user_id": u.ID, "username": u.Username},
	})
	return nil
}

func (s *service) validateCredentials(ctx context.Context, c Credentials) error {
	fields := apperror.FieldErrors{}

	if err := apperror.Validate(c); err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || len(appErr.Fields) == 0 {
			return err
		}
		fields.Merge(appErr.Fields)
	}

	if !fields.Has("password") && len(c.Password) > MaxPasswordBytes {
		fields.Merge(fieldsOf(usererrors.ErrPasswordTooLong))
	}

	if !fields.Has("password") && !fields.Has("password_confirmation") && c.Password != c.PasswordConfirmation {
		fields.Merge(fieldsOf(usererrors.ErrPasswordMismatch))
	}

	if !fields.Has("username") {
		taken, err := s.Users.ExistsByUsername(ctx, c.Username)
		if err != nil {
			return err
		}
		if taken {
			fields.Merge(fieldsOf(usererrors.ErrUsernameTaken))
		}
	}

	return fields.Err()
}

func createUser(ctx context.Context, users user.Repository, c Credentials, hash []byte) (*user.User, error) {
	u := &user.User{
		Username: c.Username,
		Email:    c.Email,
		Password: string(hash),
		IsActive: true,
	}

	if err := users.Create(ctx, u); err != nil {
		// Lost a race with a concurrent registration of the same name.
		if database.IsUniqueViolation(err, database.ConstraintUsersUsername) {
			return nil, usererrors.ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func createProfile(ctx context.Context, r repos, userID uint, p employee.Profile) error {
	e, fields := p.Build(userID)
	if fields == nil {
		fields = apperror.FieldErrors{}
	}

	if err := checkReferences(ctx, r, p, fields); err != nil {
		return err
	}
	if len(fields) > 0 {
		return apperror.NewValidation(fields)
	}

	return r.employees.Create(ctx, e)
}

// checkReferences resolves company and department and adds a field error
// for each that is missing or inconsistent.
func checkReferences(ctx context.Context, r repos, p employee.Profile, fields apperror.FieldErrors) error {
	companyID, departmentID := uint(p.Company), uint(p.Department)

	companyOK := false
	if companyID != 0 && !fields.Has("company") {
		exists, err := r.companies.Exists(ctx, companyID)
		if err != nil {
			return err
		}
		if !exists {
			fields.Merge(fieldsOf(employeeerrors.ErrUnknownCompany(companyID)))
		}
		companyOK = exists
	}

	if departmentID == 0 || fields.Has("department") {
		return nil
	}

	dept, err := r.departments.FindByID(ctx, departmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fields.Merge(fieldsOf(employeeerrors.ErrUnknownDepartment(departmentID)))
		return nil
	}
	if err != nil {
		return err
	}
	if companyOK && dept.CompanyID != companyID {
		fields.Merge(fieldsOf(employeeerrors.ErrDepartmentOutsideCompany(departmentID, companyID)))
	}
	return nil
}

func (s *service) Login(ctx context.Context, req LoginRequest, currentToken string) (*LoginResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	u, err := s.Users.FindByUsername(ctx, req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Unknown usernames cost the same hashing work as a wrong password.
		_ = s.Hasher.Compare(s.decoyHash(), req.Password)
		return nil, autherrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := s.Hasher.Compare([]byte(u.Password), req.Password); err != nil {
		return nil, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		log.Info("login rejected: inactive user", zap.Uint("user_id", u.ID))
		return nil, autherrors.ErrInvalidCredentials
	}

	if currentToken != "" {
		if err := s.Sessions.Destroy(ctx, currentToken); err != nil {
			log.Warn("previous session not removed", zap.Error(err))
		}
	}

	sess, token, err := s.Sessions.Create(ctx, u.ID, u.Username)
	if err != nil {
		return nil, err
	}
	result := &LoginResult{Token: token, Session: sess}

	s.Audit.Log(ctx, audit.Entry{
		Action:  audit.ActionLogin,
		Message: "user logged in",
		Meta:    map[string]any{"user_id": u.ID, "session_id": sess.ID},
	})

	// The session stays open when the profile is missing.
	e, err := s.Employees.FindByUserID(ctx, u.ID)
	if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
		log.Warn("login without employee profile", zap.Uint("user_id", u.ID))
		return result, autherrors.ErrProfileNotFound
	}
	if err != nil {
		return result, err
	}

	result.Profile = toProfileResponse(u, e)
	return result, nil
}

func (s *service) decoyHash() []byte {
	s.decoyOnce.Do(func() {
		h, err := s.Hasher.Hash("decoy-password-for-unknown-users")
		if err != nil {
			s.logger.Error("decoy hash unavailable", zap.Error(err))
		}
		s.decoy = h
	})
	return s.decoy
}

func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.Sessions.Destroy(ctx, token); err != nil {
		return err
	}

	s.Audit.Log(ctx, audit.Entry{
		Action:  audit.ActionLogout,
		Message: "session destroyed",
	})
	return nil
}

func toProfileResponse(u *user.User, e *employee.Employee) *ProfileResponse {
	resp := &ProfileResponse{
		ID:          e.ID,
		Username:    u.Username,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       u.Email,
		PhoneNumber: e.PhoneNumber,
		Address:     e.Address,
		DateHired:   e.DateHired.Format(employee.DateLayout),
		Salary:      e.Salary.StringFixed(2),
	}
	if e.Company != nil {
		resp.Company = e.Company.Name
	}
	if e.Department != nil {
		resp.Department = e.Department.Name
	}
	return resp
}

func fieldsOf(err error) apperror.FieldErrors {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
