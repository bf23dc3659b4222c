package usecase

import (
	"log"

	"github.com/myjobsapp/myjobs-api/internal/auth"
	"github.com/myjobsapp/myjobs-api/internal/dto"
	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"github.com/myjobsapp/myjobs-api/internal/service"
	"github.com/myjobsapp/myjobs-api/internal/util"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase struct {
	db       *gorm.DB
	userRepo *repository.UserRepository
	mail     service.MailServiceInterface
}

func NewAuthUsecase(db *gorm.DB, userRepo *repository.UserRepository, mail service.MailServiceInterface) *AuthUsecase {
	return &AuthUsecase{db: db, userRepo: userRepo, mail: mail}
}

// RegisterFaculty creates the user and its profile in one transaction, then
// fires the notification mails in the background. Mail failures never fail the
// registration.
func (uc *AuthUsecase) RegisterFaculty(req dto.FacultyRegistrationRequest, workPreference []string) (*dto.LoginResponse, error) {
	if ferr := util.ValidateStruct(req); ferr != nil {
		return nil, ferr
	}
	if err := uc.checkEmailFree(req.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Email:     req.Email,
		Password:  string(hash),
		IsFaculty: true,
		IsActive:  true,
	}
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&model.FacultyProfile{
			UserID:         user.ID,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			WorkPreference: model.StringList(workPreference),
		}).Error
	})
	if err != nil {
		return nil, err
	}

	uc.notifyRegistration(user.Email, req.FirstName, req.LastName)
	return uc.loginResponse(&user, "Faculty registered successfully")
}

func (uc *AuthUsecase) RegisterRecruiter(req dto.RecruiterRegistrationRequest) (*dto.LoginResponse, error) {
	if ferr := util.ValidateStruct(req); ferr != nil {
		return nil, ferr
	}
	if err := uc.checkEmailFree(req.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Email:       req.Email,
		Password:    string(hash),
		IsRecruiter: true,
		IsActive:    true,
	}
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&model.RecruiterProfile{
			UserID:    user.ID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			College:   req.College,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	uc.notifyRegistration(user.Email, req.FirstName, req.LastName)
	return uc.loginResponse(&user, "Recruiter registered successfully")
}

func (uc *AuthUsecase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	if ferr := util.ValidateStruct(req); ferr != nil {
		return nil, ferr
	}

	user, err := uc.userRepo.FindByEmail(req.Email)
	if err != nil || !user.IsActive {
		return nil, ErrInvalidEmail
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidPassword
	}

	return uc.loginResponse(user, "Login successful")
}

func (uc *AuthUsecase) checkEmailFree(email string) error {
	exists, err := uc.userRepo.EmailExists(email)
	if err != nil {
		return err
	}
	if exists {
		return util.NewFormError("validation failed", map[string]string{
			"email": "A user with this email already exists",
		})
	}
	return nil
}

func (uc *AuthUsecase) loginResponse(user *model.User, message string) (*dto.LoginResponse, error) {
	token, err := auth.IssueTokenPair(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: message,
		User: dto.LoginUser{
			ID:          user.ID,
			Email:       user.Email,
			IsFaculty:   user.IsFaculty,
			IsRecruiter: user.IsRecruiter,
		},
		Token: token,
	}, nil
}

func (uc *AuthUsecase) notifyRegistration(email, firstName, lastName string) {
	go func() {
		if err := uc.mail.SendWelcomeEmail(email, firstName); err != nil {
			log.Printf("welcome mail to %s failed: %v", email, err)
		}
		if err := uc.mail.SendAdminNotification(email, firstName, lastName); err != nil {
			log.Printf("admin notification for %s failed: %v", email, err)
		}
	}()
}
