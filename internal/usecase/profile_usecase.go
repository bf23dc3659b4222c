package usecase

import (
	"errors"

	"github.com/myjobsapp/myjobs-api/internal/dto"
	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"gorm.io/gorm"
)

type ProfileUsecase struct {
	userRepo    *repository.UserRepository
	profileRepo *repository.ProfileRepository
}

func NewProfileUsecase(userRepo *repository.UserRepository, profileRepo *repository.ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo, profileRepo: profileRepo}
}

func (uc *ProfileUsecase) GetFacultyProfile(userID uint) (*dto.FacultyProfileResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewFacultyProfileResponse(p, user)
	return &resp, nil
}

// UpdateFacultyProfile applies the provided fields only; absent keys leave the
// stored value alone. workPreference replaces the list when the key was
// present in the request body.
func (uc *ProfileUsecase) UpdateFacultyProfile(userID uint, req dto.FacultyProfileUpdateRequest, workPreference []string, workPreferenceSet bool) (*dto.FacultyProfileResponse, error) {
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.DOB != nil {
		p.DOB = req.DOB.Ptr()
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.State != nil {
		p.State = *req.State
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.Linkedin != nil {
		p.Linkedin = *req.Linkedin
	}
	if workPreferenceSet {
		p.WorkPreference = model.StringList(workPreference)
	}

	if err := uc.profileRepo.SaveFaculty(p); err != nil {
		return nil, err
	}
	return uc.GetFacultyProfile(userID)
}

// SetFacultyUpload records a stored file path on the profile. kind is one of
// profile_photo, resume, transcripts.
func (uc *ProfileUsecase) SetFacultyUpload(userID uint, kind, path string) (*dto.FacultyProfileResponse, error) {
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "profile_photo":
		p.ProfilePhoto = path
	case "resume":
		p.Resume = path
	case "transcripts":
		p.Transcripts = path
	default:
		return nil, errors.New("unknown upload kind: " + kind)
	}
	if err := uc.profileRepo.SaveFaculty(p); err != nil {
		return nil, err
	}
	return uc.GetFacultyProfile(userID)
}

func (uc *ProfileUsecase) GetRecruiterProfile(userID uint) (*dto.RecruiterProfileResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	p, err := uc.profileRepo.GetOrCreateRecruiter(userID)
	if err != nil {
		return nil, err
	}
	return &dto.RecruiterProfileResponse{
		ID:        p.ID,
		User:      dto.NewUserBasic(user),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		College:   p.College,
	}, nil
}

func (uc *ProfileUsecase) UpdateRecruiterProfile(userID uint, req dto.RecruiterProfileUpdateRequest) (*dto.RecruiterProfileResponse, error) {
	p, err := uc.profileRepo.GetOrCreateRecruiter(userID)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.College != nil {
		p.College = *req.College
	}
	if err := uc.profileRepo.SaveRecruiter(p); err != nil {
		return nil, err
	}
	return uc.GetRecruiterProfile(userID)
}

// Section operations back the repeatable CV entities. The handler supplies
// concrete model values; ownership always resolves through the caller's
// profile, so a foreign record ID comes back as ErrNotFound.

func (uc *ProfileUsecase) ListSection(userID uint, dest any, order string) error {
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return err
	}
	return uc.profileRepo.ListChildren(dest, p.ID, order)
}

func (uc *ProfileUsecase) FindSection(userID uint, dest any, id uint) error {
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return err
	}
	err = uc.profileRepo.FindChild(dest, id, p.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (uc *ProfileUsecase) CreateSection(userID uint, rec any, assignOwner func(profileID uint)) error {
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return err
	}
	assignOwner(p.ID)
	return uc.profileRepo.CreateChild(rec)
}

func (uc *ProfileUsecase) SaveSection(rec any) error {
	return uc.profileRepo.SaveChild(rec)
}

func (uc *ProfileUsecase) DeleteSection(userID uint, mdl any, id uint) error {
	p, err := uc.profileRepo.GetOrCreateFaculty(userID)
	if err != nil {
		return err
	}
	err = uc.profileRepo.DeleteChild(mdl, id, p.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
