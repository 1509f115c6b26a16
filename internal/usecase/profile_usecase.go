package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidProfileInput = errors.New("invalid profile input")

// IProfileUseCase creates and reads profiles. The role (client/contractor) is
// fixed at creation; balances start at zero or at the provided opening value.

type IProfileUseCase interface {
	Create(ctx context.Context, firstName, lastName, profession string, profileType entities.ProfileType, openingBalance float64) (entities.Profile, error)
	GetByID(ctx context.Context, id string) (entities.Profile, error)
}

type ProfileUseCase struct {
	profileRepo interfaces.IProfileRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(profileRepo interfaces.IProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

func (u *ProfileUseCase) Create(ctx context.Context, firstName, lastName, profession string, profileType entities.ProfileType, openingBalance float64) (entities.Profile, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	profession = strings.TrimSpace(profession)
	if firstName == "" || lastName == "" || profession == "" {
		return entities.Profile{}, ErrInvalidProfileInput
	}
	if profileType != entities.ProfileTypeClient && profileType != entities.ProfileTypeContractor {
		return entities.Profile{}, ErrInvalidProfileInput
	}
	if openingBalance < 0 {
		return entities.Profile{}, ErrInvalidProfileInput
	}

	p := entities.Profile{
		ID:         uuid.NewString(),
		FirstName:  firstName,
		LastName:   lastName,
		Profession: profession,
		Balance:    entities.CentsFromFloat(openingBalance),
		Type:       profileType,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := u.profileRepo.Create(ctx, p)
	if err != nil {
		log.Printf("[profile][usecase] create failed type=%s err=%v", profileType, err)
		return entities.Profile{}, err
	}
	log.Printf("[profile][usecase] create success profile_id=%s type=%s", created.ID, profileType)
	return created, nil
}

func (u *ProfileUseCase) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Profile{}, ErrInvalidProfileInput
	}

	p, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.ID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return p, nil
}
