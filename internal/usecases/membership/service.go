package membership

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-revenue-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
	"github.com/vfg2006/restaurant-revenue-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-revenue-api/pkg/utils"
	"github.com/vfg2006/restaurant-revenue-api/pkg/validation"
)

type MembershipService interface {
	List(ctx context.Context, filters domain.MembershipFilters) ([]domain.MembershipRecharge, error)
	Create(ctx context.Context, request *domain.MembershipRequest) (*domain.MembershipRecharge, error)
	Update(ctx context.Context, id string, request *domain.MembershipRequest) (*domain.MembershipRecharge, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	membershipRepository repository.MembershipRepository
	validate             *validator.Validate
}

func NewService(membershipRepository repository.MembershipRepository) MembershipService {
	return &Service{
		membershipRepository: membershipRepository,
		validate:             validation.New(),
	}
}

func (s *Service) List(ctx context.Context, filters domain.MembershipFilters) ([]domain.MembershipRecharge, error) {
	recharges, err := s.membershipRepository.List(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar recargas")
		return nil, NewMembershipError(ErrFetchRecharges, apiErrors.ErrDatabaseOperation, "Falha ao listar recargas no banco de dados")
	}

	if recharges == nil {
		recharges = []domain.MembershipRecharge{}
	}

	return recharges, nil
}

func (s *Service) Create(ctx context.Context, request *domain.MembershipRequest) (*domain.MembershipRecharge, error) {
	id := request.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return nil, NewMembershipError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da recarga")
		}
		id = generated
	}

	recharge, err := s.buildRecharge(id, request)
	if err != nil {
		return nil, err
	}

	if err := s.membershipRepository.Create(ctx, recharge); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewMembershipError(ErrRechargeAlreadyExists, apiErrors.ErrResourceAlreadyExists, id)
		}

		logrus.WithError(err).WithField("id", id).Error("Erro ao inserir recarga")
		return nil, NewMembershipError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao inserir recarga")
	}

	return &recharge, nil
}

func (s *Service) Update(ctx context.Context, id string, request *domain.MembershipRequest) (*domain.MembershipRecharge, error) {
	if id == "" {
		return nil, NewMembershipError(ErrRechargeIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	recharge, err := s.buildRecharge(id, request)
	if err != nil {
		return nil, err
	}

	if err := s.membershipRepository.Update(ctx, recharge); err != nil {
		return nil, s.persistenceError(err, id, "Falha ao atualizar recarga")
	}

	return &recharge, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewMembershipError(ErrRechargeIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if err := s.membershipRepository.Delete(ctx, id); err != nil {
		return s.persistenceError(err, id, "Falha ao remover recarga")
	}

	return nil
}

func (s *Service) buildRecharge(id string, request *domain.MembershipRequest) (domain.MembershipRecharge, error) {
	if err := s.validate.Struct(request); err != nil {
		return domain.MembershipRecharge{}, &MembershipError{
			Err:    ErrInvalidRecharge,
			Code:   apiErrors.ErrInvalidFormat,
			Fields: validation.Details(err),
		}
	}

	date, err := domain.NormalizeDate(request.Date)
	if err != nil {
		return domain.MembershipRecharge{}, NewMembershipError(ErrInvalidRecharge, apiErrors.ErrInvalidFormat, err.Error())
	}

	return domain.MembershipRecharge{
		ID:                  id,
		Shop:                request.Shop,
		Date:                date,
		RechargeAmount:      domain.ToNullDecimal(request.RechargeAmount),
		RechargeConsumption: domain.ToNullDecimal(request.RechargeConsumption),
	}, nil
}

func (s *Service) persistenceError(err error, id, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewMembershipError(ErrRechargeNotFound, apiErrors.ErrResourceNotFound, id)
	}

	logrus.WithError(err).WithField("id", id).Error(message)
	return NewMembershipError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, message)
}
