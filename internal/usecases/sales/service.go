package sales

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

type SalesService interface {
	Create(ctx context.Context, request *domain.RevenueRequest) (*domain.RevenueRecord, error)
	Update(ctx context.Context, id string, request *domain.RevenueRequest) (*domain.RevenueRecord, error)
	Delete(ctx context.Context, id string) error
}

// SnapshotRefresher agenda uma nova leitura do snapshot após alterações
type SnapshotRefresher interface {
	TriggerManualSync()
}

type Service struct {
	revenueRepository repository.RevenueRepository
	refresher         SnapshotRefresher
	validate          *validator.Validate
}

func NewService(revenueRepository repository.RevenueRepository, refresher SnapshotRefresher) SalesService {
	return &Service{
		revenueRepository: revenueRepository,
		refresher:         refresher,
		validate:          validation.New(),
	}
}

func (s *Service) Create(ctx context.Context, request *domain.RevenueRequest) (*domain.RevenueRecord, error) {
	id := request.ID
	if id == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return nil, NewSalesError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador do registro")
		}
		id = generated
	}

	record, err := s.buildRecord(id, request)
	if err != nil {
		return nil, err
	}

	if err := s.revenueRepository.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewSalesError(ErrSaleAlreadyExists, apiErrors.ErrResourceAlreadyExists, id)
		}

		logrus.WithError(err).WithField("id", id).Error("Erro ao inserir registro de faturamento")
		return nil, NewSalesError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao inserir registro de faturamento")
	}

	s.refresher.TriggerManualSync()

	return &record, nil
}

func (s *Service) Update(ctx context.Context, id string, request *domain.RevenueRequest) (*domain.RevenueRecord, error) {
	if id == "" {
		return nil, NewSalesError(ErrSaleIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	record, err := s.buildRecord(id, request)
	if err != nil {
		return nil, err
	}

	if err := s.revenueRepository.Update(ctx, record); err != nil {
		return nil, s.persistenceError(err, id, "Falha ao atualizar registro de faturamento")
	}

	s.refresher.TriggerManualSync()

	return &record, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewSalesError(ErrSaleIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if err := s.revenueRepository.Delete(ctx, id); err != nil {
		return s.persistenceError(err, id, "Falha ao remover registro de faturamento")
	}

	s.refresher.TriggerManualSync()

	return nil
}

func (s *Service) buildRecord(id string, request *domain.RevenueRequest) (domain.RevenueRecord, error) {
	if err := s.validate.Struct(request); err != nil {
		return domain.RevenueRecord{}, NewValidationError(apiErrors.ErrInvalidFormat, validation.Details(err))
	}

	record, err := domain.NewRevenueRecord(
		id,
		request.Shop,
		request.Date,
		request.Timeslot,
		domain.ToNullDecimal(request.Amount),
		request.TransactionCount,
	)
	if err != nil {
		return domain.RevenueRecord{}, NewSalesError(ErrInvalidSale, apiErrors.ErrInvalidFormat, err.Error())
	}

	return record, nil
}

func (s *Service) persistenceError(err error, id, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewSalesError(ErrSaleNotFound, apiErrors.ErrResourceNotFound, id)
	}

	logrus.WithError(err).WithField("id", id).Error(message)
	return NewSalesError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, message)
}
