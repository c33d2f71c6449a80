package salons

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	salonRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/salon"
	"github.com/m04kA/SMC-SalonBooking/internal/service/salons/models"
)

// Service сервис для работы с расписанием салонов
type Service struct {
	salonRepo SalonRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса салонов
func NewService(salonRepo SalonRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		salonRepo: salonRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetHours возвращает недельное расписание салона
func (s *Service) GetHours(ctx context.Context, salonID int64) (*models.HoursResponse, error) {
	s.logger.Info("GetHours: fetching hours for salon=%d", salonID)

	if _, err := s.getSalon(ctx, "GetHours", salonID); err != nil {
		return nil, err
	}

	hours, err := s.salonRepo.GetHours(ctx, salonID)
	if err != nil {
		s.logger.Error("GetHours: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHours(salonID, hours), nil
}

// UpdateHours заменяет расписание салона целиком
// Доступно только владельцу салона
func (s *Service) UpdateHours(ctx context.Context, salonID int64, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	s.logger.Info("UpdateHours: replacing hours for salon=%d by user=%d", salonID, req.UserID)

	hours, err := req.ToDomainHours()
	if err != nil {
		s.logger.Warn("UpdateHours: validation failed for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		salon, err := s.getSalon(ctx, "UpdateHours", salonID)
		if err != nil {
			return err
		}

		if !salon.IsOwnedBy(req.UserID) {
			s.logger.Warn("UpdateHours: user=%d is not the owner of salon=%d", req.UserID, salonID)
			return ErrAccessDenied
		}

		if err := s.salonRepo.ReplaceHours(ctx, salonID, hours); err != nil {
			s.logger.Error("UpdateHours: repository error for salon=%d: %v", salonID, err)
			return fmt.Errorf("%w: UpdateHours - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateHours: successfully replaced hours for salon=%d", salonID)
	return models.FromDomainHours(salonID, hours), nil
}

func (s *Service) getSalon(ctx context.Context, op string, salonID int64) (*domain.Salon, error) {
	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("%s: salon id=%d not found", op, salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("%s: failed to get salon id=%d: %v", op, salonID, err)
		return nil, fmt.Errorf("%w: %s - failed to get salon: %v", ErrInternal, op, err)
	}
	return salon, nil
}
