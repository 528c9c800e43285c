package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"photo-portfolio-be/internal/dto"
	"photo-portfolio-be/internal/entity"
	"photo-portfolio-be/internal/pkg/logger"
	"photo-portfolio-be/internal/pkg/mailer"
	"photo-portfolio-be/internal/pkg/serverutils"
	"photo-portfolio-be/internal/repository/contract"
)

// ErrValidation marks a submission with missing required fields. Nothing is
// persisted when it is returned.
var ErrValidation = errors.New("validation failed")

type IInquiryService interface {
	SubmitContact(ctx context.Context, req *dto.SubmitContactRequest) (*dto.SubmitContactResponse, error)
	SubmitSchedule(ctx context.Context, req *dto.SubmitScheduleRequest, notify bool) (*dto.SubmitScheduleResponse, error)
}

type inquiryService struct {
	contacts  contract.ContactMessageRepository
	schedules contract.ScheduleRequestRepository
	notifier  mailer.IScheduleNotifier
	log       logger.ILogger
}

func NewInquiryService(
	contacts contract.ContactMessageRepository,
	schedules contract.ScheduleRequestRepository,
	notifier mailer.IScheduleNotifier,
	log logger.ILogger,
) IInquiryService {
	return &inquiryService{
		contacts:  contacts,
		schedules: schedules,
		notifier:  notifier,
		log:       log,
	}
}

func (s *inquiryService) SubmitContact(ctx context.Context, req *dto.SubmitContactRequest) (*dto.SubmitContactResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	message := entity.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.contacts.Create(ctx, &message); err != nil {
		return nil, err
	}

	return &dto.SubmitContactResponse{Id: message.Id}, nil
}

func (s *inquiryService) SubmitSchedule(ctx context.Context, req *dto.SubmitScheduleRequest, notify bool) (*dto.SubmitScheduleResponse, error) {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.Email = strings.TrimSpace(req.Email)
	req.PreferredDate = strings.TrimSpace(req.PreferredDate)
	req.Notes = strings.TrimSpace(req.Notes)

	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	request := entity.ScheduleRequest{
		ClientName:    req.ClientName,
		Email:         req.Email,
		PreferredDate: req.PreferredDate,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	// Single atomic insert. The notifier runs after the commit and outside
	// any transaction: an email-transport error must not roll this back.
	if err := s.schedules.Create(ctx, &request); err != nil {
		return nil, err
	}

	res := &dto.SubmitScheduleResponse{Id: request.Id}

	if notify {
		if err := s.notifier.SendScheduleRequest(req.ClientName, req.Email, req.PreferredDate, req.Notes); err != nil {
			s.log.Warn("inquiry", "schedule notification failed", map[string]interface{}{
				"schedule_request_id": request.Id,
				"error":               err.Error(),
			})
		} else {
			res.Notified = true
		}
	}

	return res, nil
}
