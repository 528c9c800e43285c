package bootstrap

import (
	"photo-portfolio-be/internal/config"
	"photo-portfolio-be/internal/controller"
	"photo-portfolio-be/internal/pkg/logger"
	"photo-portfolio-be/internal/pkg/mailer"
	"photo-portfolio-be/internal/repository/implementation"
	"photo-portfolio-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	PortfolioController controller.IPortfolioController
	InquiryController   controller.IInquiryController
	PagesController     controller.IPagesController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	notifier := mailer.NewEmailNotifier(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.OperatorEmail,
	)

	photographerRepo := implementation.NewPhotographerRepository(db)
	shotRepo := implementation.NewShotRepository(db)
	contactRepo := implementation.NewContactMessageRepository(db)
	scheduleRepo := implementation.NewScheduleRequestRepository(db)

	portfolioService := service.NewPortfolioService(photographerRepo, shotRepo)
	inquiryService := service.NewInquiryService(contactRepo, scheduleRepo, notifier, sysLogger)

	return &Container{
		PortfolioController: controller.NewPortfolioController(portfolioService),
		InquiryController:   controller.NewInquiryController(inquiryService),
		PagesController:     controller.NewPagesController(),
		Logger:              sysLogger,
	}
}
