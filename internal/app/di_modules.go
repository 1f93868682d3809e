package app

import (
	"fmt"
	"sync"

	announcementHTTP "github.com/allisson/campus/internal/announcement/http"
	announcementRepository "github.com/allisson/campus/internal/announcement/repository"
	announcementUseCase "github.com/allisson/campus/internal/announcement/usecase"
	clubHTTP "github.com/allisson/campus/internal/club/http"
	clubRepository "github.com/allisson/campus/internal/club/repository"
	clubUseCase "github.com/allisson/campus/internal/club/usecase"
	commentHTTP "github.com/allisson/campus/internal/comment/http"
	commentRepository "github.com/allisson/campus/internal/comment/repository"
	commentUseCase "github.com/allisson/campus/internal/comment/usecase"
	eventHTTP "github.com/allisson/campus/internal/event/http"
	eventRepository "github.com/allisson/campus/internal/event/repository"
	eventUseCase "github.com/allisson/campus/internal/event/usecase"
	feedbackHTTP "github.com/allisson/campus/internal/feedback/http"
	feedbackRepository "github.com/allisson/campus/internal/feedback/repository"
	feedbackUseCase "github.com/allisson/campus/internal/feedback/usecase"
	lostfoundHTTP "github.com/allisson/campus/internal/lostfound/http"
	lostfoundRepository "github.com/allisson/campus/internal/lostfound/repository"
	lostfoundUseCase "github.com/allisson/campus/internal/lostfound/usecase"
	resourceHTTP "github.com/allisson/campus/internal/resource/http"
	resourceRepository "github.com/allisson/campus/internal/resource/repository"
	resourceUseCase "github.com/allisson/campus/internal/resource/usecase"
)

// modules holds the lazily built use cases and handlers of the campus resource modules.
type modules struct {
	eventUseCase        eventUseCase.UseCase
	eventHandler        *eventHTTP.EventHandler
	clubUseCase         clubUseCase.UseCase
	clubHandler         *clubHTTP.ClubHandler
	announcementUseCase announcementUseCase.UseCase
	announcementHandler *announcementHTTP.AnnouncementHandler
	resourceUseCase     resourceUseCase.UseCase
	resourceHandler     *resourceHTTP.ResourceHandler
	lostItemUseCase     lostfoundUseCase.UseCase
	lostItemHandler     *lostfoundHTTP.LostItemHandler
	feedbackUseCase     feedbackUseCase.UseCase
	feedbackHandler     *feedbackHTTP.FeedbackHandler
	commentUseCase      commentUseCase.UseCase
	commentHandler      *commentHTTP.CommentHandler

	eventUseCaseInit        sync.Once
	eventHandlerInit        sync.Once
	clubUseCaseInit         sync.Once
	clubHandlerInit         sync.Once
	announcementUseCaseInit sync.Once
	announcementHandlerInit sync.Once
	resourceUseCaseInit     sync.Once
	resourceHandlerInit     sync.Once
	lostItemUseCaseInit     sync.Once
	lostItemHandlerInit     sync.Once
	feedbackUseCaseInit     sync.Once
	feedbackHandlerInit     sync.Once
	commentUseCaseInit      sync.Once
	commentHandlerInit      sync.Once
}

// EventUseCase returns the event use case.
func (c *Container) EventUseCase() (eventUseCase.UseCase, error) {
	var err error
	c.modules.eventUseCaseInit.Do(func() {
		c.modules.eventUseCase, err = c.initEventUseCase()
		if err != nil {
			c.initErrors["eventUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventUseCase"]; exists {
		return nil, storedErr
	}
	return c.modules.eventUseCase, nil
}

// EventHandler returns the event HTTP handler.
func (c *Container) EventHandler() (*eventHTTP.EventHandler, error) {
	var err error
	c.modules.eventHandlerInit.Do(func() {
		c.modules.eventHandler, err = c.initEventHandler()
		if err != nil {
			c.initErrors["eventHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventHandler"]; exists {
		return nil, storedErr
	}
	return c.modules.eventHandler, nil
}

// initEventUseCase creates the event use case on the dialect's repository.
func (c *Container) initEventUseCase() (eventUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for event use case: %w", err)
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for event use case: %w", err)
	}

	var repo eventUseCase.EventRepository
	switch c.config.DBDriver {
	case driverPostgres:
		repo = eventRepository.NewPostgreSQLEventRepository(db)
	case driverMySQL:
		repo = eventRepository.NewMySQLEventRepository(db)
	default:
		return nil, c.unsupportedDriver()
	}

	baseUseCase := eventUseCase.NewEventUseCase(txManager, repo)
	return c.withMetricsEvent(baseUseCase)
}

// withMetricsEvent wraps useCase with business metrics when enabled.
func (c *Container) withMetricsEvent(useCase eventUseCase.UseCase) (eventUseCase.UseCase, error) {
	if !c.config.MetricsEnabled {
		return useCase, nil
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for event use case: %w", err)
	}
	return eventUseCase.NewEventUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initEventHandler creates the event HTTP handler.
func (c *Container) initEventHandler() (*eventHTTP.EventHandler, error) {
	useCase, err := c.EventUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get event use case for event handler: %w", err)
	}

	return eventHTTP.NewEventHandler(useCase, c.Logger()), nil
}

// ClubUseCase returns the club use case.
func (c *Container) ClubUseCase() (clubUseCase.UseCase, error) {
	var err error
	c.modules.clubUseCaseInit.Do(func() {
		c.modules.clubUseCase, err = c.initClubUseCase()
		if err != nil {
			c.initErrors["clubUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["clubUseCase"]; exists {
		return nil, storedErr
	}
	return c.modules.clubUseCase, nil
}

// ClubHandler returns the club HTTP handler.
func (c *Container) ClubHandler() (*clubHTTP.ClubHandler, error) {
	var err error
	c.modules.clubHandlerInit.Do(func() {
		c.modules.clubHandler, err = c.initClubHandler()
		if err != nil {
			c.initErrors["clubHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["clubHandler"]; exists {
		return nil, storedErr
	}
	return c.modules.clubHandler, nil
}

// initClubUseCase creates the club use case on the dialect's repository.
func (c *Container) initClubUseCase() (clubUseCase.UseCase, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for club use case: %w", err)
	}

	var repo clubUseCase.ClubRepository
	switch c.config.DBDriver {
	case driverPostgres:
		repo = clubRepository.NewPostgreSQLClubRepository(db)
	case driverMySQL:
		repo = clubRepository.NewMySQLClubRepository(db)
	default:
		return nil, c.unsupportedDriver()
	}

	baseUseCase := clubUseCase.NewClubUseCase(repo)
	return c.withMetricsClub(baseUseCase)
}

// withMetricsClub wraps useCase with business metrics when enabled.
func (c *Container) withMetricsClub(useCase clubUseCase.UseCase) (clubUseCase.UseCase, error) {
	if !c.config.MetricsEnabled {
		return useCase, nil
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for club use case: %w", err)
	}
	return clubUseCase.NewClubUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initClubHandler creates the club HTTP handler.
func (c *Container) initClubHandler() (*clubHTTP.ClubHandler, error) {
	useCase, err := c.ClubUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get club use case for club handler: %w", err)
	}

	guard, err := c.Guard()
	if err != nil {
		return nil, fmt.Errorf("failed to get guard for club handler: %w", err)
	}

	return clubHTTP.NewClubHandler(useCase, guard, c.Logger()), nil
}

// AnnouncementUseCase returns the announcement use case.
func (c *Container) AnnouncementUseCase() (announcementUseCase.UseCase, error) {
	var err error
	c.modules.announcementUseCaseInit.Do(func() {
		c.modules.announcementUseCase, err = c.initAnnouncementUseCase()
		if err != nil {
			c.initErrors["announcementUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["announcementUseCase"]; exists {
		return nil, storedErr
	}
	return c.modules.announcementUseCase, nil
}

// AnnouncementHandler returns the announcement HTTP handler.
func (c *Container) AnnouncementHandler() (*announcementHTTP.AnnouncementHandler, error) {
	var err error
	c.modules.announcementHandlerInit.Do(func() {
		c.modules.announcementHandler, err = c.initAnnouncementHandler()
		if err != nil {
			c.initErrors["announcementHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["announcementHandler"]; exists {
		return nil, storedErr
	}
	return c.modules.announcementHandler, nil
}

// initAnnouncementUseCase creates the announcement use case on the dialect's repository.
func (c *Container) initAnnouncementUseCase() (announcementUseCase.UseCase, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for announcement use case: %w", err)
	}

	var repo announcementUseCase.AnnouncementRepository
	switch c.config.DBDriver {
	case driverPostgres:
		repo = announcementRepository.NewPostgreSQLAnnouncementRepository(db)
	case driverMySQL:
		repo = announcementRepository.NewMySQLAnnouncementRepository(db)
	default:
		return nil, c.unsupportedDriver()
	}

	baseUseCase := announcementUseCase.NewAnnouncementUseCase(repo)
	return c.withMetricsAnnouncement(baseUseCase)
}

// withMetricsAnnouncement wraps useCase with business metrics when enabled.
func (c *Container) withMetricsAnnouncement(useCase announcementUseCase.UseCase) (announcementUseCase.UseCase, error) {
	if !c.config.MetricsEnabled {
		return useCase, nil
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for announcement use case: %w", err)
	}
	return announcementUseCase.NewAnnouncementUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initAnnouncementHandler creates the announcement HTTP handler.
func (c *Container) initAnnouncementHandler() (*announcementHTTP.AnnouncementHandler, error) {
	useCase, err := c.AnnouncementUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get announcement use case for announcement handler: %w", err)
	}

	return announcementHTTP.NewAnnouncementHandler(useCase, c.Logger()), nil
}

// ResourceUseCase returns the resource use case.
func (c *Container) ResourceUseCase() (resourceUseCase.UseCase, error) {
	var err error
	c.modules.resourceUseCaseInit.Do(func() {
		c.modules.resourceUseCase, err = c.initResourceUseCase()
		if err != nil {
			c.initErrors["resourceUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["resourceUseCase"]; exists {
		return nil, storedErr
	}
	return c.modules.resourceUseCase, nil
}

// ResourceHandler returns the resource HTTP handler.
func (c *Container) ResourceHandler() (*resourceHTTP.ResourceHandler, error) {
	var err error
	c.modules.resourceHandlerInit.Do(func() {
		c.modules.resourceHandler, err = c.initResourceHandler()
		if err != nil {
			c.initErrors["resourceHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["resourceHandler"]; exists {
		return nil, storedErr
	}
	return c.modules.resourceHandler, nil
}

// initResourceUseCase creates the resource use case on the dialect's repository.
func (c *Container) initResourceUseCase() (resourceUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for resource use case: %w", err)
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for resource use case: %w", err)
	}

	var repo resourceUseCase.ResourceRepository
	switch c.config.DBDriver {
	case driverPostgres:
		repo = resourceRepository.NewPostgreSQLResourceRepository(db)
	case driverMySQL:
		repo = resourceRepository.NewMySQLResourceRepository(db)
	default:
		return nil, c.unsupportedDriver()
	}

	baseUseCase := resourceUseCase.NewResourceUseCase(txManager, repo)
	return c.withMetricsResource(baseUseCase)
}

// withMetricsResource wraps useCase with business metrics when enabled.
func (c *Container) withMetricsResource(useCase resourceUseCase.UseCase) (resourceUseCase.UseCase, error) {
	if !c.config.MetricsEnabled {
		return useCase, nil
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for resource use case: %w", err)
	}
	return resourceUseCase.NewResourceUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initResourceHandler creates the resource HTTP handler.
func (c *Container) initResourceHandler() (*resourceHTTP.ResourceHandler, error) {
	useCase, err := c.ResourceUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get resource use case for resource handler: %w", err)
	}

	return resourceHTTP.NewResourceHandler(useCase, c.Logger()), nil
}

// LostItemUseCase returns the lost item use case.
func (c *Container) LostItemUseCase() (lostfoundUseCase.UseCase, error) {
	var err error
	c.modules.lostItemUseCaseInit.Do(func() {
		c.modules.lostItemUseCase, err = c.initLostItemUseCase()
		if err != nil {
			c.initErrors["lostItemUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["lostItemUseCase"]; exists {
		return nil, storedErr
	}
	return c.modules.lostItemUseCase, nil
}

// LostItemHandler returns the lost item HTTP handler.
func (c *Container) LostItemHandler() (*lostfoundHTTP.LostItemHandler, error) {
	var err error
	c.modules.lostItemHandlerInit.Do(func() {
		c.modules.lostItemHandler, err = c.initLostItemHandler()
		if err != nil {
			c.initErrors["lostItemHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["lostItemHandler"]; exists {
		return nil, storedErr
	}
	return c.modules.lostItemHandler, nil
}

// initLostItemUseCase creates the lost item use case on the dialect's repository.
func (c *Container) initLostItemUseCase() (lostfoundUseCase.UseCase, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for lost item use case: %w", err)
	}

	var repo lostfoundUseCase.LostItemRepository
	switch c.config.DBDriver {
	case driverPostgres:
		repo = lostfoundRepository.NewPostgreSQLLostItemRepository(db)
	case driverMySQL:
		repo = lostfoundRepository.NewMySQLLostItemRepository(db)
	default:
		return nil, c.unsupportedDriver()
	}

	baseUseCase := lostfoundUseCase.NewLostItemUseCase(repo)
	return c.withMetricsLostItem(baseUseCase)
}

// withMetricsLostItem wraps useCase with business metrics when enabled.
func (c *Container) withMetricsLostItem(useCase lostfoundUseCase.UseCase) (lostfoundUseCase.UseCase, error) {
	if !c.config.MetricsEnabled {
		return useCase, nil
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for lost item use case: %w", err)
	}
	return lostfoundUseCase.NewLostItemUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initLostItemHandler creates the lost item HTTP handler.
func (c *Container) initLostItemHandler() (*lostfoundHTTP.LostItemHandler, error) {
	useCase, err := c.LostItemUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get lost item use case for lost item handler: %w", err)
	}

	return lostfoundHTTP.NewLostItemHandler(useCase, c.Logger()), nil
}

// FeedbackUseCase returns the feedback use case.
func (c *Container) FeedbackUseCase() (feedbackUseCase.UseCase, error) {
	var err error
	c.modules.feedbackUseCaseInit.Do(func() {
		c.modules.feedbackUseCase, err = c.initFeedbackUseCase()
		if err != nil {
			c.initErrors["feedbackUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["feedbackUseCase"]; exists {
		return nil, storedErr
	}
	return c.modules.feedbackUseCase, nil
}

// FeedbackHandler returns the feedback HTTP handler.
func (c *Container) FeedbackHandler() (*feedbackHTTP.FeedbackHandler, error) {
	var err error
	c.modules.feedbackHandlerInit.Do(func() {
		c.modules.feedbackHandler, err = c.initFeedbackHandler()
		if err != nil {
			c.initErrors["feedbackHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["feedbackHandler"]; exists {
		return nil, storedErr
	}
	return c.modules.feedbackHandler, nil
}

// initFeedbackUseCase creates the feedback use case on the dialect's repository.
func (c *Container) initFeedbackUseCase() (feedbackUseCase.UseCase, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for feedback use case: %w", err)
	}

	var repo feedbackUseCase.FeedbackRepository
	switch c.config.DBDriver {
	case driverPostgres:
		repo = feedbackRepository.NewPostgreSQLFeedbackRepository(db)
	case driverMySQL:
		repo = feedbackRepository.NewMySQLFeedbackRepository(db)
	default:
		return nil, c.unsupportedDriver()
	}

	baseUseCase := feedbackUseCase.NewFeedbackUseCase(repo)
	return c.withMetricsFeedback(baseUseCase)
}

// withMetricsFeedback wraps useCase with business metrics when enabled.
func (c *Container) withMetricsFeedback(useCase feedbackUseCase.UseCase) (feedbackUseCase.UseCase, error) {
	if !c.config.MetricsEnabled {
		return useCase, nil
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for feedback use case: %w", err)
	}
	return feedbackUseCase.NewFeedbackUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initFeedbackHandler creates the feedback HTTP handler.
func (c *Container) initFeedbackHandler() (*feedbackHTTP.FeedbackHandler, error) {
	useCase, err := c.FeedbackUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback use case for feedback handler: %w", err)
	}

	return feedbackHTTP.NewFeedbackHandler(useCase, c.Logger()), nil
}

// CommentUseCase returns the comment use case.
func (c *Container) CommentUseCase() (commentUseCase.UseCase, error) {
	var err error
	c.modules.commentUseCaseInit.Do(func() {
		c.modules.commentUseCase, err = c.initCommentUseCase()
		if err != nil {
			c.initErrors["commentUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["commentUseCase"]; exists {
		return nil, storedErr
	}
	return c.modules.commentUseCase, nil
}

// CommentHandler returns the comment HTTP handler.
func (c *Container) CommentHandler() (*commentHTTP.CommentHandler, error) {
	var err error
	c.modules.commentHandlerInit.Do(func() {
		c.modules.commentHandler, err = c.initCommentHandler()
		if err != nil {
			c.initErrors["commentHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["commentHandler"]; exists {
		return nil, storedErr
	}
	return c.modules.commentHandler, nil
}

// initCommentUseCase creates the comment use case on the dialect's repository.
func (c *Container) initCommentUseCase() (commentUseCase.UseCase, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for comment use case: %w", err)
	}

	var repo commentUseCase.CommentRepository
	switch c.config.DBDriver {
	case driverPostgres:
		repo = commentRepository.NewPostgreSQLCommentRepository(db)
	case driverMySQL:
		repo = commentRepository.NewMySQLCommentRepository(db)
	default:
		return nil, c.unsupportedDriver()
	}

	baseUseCase := commentUseCase.NewCommentUseCase(repo)
	return c.withMetricsComment(baseUseCase)
}

// withMetricsComment wraps useCase with business metrics when enabled.
func (c *Container) withMetricsComment(useCase commentUseCase.UseCase) (commentUseCase.UseCase, error) {
	if !c.config.MetricsEnabled {
		return useCase, nil
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for comment use case: %w", err)
	}
	return commentUseCase.NewCommentUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initCommentHandler creates the comment HTTP handler.
func (c *Container) initCommentHandler() (*commentHTTP.CommentHandler, error) {
	useCase, err := c.CommentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get comment use case for comment handler: %w", err)
	}

	return commentHTTP.NewCommentHandler(useCase, c.Logger()), nil
}
