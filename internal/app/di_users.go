package app

import (
	"fmt"
	"sync"

	notificationHTTP "github.com/allisson/campus/internal/notification/http"
	notificationRepository "github.com/allisson/campus/internal/notification/repository"
	notificationUseCase "github.com/allisson/campus/internal/notification/usecase"
	requestHTTP "github.com/allisson/campus/internal/request/http"
	requestRepository "github.com/allisson/campus/internal/request/repository"
	requestUseCase "github.com/allisson/campus/internal/request/usecase"
	userHTTP "github.com/allisson/campus/internal/user/http"
	userRepository "github.com/allisson/campus/internal/user/repository"
	userUseCase "github.com/allisson/campus/internal/user/usecase"
)

// people holds the modules built on the shared user and notification repositories.
type people struct {
	userUseCase         userUseCase.UseCase
	userHandler         *userHTTP.UserHandler
	notificationUseCase notificationUseCase.UseCase
	notificationHandler *notificationHTTP.NotificationHandler
	requestUseCase      requestUseCase.UseCase
	requestHandler      *requestHTTP.RequestHandler

	userUseCaseInit         sync.Once
	userHandlerInit         sync.Once
	notificationUseCaseInit sync.Once
	notificationHandlerInit sync.Once
	requestUseCaseInit      sync.Once
	requestHandlerInit      sync.Once
}

// UserRepository returns the user repository for the configured driver. It also
// serves as the notification recipient lister and the request role updater.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// NotificationRepository returns the notification repository. Request decisions
// write through it inside their transaction.
func (c *Container) NotificationRepository() (notificationUseCase.NotificationRepository, error) {
	var err error
	c.notificationRepoInit.Do(func() {
		c.notificationRepo, err = c.initNotificationRepository()
		if err != nil {
			c.initErrors["notificationRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["notificationRepo"]; exists {
		return nil, storedErr
	}
	return c.notificationRepo, nil
}

// UserUseCase returns the user management use case.
func (c *Container) UserUseCase() (userUseCase.UseCase, error) {
	var err error
	c.people.userUseCaseInit.Do(func() {
		c.people.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.people.userUseCase, nil
}

// UserHandler returns the /api/admin handler.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	var err error
	c.people.userHandlerInit.Do(func() {
		var useCase userUseCase.UseCase
		useCase, err = c.UserUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get user use case for user handler: %w", err)
			c.initErrors["userHandler"] = err
			return
		}
		c.people.userHandler = userHTTP.NewUserHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.people.userHandler, nil
}

// NotificationUseCase returns the notification use case.
func (c *Container) NotificationUseCase() (notificationUseCase.UseCase, error) {
	var err error
	c.people.notificationUseCaseInit.Do(func() {
		c.people.notificationUseCase, err = c.initNotificationUseCase()
		if err != nil {
			c.initErrors["notificationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["notificationUseCase"]; exists {
		return nil, storedErr
	}
	return c.people.notificationUseCase, nil
}

// NotificationHandler returns the /api/notifications handler.
func (c *Container) NotificationHandler() (*notificationHTTP.NotificationHandler, error) {
	var err error
	c.people.notificationHandlerInit.Do(func() {
		c.people.notificationHandler, err = c.initNotificationHandler()
		if err != nil {
			c.initErrors["notificationHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["notificationHandler"]; exists {
		return nil, storedErr
	}
	return c.people.notificationHandler, nil
}

// RequestUseCase returns the request review use case.
func (c *Container) RequestUseCase() (requestUseCase.UseCase, error) {
	var err error
	c.people.requestUseCaseInit.Do(func() {
		c.people.requestUseCase, err = c.initRequestUseCase()
		if err != nil {
			c.initErrors["requestUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["requestUseCase"]; exists {
		return nil, storedErr
	}
	return c.people.requestUseCase, nil
}

// RequestHandler returns the /api/requests handler.
func (c *Container) RequestHandler() (*requestHTTP.RequestHandler, error) {
	var err error
	c.people.requestHandlerInit.Do(func() {
		var useCase requestUseCase.UseCase
		useCase, err = c.RequestUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get request use case for request handler: %w", err)
			c.initErrors["requestHandler"] = err
			return
		}
		c.people.requestHandler = requestHTTP.NewRequestHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["requestHandler"]; exists {
		return nil, storedErr
	}
	return c.people.requestHandler, nil
}

// initUserRepository creates the user repository instance.
func (c *Container) initUserRepository() (userUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case driverMySQL:
		return userRepository.NewMySQLUserRepository(db), nil
	case driverPostgres:
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, c.unsupportedDriver()
	}
}

// initNotificationRepository creates the notification repository instance.
func (c *Container) initNotificationRepository() (notificationUseCase.NotificationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for notification repository: %w", err)
	}

	switch c.config.DBDriver {
	case driverMySQL:
		return notificationRepository.NewMySQLNotificationRepository(db), nil
	case driverPostgres:
		return notificationRepository.NewPostgreSQLNotificationRepository(db), nil
	default:
		return nil, c.unsupportedDriver()
	}
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUseCase.UseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for user use case: %w", err)
	}

	baseUseCase := userUseCase.NewUserUseCase(userRepo, passwordService)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return userUseCase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initNotificationUseCase creates the notification use case. Broadcasts list
// recipients through the user repository.
func (c *Container) initNotificationUseCase() (notificationUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for notification use case: %w", err)
	}

	notificationRepo, err := c.NotificationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get notification repository for notification use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for notification use case: %w", err)
	}

	baseUseCase := notificationUseCase.NewNotificationUseCase(txManager, notificationRepo, userRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for notification use case: %w", err)
		}
		return notificationUseCase.NewNotificationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initNotificationHandler creates the notification HTTP handler.
func (c *Container) initNotificationHandler() (*notificationHTTP.NotificationHandler, error) {
	useCase, err := c.NotificationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get notification use case for notification handler: %w", err)
	}

	guard, err := c.Guard()
	if err != nil {
		return nil, fmt.Errorf("failed to get guard for notification handler: %w", err)
	}

	return notificationHTTP.NewNotificationHandler(useCase, guard, c.Logger()), nil
}

// initRequestUseCase creates the request use case. Decisions update roles through
// the user repository and notify through the notification repository, all in one
// transaction.
func (c *Container) initRequestUseCase() (requestUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for request use case: %w", err)
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for request use case: %w", err)
	}

	var requestRepo requestUseCase.RequestRepository
	switch c.config.DBDriver {
	case driverPostgres:
		requestRepo = requestRepository.NewPostgreSQLRequestRepository(db)
	case driverMySQL:
		requestRepo = requestRepository.NewMySQLRequestRepository(db)
	default:
		return nil, c.unsupportedDriver()
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for request use case: %w", err)
	}

	notificationRepo, err := c.NotificationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get notification repository for request use case: %w", err)
	}

	baseUseCase := requestUseCase.NewRequestUseCase(txManager, requestRepo, userRepo, notificationRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for request use case: %w", err)
		}
		return requestUseCase.NewRequestUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
