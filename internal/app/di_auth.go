package app

import (
	"context"
	"fmt"

	authHTTP "github.com/allisson/campus/internal/auth/http"
	authService "github.com/allisson/campus/internal/auth/service"
	authUseCase "github.com/allisson/campus/internal/auth/usecase"
)

// PasswordService returns the Argon2id password service.
func (c *Container) PasswordService() (authService.PasswordService, error) {
	var err error
	c.passwordServiceInit.Do(func() {
		c.passwordService, err = authService.NewPasswordService()
		if err != nil {
			c.initErrors["passwordService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["passwordService"]; exists {
		return nil, storedErr
	}
	return c.passwordService, nil
}

// TokenCodec returns the session token codec keyed by the resolved signing secret.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	var err error
	c.tokenCodecInit.Do(func() {
		c.tokenCodec, err = c.initTokenCodec()
		if err != nil {
			c.initErrors["tokenCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// RevocationList returns the logout denylist, or nil when Redis is not configured.
func (c *Container) RevocationList() (authService.RevocationList, error) {
	var err error
	c.revocationListInit.Do(func() {
		c.revocationList, err = c.initRevocationList()
		if err != nil {
			c.initErrors["revocationList"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["revocationList"]; exists {
		return nil, storedErr
	}
	return c.revocationList, nil
}

// SessionResolver returns the resolver shared by every guarded route.
func (c *Container) SessionResolver() (*authHTTP.SessionResolver, error) {
	var err error
	c.sessionResolverInit.Do(func() {
		c.sessionResolver, err = c.initSessionResolver()
		if err != nil {
			c.initErrors["sessionResolver"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionResolver"]; exists {
		return nil, storedErr
	}
	return c.sessionResolver, nil
}

// RateLimiter returns the per-principal limiter, or nil when disabled.
func (c *Container) RateLimiter() *authHTTP.RateLimiter {
	c.rateLimiterInit.Do(func() {
		if c.config.RateLimitEnabled {
			c.rateLimiter = authHTTP.NewRateLimiter(c.config.RateLimitRequestsPerSec, c.config.RateLimitBurst)
		}
	})
	return c.rateLimiter
}

// LoginRateLimiter returns the per-IP login limiter, or nil when disabled.
func (c *Container) LoginRateLimiter() *authHTTP.RateLimiter {
	c.loginRateLimiterInit.Do(func() {
		if c.config.LoginRateLimitEnabled {
			c.loginRateLimiter = authHTTP.NewRateLimiter(
				c.config.LoginRateLimitRequestsPerSec,
				c.config.LoginRateLimitBurst,
			)
		}
	})
	return c.loginRateLimiter
}

// Guard returns the route guard combining the resolver, rate limiter and role matrix.
func (c *Container) Guard() (*authHTTP.Guard, error) {
	var err error
	c.guardInit.Do(func() {
		var resolver *authHTTP.SessionResolver
		resolver, err = c.SessionResolver()
		if err != nil {
			err = fmt.Errorf("failed to get session resolver for guard: %w", err)
			c.initErrors["guard"] = err
			return
		}
		c.guard = authHTTP.NewGuard(resolver, c.RateLimiter(), c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["guard"]; exists {
		return nil, storedErr
	}
	return c.guard, nil
}

// SessionUseCase returns the login/logout/password use case.
func (c *Container) SessionUseCase() (authUseCase.SessionUseCase, error) {
	var err error
	c.sessionUseCaseInit.Do(func() {
		c.sessionUseCase, err = c.initSessionUseCase()
		if err != nil {
			c.initErrors["sessionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionUseCase"]; exists {
		return nil, storedErr
	}
	return c.sessionUseCase, nil
}

// SessionHandler returns the /api/auth handler.
func (c *Container) SessionHandler() (*authHTTP.SessionHandler, error) {
	var err error
	c.sessionHandlerInit.Do(func() {
		c.sessionHandler, err = c.initSessionHandler()
		if err != nil {
			c.initErrors["sessionHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionHandler"]; exists {
		return nil, storedErr
	}
	return c.sessionHandler, nil
}

// initTokenCodec resolves the signing secret, through the keeper when configured.
func (c *Container) initTokenCodec() (authService.TokenCodec, error) {
	secret, err := authService.ResolveSigningSecret(
		context.Background(),
		c.config.SessionSecret,
		c.config.SessionSecretKeeperURI,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session secret: %w", err)
	}

	codec, err := authService.NewTokenCodec(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}
	return codec, nil
}

// initRevocationList returns a nil interface when Redis is not configured so
// callers can test against nil.
func (c *Container) initRevocationList() (authService.RevocationList, error) {
	client, err := c.RedisClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get redis client for revocation list: %w", err)
	}
	if client == nil {
		return nil, nil
	}
	return authService.NewRedisRevocationList(client), nil
}

// initSessionResolver creates the resolver from the codec and optional denylist.
func (c *Container) initSessionResolver() (*authHTTP.SessionResolver, error) {
	codec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for session resolver: %w", err)
	}

	revocations, err := c.RevocationList()
	if err != nil {
		return nil, fmt.Errorf("failed to get revocation list for session resolver: %w", err)
	}

	return authHTTP.NewSessionResolver(codec, revocations, c.config.SessionCookieName, c.Logger()), nil
}

// initSessionUseCase creates the session use case with all its dependencies.
func (c *Container) initSessionUseCase() (authUseCase.SessionUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for session use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for session use case: %w", err)
	}

	codec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for session use case: %w", err)
	}

	revocations, err := c.RevocationList()
	if err != nil {
		return nil, fmt.Errorf("failed to get revocation list for session use case: %w", err)
	}

	baseUseCase := authUseCase.NewSessionUseCase(userRepo, passwordService, codec, revocations)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for session use case: %w", err)
		}
		return authUseCase.NewSessionUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initSessionHandler creates the session HTTP handler with all its dependencies.
func (c *Container) initSessionHandler() (*authHTTP.SessionHandler, error) {
	sessionUseCase, err := c.SessionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get session use case for session handler: %w", err)
	}

	resolver, err := c.SessionResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to get session resolver for session handler: %w", err)
	}

	return authHTTP.NewSessionHandler(sessionUseCase, resolver, c.config.SessionCookieSecure, c.Logger()), nil
}
