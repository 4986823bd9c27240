package app

import (
	"fmt"

	cardsHTTP "github.com/allisson/cardvault/internal/cards/http"
	cardsRepository "github.com/allisson/cardvault/internal/cards/repository"
	cardsUseCase "github.com/allisson/cardvault/internal/cards/usecase"
)

// CardRepository returns the card repository based on database driver.
func (c *Container) CardRepository() (cardsUseCase.CardRepository, error) {
	var err error
	c.cardRepoInit.Do(func() {
		c.cardRepo, err = c.initCardRepository()
		if err != nil {
			c.initErrors["cardRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardRepo"]; exists {
		return nil, storedErr
	}
	return c.cardRepo, nil
}

// CardUseCase returns the card use case.
func (c *Container) CardUseCase() (cardsUseCase.CardUseCase, error) {
	var err error
	c.cardUseCaseInit.Do(func() {
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.initErrors["cardUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardUseCase"]; exists {
		return nil, storedErr
	}
	return c.cardUseCase, nil
}

// CardHandler returns the HTTP handler for card operations.
func (c *Container) CardHandler() (*cardsHTTP.CardHandler, error) {
	var err error
	c.cardHandlerInit.Do(func() {
		c.cardHandler, err = c.initCardHandler()
		if err != nil {
			c.initErrors["cardHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardHandler"]; exists {
		return nil, storedErr
	}
	return c.cardHandler, nil
}

// initCardRepository creates the card repository based on the database driver.
func (c *Container) initCardRepository() (cardsUseCase.CardRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for card repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return cardsRepository.NewPostgreSQLCardRepository(db), nil
	case "mysql":
		return cardsRepository.NewMySQLCardRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCardUseCase creates the card use case with all its dependencies.
func (c *Container) initCardUseCase() (cardsUseCase.CardUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for card use case: %w", err)
	}

	cardRepo, err := c.CardRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get card repository for card use case: %w", err)
	}

	cipher, err := c.FieldCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get field cipher for card use case: %w", err)
	}

	baseUseCase := cardsUseCase.NewCardUseCase(txManager, cardRepo, cipher)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
		}
		return cardsUseCase.NewCardUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCardHandler creates the card HTTP handler with all its dependencies.
func (c *Container) initCardHandler() (*cardsHTTP.CardHandler, error) {
	cardUseCase, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for card handler: %w", err)
	}

	revealGateway, err := c.RevealGateway()
	if err != nil {
		return nil, fmt.Errorf("failed to get reveal gateway for card handler: %w", err)
	}

	return cardsHTTP.NewCardHandler(cardUseCase, revealGateway, c.Logger()), nil
}
