// Package wire provides dependency injection for the application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/nusuk/internal/adapters/cli"
	"github.com/example/nusuk/internal/adapters/sqlite"
	"github.com/example/nusuk/internal/app"
	"github.com/example/nusuk/internal/db"
	"github.com/example/nusuk/internal/ports/primary"
)

var (
	generatorService primary.GeneratorService
	metricsService   primary.MetricsService
	personService    primary.PersonService
	logger           *zap.Logger
	once             sync.Once
)

// GeneratorService returns the singleton GeneratorService instance.
func GeneratorService() primary.GeneratorService {
	once.Do(initServices)
	return generatorService
}

// MetricsService returns the singleton MetricsService instance.
func MetricsService() primary.MetricsService {
	once.Do(initServices)
	return metricsService
}

// PersonService returns the singleton PersonService instance.
func PersonService() primary.PersonService {
	once.Do(initServices)
	return personService
}

// Logger returns the singleton process logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	personRepo := sqlite.NewPersonRepository(database)
	metaRepo := sqlite.NewDatasetMetaRepository(database)

	generatorService = app.NewGeneratorService(personRepo, metaRepo, logger)
	metricsService = app.NewMetricsService(personRepo, metaRepo)
	personService = app.NewPersonService(personRepo)
}

// GeneratorAdapter returns a new GeneratorAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func GeneratorAdapter() *cliadapter.GeneratorAdapter {
	return GeneratorAdapterWithOutput(os.Stdout)
}

// GeneratorAdapterWithOutput returns a new GeneratorAdapter writing to
// the given output.
func GeneratorAdapterWithOutput(out io.Writer) *cliadapter.GeneratorAdapter {
	once.Do(initServices)
	return cliadapter.NewGeneratorAdapter(generatorService, out)
}

// MetricsAdapter returns a new MetricsAdapter writing to stdout.
func MetricsAdapter() *cliadapter.MetricsAdapter {
	return MetricsAdapterWithOutput(os.Stdout)
}

// MetricsAdapterWithOutput returns a new MetricsAdapter writing to the
// given output.
func MetricsAdapterWithOutput(out io.Writer) *cliadapter.MetricsAdapter {
	once.Do(initServices)
	return cliadapter.NewMetricsAdapter(metricsService, out)
}

// PersonAdapter returns a new PersonAdapter writing to stdout.
func PersonAdapter() *cliadapter.PersonAdapter {
	return PersonAdapterWithOutput(os.Stdout)
}

// PersonAdapterWithOutput returns a new PersonAdapter writing to the
// given output.
func PersonAdapterWithOutput(out io.Writer) *cliadapter.PersonAdapter {
	once.Do(initServices)
	return cliadapter.NewPersonAdapter(personService, out)
}
