package cmd

import (
	"log/slog"
	"strings"

	"cardapio/internal/adapters/in/http"
	"cardapio/internal/adapters/out/kafka"
	"cardapio/internal/adapters/out/postgres"
	"cardapio/internal/adapters/out/postgres/menurepo"
	"cardapio/internal/adapters/out/postgres/orderrepo"
	"cardapio/internal/core/application/notify"
	"cardapio/internal/core/application/usecases/commands"
	"cardapio/internal/core/application/usecases/queries"
	"cardapio/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	registry    *notify.Registry
	broadcaster *notify.Broadcaster
	publisher   *kafka.OrderEventPublisher
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   notify.NewRegistry(config.StreamBufferSize),
		logger:     logger,
	}

	var opts []notify.BroadcasterOption
	if config.KafkaHost != "" {
		root.publisher = kafka.NewOrderEventPublisher(
			strings.Split(config.KafkaHost, ","), config.KafkaOrderEventsTopic, logger)
		opts = append(opts, notify.WithPublisher(root.publisher))
	}
	root.broadcaster = notify.NewBroadcaster(root.registry, logger, opts...)

	return root
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, menurepo.NewGormMenuCatalog(c.gormDB), c.broadcaster, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.broadcaster, c.logger)
}

func (c *CompositionRoot) CreateOpenStreamCommandHandler() commands.OpenStreamCommandHandler {
	return commands.NewOpenStreamCommandHandler(c.registry, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrdersByTableQueryHandler() queries.GetOrdersByTableQueryHandler {
	return queries.NewGetOrdersByTableQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateServer() *http.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	updateStatus := c.CreateUpdateOrderStatusCommandHandler()
	openStream := c.CreateOpenStreamCommandHandler()

	return http.NewServer(
		&createOrder,
		&updateStatus,
		&openStream,
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetOrdersByTableQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.broadcaster, c.config.StreamKeepaliveSchedule, c.logger)
}

// Registry is the live subscriber registry; closing it ends every open stream.
func (c *CompositionRoot) Registry() *notify.Registry {
	return c.registry
}

// Close releases outbound connections.
func (c *CompositionRoot) Close() error {
	if c.publisher != nil {
		return c.publisher.Close()
	}
	return nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
