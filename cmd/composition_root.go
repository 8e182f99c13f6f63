package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	routePlanner ports.RoutePlanner
	notifier     ports.OrderChangeNotifier
	base         kernel.Point
	logger       *slog.Logger
}

// NewCompositionRoot assembles the application. The route planner, notifier
// and dispatch base are built in main from the config; the notifier may be
// nil when Kafka is not configured.
func NewCompositionRoot(
	gormDB *gorm.DB,
	routePlanner ports.RoutePlanner,
	notifier ports.OrderChangeNotifier,
	base kernel.Point,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		routePlanner: routePlanner,
		notifier:     notifier,
		base:         base,
		logger:       logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.routePlanner, c.base, c.notifier)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.fullUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	return commands.NewAcceptOfferCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectOfferCommandHandler() commands.RejectOfferCommandHandler {
	return commands.NewRejectOfferCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	return commands.NewAdvanceStatusCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUploadPODCommandHandler() commands.UploadPODCommandHandler {
	return commands.NewUploadPODCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateReportIssueCommandHandler() commands.ReportIssueCommandHandler {
	return commands.NewReportIssueCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCollectCODCommandHandler() commands.CollectCODCommandHandler {
	return commands.NewCollectCODCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSettleCODCommandHandler() commands.SettleCODCommandHandler {
	return commands.NewSettleCODCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmTalanganCommandHandler() commands.ConfirmTalanganCommandHandler {
	return commands.NewConfirmTalanganCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateGeneratePairingCodeCommandHandler() commands.GeneratePairingCodeCommandHandler {
	return commands.NewGeneratePairingCodeCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateLinkCourierChatCommandHandler() commands.LinkCourierChatCommandHandler {
	return commands.NewLinkCourierChatCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateSetCourierOnlineCommandHandler() commands.SetCourierOnlineCommandHandler {
	return commands.NewSetCourierOnlineCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateExpirePairingCodesCommandHandler() commands.ExpirePairingCodesCommandHandler {
	return commands.NewExpirePairingCodesCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateRemindPendingOffersCommandHandler() commands.RemindPendingOffersCommandHandler {
	return commands.NewRemindPendingOffersCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierBoardQueryHandler() queries.GetCourierBoardQueryHandler {
	return queries.NewGetCourierBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST API server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		AssignCourier:   c.CreateAssignCourierCommandHandler(),
		AcceptOffer:     c.CreateAcceptOfferCommandHandler(),
		RejectOffer:     c.CreateRejectOfferCommandHandler(),
		AdvanceStatus:   c.CreateAdvanceStatusCommandHandler(),
		UploadPOD:       c.CreateUploadPODCommandHandler(),
		ReportIssue:     c.CreateReportIssueCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		CollectCOD:      c.CreateCollectCODCommandHandler(),
		SettleCOD:       c.CreateSettleCODCommandHandler(),
		ConfirmTalangan: c.CreateConfirmTalanganCommandHandler(),

		CreateCourier:       c.CreateCreateCourierCommandHandler(),
		GeneratePairingCode: c.CreateGeneratePairingCodeCommandHandler(),
		LinkCourierChat:     c.CreateLinkCourierChatCommandHandler(),
		SetCourierOnline:    c.CreateSetCourierOnlineCommandHandler(),

		GetActiveOrders: c.CreateGetActiveOrdersQueryHandler(),
		GetCourierBoard: c.CreateGetCourierBoardQueryHandler(),
		GetAllCouriers:  c.CreateGetAllCouriersQueryHandler(),
	})
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpirePairingCodesCommandHandler(),
		c.CreateRemindPendingOffersCommandHandler(),
		c.logger,
	)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
