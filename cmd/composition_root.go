package cmd

import (
	"strconv"
	"time"

	"farmmarket/internal/adapters/out/auth"
	"farmmarket/internal/adapters/out/postgres"
	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/services"
	"farmmarket/internal/core/ports"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	tokenService ports.TokenService
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	tokenService, err := auth.NewJwtTokenService(config.TokenSecret, tokenTTL(config))
	if err != nil {
		log.Fatalf("cannot create token service: %v", err)
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenService: tokenService,
	}
}

func tokenTTL(config Config) time.Duration {
	hours, err := strconv.Atoi(config.TokenTTLHours)
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// PendingOrderMaxAge is how long an order may stay pending before the
// expiry job cancels it. Defaults to 7 days.
func (c *CompositionRoot) PendingOrderMaxAge(config Config) time.Duration {
	days, err := strconv.Atoi(config.PendingOrderMaxAgeDays)
	if err != nil || days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

func (c *CompositionRoot) TokenService() ports.TokenService {
	return c.tokenService
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateListingCommandHandler() commands.CreateListingCommandHandler {
	var f commands.ListingUoWFactory = FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateListingCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateListingCommandHandler() commands.UpdateListingCommandHandler {
	var f commands.ListingUoWFactory = FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateListingCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteListingCommandHandler() commands.DeleteListingCommandHandler {
	var f commands.MarketUoWFactory = FuncMarketUoWFactory(func() commands.MarketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteListingCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.MarketUoWFactory = FuncMarketUoWFactory(func() commands.MarketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewOrderProcessor())
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.MarketUoWFactory = FuncMarketUoWFactory(func() commands.MarketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, services.NewOrderProcessor())
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	var f commands.MarketUoWFactory = FuncMarketUoWFactory(func() commands.MarketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpirePendingOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateStartConversationCommandHandler() commands.StartConversationCommandHandler {
	var f commands.ConversationUoWFactory = FuncConversationUoWFactory(func() commands.ConversationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartConversationCommandHandler(f)
}

func (c *CompositionRoot) CreateSendMessageCommandHandler() commands.SendMessageCommandHandler {
	var f commands.ConversationUoWFactory = FuncConversationUoWFactory(func() commands.ConversationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendMessageCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkConversationReadCommandHandler() commands.MarkConversationReadCommandHandler {
	var f commands.ConversationUoWFactory = FuncConversationUoWFactory(func() commands.ConversationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkConversationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateSearchListingsQueryHandler() queries.SearchListingsQueryHandler {
	return queries.NewSearchListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetListingQueryHandler() queries.GetListingQueryHandler {
	return queries.NewGetListingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConversationsQueryHandler() queries.GetConversationsQueryHandler {
	return queries.NewGetConversationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMessagesQueryHandler() queries.GetMessagesQueryHandler {
	return queries.NewGetMessagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuthTokenQueryHandler() queries.GetAuthTokenQueryHandler {
	return queries.NewGetAuthTokenQueryHandler(c.gormDB, c.tokenService)
}

func (c *CompositionRoot) CreateGetPriceSuggestionQueryHandler() queries.GetPriceSuggestionQueryHandler {
	return queries.NewGetPriceSuggestionQueryHandler(services.NewPriceAdvisor())
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncConversationUoWFactory func() commands.ConversationUoW

func (f FuncConversationUoWFactory) Create() commands.ConversationUoW {
	return f()
}

type FuncMarketUoWFactory func() commands.MarketUoW

func (f FuncMarketUoWFactory) Create() commands.MarketUoW {
	return f()
}
