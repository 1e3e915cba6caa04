package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/lucky-friday-api/docs"
	v1 "github.com/vietanh2810/lucky-friday-api/internal/api/handler/v1"
	"github.com/vietanh2810/lucky-friday-api/internal/api/middleware"
	"github.com/vietanh2810/lucky-friday-api/internal/config"
	"github.com/vietanh2810/lucky-friday-api/internal/repository"
	"github.com/vietanh2810/lucky-friday-api/internal/repository/dao"
	"github.com/vietanh2810/lucky-friday-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	fridayHandler := s.initFridayHandler(db)
	memberHandler := s.initMemberHandler(db)
	hedgeSetHandler := s.initHedgeSetHandler(db)
	pageHandler := v1.NewPageHandler(conf.API.WebRoot, time.Now)
	s.MountHandlers(fridayHandler, memberHandler, hedgeSetHandler, pageHandler)

	return s
}

func (s *Server) initFridayHandler(db *gorm.DB) *v1.FridayHandler {
	fridayDAO := dao.NewFridayDAO(db)
	repo := repository.NewFridayRepository(fridayDAO)
	accountRepo := repository.NewAccountRepository(dao.NewAccountDAO(db))
	memberRepo := repository.NewMemberRepository(dao.NewMemberDAO(db))
	svc := service.NewFridayService(repo, accountRepo, memberRepo, time.Now)
	handler := v1.NewFridayHandler(svc)

	return handler
}

func (s *Server) initMemberHandler(db *gorm.DB) *v1.MemberHandler {
	memberDAO := dao.NewMemberDAO(db)
	repo := repository.NewMemberRepository(memberDAO)
	svc := service.NewMemberService(repo)
	handler := v1.NewMemberHandler(svc)

	return handler
}

func (s *Server) initHedgeSetHandler(db *gorm.DB) *v1.HedgeSetHandler {
	hedgeSetDAO := dao.NewHedgeSetDAO(db)
	repo := repository.NewHedgeSetRepository(hedgeSetDAO)
	svc := service.NewHedgeSetService(repo)
	handler := v1.NewHedgeSetHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(fridayHandler *v1.FridayHandler, memberHandler *v1.MemberHandler, hedgeSetHandler *v1.HedgeSetHandler, pageHandler *v1.PageHandler) {
	const basePath = "/api"

	fridays := s.Router.Group(basePath)
	{
		fridays.GET("/Fridays", fridayHandler.HandleListFridays)
		fridays.GET("/Fridays/accounts", fridayHandler.HandleListAccounts)
		fridays.GET("/Fridays/:id", fridayHandler.HandleGetFriday)
		fridays.POST("/Fridays", fridayHandler.HandleCreateFriday)
		fridays.PUT("/Fridays/:id", fridayHandler.HandleUpdateFriday)
		fridays.DELETE("/Fridays/:id", fridayHandler.HandleDeleteFriday)
	}

	hedgeSets := s.Router.Group(basePath)
	{
		hedgeSets.GET("/HedgeSets", hedgeSetHandler.HandleListHedgeSets)
		hedgeSets.GET("/HedgeSets/:id", hedgeSetHandler.HandleGetHedgeSet)
	}

	members := s.Router.Group(basePath)
	{
		members.GET("/Members", memberHandler.HandleListMembers)
		members.GET("/Members/:id", memberHandler.HandleGetMember)
		members.POST("/Members", memberHandler.HandleCreateMember)
		members.PUT("/Members/:id", memberHandler.HandleUpdateMember)
		members.DELETE("/Members/:id", memberHandler.HandleDeleteMember)
	}

	s.Router.GET("/dashboard", pageHandler.HandlePage("dashboard"))
	s.Router.GET("/fridays", pageHandler.HandlePage("fridays"))
	s.Router.GET("/hedgesets", pageHandler.HandlePage("hedgesets"))
	s.Router.GET("/members", pageHandler.HandlePage("members"))

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Lucky Friday API"
	docs.SwaggerInfo.Description = "Ledger for the Friday betting pool."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
