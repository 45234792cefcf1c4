package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/docs"
	v1 "github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/api/handler/v1"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/api/middleware"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/config"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/repository"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// NewServer wires the chat handlers on top of chatDAO. chatCache may be nil.
func NewServer(conf *config.AppConfig, chatDAO repository.ChatDAO, chatCache service.ChatCache) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	chatHandler := s.initChatHandler(chatDAO, chatCache)
	s.MountHandlers(chatHandler)

	return s
}

func (s *Server) initChatHandler(chatDAO repository.ChatDAO, chatCache service.ChatCache) *v1.ChatHandler {
	repo := repository.NewChatRepository(chatDAO)
	svc := service.NewChatService(repo, chatCache)
	handler := v1.NewChatHandler(s.Config.API, svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(chatHandler *v1.ChatHandler) {
	// Chat routes stay at the root where existing clients expect them.
	const basePath = "/"

	chats := s.Router.Group(basePath)
	{
		chats.POST("/chat", chatHandler.HandleCreateChat)
		chats.GET("/chat", chatHandler.HandleGetChat)
		chats.GET("/chat/:id", chatHandler.HandleGetChat)
		chats.GET("/chats", chatHandler.HandleGetUserChats)
		chats.GET("/chats/:username", chatHandler.HandleGetUserChats)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Ephemeral chat API"
	docs.SwaggerInfo.Description = "Stores short-lived chat messages."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
