// Package web provides the HTTP server of the bookkeeper backend: routing,
// middleware and the controller wiring.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"bookkeeper/config"
	"bookkeeper/logger"
	"bookkeeper/util/common"
	"bookkeeper/web/controller"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Server is the web server with its controllers.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	user       *controller.UserController
	captcha    *controller.CaptchaController
	bill       *controller.BillController
	billType   *controller.BillTypeController
	permission *controller.PermissionController
	role       *controller.RoleController

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	g := engine.Group("/")
	s.user = controller.NewUserController(g)
	s.captcha = controller.NewCaptchaController(g)
	s.bill = controller.NewBillController(g)
	s.billType = controller.NewBillTypeController(g)
	s.permission = controller.NewPermissionController(g)
	s.role = controller.NewRoleController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort("", strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	return nil
}

// Stop gracefully shuts down the web server.
func (s *Server) Stop() error {
	s.cancel()
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
