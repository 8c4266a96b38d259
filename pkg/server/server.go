package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/rayrc/keywhiz/pkg/config"
	"github.com/rayrc/keywhiz/pkg/server/store"
	gormstore "github.com/rayrc/keywhiz/pkg/server/store/gorm"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.KeywhizConfig

	AclStore          store.AclStore
	ClientsStore      store.ClientsStore
	GroupsStore       store.GroupsStore
	SecretSeriesStore store.SecretSeriesStore
	HealthStore       store.HealthStore

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.KeywhizConfig,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router: router,
		DB:     db,
		Config: cfg,

		AclStore:          gormstore.NewAclStore(db),
		ClientsStore:      gormstore.NewClientsStore(db),
		GroupsStore:       gormstore.NewGroupsStore(db),
		SecretSeriesStore: gormstore.NewSecretSeriesStore(db),
		HealthStore:       gormstore.NewHealthStore(db),

		srv: srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
