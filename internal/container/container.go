package container

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/pabloapp/pablo-api/config"
	"github.com/pabloapp/pablo-api/internal/application"
)

// app-level container to share constructed components across packages.
// Router can auto-wire modules from these singletons; they are set once at
// startup before InitModules runs.

var (
	cfg      *config.Config
	logger   *logrus.Logger
	database *mongo.Database
	gateway  application.ModelGateway
)

func SetConfig(c *config.Config)       { cfg = c }
func GetConfig() *config.Config        { return cfg }
func SetLogger(l *logrus.Logger)       { logger = l }
func GetLogger() *logrus.Logger        { return logger }
func SetDatabase(db *mongo.Database)   { database = db }
func GetDatabase() *mongo.Database     { return database }

// SetGateway must only be called with a live client; leaving the gateway
// unset (nil interface) is how a missing model credential disables the
// model-backed features.
func SetGateway(g application.ModelGateway) { gateway = g }
func GetGateway() application.ModelGateway  { return gateway }
