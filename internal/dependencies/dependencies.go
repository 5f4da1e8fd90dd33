package dependencies

import (
	"github.com/sirupsen/logrus"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/config"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/infrastructure/database"
)

// Dependencies bundles the shared application resources handed to commands.
type Dependencies struct {
	Logger *logrus.Logger
	Config *config.Config
	DB     database.Database
}
